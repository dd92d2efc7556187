// Package export renders the full filtered+sorted collection (never a page)
// into tabular documents.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/gosuri/uitable"

	"tableflip.dev/roster/pkg/student"
)

// Columns is the export header shared by both adapters.
var Columns = []string{"Name", "Email", "Group", "Tags", "Flagged"}

func row(s student.Student) []string {
	flagged := "No"
	if s.Flagged {
		flagged = "Yes"
	}
	return []string{s.Name, s.Email, string(s.Group), strings.Join(s.Tags, ", "), flagged}
}

// CSV writes the collection as a delimited file.
func CSV(w io.Writer, students []student.Student) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Columns); err != nil {
		return fmt.Errorf("export: write header: %w", err)
	}
	for _, s := range students {
		if err := cw.Write(row(s)); err != nil {
			return fmt.Errorf("export: write row %d: %w", s.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Table writes an aligned text table suitable for printing.
func Table(w io.Writer, students []student.Student) error {
	table := uitable.New()
	table.MaxColWidth = 40
	table.AddRow(toAny(Columns)...)
	for _, s := range students {
		table.AddRow(toAny(row(s))...)
	}
	_, err := fmt.Fprintln(w, table)
	return err
}

func toAny(cells []string) []interface{} {
	out := make([]interface{}, len(cells))
	for i, c := range cells {
		out[i] = c
	}
	return out
}

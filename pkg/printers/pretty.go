package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/roster/pkg/student"
)

type PrettyPrint struct {
	ShowID bool
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" student")
	default:
		_, _ = c.Println(" students")
	}
}

// Roster prints the given records as an aligned table.
func (pp *PrettyPrint) Roster(students ...student.Student) {
	if len(students) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	flag := color.New(color.FgHiMagenta)
	table := uitable.New()
	table.MaxColWidth = 32

	header := []interface{}{"", "NAME", "EMAIL", "GROUP", "TAGS"}
	if pp.ShowID {
		header = append([]interface{}{"ID"}, header...)
	}
	table.AddRow(header...)

	for _, s := range students {
		mark := " "
		if s.Flagged {
			mark = flag.Sprint(student.FlagMark)
		}
		cells := []interface{}{mark, s.Name, s.Email, string(s.Group), strings.Join(s.Tags, ", ")}
		if pp.ShowID {
			cells = append([]interface{}{fmt.Sprintf("%d", s.ID)}, cells...)
		}
		table.AddRow(cells...)
	}
	_, _ = fmt.Fprintln(color.Output, table)
	fmt.Println("")
}

// Detail prints a single record the way the detail view lays it out.
func (pp *PrettyPrint) Detail(s student.Student) {
	title := color.New(color.Bold, color.Underline)
	label := color.New(color.Faint)

	name := s.Name
	if s.Flagged {
		name = fmt.Sprintf("%s %s", name, color.New(color.FgHiMagenta).Sprint(student.FlagMark))
	}
	_, _ = title.Println(name)

	rows := [][2]string{
		{"Username", s.Display("username")},
		{"Email", s.Display("email")},
		{"Phone", s.Display("phone")},
		{"Website", s.Display("website")},
		{"Company", s.Display("company")},
		{"Address", s.FullAddress()},
		{"Group", s.Display("group")},
		{"Tags", s.Display("tags")},
	}
	for _, r := range rows {
		_, _ = label.Printf("%-10s", r[0]+":")
		fmt.Printf(" %s\n", r[1])
	}
	fmt.Println("")
}

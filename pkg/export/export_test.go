package export

import (
	"encoding/csv"
	"strings"
	"testing"

	"tableflip.dev/roster/pkg/student"
)

var students = []student.Student{
	{ID: 1, Name: "Leanne Graham", Email: "sincere@april.biz", Group: student.GroupA, Tags: []string{"active", "senior"}, Flagged: true},
	{ID: 2, Name: "Ervin Howell", Email: "shanna@melissa.tv", Group: student.GroupC},
}

func TestCSVRoundTrip(t *testing.T) {
	var buf strings.Builder
	if err := CSV(&buf, students); err != nil {
		t.Fatalf("csv export: %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(buf.String())).ReadAll()
	if err != nil {
		t.Fatalf("reading exported csv: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d rows, want header + 2", len(records))
	}
	if got := strings.Join(records[0], "|"); got != "Name|Email|Group|Tags|Flagged" {
		t.Fatalf("header = %q", got)
	}
	if records[1][4] != "Yes" || records[2][4] != "No" {
		t.Fatalf("flagged column wrong: %q, %q", records[1][4], records[2][4])
	}
	if records[1][3] != "active, senior" {
		t.Fatalf("tags not joined: %q", records[1][3])
	}
}

func TestTableContainsEveryRecord(t *testing.T) {
	var buf strings.Builder
	if err := Table(&buf, students); err != nil {
		t.Fatalf("table export: %v", err)
	}
	out := buf.String()
	for _, s := range students {
		if !strings.Contains(out, s.Email) {
			t.Fatalf("table missing %s:\n%s", s.Email, out)
		}
	}
}

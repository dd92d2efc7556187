package add

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/manifoldco/promptui"

	"tableflip.dev/roster/pkg/printers"
	"tableflip.dev/roster/pkg/roster"
	"tableflip.dev/roster/pkg/source"
	"tableflip.dev/roster/pkg/student"
)

// Add loads the roster, inserts one record and prints it back. The session
// is not persisted; this is a dry-run surface for the store contract and
// the interactive form.
type Add struct {
	Source      source.Source
	Interactive bool

	Name    string
	Email   string
	Phone   string
	Website string
	Group   string
	Tags    []string
}

func (n *Add) Do(ctx context.Context) error {
	if n.Source == nil {
		return errors.New("can not add, no data source")
	}
	students, err := n.Source.Load(ctx)
	if err != nil {
		return err
	}
	r := roster.New()
	r.Reset(students)

	if n.Interactive {
		if err := n.prompt(); err != nil {
			return err
		}
	}

	p := student.Partial{}
	if n.Name != "" {
		p.Name = &n.Name
	}
	if n.Email != "" {
		p.Email = &n.Email
	}
	if n.Phone != "" {
		p.Phone = &n.Phone
	}
	if n.Website != "" {
		p.Website = &n.Website
	}
	if n.Group != "" {
		g := student.Group(strings.ToUpper(n.Group))
		p.Group = &g
	}
	if len(n.Tags) > 0 {
		p.Tags = &n.Tags
	}

	added, err := r.Insert(p)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: true}
	pp.Title(fmt.Sprintf("Added student %d", added.ID))
	pp.Roster(added)
	return nil
}

func (n *Add) prompt() error {
	required := func(field string) func(string) error {
		return func(input string) error {
			if strings.TrimSpace(input) == "" {
				return fmt.Errorf("%s is required", field)
			}
			return nil
		}
	}

	name := promptui.Prompt{Label: "Name", Default: n.Name, Validate: required("name")}
	v, err := name.Run()
	if err != nil {
		return err
	}
	n.Name = v

	email := promptui.Prompt{Label: "Email", Default: n.Email, Validate: required("email")}
	if v, err = email.Run(); err != nil {
		return err
	}
	n.Email = v

	phone := promptui.Prompt{Label: "Phone", Default: n.Phone}
	if v, err = phone.Run(); err != nil {
		return err
	}
	n.Phone = v

	groups := student.Groups()
	items := make([]string, len(groups))
	for i, g := range groups {
		items[i] = string(g)
	}
	group := promptui.Select{Label: "Group", Items: items}
	_, v, err = group.Run()
	if err != nil {
		return err
	}
	n.Group = v
	return nil
}

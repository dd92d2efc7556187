// Package events defines the cross-component messages of the dashboard UI.
package events

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/roster/pkg/student"
)

// ComponentID uniquely identifies a component instance emitting events.
type ComponentID string

// StudentRef captures the metadata required to identify a record in
// cross-component events.
type StudentRef struct {
	ID    int
	Name  string
	Email string
}

// Label returns a human-friendly identifier for the record.
func (r StudentRef) Label() string {
	if r.Name != "" {
		return r.Name
	}
	return fmt.Sprintf("#%d", r.ID)
}

// RefFrom converts a student into an event reference.
func RefFrom(s student.Student) StudentRef {
	return StudentRef{ID: s.ID, Name: s.Name, Email: s.Email}
}

// StudentSelectMsg is emitted when the user activates a highlighted record
// (e.g. presses Enter in the tile view).
type StudentSelectMsg struct {
	Component ComponentID
	Student   StudentRef
}

// Describe renders the selection in a human-friendly format for logs.
func (m StudentSelectMsg) Describe() string {
	return fmt.Sprintf("name:%q id:%d", m.Student.Label(), m.Student.ID)
}

// ChangeType enumerates supported change actions across components.
type ChangeType string

const (
	// ChangeCreate indicates a new record was created.
	ChangeCreate ChangeType = "create"
	// ChangeUpdate indicates an existing record changed.
	ChangeUpdate ChangeType = "update"
	// ChangeDelete indicates a record was removed.
	ChangeDelete ChangeType = "delete"
	// ChangeFlag indicates a record's flag was toggled.
	ChangeFlag ChangeType = "flag"
)

// StudentChangeMsg announces a store mutation regardless of its origin.
type StudentChangeMsg struct {
	Component ComponentID
	Action    ChangeType
	Student   StudentRef
}

// Describe implements the logging helper.
func (m StudentChangeMsg) Describe() string {
	return fmt.Sprintf("action:%q name:%q", m.Action, m.Student.Label())
}

// StudentChangeCmd wraps StudentChangeMsg into a tea.Cmd for callers that
// want to emit the event as part of an Update result.
func StudentChangeCmd(component ComponentID, action ChangeType, ref StudentRef) tea.Cmd {
	return func() tea.Msg {
		return StudentChangeMsg{Component: component, Action: action, Student: ref}
	}
}

// FormSubmitMsg carries the validated fields out of the add/edit form.
// ID is zero for inserts.
type FormSubmitMsg struct {
	Component ComponentID
	ID        int
	Partial   student.Partial
}

// FormCancelMsg closes the form without applying anything.
type FormCancelMsg struct {
	Component ComponentID
}

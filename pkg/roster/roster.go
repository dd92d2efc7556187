// Package roster holds the in-memory record collection and its mutation
// contract. There is no persistence behind it; the session owns the data.
package roster

import (
	"fmt"

	"tableflip.dev/roster/pkg/student"
)

// Roster is the live collection. All mutations happen synchronously on the
// UI goroutine, so there is no locking.
type Roster struct {
	students []student.Student
	nextID   int
	// generation counts mutations so derived views can tell when a cached
	// query result went stale.
	generation uint64
}

// New returns an empty roster.
func New() *Roster {
	return &Roster{nextID: 1}
}

// Reset replaces the whole collection, typically with a freshly loaded
// batch from the data source. The id counter restarts above the highest
// id seen so later inserts never collide with loaded records.
func (r *Roster) Reset(students []student.Student) {
	r.students = make([]student.Student, 0, len(students))
	max := 0
	for _, s := range students {
		if s.ID > max {
			max = s.ID
		}
		r.students = append(r.students, s.Clone())
	}
	r.nextID = max + 1
	r.generation++
}

// All returns the collection in insertion order.
func (r *Roster) All() []student.Student {
	out := make([]student.Student, 0, len(r.students))
	for _, s := range r.students {
		out = append(out, s.Clone())
	}
	return out
}

// Len reports the live record count.
func (r *Roster) Len() int { return len(r.students) }

// Generation identifies the current mutation epoch.
func (r *Roster) Generation() uint64 { return r.generation }

// Get returns the student with the given id.
func (r *Roster) Get(id int) (student.Student, error) {
	if i := r.index(id); i >= 0 {
		return r.students[i].Clone(), nil
	}
	return student.Student{}, fmt.Errorf("%w (id %d)", ErrNotFound, id)
}

// Insert assigns a fresh id, merges the partial over defaults and appends
// the record. Name and email are required; the form layer validates too,
// but the store never accepts a record without them.
func (r *Roster) Insert(p student.Partial) (student.Student, error) {
	var missing []string
	if p.Name == nil || *p.Name == "" {
		missing = append(missing, "name")
	}
	if p.Email == nil || *p.Email == "" {
		missing = append(missing, "email")
	}
	if len(missing) > 0 {
		return student.Student{}, &ValidationError{Missing: missing}
	}

	s := student.Student{ID: r.nextID}
	p.Apply(&s)
	r.nextID++
	r.students = append(r.students, s)
	r.generation++
	return s.Clone(), nil
}

// Update merges the partial over the record with the given id.
func (r *Roster) Update(id int, p student.Partial) (student.Student, error) {
	i := r.index(id)
	if i < 0 {
		return student.Student{}, fmt.Errorf("%w (id %d)", ErrNotFound, id)
	}
	p.Apply(&r.students[i])
	r.students[i].ID = id // ids never change, even if a caller smuggles one in
	r.generation++
	return r.students[i].Clone(), nil
}

// Delete removes the record with the given id. Deleting an absent id is a
// no-op so the operation stays idempotent.
func (r *Roster) Delete(id int) {
	i := r.index(id)
	if i < 0 {
		return
	}
	r.students = append(r.students[:i], r.students[i+1:]...)
	r.generation++
}

// ToggleFlag flips the flagged marker on the record with the given id.
func (r *Roster) ToggleFlag(id int) (student.Student, error) {
	i := r.index(id)
	if i < 0 {
		return student.Student{}, fmt.Errorf("%w (id %d)", ErrNotFound, id)
	}
	r.students[i].Flagged = !r.students[i].Flagged
	r.generation++
	return r.students[i].Clone(), nil
}

func (r *Roster) index(id int) int {
	for i, s := range r.students {
		if s.ID == id {
			return i
		}
	}
	return -1
}

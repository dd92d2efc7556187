// Package mcp provides the Model Context Protocol server integration for the
// roster dashboard.
package mcp

import (
	"context"
	"errors"
	"strings"

	"tableflip.dev/roster/pkg/query"
	"tableflip.dev/roster/pkg/roster"
	"tableflip.dev/roster/pkg/student"
)

// Service coordinates roster operations shared by the MCP tools. The roster
// is session-local: mutations live for the lifetime of the server.
type Service struct {
	Roster *roster.Roster
}

// StudentDTO is a transport-friendly projection of a record.
type StudentDTO struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Username string   `json:"username,omitempty"`
	Email    string   `json:"email"`
	Phone    string   `json:"phone,omitempty"`
	Website  string   `json:"website,omitempty"`
	Company  string   `json:"company,omitempty"`
	Street   string   `json:"street,omitempty"`
	City     string   `json:"city,omitempty"`
	Zipcode  string   `json:"zipcode,omitempty"`
	Flagged  bool     `json:"flagged"`
	Group    string   `json:"group,omitempty"`
	Tags     []string `json:"tags,omitempty"`
}

// NewService builds a service wrapper around the provided roster.
func NewService(r *roster.Roster) *Service {
	return &Service{Roster: r}
}

func toDTO(s student.Student) StudentDTO {
	return StudentDTO{
		ID:       s.ID,
		Name:     s.Name,
		Username: s.Username,
		Email:    s.Email,
		Phone:    s.Phone,
		Website:  s.Website,
		Company:  s.Company.Name,
		Street:   s.Address.Street,
		City:     s.Address.City,
		Zipcode:  s.Address.Zipcode,
		Flagged:  s.Flagged,
		Group:    string(s.Group),
		Tags:     s.Tags,
	}
}

func toDTOs(students []student.Student) []StudentDTO {
	out := make([]StudentDTO, 0, len(students))
	for _, s := range students {
		out = append(out, toDTO(s))
	}
	return out
}

// ListStudents returns the collection sorted by the requested key.
func (s *Service) ListStudents(ctx context.Context, sortKey string, desc bool) ([]StudentDTO, error) {
	if s.Roster == nil {
		return nil, errors.New("roster is not configured")
	}
	dir := query.Asc
	if desc {
		dir = query.Desc
	}
	if sortKey == "" {
		sortKey = "id"
	}
	return toDTOs(query.Sorted(s.Roster.All(), query.Params{SortKey: sortKey, SortDir: dir})), nil
}

// SearchStudents filters by the free-text term over name and email.
func (s *Service) SearchStudents(ctx context.Context, term string) ([]StudentDTO, error) {
	if s.Roster == nil {
		return nil, errors.New("roster is not configured")
	}
	return toDTOs(query.Filter(s.Roster.All(), term)), nil
}

// GetStudent returns a single record by id.
func (s *Service) GetStudent(ctx context.Context, id int) (*StudentDTO, error) {
	if s.Roster == nil {
		return nil, errors.New("roster is not configured")
	}
	st, err := s.Roster.Get(id)
	if err != nil {
		return nil, err
	}
	dto := toDTO(st)
	return &dto, nil
}

// AddStudent inserts a new record. Name and email are required.
func (s *Service) AddStudent(ctx context.Context, name, email, group string, tags []string) (*StudentDTO, error) {
	if s.Roster == nil {
		return nil, errors.New("roster is not configured")
	}
	p := student.Partial{}
	if name != "" {
		p.Name = &name
	}
	if email != "" {
		p.Email = &email
	}
	if group != "" {
		g := student.Group(strings.ToUpper(group))
		p.Group = &g
	}
	if len(tags) > 0 {
		p.Tags = &tags
	}
	st, err := s.Roster.Insert(p)
	if err != nil {
		return nil, err
	}
	dto := toDTO(st)
	return &dto, nil
}

// FlagStudent toggles the flag on a record.
func (s *Service) FlagStudent(ctx context.Context, id int) (*StudentDTO, error) {
	if s.Roster == nil {
		return nil, errors.New("roster is not configured")
	}
	st, err := s.Roster.ToggleFlag(id)
	if err != nil {
		return nil, err
	}
	dto := toDTO(st)
	return &dto, nil
}

// RemoveStudent deletes a record. Removing an absent id is a no-op.
func (s *Service) RemoveStudent(ctx context.Context, id int) error {
	if s.Roster == nil {
		return errors.New("roster is not configured")
	}
	s.Roster.Delete(id)
	return nil
}

// Package student defines the record entity managed by the dashboard.
package student

import "strings"

// Placeholder is rendered wherever an optional field has no value.
const Placeholder = "N/A"

// FlagMark is the marker rendered next to flagged records in every view.
const FlagMark = "⚑"

// Group is the closed set of cohort labels a student can belong to.
type Group string

const (
	GroupA Group = "A"
	GroupB Group = "B"
	GroupC Group = "C"
	GroupD Group = "D"
)

// Groups returns every valid group label in display order.
func Groups() []Group {
	return []Group{GroupA, GroupB, GroupC, GroupD}
}

// Tags is the label set sample data draws from.
var Tags = []string{"student", "active", "alumni", "freshman", "senior", "graduate"}

// Company is the optional employer sub-record.
type Company struct {
	Name string `json:"name,omitempty"`
}

// Address is the optional address sub-record.
type Address struct {
	Street  string `json:"street,omitempty"`
	City    string `json:"city,omitempty"`
	Zipcode string `json:"zipcode,omitempty"`
}

// Student is one managed record. ID is unique and immutable once assigned.
type Student struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Username string   `json:"username,omitempty"`
	Email    string   `json:"email"`
	Phone    string   `json:"phone,omitempty"`
	Website  string   `json:"website,omitempty"`
	Company  Company  `json:"company,omitempty"`
	Address  Address  `json:"address,omitempty"`
	Flagged  bool     `json:"flagged,omitempty"`
	Group    Group    `json:"group,omitempty"`
	Tags     []string `json:"tags,omitempty"`
}

// Partial carries caller-supplied fields for insert and update. Nil pointers
// mean "leave the existing value alone".
type Partial struct {
	Name     *string
	Username *string
	Email    *string
	Phone    *string
	Website  *string
	Company  *Company
	Address  *Address
	Flagged  *bool
	Group    *Group
	Tags     *[]string
}

// Apply merges the set fields of p over s.
func (p Partial) Apply(s *Student) {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.Username != nil {
		s.Username = *p.Username
	}
	if p.Email != nil {
		s.Email = *p.Email
	}
	if p.Phone != nil {
		s.Phone = *p.Phone
	}
	if p.Website != nil {
		s.Website = *p.Website
	}
	if p.Company != nil {
		s.Company = *p.Company
	}
	if p.Address != nil {
		s.Address = *p.Address
	}
	if p.Flagged != nil {
		s.Flagged = *p.Flagged
	}
	if p.Group != nil {
		s.Group = *p.Group
	}
	if p.Tags != nil {
		s.Tags = append([]string(nil), (*p.Tags)...)
	}
}

// Field returns the string representation of the named display field, or ""
// when the key names nothing. Used by the sort comparator and the exporters.
func (s Student) Field(key string) string {
	switch key {
	case "name":
		return s.Name
	case "username":
		return s.Username
	case "email":
		return s.Email
	case "phone":
		return s.Phone
	case "website":
		return s.Website
	case "company":
		return s.Company.Name
	case "street":
		return s.Address.Street
	case "city":
		return s.Address.City
	case "zipcode":
		return s.Address.Zipcode
	case "group":
		return string(s.Group)
	case "tags":
		return strings.Join(s.Tags, ", ")
	default:
		return ""
	}
}

// Display returns the field value or the placeholder when it is empty.
func (s Student) Display(key string) string {
	if v := s.Field(key); v != "" {
		return v
	}
	return Placeholder
}

// FullAddress renders street, city and zipcode on one line for the detail view.
func (s Student) FullAddress() string {
	parts := make([]string, 0, 3)
	for _, v := range []string{s.Address.Street, s.Address.City, s.Address.Zipcode} {
		if v != "" {
			parts = append(parts, v)
		}
	}
	if len(parts) == 0 {
		return Placeholder
	}
	return strings.Join(parts, ", ")
}

// Matches reports whether term is a case-insensitive substring of the
// student's name or email. An empty term matches everything.
func (s Student) Matches(term string) bool {
	if term == "" {
		return true
	}
	t := strings.ToLower(term)
	return strings.Contains(strings.ToLower(s.Name), t) ||
		strings.Contains(strings.ToLower(s.Email), t)
}

// Clone returns a deep copy so callers cannot mutate stored tag slices.
func (s Student) Clone() Student {
	c := s
	c.Tags = append([]string(nil), s.Tags...)
	return c
}

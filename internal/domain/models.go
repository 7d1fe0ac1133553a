package domain

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// Resource identifies one of the admin-data collections
type Resource string

const (
	ResourceUsers    Resource = "users"
	ResourceProjects Resource = "projects"
	ResourceDatasets Resource = "datasets"
)

// Resources lists the resources in display order
var Resources = []Resource{ResourceUsers, ResourceProjects, ResourceDatasets}

// ParseResource accepts plural or singular resource names, case-insensitively
func ParseResource(s string) (Resource, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "users", "user":
		return ResourceUsers, nil
	case "projects", "project":
		return ResourceProjects, nil
	case "datasets", "dataset":
		return ResourceDatasets, nil
	}
	return "", fmt.Errorf("unknown resource %q", s)
}

// Singular returns the name used by per-record backend endpoints
func (r Resource) Singular() string {
	return strings.TrimSuffix(string(r), "s")
}

func (r Resource) String() string { return string(r) }

// Field is a named, searchable attribute of a record
type Field struct {
	Name  string
	Value string
}

// Record is implemented by every admin-data row
type Record interface {
	RecordID() string
	Fields() []Field
}

// Role names returned by the backend
const (
	RoleAdmin = "Admin"
	RoleUser  = "User"
)

// User represents a platform account
type User struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	IsBlocked bool   `json:"isBlocked"`
}

func (u User) RecordID() string { return u.ID }

func (u User) Fields() []Field {
	return []Field{
		{Name: "id", Value: u.ID},
		{Name: "username", Value: u.Username},
		{Name: "role", Value: u.Role},
		{Name: "blocked", Value: strconv.FormatBool(u.IsBlocked)},
	}
}

// IsAdmin reports whether the user holds the admin role
func (u User) IsAdmin() bool {
	return strings.EqualFold(u.Role, RoleAdmin)
}

// Project represents a user's ML project
type Project struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (p Project) RecordID() string { return p.ID }

func (p Project) Fields() []Field {
	return []Field{
		{Name: "id", Value: p.ID},
		{Name: "name", Value: p.Name},
	}
}

// Dataset represents an uploaded dataset
type Dataset struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (d Dataset) RecordID() string { return d.ID }

func (d Dataset) Fields() []Field {
	return []Field{
		{Name: "id", Value: d.ID},
		{Name: "name", Value: d.Name},
	}
}

// AdminData is the admin-data payload, one slice per resource
type AdminData struct {
	Users    []User
	Projects []Project
	Datasets []Dataset
}

// Records returns the slice for a resource as generic records
func (d AdminData) Records(r Resource) []Record {
	var out []Record
	switch r {
	case ResourceUsers:
		out = make([]Record, 0, len(d.Users))
		for _, u := range d.Users {
			out = append(out, u)
		}
	case ResourceProjects:
		out = make([]Record, 0, len(d.Projects))
		for _, p := range d.Projects {
			out = append(out, p)
		}
	case ResourceDatasets:
		out = make([]Record, 0, len(d.Datasets))
		for _, ds := range d.Datasets {
			out = append(out, ds)
		}
	}
	return out
}

// Count returns the number of records for a resource
func (d AdminData) Count(r Resource) int {
	switch r {
	case ResourceUsers:
		return len(d.Users)
	case ResourceProjects:
		return len(d.Projects)
	case ResourceDatasets:
		return len(d.Datasets)
	}
	return 0
}

// SetUserBlocked sets the blocked flag of one user
func (d *AdminData) SetUserBlocked(id string, blocked bool) bool {
	for i := range d.Users {
		if d.Users[i].ID == id {
			d.Users = slices.Clone(d.Users)
			d.Users[i].IsBlocked = blocked
			return true
		}
	}
	return false
}

// Remove drops a record by id and reports whether it existed. The slice is
// copied so earlier snapshots are left untouched.
func (d *AdminData) Remove(r Resource, id string) bool {
	switch r {
	case ResourceUsers:
		for i := range d.Users {
			if d.Users[i].ID == id {
				d.Users = slices.Delete(slices.Clone(d.Users), i, i+1)
				return true
			}
		}
	case ResourceProjects:
		for i := range d.Projects {
			if d.Projects[i].ID == id {
				d.Projects = slices.Delete(slices.Clone(d.Projects), i, i+1)
				return true
			}
		}
	case ResourceDatasets:
		for i := range d.Datasets {
			if d.Datasets[i].ID == id {
				d.Datasets = slices.Delete(slices.Clone(d.Datasets), i, i+1)
				return true
			}
		}
	}
	return false
}

// FieldValue returns the value of a named field, or "" when absent
func FieldValue(rec Record, name string) string {
	for _, f := range rec.Fields() {
		if f.Name == name {
			return f.Value
		}
	}
	return ""
}

// Label returns the human-readable name of a record, its id when it has none
func Label(rec Record) string {
	for _, name := range []string{"username", "name"} {
		if v := FieldValue(rec, name); v != "" {
			return v
		}
	}
	return rec.RecordID()
}

// Theme is the colour scheme preference
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"

	// DefaultTheme applies until the user picks one
	DefaultTheme = ThemeDark
)

// Toggle returns the opposite theme
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// Language is the UI language preference
type Language string

const (
	LanguageEnglish Language = "en"
	LanguagePolish  Language = "pl"

	DefaultLanguage = LanguageEnglish
)

// Toggle returns the other supported language
func (l Language) Toggle() Language {
	if l == LanguagePolish {
		return LanguageEnglish
	}
	return LanguagePolish
}

package search

import (
	"slices"
	"strconv"
	"strings"

	"maidadmin/internal/domain"
)

// fieldNames are the prefixes recognised in "field:value" terms
var fieldNames = map[string]bool{
	"id":       true,
	"username": true,
	"name":     true,
	"role":     true,
	"blocked":  true,
}

// Query is a parsed search term
type Query struct {
	Field string // empty for a plain term
	Value string // lower-cased
}

// ParseQuery splits a term into an optional field scope and a value
func ParseQuery(term string) Query {
	if i := strings.IndexByte(term, ':'); i > 0 {
		field := strings.ToLower(strings.TrimSpace(term[:i]))
		if fieldNames[field] {
			return Query{Field: field, Value: strings.ToLower(strings.TrimSpace(term[i+1:]))}
		}
	}
	return Query{Value: strings.ToLower(term)}
}

// Matches checks if a record matches the given term
func Matches(rec domain.Record, term string) bool {
	if term == "" {
		return true
	}
	return ParseQuery(term).Matches(rec)
}

// Matches checks a record against a parsed query
func (q Query) Matches(rec domain.Record) bool {
	if q.Field == "" {
		if q.Value == "" {
			return true
		}
		for _, f := range rec.Fields() {
			// Flags are only reachable through their field scope
			if f.Name == "blocked" {
				continue
			}
			if strings.Contains(strings.ToLower(f.Value), q.Value) {
				return true
			}
		}
		return false
	}

	for _, f := range rec.Fields() {
		if f.Name != q.Field {
			continue
		}
		if f.Name == "blocked" {
			return matchesBool(f.Value, q.Value)
		}
		return strings.Contains(strings.ToLower(f.Value), q.Value)
	}
	// The record has no such field
	return false
}

func matchesBool(fieldValue, want string) bool {
	if want == "" {
		return true
	}
	switch want {
	case "yes", "y":
		want = "true"
	case "no", "n":
		want = "false"
	}
	wantBool, err := strconv.ParseBool(want)
	if err != nil {
		return false
	}
	got, err := strconv.ParseBool(fieldValue)
	if err != nil {
		return false
	}
	return got == wantBool
}

// Filter returns the records matching term, preserving input order. The
// result never shares its backing array with records.
func Filter[T domain.Record](records []T, term string) []T {
	if term == "" {
		return slices.Clone(records)
	}
	q := ParseQuery(term)
	out := make([]T, 0, len(records))
	for _, rec := range records {
		if q.Matches(rec) {
			out = append(out, rec)
		}
	}
	return out
}

// FilterUsers filters users by term
func FilterUsers(users []domain.User, term string) []domain.User {
	return Filter(users, term)
}

// FilterProjects filters projects by term
func FilterProjects(projects []domain.Project, term string) []domain.Project {
	return Filter(projects, term)
}

// FilterDatasets filters datasets by term
func FilterDatasets(datasets []domain.Dataset, term string) []domain.Dataset {
	return Filter(datasets, term)
}

// ShouldHighlight reports whether text contains the plain part of term
func ShouldHighlight(text, term string) bool {
	q := ParseQuery(term)
	if q.Value == "" {
		return false
	}
	return strings.Contains(strings.ToLower(text), q.Value)
}

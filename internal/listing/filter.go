// Package listing filters and paginates the job catalog for browsing.
package listing

import (
	"strings"

	"github.com/jobboard/jobboard-api/internal/models"
)

// SearchFilter holds the free-text terms typed into the search bar.
type SearchFilter struct {
	Title    string `json:"title"`
	Location string `json:"location"`
}

// IsZero reports whether both terms are empty.
func (f SearchFilter) IsZero() bool {
	return f.Title == "" && f.Location == ""
}

// FilterSelection is the set of checked category and location boxes.
// The zero value selects nothing, which matches every job.
type FilterSelection struct {
	categories map[string]struct{}
	locations  map[string]struct{}
}

// NewFilterSelection builds a selection from the given checked values.
// Duplicates collapse.
func NewFilterSelection(categories, locations []string) FilterSelection {
	var s FilterSelection
	for _, c := range categories {
		s.categories = add(s.categories, c)
	}
	for _, l := range locations {
		s.locations = add(s.locations, l)
	}
	return s
}

// ToggleCategory adds category if absent and removes it if present.
func (s *FilterSelection) ToggleCategory(category string) {
	s.categories = toggle(s.categories, category)
}

// ToggleLocation adds location if absent and removes it if present.
func (s *FilterSelection) ToggleLocation(location string) {
	s.locations = toggle(s.locations, location)
}

func (s FilterSelection) HasCategory(category string) bool {
	_, ok := s.categories[category]
	return ok
}

func (s FilterSelection) HasLocation(location string) bool {
	_, ok := s.locations[location]
	return ok
}

// Categories returns the selected categories in no particular order.
func (s FilterSelection) Categories() []string { return keys(s.categories) }

// Locations returns the selected locations in no particular order.
func (s FilterSelection) Locations() []string { return keys(s.locations) }

// IsZero reports whether no box is checked.
func (s FilterSelection) IsZero() bool {
	return len(s.categories) == 0 && len(s.locations) == 0
}

// Equal reports whether both selections check the same boxes.
func (s FilterSelection) Equal(o FilterSelection) bool {
	return sameSet(s.categories, o.categories) && sameSet(s.locations, o.locations)
}

// Clone returns a selection that shares no state with s.
func (s FilterSelection) Clone() FilterSelection {
	return NewFilterSelection(s.Categories(), s.Locations())
}

// Matches reports whether job passes every active filter: checked
// category, checked location, title term and location term. Empty filters
// match everything. Checkbox matches are exact; search terms are
// case-insensitive substrings.
func Matches(job *models.Job, sel FilterSelection, search SearchFilter) bool {
	return matchesCategory(job, sel) &&
		matchesLocation(job, sel) &&
		containsFold(job.Title, search.Title) &&
		containsFold(job.Location, search.Location)
}

func matchesCategory(job *models.Job, sel FilterSelection) bool {
	return len(sel.categories) == 0 || sel.HasCategory(job.Category)
}

func matchesLocation(job *models.Job, sel FilterSelection) bool {
	return len(sel.locations) == 0 || sel.HasLocation(job.Location)
}

func containsFold(s, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(term))
}

func add(set map[string]struct{}, v string) map[string]struct{} {
	if set == nil {
		set = make(map[string]struct{})
	}
	set[v] = struct{}{}
	return set
}

func toggle(set map[string]struct{}, v string) map[string]struct{} {
	if _, ok := set[v]; ok {
		delete(set, v)
		return set
	}
	return add(set, v)
}

func keys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	return out
}

func sameSet(a, b map[string]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for k := range a {
		if _, ok := b[k]; !ok {
			return false
		}
	}
	return true
}

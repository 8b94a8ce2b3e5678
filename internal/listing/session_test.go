package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jobboard/jobboard-api/internal/models"
)

func sessionOnPage(t *testing.T, n, page int) *Session {
	t.Helper()
	s := NewSession(numberedJobs(n))
	s.GoTo(page)
	assert.Equal(t, page, s.CurrentPage())
	return s
}

func TestSessionResetsPageOnFilterChange(t *testing.T) {
	changes := map[string]func(s *Session){
		"search":          func(s *Session) { s.Search("job", "") },
		"toggle category": func(s *Session) { s.ToggleCategory("Programming") },
		"toggle location": func(s *Session) { s.ToggleLocation("Remote") },
		"set jobs":        func(s *Session) { s.SetJobs(numberedJobs(30)) },
		"clear all":       func(s *Session) { s.ClearAll() },
	}

	for name, change := range changes {
		t.Run(name, func(t *testing.T) {
			s := sessionOnPage(t, 20, 3)
			change(s)
			assert.Equal(t, 1, s.CurrentPage())
			assert.Equal(t, 1, s.View().Page)
		})
	}
}

func TestSessionClearSearchTerms(t *testing.T) {
	s := NewSession(numberedJobs(20))
	s.Search("job", "remote")
	s.GoTo(2)

	s.ClearSearchTitle()
	assert.Equal(t, SearchFilter{Location: "remote"}, s.SearchFilter())
	assert.Equal(t, 1, s.CurrentPage())
	assert.True(t, s.Searched())

	s.GoTo(2)
	s.ClearSearchLocation()
	assert.True(t, s.SearchFilter().IsZero())
	assert.Equal(t, 1, s.CurrentPage())
	assert.False(t, s.Searched())
}

func TestSessionUnchangedSearchKeepsPage(t *testing.T) {
	s := NewSession(numberedJobs(20))
	s.Search("job", "")
	s.GoTo(2)
	s.Search("job", "")
	assert.Equal(t, 2, s.CurrentPage())
}

func TestSessionNavigationBoundaries(t *testing.T) {
	s := NewSession(numberedJobs(13))

	s.Prev()
	assert.Equal(t, 1, s.CurrentPage())

	s.Next()
	s.Next()
	assert.Equal(t, 3, s.CurrentPage())
	s.Next()
	assert.Equal(t, 3, s.CurrentPage())

	s.GoTo(42)
	assert.Equal(t, 3, s.CurrentPage())
	s.GoTo(-1)
	assert.Equal(t, 1, s.CurrentPage())
}

func TestSessionPageNeverExceedsNarrowedResults(t *testing.T) {
	jobs := numberedJobs(18)
	jobs = append(jobs, models.Job{Title: "data role", Location: "Mumbai", Category: "Data Science"})
	s := NewSession(jobs)
	s.GoTo(3)

	s.ToggleCategory("Data Science")
	view := s.View()
	assert.Equal(t, 1, view.Page)
	assert.Equal(t, 1, view.TotalPages)
	assert.Equal(t, []string{"data role"}, titles(view.Jobs))
}

func TestSessionReset(t *testing.T) {
	s := NewSession(numberedJobs(10))
	s.Search("job-1", "")
	s.ToggleLocation("Remote")
	s.Reset()

	assert.False(t, s.Searched())
	assert.True(t, s.Selection().IsZero())
	assert.Equal(t, 10, s.View().Total)
}

func TestSessionSelectionIsCopy(t *testing.T) {
	s := NewSession(numberedJobs(3))
	s.ToggleCategory("Programming")
	sel := s.Selection()
	sel.ToggleCategory("Programming")
	assert.True(t, s.Selection().HasCategory("Programming"))
}

package listing

import "github.com/jobboard/jobboard-api/internal/models"

// Session is the browsing state of one visitor: the loaded catalog, the
// search terms, the checked boxes and the current page. Any change to the
// catalog, the terms or the boxes moves the session back to page 1.
//
// A Session is not safe for concurrent use.
type Session struct {
	jobs      []models.Job
	search    SearchFilter
	selection FilterSelection
	page      int
	searched  bool
}

// NewSession starts a session over jobs, given in insertion order.
func NewSession(jobs []models.Job) *Session {
	return &Session{jobs: jobs, page: 1}
}

// SetJobs replaces the catalog.
func (s *Session) SetJobs(jobs []models.Job) {
	s.jobs = jobs
	s.page = 1
}

// Search applies the terms entered in the search bar.
func (s *Session) Search(title, location string) {
	s.searched = true
	s.setSearch(SearchFilter{Title: title, Location: location})
}

func (s *Session) ClearSearchTitle() {
	s.setSearch(SearchFilter{Location: s.search.Location})
}

func (s *Session) ClearSearchLocation() {
	s.setSearch(SearchFilter{Title: s.search.Title})
}

func (s *Session) ToggleCategory(category string) {
	s.selection.ToggleCategory(category)
	s.page = 1
}

func (s *Session) ToggleLocation(location string) {
	s.selection.ToggleLocation(location)
	s.page = 1
}

// ClearAll unchecks every box and empties both search terms.
func (s *Session) ClearAll() {
	s.selection = FilterSelection{}
	s.search = SearchFilter{}
	s.page = 1
}

// Reset drops all browsing state except the catalog, as when the visitor
// navigates away.
func (s *Session) Reset() {
	s.ClearAll()
	s.searched = false
}

// GoTo moves to page n, clamped to the available pages.
func (s *Session) GoTo(n int) {
	s.page = ClampPage(n, s.totalPages())
}

// Next advances one page. It does nothing on the last page.
func (s *Session) Next() {
	if s.page < s.totalPages() {
		s.page++
	}
}

// Prev goes back one page. It does nothing on the first page.
func (s *Session) Prev() {
	if s.page > 1 {
		s.page--
	}
}

// View projects the current page.
func (s *Session) View() Page {
	return Project(s.jobs, s.selection, s.search, s.page)
}

func (s *Session) CurrentPage() int { return s.page }

func (s *Session) SearchFilter() SearchFilter { return s.search }

func (s *Session) Selection() FilterSelection { return s.selection.Clone() }

// Searched reports whether a search was submitted and at least one of its
// terms is still active.
func (s *Session) Searched() bool {
	return s.searched && !s.search.IsZero()
}

func (s *Session) setSearch(f SearchFilter) {
	if f == s.search {
		return
	}
	s.search = f
	s.page = 1
}

func (s *Session) totalPages() int {
	return TotalPages(len(Filter(s.jobs, s.selection, s.search)))
}

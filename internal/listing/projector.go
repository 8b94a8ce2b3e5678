package listing

import "github.com/jobboard/jobboard-api/internal/models"

// PageSize is the fixed number of jobs per page.
const PageSize = 6

// Page is one projected page of the filtered catalog.
type Page struct {
	Jobs          []models.Job `json:"jobs"`
	Page          int          `json:"page"`
	RequestedPage int          `json:"requested_page"`
	TotalPages    int          `json:"total_pages"`
	Total         int          `json:"total"`
	HasPrev       bool         `json:"has_prev"`
	HasNext       bool         `json:"has_next"`
	// NoResults is set when nothing matches the filters.
	NoResults bool `json:"no_results"`
	// Clamped is set when RequestedPage was outside [1, TotalPages].
	Clamped bool `json:"clamped"`
}

// Filter returns the jobs that match, most recently added first. jobs must
// be in insertion order; it is not modified.
func Filter(jobs []models.Job, sel FilterSelection, search SearchFilter) []models.Job {
	out := make([]models.Job, 0, len(jobs))
	for i := len(jobs) - 1; i >= 0; i-- {
		if Matches(&jobs[i], sel, search) {
			out = append(out, jobs[i])
		}
	}
	return out
}

// TotalPages returns ceil(n/PageSize), never less than 1.
func TotalPages(n int) int {
	if n <= 0 {
		return 1
	}
	return (n + PageSize - 1) / PageSize
}

// ClampPage bounds page to [1, totalPages].
func ClampPage(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// Project filters jobs and returns the requested page of the result.
func Project(jobs []models.Job, sel FilterSelection, search SearchFilter, page int) Page {
	return paginate(Filter(jobs, sel, search), page)
}

func paginate(filtered []models.Job, requested int) Page {
	total := len(filtered)
	totalPages := TotalPages(total)
	page := ClampPage(requested, totalPages)

	start := (page - 1) * PageSize
	end := start + PageSize
	if end > total {
		end = total
	}

	return Page{
		Jobs:          filtered[start:end],
		Page:          page,
		RequestedPage: requested,
		TotalPages:    totalPages,
		Total:         total,
		HasPrev:       page > 1,
		HasNext:       page < totalPages,
		NoResults:     total == 0,
		Clamped:       page != requested,
	}
}

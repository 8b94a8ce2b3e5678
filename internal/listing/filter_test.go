package listing

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jobboard/jobboard-api/internal/models"
)

func job(title, location, category string) models.Job {
	return models.Job{Title: title, Location: location, Category: category}
}

func TestMatches(t *testing.T) {
	j := job("Backend Engineer", "Remote", "Engineering")

	cases := []struct {
		name   string
		sel    FilterSelection
		search SearchFilter
		want   bool
	}{
		{"no filters", FilterSelection{}, SearchFilter{}, true},
		{"category hit", NewFilterSelection([]string{"Engineering", "Sales"}, nil), SearchFilter{}, true},
		{"category miss", NewFilterSelection([]string{"Sales"}, nil), SearchFilter{}, false},
		{"category is exact", NewFilterSelection([]string{"engineering"}, nil), SearchFilter{}, false},
		{"location hit", NewFilterSelection(nil, []string{"Remote"}), SearchFilter{}, true},
		{"location miss", NewFilterSelection(nil, []string{"NYC"}), SearchFilter{}, false},
		{"title substring any case", FilterSelection{}, SearchFilter{Title: "END eng"}, true},
		{"title miss", FilterSelection{}, SearchFilter{Title: "frontend"}, false},
		{"search location substring", FilterSelection{}, SearchFilter{Location: "mot"}, true},
		{"search location miss", FilterSelection{}, SearchFilter{Location: "york"}, false},
		{"all active", NewFilterSelection([]string{"Engineering"}, []string{"Remote"}), SearchFilter{Title: "backend", Location: "remote"}, true},
		{"one miss fails conjunction", NewFilterSelection([]string{"Engineering"}, []string{"Remote"}), SearchFilter{Title: "sales"}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Matches(&j, tc.sel, tc.search))
		})
	}
}

func TestMatchesIsPure(t *testing.T) {
	j := job("Sales Lead", "NYC", "Sales")
	sel := NewFilterSelection([]string{"Sales"}, []string{"NYC"})
	search := SearchFilter{Title: "lead"}

	first := Matches(&j, sel, search)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Matches(&j, sel, search))
	}
	assert.Equal(t, "Sales Lead", j.Title)
}

func TestToggleIsIdempotentPerEntry(t *testing.T) {
	sel := NewFilterSelection([]string{"Programming"}, []string{"Mumbai"})
	before := sel.Clone()

	sel.ToggleCategory("Marketing")
	assert.True(t, sel.HasCategory("Marketing"))
	sel.ToggleCategory("Marketing")
	assert.True(t, sel.Equal(before))

	sel.ToggleLocation("Mumbai")
	assert.False(t, sel.HasLocation("Mumbai"))
	sel.ToggleLocation("Mumbai")
	assert.True(t, sel.Equal(before))
}

func TestZeroSelectionToggle(t *testing.T) {
	var sel FilterSelection
	assert.True(t, sel.IsZero())
	sel.ToggleCategory("Programming")
	assert.ElementsMatch(t, []string{"Programming"}, sel.Categories())
	sel.ToggleCategory("Programming")
	assert.True(t, sel.IsZero())
}

func TestNewFilterSelectionCollapsesDuplicates(t *testing.T) {
	sel := NewFilterSelection([]string{"A", "A", "B"}, []string{"X", "X"})
	assert.ElementsMatch(t, []string{"A", "B"}, sel.Categories())
	assert.ElementsMatch(t, []string{"X"}, sel.Locations())
}

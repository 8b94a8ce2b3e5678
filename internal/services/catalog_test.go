package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobboard/jobboard-api/internal/listing"
	"github.com/jobboard/jobboard-api/internal/models"
	"github.com/jobboard/jobboard-api/internal/services"
	"github.com/jobboard/jobboard-api/internal/services/servicetest"
)

func TestBrowseProjectsCatalog(t *testing.T) {
	catalog := servicetest.NewCatalog()
	for i := 0; i < 8; i++ {
		category := "Programming"
		if i%2 == 1 {
			category = "Marketing"
		}
		catalog.AddJob(models.Job{Title: fmt.Sprintf("job-%d", i), Location: "Mumbai", Category: category})
	}
	svc := services.NewCatalogService(catalog)

	page, err := svc.Browse(context.Background(), services.JobQuery{
		Selection: listing.NewFilterSelection([]string{"Programming"}, nil),
		Page:      1,
	})
	require.NoError(t, err)

	assert.Equal(t, 4, page.Total)
	assert.Equal(t, "job-6", page.Jobs[0].Title)
	assert.Equal(t, "job-0", page.Jobs[3].Title)
}

func TestBrowseStorageFailure(t *testing.T) {
	catalog := servicetest.NewCatalog()
	catalog.Err = errors.New("down")

	_, err := services.NewCatalogService(catalog).Browse(context.Background(), services.JobQuery{Page: 1})
	assert.ErrorIs(t, err, services.ErrStorage)
}

func TestGetJob(t *testing.T) {
	catalog := servicetest.NewCatalog()
	j := catalog.AddJob(models.Job{Title: "Analyst"})
	svc := services.NewCatalogService(catalog)

	got, err := svc.GetJob(context.Background(), j.ID)
	require.NoError(t, err)
	assert.Equal(t, "Analyst", got.Title)

	_, err = svc.GetJob(context.Background(), uuid.New())
	assert.ErrorIs(t, err, services.ErrJobNotFound)
}

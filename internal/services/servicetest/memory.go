// Package servicetest provides in-memory stores for exercising services
// and handlers without a database.
package servicetest

import (
	"bytes"
	"context"
	"io"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/jobboard/jobboard-api/internal/models"
	"github.com/jobboard/jobboard-api/internal/repository"
)

// Users is an in-memory user directory with the same unique indexes as
// the users table.
type Users struct {
	mu      sync.Mutex
	byID    map[uuid.UUID]models.User
	Creates int
	Err     error
}

func NewUsers() *Users {
	return &Users{byID: make(map[uuid.UUID]models.User)}
}

func (s *Users) FindByExternalID(ctx context.Context, externalID string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	for _, u := range s.byID {
		if u.ExternalID == externalID {
			u := u
			return &u, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *Users) Create(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	for _, u := range s.byID {
		if u.ExternalID == user.ExternalID {
			return &repository.DuplicateError{Constraint: repository.UserExternalIDIndex}
		}
		if u.Email == user.Email {
			return &repository.DuplicateError{Constraint: repository.UserEmailIndex}
		}
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	s.byID[user.ID] = *user
	s.Creates++
	return nil
}

func (s *Users) UpdateResume(ctx context.Context, id uuid.UUID, resume string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return s.Err
	}
	u, ok := s.byID[id]
	if !ok {
		return repository.ErrNotFound
	}
	u.Resume = resume
	s.byID[id] = u
	return nil
}

// Count returns the number of stored users.
func (s *Users) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.byID)
}

// Applications is an in-memory application store unique on (user, job).
type Applications struct {
	mu   sync.Mutex
	apps []models.Application
	// SkipExists makes Exists always report false, so only the unique
	// constraint in Create can reject a duplicate.
	SkipExists bool
}

func NewApplications() *Applications {
	return &Applications{}
}

func (s *Applications) Exists(ctx context.Context, userID, jobID uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.SkipExists {
		return false, nil
	}
	return s.has(userID, jobID), nil
}

func (s *Applications) Create(ctx context.Context, app *models.Application) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.has(app.UserID, app.JobID) {
		return &repository.DuplicateError{Constraint: repository.ApplicationUserJobIndex}
	}
	s.apps = append(s.apps, *app)
	return nil
}

func (s *Applications) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Application
	for _, a := range s.apps {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	return out, nil
}

// Len returns the number of stored applications.
func (s *Applications) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.apps)
}

func (s *Applications) has(userID, jobID uuid.UUID) bool {
	for _, a := range s.apps {
		if a.UserID == userID && a.JobID == jobID {
			return true
		}
	}
	return false
}

// Catalog is an in-memory job and company catalog. Jobs are kept in
// insertion order.
type Catalog struct {
	mu        sync.RWMutex
	jobs      []models.Job
	companies map[uuid.UUID]models.Company
	Err       error
}

func NewCatalog() *Catalog {
	return &Catalog{companies: make(map[uuid.UUID]models.Company)}
}

func (c *Catalog) AddCompany(company models.Company) models.Company {
	c.mu.Lock()
	defer c.mu.Unlock()
	if company.ID == uuid.Nil {
		company.ID = uuid.New()
	}
	c.companies[company.ID] = company
	return company
}

func (c *Catalog) AddJob(job models.Job) models.Job {
	c.mu.Lock()
	defer c.mu.Unlock()
	if job.ID == uuid.Nil {
		job.ID = uuid.New()
	}
	c.jobs = append(c.jobs, job)
	return job
}

// MoveJob reassigns a job to another company.
func (c *Catalog) MoveJob(jobID, companyID uuid.UUID) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.jobs {
		if c.jobs[i].ID == jobID {
			c.jobs[i].CompanyID = companyID
		}
	}
}

func (c *Catalog) ListJobs(ctx context.Context) ([]models.Job, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.Err != nil {
		return nil, c.Err
	}
	out := make([]models.Job, len(c.jobs))
	copy(out, c.jobs)
	return out, nil
}

func (c *Catalog) FindJob(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.Err != nil {
		return nil, c.Err
	}
	for _, j := range c.jobs {
		if j.ID == id {
			j := j
			return &j, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (c *Catalog) JobsByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]models.Job, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.Err != nil {
		return nil, c.Err
	}
	out := make(map[uuid.UUID]models.Job, len(ids))
	for _, id := range ids {
		for _, j := range c.jobs {
			if j.ID == id {
				out[id] = j
			}
		}
	}
	return out, nil
}

func (c *Catalog) CompaniesByIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]models.Company, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.Err != nil {
		return nil, c.Err
	}
	out := make(map[uuid.UUID]models.Company, len(ids))
	for _, id := range ids {
		if co, ok := c.companies[id]; ok {
			out[id] = co
		}
	}
	return out, nil
}

// Files is an in-memory storage backend.
type Files struct {
	mu      sync.Mutex
	objects map[string][]byte
	BaseURL string
	Err     error
}

func NewFiles() *Files {
	return &Files{objects: make(map[string][]byte), BaseURL: "https://files.test"}
}

func (f *Files) Save(ctx context.Context, key string, reader io.Reader, contentType string) (string, error) {
	if f.Err != nil {
		return "", f.Err
	}
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, reader); err != nil {
		return "", err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.objects[key] = buf.Bytes()
	return f.BaseURL + "/" + key, nil
}

func (f *Files) Delete(ctx context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.objects, key)
	return nil
}

// Len returns the number of stored objects.
func (f *Files) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.objects)
}

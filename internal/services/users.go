package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"

	"github.com/google/uuid"

	"github.com/jobboard/jobboard-api/internal/identity"
	"github.com/jobboard/jobboard-api/internal/models"
	"github.com/jobboard/jobboard-api/internal/repository"
)

const (
	DefaultUserName  = "Anonymous User"
	DefaultUserImage = "https://www.gravatar.com/avatar/00000000000000000000000000000000?d=mp&f=y"
)

// PlaceholderEmail is the address synthesized for identities without one.
func PlaceholderEmail(externalID string) string {
	return externalID + "@placeholder.com"
}

// Upload is a file supplied with a request.
type Upload struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

// EnsureUser returns the user linked to externalID, creating it from
// claims the first time the identity is seen.
func (r *Registry) EnsureUser(ctx context.Context, externalID string, claims identity.Claims) (*models.User, error) {
	if strings.TrimSpace(externalID) == "" {
		return nil, fmt.Errorf("%w: external identity is required", ErrValidation)
	}

	user, err := r.users.FindByExternalID(ctx, externalID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("%w: find user: %w", ErrStorage, err)
	}

	user = newUserFromClaims(externalID, claims)
	err = r.users.Create(ctx, user)
	if repository.IsDuplicateOn(err, repository.UserEmailIndex) && user.Email != PlaceholderEmail(externalID) {
		slog.Warn("claimed email already linked to another user, using placeholder",
			"user_id", externalID, "action", "ensure_user")
		user.Email = PlaceholderEmail(externalID)
		err = r.users.Create(ctx, user)
	}
	if err == nil {
		slog.Info("user created", "user_id", externalID, "action", "ensure_user")
		return user, nil
	}

	// A concurrent request created the same identity first.
	if repository.IsDuplicateOn(err, repository.UserExternalIDIndex) || errors.Is(err, repository.ErrDuplicate) {
		if existing, findErr := r.users.FindByExternalID(ctx, externalID); findErr == nil {
			return existing, nil
		}
	}
	return nil, fmt.Errorf("%w: create user: %w", ErrStorage, err)
}

// AttachResume stores upload and points the user's resume at it. A nil
// upload succeeds without storing or changing anything; the returned bool
// reports whether a file was stored.
func (r *Registry) AttachResume(ctx context.Context, externalID string, upload *Upload) (*models.User, bool, error) {
	user, err := r.resolveUser(ctx, externalID)
	if err != nil {
		return nil, false, err
	}
	if upload == nil || upload.Body == nil {
		return user, false, nil
	}

	key := path.Join("resumes", user.ID.String(), uuid.NewString()+strings.ToLower(path.Ext(upload.Filename)))
	contentType := upload.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	url, err := r.files.Save(ctx, key, upload.Body, contentType)
	if err != nil {
		return nil, false, fmt.Errorf("%w: upload resume: %w", ErrStorage, err)
	}

	if err := r.users.UpdateResume(ctx, user.ID, url); err != nil {
		if delErr := r.files.Delete(ctx, key); delErr != nil {
			slog.Error("failed to remove orphaned resume", "user_id", externalID, "error", delErr)
		}
		if errors.Is(err, repository.ErrNotFound) {
			return nil, false, ErrUserNotFound
		}
		return nil, false, fmt.Errorf("%w: save resume: %w", ErrStorage, err)
	}

	user.Resume = url
	return user, true, nil
}

func (r *Registry) resolveUser(ctx context.Context, externalID string) (*models.User, error) {
	if strings.TrimSpace(externalID) == "" {
		return nil, ErrUserNotFound
	}
	user, err := r.users.FindByExternalID(ctx, externalID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("%w: find user: %w", ErrStorage, err)
	}
	return user, nil
}

func newUserFromClaims(externalID string, claims identity.Claims) *models.User {
	user := &models.User{
		ID:         uuid.New(),
		ExternalID: externalID,
		Name:       claims.FullName(),
		Email:      claims.PrimaryEmail(),
		Image:      claims.ImageURL,
	}
	if user.Name == "" {
		user.Name = DefaultUserName
	}
	if user.Email == "" {
		user.Email = PlaceholderEmail(externalID)
	}
	if user.Image == "" {
		user.Image = DefaultUserImage
	}
	return user
}

package ports

import (
	"context"

	"github.com/pro-tasker/tasker-api/internal/core/domain"
)

// CreateProjectInput carries the data for a new project.
type CreateProjectInput struct {
	Title       string
	Description string
}

// UpdateProjectInput carries a partial project edit. Nil fields are left
// unchanged.
type UpdateProjectInput struct {
	Title       *string
	Description *string
}

// ProjectService defines use-case operations for projects. Every operation
// except Create and List is owner-only; the service enforces the check and
// returns domain.ErrForbidden when it fails.
type ProjectService interface {
	Create(ctx context.Context, ownerID string, input CreateProjectInput) (*domain.Project, error)
	// List returns the projects owned by userID, newest first.
	List(ctx context.Context, userID string) ([]*domain.Project, error)
	Get(ctx context.Context, userID, projectID string) (*domain.Project, error)
	Update(ctx context.Context, userID, projectID string, input UpdateProjectInput) (*domain.Project, error)
	// Delete removes the project and cascades to its tasks.
	Delete(ctx context.Context, userID, projectID string) error
	// Invite adds the user identified by email to the project's
	// collaborators and returns the invited user.
	Invite(ctx context.Context, userID, projectID, email string) (*domain.User, error)
}

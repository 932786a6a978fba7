package ports

import (
	"context"

	"github.com/pro-tasker/tasker-api/internal/core/domain"
)

// ProjectUpdate carries the partial fields of a project update. Nil means
// "leave unchanged".
type ProjectUpdate struct {
	Title       *string
	Description *string
}

// ProjectRepository defines persistence operations for projects.
type ProjectRepository interface {
	Create(ctx context.Context, p *domain.Project) (*domain.Project, error)
	FindByID(ctx context.Context, id string) (*domain.Project, error)
	// ListByOwner returns the projects owned by ownerID, newest first.
	ListByOwner(ctx context.Context, ownerID string) ([]*domain.Project, error)
	Update(ctx context.Context, id string, fields ProjectUpdate) (*domain.Project, error)
	Delete(ctx context.Context, id string) error
	// AddCollaborator appends userID to the project's collaborator set.
	// The write is a single set-insert so concurrent invites cannot produce
	// duplicates.
	AddCollaborator(ctx context.Context, projectID, userID string) error
}

package ports

import (
	"context"

	"github.com/pro-tasker/tasker-api/internal/core/domain"
)

// CreateTaskInput carries the data for a new task.
type CreateTaskInput struct {
	Title       string
	Description string
}

// UpdateTaskInput carries a partial task edit. Nil fields are left unchanged.
// Status is the raw wire value; the service validates it against the enum.
type UpdateTaskInput struct {
	Title       *string
	Description *string
	Status      *string
}

// TaskService defines use-case operations for tasks. Create, read, and
// update are permitted to any member of the parent project (owner or
// collaborator); Delete is owner-only.
type TaskService interface {
	Create(ctx context.Context, userID, projectID string, input CreateTaskInput) (*domain.Task, error)
	ListByProject(ctx context.Context, userID, projectID string) ([]*domain.Task, error)
	Get(ctx context.Context, userID, taskID string) (*domain.Task, error)
	Update(ctx context.Context, userID, taskID string, input UpdateTaskInput) (*domain.Task, error)
	Delete(ctx context.Context, userID, taskID string) error
}

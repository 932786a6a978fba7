package ports

import (
	"context"

	"github.com/pro-tasker/tasker-api/internal/core/domain"
)

// TaskUpdate carries the partial fields of a task update. Nil means "leave
// unchanged". Status must already be validated by the caller.
type TaskUpdate struct {
	Title       *string
	Description *string
	Status      *domain.TaskStatus
}

// TaskRepository defines persistence operations for tasks.
type TaskRepository interface {
	Create(ctx context.Context, t *domain.Task) (*domain.Task, error)
	FindByID(ctx context.Context, id string) (*domain.Task, error)
	ListByProject(ctx context.Context, projectID string) ([]*domain.Task, error)
	Update(ctx context.Context, id string, fields TaskUpdate) (*domain.Task, error)
	Delete(ctx context.Context, id string) error
	// DeleteByProject removes every task under projectID. Used by the
	// project-delete cascade.
	DeleteByProject(ctx context.Context, projectID string) (int64, error)
}

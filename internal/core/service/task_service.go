package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pro-tasker/tasker-api/internal/core/domain"
	"github.com/pro-tasker/tasker-api/internal/core/ports"
)

// TaskService implements task CRUD under a project. Authorization always
// resolves through the task's parent project: create/read/update require
// membership, delete requires ownership.
type TaskService struct {
	tasks    ports.TaskRepository
	projects ports.ProjectRepository
	logger   zerolog.Logger
}

func NewTaskService(tasks ports.TaskRepository, projects ports.ProjectRepository, logger zerolog.Logger) *TaskService {
	return &TaskService{tasks: tasks, projects: projects, logger: logger}
}

func (s *TaskService) Create(ctx context.Context, userID, projectID string, input ports.CreateTaskInput) (*domain.Task, error) {
	if _, err := s.memberProject(ctx, userID, projectID); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domain.ErrTitleRequired
	}

	task := &domain.Task{
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		Status:      domain.StatusToDo,
		ProjectID:   projectID,
	}

	created, err := s.tasks.Create(ctx, task)
	if err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}

	s.logger.Info().Str("task_id", created.ID).Str("project_id", projectID).Msg("task created")
	return created, nil
}

func (s *TaskService) ListByProject(ctx context.Context, userID, projectID string) ([]*domain.Task, error) {
	if _, err := s.memberProject(ctx, userID, projectID); err != nil {
		return nil, err
	}
	return s.tasks.ListByProject(ctx, projectID)
}

func (s *TaskService) Get(ctx context.Context, userID, taskID string) (*domain.Task, error) {
	task, _, err := s.authorizedTask(ctx, userID, taskID, false)
	return task, err
}

// Update applies a partial edit. A status value outside the enum fails with
// ErrInvalidStatus before anything is written.
func (s *TaskService) Update(ctx context.Context, userID, taskID string, input ports.UpdateTaskInput) (*domain.Task, error) {
	if _, _, err := s.authorizedTask(ctx, userID, taskID, false); err != nil {
		return nil, err
	}

	fields := ports.TaskUpdate{}
	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title == "" {
			return nil, domain.ErrTitleRequired
		}
		fields.Title = &title
	}
	if input.Description != nil {
		desc := strings.TrimSpace(*input.Description)
		fields.Description = &desc
	}
	if input.Status != nil {
		status := domain.TaskStatus(*input.Status)
		if !status.Valid() {
			return nil, domain.ErrInvalidStatus
		}
		fields.Status = &status
	}

	updated, err := s.tasks.Update(ctx, taskID, fields)
	if err != nil {
		return nil, fmt.Errorf("update task: %w", err)
	}

	if fields.Status != nil {
		s.logger.Info().
			Str("task_id", taskID).
			Str("status", string(*fields.Status)).
			Msg("task status changed")
	}
	return updated, nil
}

// Delete is restricted to the owner of the task's parent project.
func (s *TaskService) Delete(ctx context.Context, userID, taskID string) error {
	if _, _, err := s.authorizedTask(ctx, userID, taskID, true); err != nil {
		return err
	}

	if err := s.tasks.Delete(ctx, taskID); err != nil {
		return fmt.Errorf("delete task: %w", err)
	}

	s.logger.Info().Str("task_id", taskID).Msg("task deleted")
	return nil
}

// memberProject loads the project and enforces the membership rule.
func (s *TaskService) memberProject(ctx context.Context, userID, projectID string) (*domain.Project, error) {
	project, err := s.projects.FindByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if !project.IsMember(userID) {
		return nil, domain.ErrForbidden
	}
	return project, nil
}

// authorizedTask loads the task and its parent project, then applies the
// owner or member predicate. A task whose parent project no longer exists
// is an orphan and surfaces as ErrProjectNotFound.
func (s *TaskService) authorizedTask(ctx context.Context, userID, taskID string, ownerOnly bool) (*domain.Task, *domain.Project, error) {
	task, err := s.tasks.FindByID(ctx, taskID)
	if err != nil {
		return nil, nil, err
	}

	project, err := s.projects.FindByID(ctx, task.ProjectID)
	if err != nil {
		return nil, nil, err
	}

	if ownerOnly {
		if !project.IsOwner(userID) {
			return nil, nil, domain.ErrForbidden
		}
	} else if !project.IsMember(userID) {
		return nil, nil, domain.ErrForbidden
	}

	return task, project, nil
}

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pro-tasker/tasker-api/internal/core/domain"
	"github.com/pro-tasker/tasker-api/internal/core/ports"
)

// ProjectService implements project CRUD, the owner-only access rule, and
// the collaborator invitation rule.
type ProjectService struct {
	projects ports.ProjectRepository
	tasks    ports.TaskRepository
	users    ports.UserRepository
	logger   zerolog.Logger
}

func NewProjectService(
	projects ports.ProjectRepository,
	tasks ports.TaskRepository,
	users ports.UserRepository,
	logger zerolog.Logger,
) *ProjectService {
	return &ProjectService{projects: projects, tasks: tasks, users: users, logger: logger}
}

func (s *ProjectService) Create(ctx context.Context, ownerID string, input ports.CreateProjectInput) (*domain.Project, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domain.ErrTitleRequired
	}

	project := &domain.Project{
		Title:       title,
		Description: strings.TrimSpace(input.Description),
		OwnerID:     ownerID,
	}

	created, err := s.projects.Create(ctx, project)
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}

	s.logger.Info().Str("project_id", created.ID).Str("owner_id", ownerID).Msg("project created")
	return created, nil
}

func (s *ProjectService) List(ctx context.Context, userID string) ([]*domain.Project, error) {
	return s.projects.ListByOwner(ctx, userID)
}

// Get returns the project. Existence is checked before permission, so a
// missing project is NotFound and a foreign one is Forbidden.
func (s *ProjectService) Get(ctx context.Context, userID, projectID string) (*domain.Project, error) {
	return s.ownedProject(ctx, userID, projectID)
}

func (s *ProjectService) Update(ctx context.Context, userID, projectID string, input ports.UpdateProjectInput) (*domain.Project, error) {
	if _, err := s.ownedProject(ctx, userID, projectID); err != nil {
		return nil, err
	}

	fields := ports.ProjectUpdate{}
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

	updated, err := s.projects.Update(ctx, projectID, fields)
	if err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}
	return updated, nil
}

// Delete removes the project and every task under it.
func (s *ProjectService) Delete(ctx context.Context, userID, projectID string) error {
	if _, err := s.ownedProject(ctx, userID, projectID); err != nil {
		return err
	}

	removed, err := s.tasks.DeleteByProject(ctx, projectID)
	if err != nil {
		return fmt.Errorf("delete project tasks: %w", err)
	}
	if err := s.projects.Delete(ctx, projectID); err != nil {
		return fmt.Errorf("delete project: %w", err)
	}

	s.logger.Info().
		Str("project_id", projectID).
		Int64("tasks_removed", removed).
		Msg("project deleted")
	return nil
}

// Invite resolves email to a user and adds them to the collaborator set.
// The candidate must exist, must not be the owner, and must not already be
// a collaborator. Nothing is persisted on any failure path.
func (s *ProjectService) Invite(ctx context.Context, userID, projectID, email string) (*domain.User, error) {
	project, err := s.ownedProject(ctx, userID, projectID)
	if err != nil {
		return nil, err
	}

	candidate, err := s.users.FindByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return nil, err
	}

	if candidate.ID == project.OwnerID {
		return nil, domain.ErrOwnerInvite
	}
	if project.HasCollaborator(candidate.ID) {
		return nil, domain.ErrAlreadyCollaborator
	}

	if err := s.projects.AddCollaborator(ctx, projectID, candidate.ID); err != nil {
		return nil, fmt.Errorf("add collaborator: %w", err)
	}

	s.logger.Info().
		Str("project_id", projectID).
		Str("collaborator_id", candidate.ID).
		Msg("collaborator invited")
	return candidate, nil
}

// ownedProject loads the project and enforces the owner-only rule.
func (s *ProjectService) ownedProject(ctx context.Context, userID, projectID string) (*domain.Project, error) {
	project, err := s.projects.FindByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if !project.IsOwner(userID) {
		return nil, domain.ErrForbidden
	}
	return project, nil
}

package handler

import (
	"github.com/pro-tasker/tasker-api/internal/core/domain"
)

// --- Domain → HTTP response ---

func toUserResponse(u *domain.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		IsAdmin:   u.IsAdmin,
		CreatedAt: u.CreatedAt.UTC(),
	}
}

func toProjectResponse(p *domain.Project) projectResponse {
	collaborators := p.Collaborators
	if collaborators == nil {
		collaborators = []string{}
	}
	return projectResponse{
		ID:            p.ID,
		Title:         p.Title,
		Description:   p.Description,
		OwnerID:       p.OwnerID,
		Collaborators: collaborators,
		CreatedAt:     p.CreatedAt.UTC(),
		UpdatedAt:     p.UpdatedAt.UTC(),
	}
}

func toTaskResponse(t *domain.Task) taskResponse {
	return taskResponse{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Status:      string(t.Status),
		ProjectID:   t.ProjectID,
		CreatedAt:   t.CreatedAt.UTC(),
		UpdatedAt:   t.UpdatedAt.UTC(),
	}
}

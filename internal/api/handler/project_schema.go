package handler

import "time"

type createProjectRequest struct {
	Title       string `json:"title"       validate:"required"`
	Description string `json:"description"`
}

// updateProjectRequest carries a partial edit; absent fields stay unchanged.
type updateProjectRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

type inviteRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type projectResponse struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	OwnerID       string    `json:"owner_id"`
	Collaborators []string  `json:"collaborators"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type listProjectsResponse struct {
	Data []projectResponse `json:"data"`
}

type inviteResponse struct {
	Message      string       `json:"message"`
	Collaborator userResponse `json:"collaborator"`
}

type deletedResponse struct {
	Message string `json:"message"`
}

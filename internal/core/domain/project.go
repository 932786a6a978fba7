package domain

import "time"

// Project is owned by exactly one user and may be shared with collaborators.
// The owner is never listed in Collaborators.
type Project struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	OwnerID       string    `json:"owner_id"`
	Collaborators []string  `json:"collaborators"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// IsOwner reports whether userID owns the project.
func (p *Project) IsOwner(userID string) bool {
	return userID != "" && p.OwnerID == userID
}

// IsMember reports whether userID is the owner or a collaborator.
func (p *Project) IsMember(userID string) bool {
	if p.IsOwner(userID) {
		return true
	}
	for _, c := range p.Collaborators {
		if c == userID {
			return true
		}
	}
	return false
}

// HasCollaborator reports whether userID is already in the collaborator set.
func (p *Project) HasCollaborator(userID string) bool {
	for _, c := range p.Collaborators {
		if c == userID {
			return true
		}
	}
	return false
}

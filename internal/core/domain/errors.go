package domain

import "errors"

// Authentication / credential errors.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Authorization: the caller is authenticated but not permitted on the resource.
var ErrForbidden = errors.New("access forbidden")

// Not-found errors, one per resource so callers can map them precisely.
var ErrUserNotFound = errors.New("user not found")
var ErrProjectNotFound = errors.New("project not found")
var ErrTaskNotFound = errors.New("task not found")

// Validation errors.
var ErrTitleRequired = errors.New("title is required")
var ErrInvalidStatus = errors.New("invalid task status")

// Invalid operations on otherwise valid resources.
var ErrEmailTaken = errors.New("email already registered")
var ErrOwnerInvite = errors.New("owner is already a member")
var ErrAlreadyCollaborator = errors.New("user is already a collaborator")

package user

import "time"

// CreateUserRequest represents the request payload for creating a new user.
type CreateUserRequest struct {
	Name  string `validate:"required"`
	Email string `validate:"required,email"`
}

// GetUserRequest represents the request payload for retrieving a user.
type GetUserRequest struct {
	ID string `validate:"required"`
}

// ListUsersRequest represents the request payload for listing users.
// Name and Email are optional exact-match filters; when both are set,
// both apply. Limit and Offset are applied after filtering.
type ListUsersRequest struct {
	Name   string
	Email  string `validate:"omitempty,email"`
	Limit  int
	Offset int
}

// UpdateUserRequest represents a partial update. Nil fields are left
// untouched in the stored record.
type UpdateUserRequest struct {
	ID    string  `validate:"required"`
	Name  *string `validate:"omitempty"`
	Email *string `validate:"omitempty,email"`
}

// DeleteUserRequest represents the request payload for deleting a user.
type DeleteUserRequest struct {
	ID string `validate:"required"`
}

// DeleteUserResponse carries the id of the removed user.
type DeleteUserResponse struct {
	ID string
}

// User represents a user DTO for API responses. Timestamps are
// server-assigned; there is no sensitive field to exclude.
type User struct {
	ID        string
	Name      string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}

package user

import "time"

// User represents a user entity in the system.
type User struct {
	ID        string    // ID is the unique identifier, generated at creation
	Name      string    // Name is the full name of the user
	Email     string    // Email is the unique email address of the user
	CreatedAt time.Time // CreatedAt is assigned by the server at creation
	UpdatedAt time.Time // UpdatedAt is refreshed on every mutation
}

// ListFilter restricts a user listing. Zero-value fields mean "no filter";
// Limit and Offset are applied after filtering.
type ListFilter struct {
	Name   string
	Email  string
	Limit  int
	Offset int
}

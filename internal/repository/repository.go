package repository

import "github.com/CameronXie/srp-explorer/internal/domain"

const (
	UserResource = "user"
	UsernameKey  = "username"
)

// UserRepository manages registered users keyed by username.
type UserRepository interface {
	// Get returns the user stored under username or a *NotFoundError.
	Get(username string) (*domain.User, error)

	// GetAll returns a snapshot of all stored users.
	GetAll() []*domain.User

	// Save inserts or overwrites the user under its username and returns it.
	Save(user *domain.User) *domain.User

	// Remove deletes the user stored under username and returns it, or a *NotFoundError.
	Remove(username string) (*domain.User, error)
}

// NewUserNotFoundError builds the NotFoundError returned for an unknown username.
func NewUserNotFoundError(username string) *NotFoundError {
	return &NotFoundError{
		Resource: UserResource,
		Key:      UsernameKey,
		Value:    username,
	}
}

package memory

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/CameronXie/srp-explorer/internal/domain"
	"github.com/CameronXie/srp-explorer/internal/repository"
)

// UserRepository keeps users in memory. It is not safe for concurrent use.
type UserRepository struct {
	users *orderedmap.OrderedMap[string, *domain.User]
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: orderedmap.New[string, *domain.User]()}
}

// Get returns the user stored under username.
func (r *UserRepository) Get(username string) (*domain.User, error) {
	user, ok := r.users.Get(username)
	if !ok {
		return nil, repository.NewUserNotFoundError(username)
	}

	return user, nil
}

// GetAll returns the stored users in insertion order.
func (r *UserRepository) GetAll() []*domain.User {
	users := make([]*domain.User, 0, r.users.Len())
	for pair := r.users.Oldest(); pair != nil; pair = pair.Next() {
		users = append(users, pair.Value)
	}

	return users
}

// Save stores user under its username, replacing any previous entry in place.
func (r *UserRepository) Save(user *domain.User) *domain.User {
	r.users.Set(user.Username, user)
	return user
}

// Remove deletes and returns the user stored under username.
func (r *UserRepository) Remove(username string) (*domain.User, error) {
	user, ok := r.users.Delete(username)
	if !ok {
		return nil, repository.NewUserNotFoundError(username)
	}

	return user, nil
}

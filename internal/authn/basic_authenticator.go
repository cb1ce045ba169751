package authn

import (
	"fmt"

	"github.com/CameronXie/srp-explorer/internal/domain"
	"github.com/CameronXie/srp-explorer/internal/encoder"
	"github.com/CameronXie/srp-explorer/internal/repository"
)

// BasicAuthenticator authenticates users held in a repository.UserRepository
// and derives tokens with an encoder.Encoder. It owns neither.
type BasicAuthenticator struct {
	users   repository.UserRepository
	encoder encoder.Encoder
	matcher CredentialMatcher
}

// Authenticate checks the credentials and returns a token derived from the stored user.
func (a *BasicAuthenticator) Authenticate(username, password string) (domain.Token, error) {
	user, err := a.users.Get(username)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
	}

	if !a.matcher(user, password) {
		return "", ErrInvalidCredentials
	}

	return a.createToken(user), nil
}

// ValidateToken resolves token to its user. The token must match the one
// derived from the stored user exactly.
func (a *BasicAuthenticator) ValidateToken(token domain.Token) (*domain.User, error) {
	username, err := a.usernameFromToken(token)
	if err != nil {
		return nil, err
	}

	user, err := a.users.Get(username)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %w", ErrInvalidUser, err)
		}
		return nil, fmt.Errorf("get user %s: %w", username, err)
	}

	if !tokensEqual(token, a.createToken(user)) {
		return nil, ErrInvalidToken
	}

	return user, nil
}

func (a *BasicAuthenticator) createToken(user *domain.User) domain.Token {
	return a.encoder.Encode(tokenMaterial(user))
}

func (a *BasicAuthenticator) usernameFromToken(token domain.Token) (string, error) {
	decoded, err := a.encoder.Decode(token)
	if err != nil {
		return "", fmt.Errorf("decode token: %w", err)
	}

	username, _ := parseToken(decoded)
	return username, nil
}

// NewBasicAuthenticator creates an Authenticator over the given repository and encoder.
func NewBasicAuthenticator(users repository.UserRepository, enc encoder.Encoder, opts ...Option) Authenticator {
	o := newOptions(opts)
	return &BasicAuthenticator{
		users:   users,
		encoder: enc,
		matcher: o.matcher,
	}
}

package authn

import (
	"crypto/subtle"
	"errors"
	"strings"

	"github.com/CameronXie/srp-explorer/internal/domain"
)

const tokenSeparator = ":"

var (
	ErrInvalidCredentials = errors.New("invalid user or password")
	ErrInvalidUser        = errors.New("invalid user")
	ErrInvalidToken       = errors.New("invalid token")
)

// Authenticator issues tokens for valid credentials and resolves tokens back to users.
type Authenticator interface {
	Authenticate(username, password string) (domain.Token, error)
	ValidateToken(token domain.Token) (*domain.User, error)
}

// CredentialMatcher reports whether password is accepted for user.
type CredentialMatcher func(user *domain.User, password string) bool

// MatchPassword accepts password when it equals the stored password.
func MatchPassword(user *domain.User, password string) bool {
	return subtle.ConstantTimeCompare([]byte(user.Password), []byte(password)) == 1
}

// MatchUsername accepts password when it equals the stored username.
//
// Known defect: this is the check the first version of the authenticator
// shipped with. Only use it when that behaviour has to be reproduced.
func MatchUsername(user *domain.User, password string) bool {
	return user.Username == password
}

type options struct {
	matcher CredentialMatcher
}

// Option configures an authenticator.
type Option func(*options)

// WithCredentialMatcher replaces the default MatchPassword check.
func WithCredentialMatcher(m CredentialMatcher) Option {
	return func(o *options) {
		if m != nil {
			o.matcher = m
		}
	}
}

func newOptions(opts []Option) *options {
	o := &options{matcher: MatchPassword}
	for _, opt := range opts {
		opt(o)
	}

	return o
}

// tokenMaterial is the plaintext a token is derived from.
func tokenMaterial(user *domain.User) string {
	return user.Username + tokenSeparator + user.Password
}

// parseToken splits decoded token material into username and password.
// Text without a separator is treated as a bare username.
func parseToken(decoded string) (username, password string) {
	username, password, _ = strings.Cut(decoded, tokenSeparator)
	return username, password
}

func tokensEqual(a, b domain.Token) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

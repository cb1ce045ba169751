package authn

import (
	"encoding/hex"
	"fmt"
	"unicode/utf8"

	"github.com/CameronXie/srp-explorer/internal/domain"
	"github.com/CameronXie/srp-explorer/internal/encoder"
)

// MonolithicAuthenticator stores users, encodes tokens and authenticates in
// one type. BasicAuthenticator splits the same behaviour across a repository,
// an encoder and the authenticator itself.
type MonolithicAuthenticator struct {
	users   map[string]*domain.User
	matcher CredentialMatcher
}

func (a *MonolithicAuthenticator) GetUser(username string) (*domain.User, bool) {
	user, ok := a.users[username]
	return user, ok
}

func (a *MonolithicAuthenticator) RegisterUser(user *domain.User) *domain.User {
	a.users[user.Username] = user
	return user
}

func (a *MonolithicAuthenticator) Authenticate(username, password string) (domain.Token, error) {
	user, ok := a.GetUser(username)
	if !ok || !a.matcher(user, password) {
		return "", ErrInvalidCredentials
	}

	return a.createToken(user), nil
}

func (a *MonolithicAuthenticator) ValidateToken(token domain.Token) (*domain.User, error) {
	username, err := a.usernameFromToken(token)
	if err != nil {
		return nil, err
	}

	user, ok := a.GetUser(username)
	if !ok {
		return nil, ErrInvalidUser
	}

	if !tokensEqual(token, a.createToken(user)) {
		return nil, ErrInvalidToken
	}

	return user, nil
}

func (a *MonolithicAuthenticator) encodeText(text string) domain.Token {
	return domain.Token(hex.EncodeToString([]byte(text)))
}

func (a *MonolithicAuthenticator) decodeText(token domain.Token) (string, error) {
	raw, err := hex.DecodeString(string(token))
	if err != nil {
		return "", fmt.Errorf("%w: %w", encoder.ErrDecode, err)
	}

	if !utf8.Valid(raw) {
		return "", fmt.Errorf("%w: invalid utf-8 sequence", encoder.ErrDecode)
	}

	return string(raw), nil
}

func (a *MonolithicAuthenticator) createToken(user *domain.User) domain.Token {
	return a.encodeText(tokenMaterial(user))
}

func (a *MonolithicAuthenticator) usernameFromToken(token domain.Token) (string, error) {
	decoded, err := a.decodeText(token)
	if err != nil {
		return "", fmt.Errorf("decode token: %w", err)
	}

	username, _ := parseToken(decoded)
	return username, nil
}

// NewMonolithicAuthenticator returns an empty MonolithicAuthenticator.
func NewMonolithicAuthenticator(opts ...Option) *MonolithicAuthenticator {
	o := newOptions(opts)
	return &MonolithicAuthenticator{
		users:   make(map[string]*domain.User),
		matcher: o.matcher,
	}
}

package domain

// User represents a registered user. Username is the identity key.
type User struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Token is an opaque credential issued by an authenticator.
type Token string

// NewUser creates a User with the given credentials.
func NewUser(username, password string) *User {
	return &User{Username: username, Password: password}
}

package demo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/CameronXie/srp-explorer/internal/authn"
	"github.com/CameronXie/srp-explorer/internal/domain"
)

// Registrar stores a new user so an Authenticator can find it.
type Registrar interface {
	Register(user *domain.User) *domain.User
}

// RegisterFunc adapts a plain function to the Registrar interface.
type RegisterFunc func(user *domain.User) *domain.User

// Register calls f(user).
func (f RegisterFunc) Register(user *domain.User) *domain.User {
	return f(user)
}

// UserLister returns a snapshot of registered users.
type UserLister interface {
	GetAll() []*domain.User
}

// Credentials are the username and password used for a run.
type Credentials struct {
	Username string
	Password string
}

// Program registers a user, signs in and validates the issued token,
// printing the validated user.
type Program struct {
	title         string
	registrar     Registrar
	authenticator authn.Authenticator
	lister        UserLister
	out           io.Writer
	logger        *slog.Logger
}

// Option configures a Program.
type Option func(*Program)

// WithUserLister logs the registered usernames after a successful run.
func WithUserLister(l UserLister) Option {
	return func(p *Program) {
		p.lister = l
	}
}

// Run executes the register, authenticate and validate steps in order.
// The first failing step aborts the run.
func (p *Program) Run(ctx context.Context, creds Credentials) error {
	logger := p.logger.With(slog.String("run_id", uuid.NewString()), slog.String("username", creds.Username))

	logger.InfoContext(ctx, "registering user")
	p.registrar.Register(domain.NewUser(creds.Username, creds.Password))

	logger.InfoContext(ctx, "authenticating user")
	token, err := p.authenticator.Authenticate(creds.Username, creds.Password)
	if err != nil {
		logger.ErrorContext(ctx, "failed to authenticate user", "error", err)
		return fmt.Errorf("authenticate: %w", err)
	}

	logger.DebugContext(ctx, "token issued", "token", string(token))

	logger.InfoContext(ctx, "validating token")
	user, err := p.authenticator.ValidateToken(token)
	if err != nil {
		logger.ErrorContext(ctx, "failed to validate token", "error", err)
		return fmt.Errorf("validate token: %w", err)
	}

	if p.lister != nil {
		usernames := lo.Map(p.lister.GetAll(), func(u *domain.User, _ int) string {
			return u.Username
		})
		logger.InfoContext(ctx, "registered users", "usernames", usernames)
	}

	return p.print(user)
}

func (p *Program) print(user *domain.User) error {
	body, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal user: %w", err)
	}

	if _, err := fmt.Fprintf(p.out, "%s\n%s\n\n", p.title, body); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	return nil
}

// NewProgram creates a Program that prints its result to out under title.
func NewProgram(
	title string,
	registrar Registrar,
	authenticator authn.Authenticator,
	out io.Writer,
	logger *slog.Logger,
	opts ...Option,
) *Program {
	p := &Program{
		title:         title,
		registrar:     registrar,
		authenticator: authenticator,
		out:           out,
		logger:        logger,
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

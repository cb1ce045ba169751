//go:build !monolithic

package main

import (
	"io"
	"log/slog"

	"github.com/CameronXie/srp-explorer/internal/authn"
	"github.com/CameronXie/srp-explorer/internal/demo"
	"github.com/CameronXie/srp-explorer/internal/encoder/hex"
	"github.com/CameronXie/srp-explorer/internal/repository/memory"
)

// newProgram wires the repository, the hex encoder and the basic authenticator.
func newProgram(out io.Writer, logger *slog.Logger, opts ...authn.Option) *demo.Program {
	logger.Info("initializing program with separated responsibilities")

	users := memory.NewUserRepository()

	return demo.NewProgram(
		"SOLID - SRP",
		demo.RegisterFunc(users.Save),
		authn.NewBasicAuthenticator(users, hex.NewEncoder(), opts...),
		out,
		logger,
		demo.WithUserLister(users),
	)
}

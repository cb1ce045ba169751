//go:build monolithic

package main

import (
	"io"
	"log/slog"

	"github.com/CameronXie/srp-explorer/internal/authn"
	"github.com/CameronXie/srp-explorer/internal/demo"
)

// newProgram wires the single authenticator that stores, encodes and authenticates.
func newProgram(out io.Writer, logger *slog.Logger, opts ...authn.Option) *demo.Program {
	logger.Info("initializing program with a monolithic authenticator")

	a := authn.NewMonolithicAuthenticator(opts...)

	return demo.NewProgram(
		"SOLID - NOT SRP",
		demo.RegisterFunc(a.RegisterUser),
		a,
		out,
		logger,
	)
}

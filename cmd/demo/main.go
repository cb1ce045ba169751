package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/CameronXie/srp-explorer/internal/authn"
	"github.com/CameronXie/srp-explorer/internal/config"
	"github.com/CameronXie/srp-explorer/internal/demo"
	"github.com/CameronXie/srp-explorer/internal/version"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		if config.IsHelp(err) {
			fmt.Println(err)
			return
		}
		log.Fatal(err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.Level()})).With(
		slog.String("version", version.Version),
	)

	var opts []authn.Option
	if cfg.LegacyCredentialCheck {
		logger.Warn("using legacy credential check: password is compared with the stored username")
		opts = append(opts, authn.WithCredentialMatcher(authn.MatchUsername))
	}

	program := newProgram(os.Stdout, logger, opts...)
	err = program.Run(context.Background(), demo.Credentials{
		Username: cfg.Username,
		Password: cfg.Password,
	})
	if err != nil {
		logger.Error("demo failed", "error", err)
		os.Exit(1)
	}
}

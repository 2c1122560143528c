package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/smartrecruiter/smartrec/internal/api"
	"github.com/smartrecruiter/smartrec/internal/cli"
	"github.com/smartrecruiter/smartrec/internal/config"
	"github.com/smartrecruiter/smartrec/internal/logging"
	"github.com/smartrecruiter/smartrec/internal/session"
	"github.com/smartrecruiter/smartrec/internal/store"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	cfg, err := config.Load(ctx)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logging.New(logging.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.LogPretty,
	})

	sess, err := session.NewFileStore(cfg.ConfigDir)
	if err != nil {
		return fmt.Errorf("opening session store: %w", err)
	}

	client := api.NewClient(cfg.APIURL, cfg.Timeout, sess, log)

	app := &cli.App{
		Store:   store.New(client, sess),
		Client:  client,
		Session: sess,
		Log:     log,
	}
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	return cli.NewRootCmd(app).Execute()
}

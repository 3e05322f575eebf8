package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/cardtable/spades/cmd/spades/shared"
	"github.com/cardtable/spades/internal/randutil"
	"github.com/cardtable/spades/internal/server"
)

type ServerCmd struct {
	Addr   string `help:"Address to listen on (overrides the config file)"`
	Config string `help:"Path to HCL config file" default:"spades.hcl"`
	Seed   *int64 `help:"Seed for the shared deal RNG (random if unset)"`
	Debug  bool   `help:"Enable debug logging"`
	JSON   bool   `name:"json" help:"Log as JSON instead of console output"`
}

func (cmd *ServerCmd) Run() error {
	logger := shared.SetupLogger(cmd.Debug, cmd.JSON)

	cfg, err := server.LoadConfig(cmd.Config)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if cmd.Addr != "" {
		cfg.Server.Address = cmd.Addr
	}

	seed := time.Now().UnixNano()
	if cmd.Seed != nil {
		seed = *cmd.Seed
		logger.Info().Int64("seed", seed).Msg("Using fixed deal seed")
	}
	rng := randutil.New(seed)

	srv := server.NewServer(cfg, rng, logger)

	ctx := shared.SetupSignalHandler(logger)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(cfg.Server.Address); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		logger.Info().Msg("Shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down cleanly: %w", err)
		}
	}
	return nil
}

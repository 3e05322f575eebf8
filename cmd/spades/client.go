package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/cardtable/spades/internal/client"
	"github.com/cardtable/spades/internal/game"
	"github.com/cardtable/spades/internal/protocol"
	"github.com/cardtable/spades/internal/seat"
)

type ClientCmd struct {
	URL   string `help:"Server URL" default:"http://localhost:8080/ws"`
	Table string `help:"Table name or ID to join" default:"main"`
	Seat  int    `help:"Seat index to claim (0-3)" required:""`
	Name  string `help:"Player name" default:"player"`
	Debug bool   `help:"Enable debug logging"`
}

func (cmd *ClientCmd) Run() error {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          cmd.Name,
	})
	if cmd.Debug {
		logger.SetLevel(log.DebugLevel)
	}

	s, err := seat.FromIndex(cmd.Seat)
	if err != nil {
		return err
	}

	c := client.New(cmd.URL, logger)
	if err := c.Connect(); err != nil {
		return err
	}
	defer c.Close()

	done := make(chan struct{})
	c.OnGameOver = func(data protocol.GameOverData) {
		close(done)
	}

	if err := c.Join(cmd.Table, s, cmd.Name); err != nil {
		return fmt.Errorf("failed to join table: %w", err)
	}

	// Play the first allowed action whenever it is our turn. Polling is
	// crude but keeps the reference client easy to follow.
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			logger.Info("Game finished")
			return nil
		case <-ticker.C:
			actions := c.AllowedActions()
			if len(actions) == 0 {
				continue
			}
			action := actions[0]
			if action.Kind == game.ActionWait {
				continue
			}
			logger.Debug("Performing action", "action", action)
			if err := c.Perform(action); err != nil {
				logger.Error("Action rejected", "action", action, "error", err)
			}
		}
	}
}

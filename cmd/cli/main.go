package main

import (
	"log/slog"
	"os"

	"github.com/rocketscienceinc/tictactoe-engine/internal/cli"
	"github.com/rocketscienceinc/tictactoe-engine/internal/tictactoe"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	console := cli.New(os.Stdin, os.Stdout, tictactoe.NewComputerPlayer())
	if err := console.Run(); err != nil {
		logger.Error("console game failed", "error", err)
		os.Exit(1)
	}
}

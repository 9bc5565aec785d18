package cmd

import (
	"os"

	"go.uber.org/zap"

	"cinema-chain/internal/console"
	"cinema-chain/internal/wire"
)

// RunConsole drives the menu loop on stdin/stdout until the user exits.
func RunConsole(app *wire.App, logger *zap.Logger) {
	ui := console.New(app, os.Stdin, os.Stdout, logger)
	ui.Run()
}

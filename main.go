// main.go
package main

import (
	"errors"
	"log"

	"cinema-chain/cmd"
	"cinema-chain/internal/data/entity"
	"cinema-chain/internal/snapshot"
	"cinema-chain/internal/wire"
	"cinema-chain/pkg/utils"

	"go.uber.org/zap"
)

func main() {
	// Load config
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		log.Printf("Failed to init logger: %v. Using standard log.", err)
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("Starting application",
		zap.String("app", config.App.Name),
		zap.String("data_dir", config.Storage.DataDir),
		zap.Bool("debug", config.App.Debug),
	)

	// Load snapshot. A corrupt snapshot or a price-table/enum mismatch
	// is fatal: the process must not run on partially loaded pricing.
	store := snapshot.NewStore(config.Storage.DataDir, logger)
	state, err := store.Load()
	if err != nil {
		if errors.Is(err, entity.ErrCorruptSnapshot) || errors.Is(err, entity.ErrValidation) {
			logger.Fatal("Snapshot is unusable", zap.Error(err))
		}
		logger.Fatal("Failed to load snapshot", zap.Error(err))
	}

	// Wire all services around the loaded state
	app := wire.Wiring(state, store, config, logger)

	// First run has no accounts yet; seed the bootstrap admin
	if len(app.Accounts.Admins()) == 0 {
		if err := app.Accounts.AddAdmin(config.Auth.BootstrapAdminUser, config.Auth.BootstrapAdminPass); err != nil {
			logger.Fatal("Failed to seed bootstrap admin", zap.Error(err))
		}
		logger.Info("Bootstrap admin created", zap.String("username", config.Auth.BootstrapAdminUser))
	}

	// Run the console until the user exits
	cmd.RunConsole(app, logger)

	// Flush state back. Mutations between saves live only in memory, so
	// this is the one durability point.
	if err := app.Store.Save(app.State()); err != nil {
		logger.Error("Failed to save snapshot", zap.Error(err))
	}

	logger.Info("Shutdown complete")
}

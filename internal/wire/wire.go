// internal/wire/wire.go
package wire

import (
	"cinema-chain/internal/accounts"
	"cinema-chain/internal/booking"
	"cinema-chain/internal/catalog"
	"cinema-chain/internal/ledger"
	"cinema-chain/internal/pricing"
	"cinema-chain/internal/snapshot"
	"cinema-chain/pkg/utils"

	"go.uber.org/zap"
)

// App holds every wired service plus the store used to flush state back
// on shutdown.
type App struct {
	Catalog  *catalog.Catalog
	Pricing  *pricing.Engine
	Ledger   *ledger.Ledger
	Accounts *accounts.Registry
	Booking  *booking.Service
	Store    *snapshot.Store
}

// Wiring initializes all services around the loaded snapshot state.
// The state object is the single long-lived owner of all data;
// services hold references into it, never copies.
func Wiring(state *snapshot.State, store *snapshot.Store, config *utils.Config, logger *zap.Logger) *App {
	cat := catalog.New(state.Movies, state.Cineplexes, logger)
	eng := pricing.NewEngine(state.PriceTable, logger)
	led := ledger.New(state.Sales, logger)
	acc := accounts.New(state.Customers, state.Admins, logger)
	bkg := booking.NewService(cat, eng, led, acc, logger)

	return &App{
		Catalog:  cat,
		Pricing:  eng,
		Ledger:   led,
		Accounts: acc,
		Booking:  bkg,
		Store:    store,
	}
}

// State gathers the current service data back into a snapshot state for
// saving. Catalog and accounts may have replaced slices/maps since
// startup, so this re-reads them rather than trusting the loaded state.
func (a *App) State() *snapshot.State {
	return &snapshot.State{
		Movies:     a.Catalog.Movies(),
		Cineplexes: a.Catalog.Cineplexes(),
		Customers:  a.Accounts.Customers(),
		Admins:     a.Accounts.Admins(),
		Sales:      a.Ledger.Sales(),
		PriceTable: a.Pricing.Table(),
	}
}

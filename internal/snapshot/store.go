// Package snapshot persists the whole process state as one gob blob
// under a local data directory. The price tables are flattened into
// positional arrays aligned to enum declaration order on save, and
// re-associated with the enum constants on load.
package snapshot

import (
	"encoding/gob"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"cinema-chain/internal/data/entity"
	"cinema-chain/internal/pricing"
)

const fileName = "cinema.dat"

// State is everything the process keeps in memory between startup and
// shutdown. Load builds it once; Save flushes it back.
type State struct {
	Movies     []*entity.Movie
	Cineplexes map[string]*entity.Cineplex
	Customers  map[string]*entity.Customer
	Admins     []entity.Admin
	Sales      map[string]int
	PriceTable *pricing.Table
}

// snapshotFile is the on-disk shape. Price tables are positional: entry
// i of each slice belongs to value i of the matching All...() slice.
type snapshotFile struct {
	Movies     []*entity.Movie
	Cineplexes map[string]*entity.Cineplex
	Customers  map[string]*entity.Customer
	Admins     []entity.Admin
	Sales      map[string]int

	BasePrice        float64
	MovieTypePrices  []float64
	CinemaTypePrices []float64
	AgeGroupPrices   []float64
	WeekendCharge    float64
	HolidayDates     []entity.DateKey
	HolidayCharges   []float64
}

type Store struct {
	dir string
	log *zap.Logger
}

func NewStore(dir string, log *zap.Logger) *Store {
	return &Store{
		dir: dir,
		log: log.With(zap.String("service", "snapshot")),
	}
}

func (s *Store) path() string {
	return filepath.Join(s.dir, fileName)
}

// Load reads the snapshot and rebuilds the in-memory state. A missing
// file is a first run and yields an empty default state; a file that
// exists but cannot be decoded, or whose price arrays do not match the
// enum cardinalities, is fatal.
func (s *Store) Load() (*State, error) {
	f, err := os.Open(s.path())
	if errors.Is(err, fs.ErrNotExist) {
		s.log.Info("No snapshot found, starting with empty state", zap.String("path", s.path()))
		return defaultState(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("open snapshot: %w", err)
	}
	defer f.Close()

	var snap snapshotFile
	if err := gob.NewDecoder(f).Decode(&snap); err != nil {
		s.log.Error("Failed to decode snapshot", zap.Error(err), zap.String("path", s.path()))
		return nil, fmt.Errorf("decode snapshot %s: %w", s.path(), entity.ErrCorruptSnapshot)
	}

	table, err := rebuildPriceTable(&snap)
	if err != nil {
		s.log.Error("Price table mismatch in snapshot", zap.Error(err))
		return nil, err
	}

	state := &State{
		Movies:     snap.Movies,
		Cineplexes: snap.Cineplexes,
		Customers:  snap.Customers,
		Admins:     snap.Admins,
		Sales:      snap.Sales,
		PriceTable: table,
	}
	fillDefaults(state)

	s.log.Info("Snapshot loaded",
		zap.Int("movies", len(state.Movies)),
		zap.Int("cineplexes", len(state.Cineplexes)),
		zap.Int("customers", len(state.Customers)),
	)
	return state, nil
}

// Save flattens the state and writes it atomically: the data directory
// is created if absent, the blob goes to a temp file first, and the
// rename replaces any previous snapshot only after a complete write.
func (s *Store) Save(state *State) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create data dir %s: %w", s.dir, err)
	}

	snap := flatten(state)

	tmp, err := os.CreateTemp(s.dir, fileName+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp snapshot: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := gob.NewEncoder(tmp).Encode(snap); err != nil {
		tmp.Close()
		return fmt.Errorf("encode snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp snapshot: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path()); err != nil {
		return fmt.Errorf("replace snapshot: %w", err)
	}

	s.log.Info("Snapshot saved",
		zap.String("path", s.path()),
		zap.Int("movies", len(state.Movies)),
		zap.Int("cineplexes", len(state.Cineplexes)),
	)
	return nil
}

func defaultState() *State {
	return &State{
		Cineplexes: make(map[string]*entity.Cineplex),
		Customers:  make(map[string]*entity.Customer),
		Sales:      make(map[string]int),
		PriceTable: pricing.NewTable(),
	}
}

// fillDefaults replaces nil maps from an older or sparse snapshot so
// callers never see nil collections.
func fillDefaults(state *State) {
	if state.Cineplexes == nil {
		state.Cineplexes = make(map[string]*entity.Cineplex)
	}
	if state.Customers == nil {
		state.Customers = make(map[string]*entity.Customer)
	}
	if state.Sales == nil {
		state.Sales = make(map[string]int)
	}
	for _, cpx := range state.Cineplexes {
		if cpx.Schedule == nil {
			cpx.Schedule = make(map[entity.DateKey][]entity.Showtime)
		}
	}
}

func flatten(state *State) *snapshotFile {
	t := state.PriceTable

	snap := &snapshotFile{
		Movies:        state.Movies,
		Cineplexes:    state.Cineplexes,
		Customers:     state.Customers,
		Admins:        state.Admins,
		Sales:         state.Sales,
		BasePrice:     t.Base,
		WeekendCharge: t.WeekendCharge,
	}

	for _, mt := range entity.AllMovieTypes() {
		snap.MovieTypePrices = append(snap.MovieTypePrices, t.MovieTypes[mt])
	}
	for _, ct := range entity.AllCinemaTypes() {
		snap.CinemaTypePrices = append(snap.CinemaTypePrices, t.CinemaTypes[ct])
	}
	for _, ag := range entity.AllAgeGroups() {
		snap.AgeGroupPrices = append(snap.AgeGroupPrices, t.AgeGroups[ag])
	}

	for date, charge := range t.HolidayCharges {
		snap.HolidayDates = append(snap.HolidayDates, date)
		snap.HolidayCharges = append(snap.HolidayCharges, charge)
	}

	return snap
}

// rebuildPriceTable re-associates each positional entry with its enum
// constant in declaration order. Array lengths must match the enum
// cardinalities exactly.
func rebuildPriceTable(snap *snapshotFile) (*pricing.Table, error) {
	movieTypes := entity.AllMovieTypes()
	cinemaTypes := entity.AllCinemaTypes()
	ageGroups := entity.AllAgeGroups()

	if len(snap.MovieTypePrices) != len(movieTypes) {
		return nil, fmt.Errorf("%w: snapshot has %d movie type prices, enum has %d",
			entity.ErrValidation, len(snap.MovieTypePrices), len(movieTypes))
	}
	if len(snap.CinemaTypePrices) != len(cinemaTypes) {
		return nil, fmt.Errorf("%w: snapshot has %d cinema type prices, enum has %d",
			entity.ErrValidation, len(snap.CinemaTypePrices), len(cinemaTypes))
	}
	if len(snap.AgeGroupPrices) != len(ageGroups) {
		return nil, fmt.Errorf("%w: snapshot has %d age group prices, enum has %d",
			entity.ErrValidation, len(snap.AgeGroupPrices), len(ageGroups))
	}
	if len(snap.HolidayDates) != len(snap.HolidayCharges) {
		return nil, fmt.Errorf("%w: snapshot has %d holiday dates but %d holiday charges",
			entity.ErrValidation, len(snap.HolidayDates), len(snap.HolidayCharges))
	}

	table := pricing.NewTable()
	table.Base = snap.BasePrice
	table.WeekendCharge = snap.WeekendCharge

	for i, mt := range movieTypes {
		table.MovieTypes[mt] = snap.MovieTypePrices[i]
	}
	for i, ct := range cinemaTypes {
		table.CinemaTypes[ct] = snap.CinemaTypePrices[i]
	}
	for i, ag := range ageGroups {
		table.AgeGroups[ag] = snap.AgeGroupPrices[i]
	}
	for i, date := range snap.HolidayDates {
		table.HolidayCharges[date] = snap.HolidayCharges[i]
	}

	if err := table.Validate(); err != nil {
		return nil, err
	}
	return table, nil
}

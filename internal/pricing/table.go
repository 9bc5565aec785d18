// Package pricing holds the ticket price tables and the price
// computation over them. Tables are loaded from the snapshot at startup
// and validated for completeness before any price is computed.
package pricing

import (
	"fmt"

	"cinema-chain/internal/data/entity"
)

// Table holds every value that drives ticket pricing: the base price,
// per-enum surcharge maps, the weekend charge and the public-holiday
// calendar. Lookups are pure; mutation happens only through the admin
// configuration flow.
type Table struct {
	Base           float64
	MovieTypes     map[entity.MovieType]float64
	CinemaTypes    map[entity.CinemaType]float64
	AgeGroups      map[entity.AgeGroup]float64
	WeekendCharge  float64
	HolidayCharges map[entity.DateKey]float64
}

// NewTable returns a zeroed table with one entry per enum value. This is
// the first-run default when no snapshot exists yet.
func NewTable() *Table {
	t := &Table{
		MovieTypes:     make(map[entity.MovieType]float64, len(entity.AllMovieTypes())),
		CinemaTypes:    make(map[entity.CinemaType]float64, len(entity.AllCinemaTypes())),
		AgeGroups:      make(map[entity.AgeGroup]float64, len(entity.AllAgeGroups())),
		HolidayCharges: make(map[entity.DateKey]float64),
	}
	for _, mt := range entity.AllMovieTypes() {
		t.MovieTypes[mt] = 0
	}
	for _, ct := range entity.AllCinemaTypes() {
		t.CinemaTypes[ct] = 0
	}
	for _, ag := range entity.AllAgeGroups() {
		t.AgeGroups[ag] = 0
	}
	return t
}

// Validate checks that every enum value has exactly one entry. A
// mismatch means the snapshot arrays drifted from the enum declarations
// and pricing must not run on partial tables.
func (t *Table) Validate() error {
	if len(t.MovieTypes) != len(entity.AllMovieTypes()) {
		return fmt.Errorf("%w: movie type table has %d entries, want %d",
			entity.ErrValidation, len(t.MovieTypes), len(entity.AllMovieTypes()))
	}
	for _, mt := range entity.AllMovieTypes() {
		if _, ok := t.MovieTypes[mt]; !ok {
			return fmt.Errorf("%w: movie type %q has no price entry", entity.ErrValidation, mt)
		}
	}

	if len(t.CinemaTypes) != len(entity.AllCinemaTypes()) {
		return fmt.Errorf("%w: cinema type table has %d entries, want %d",
			entity.ErrValidation, len(t.CinemaTypes), len(entity.AllCinemaTypes()))
	}
	for _, ct := range entity.AllCinemaTypes() {
		if _, ok := t.CinemaTypes[ct]; !ok {
			return fmt.Errorf("%w: cinema type %q has no price entry", entity.ErrValidation, ct)
		}
	}

	if len(t.AgeGroups) != len(entity.AllAgeGroups()) {
		return fmt.Errorf("%w: age group table has %d entries, want %d",
			entity.ErrValidation, len(t.AgeGroups), len(entity.AllAgeGroups()))
	}
	for _, ag := range entity.AllAgeGroups() {
		if _, ok := t.AgeGroups[ag]; !ok {
			return fmt.Errorf("%w: age group %q has no price entry", entity.ErrValidation, ag)
		}
	}

	return nil
}

func (t *Table) BasePrice() float64 {
	return t.Base
}

// MovieTypeSurcharge looks up the surcharge for a movie type. Tables are
// validated at load, so a missing entry is a programming error.
func (t *Table) MovieTypeSurcharge(mt entity.MovieType) float64 {
	v, ok := t.MovieTypes[mt]
	if !ok {
		panic(fmt.Sprintf("pricing: no entry for movie type %q", mt))
	}
	return v
}

func (t *Table) CinemaTypeSurcharge(ct entity.CinemaType) float64 {
	v, ok := t.CinemaTypes[ct]
	if !ok {
		panic(fmt.Sprintf("pricing: no entry for cinema type %q", ct))
	}
	return v
}

// AgeGroupAdjustment may be negative, a discount.
func (t *Table) AgeGroupAdjustment(ag entity.AgeGroup) float64 {
	v, ok := t.AgeGroups[ag]
	if !ok {
		panic(fmt.Sprintf("pricing: no entry for age group %q", ag))
	}
	return v
}

func (t *Table) IsPublicHoliday(date entity.DateKey) bool {
	_, ok := t.HolidayCharges[date]
	return ok
}

func (t *Table) PublicHolidayCharge(date entity.DateKey) float64 {
	return t.HolidayCharges[date]
}

func (t *Table) IsWeekend(date entity.DateKey) bool {
	return date.IsWeekend()
}

// ---- admin configuration ----

func (t *Table) SetBasePrice(v float64) {
	t.Base = v
}

func (t *Table) SetMovieTypeSurcharge(mt entity.MovieType, v float64) {
	t.MovieTypes[mt] = v
}

func (t *Table) SetCinemaTypeSurcharge(ct entity.CinemaType, v float64) {
	t.CinemaTypes[ct] = v
}

func (t *Table) SetAgeGroupAdjustment(ag entity.AgeGroup, v float64) {
	t.AgeGroups[ag] = v
}

func (t *Table) SetWeekendCharge(v float64) {
	t.WeekendCharge = v
}

func (t *Table) SetHoliday(date entity.DateKey, charge float64) {
	t.HolidayCharges[date] = charge
}

func (t *Table) RemoveHoliday(date entity.DateKey) {
	delete(t.HolidayCharges, date)
}

package pricing

import (
	"go.uber.org/zap"

	"cinema-chain/internal/data/entity"
)

// Engine computes a ticket's final price from the loaded table. It is
// pure: one call per ticket at booking time, no side effects.
type Engine struct {
	table *Table
	log   *zap.Logger
}

func NewEngine(table *Table, log *zap.Logger) *Engine {
	return &Engine{
		table: table,
		log:   log.With(zap.String("service", "pricing")),
	}
}

func (e *Engine) Table() *Table {
	return e.table
}

// ComputePrice adds the base price, the movie and cinema type
// surcharges and the age group adjustment, then at most one calendar
// charge: the public-holiday charge when the date is a holiday, the
// weekend charge when it is a weekend but not a holiday. A holiday that
// falls on a weekend is charged once, as a holiday. The result is
// clamped at zero.
func (e *Engine) ComputePrice(mt entity.MovieType, ct entity.CinemaType, ag entity.AgeGroup, date entity.DateKey) float64 {
	price := e.table.BasePrice()
	price += e.table.MovieTypeSurcharge(mt)
	price += e.table.CinemaTypeSurcharge(ct)
	price += e.table.AgeGroupAdjustment(ag)

	switch {
	case e.table.IsPublicHoliday(date):
		price += e.table.PublicHolidayCharge(date)
	case e.table.IsWeekend(date):
		price += e.table.WeekendCharge
	}

	if price < 0 {
		e.log.Warn("Computed ticket price below zero, clamping",
			zap.Float64("price", price),
			zap.String("movie_type", string(mt)),
			zap.String("cinema_type", string(ct)),
			zap.String("age_group", string(ag)),
			zap.String("date", string(date)),
		)
		return 0
	}

	return price
}

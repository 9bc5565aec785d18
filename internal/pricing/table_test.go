package pricing

import (
	"errors"
	"testing"

	"cinema-chain/internal/data/entity"
)

func TestNewTableIsComplete(t *testing.T) {
	table := NewTable()
	if err := table.Validate(); err != nil {
		t.Fatalf("NewTable().Validate() = %v, want nil", err)
	}
}

func TestValidateCardinalityMismatch(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Table)
	}{
		{"missing movie type entry", func(tb *Table) { delete(tb.MovieTypes, entity.MovieTypeThreeD) }},
		{"missing cinema type entry", func(tb *Table) { delete(tb.CinemaTypes, entity.CinemaTypeGold) }},
		{"missing age group entry", func(tb *Table) { delete(tb.AgeGroups, entity.AgeGroupSenior) }},
		{"unknown extra movie type", func(tb *Table) { tb.MovieTypes["imax"] = 1.00 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := NewTable()
			tt.mutate(table)

			err := table.Validate()
			if !errors.Is(err, entity.ErrValidation) {
				t.Errorf("Validate() = %v, want ErrValidation", err)
			}
		})
	}
}

func TestHolidayLookup(t *testing.T) {
	table := NewTable()
	table.SetHoliday("2024-12-25", 4.50)

	if !table.IsPublicHoliday("2024-12-25") {
		t.Error("IsPublicHoliday(2024-12-25) = false after SetHoliday")
	}
	if got := table.PublicHolidayCharge("2024-12-25"); got != 4.50 {
		t.Errorf("PublicHolidayCharge = %.2f, want 4.50", got)
	}

	table.RemoveHoliday("2024-12-25")
	if table.IsPublicHoliday("2024-12-25") {
		t.Error("IsPublicHoliday = true after RemoveHoliday")
	}
}

func TestIsWeekend(t *testing.T) {
	table := NewTable()

	if !table.IsWeekend("2024-01-06") { // Saturday
		t.Error("IsWeekend(2024-01-06) = false, want true")
	}
	if table.IsWeekend("2024-01-03") { // Wednesday
		t.Error("IsWeekend(2024-01-03) = true, want false")
	}
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

type Movie struct {
	ID            uuid.UUID
	Title         string
	Director      string
	Cast          []string
	Synopsis      string
	Language      Language
	Subtitle      Subtitle
	Status        MovieStatus
	Rating        MovieRating
	Type          MovieType
	OverallRating *float64
	Reviews       []Review
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type Review struct {
	ID        uuid.UUID
	Reviewer  string
	Score     float64
	Comment   string
	CreatedAt time.Time
}

// RecomputeOverallRating sets OverallRating to the arithmetic mean of
// all review scores, or nil when there are no reviews.
func (m *Movie) RecomputeOverallRating() {
	if len(m.Reviews) == 0 {
		m.OverallRating = nil
		return
	}

	sum := 0.0
	for _, r := range m.Reviews {
		sum += r.Score
	}

	avg := sum / float64(len(m.Reviews))
	m.OverallRating = &avg
}

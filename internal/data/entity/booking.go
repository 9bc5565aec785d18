package entity

import (
	"time"

	"github.com/google/uuid"
)

type Ticket struct {
	AgeGroup AgeGroup
	Price    float64
}

// Booking groups the tickets a customer bought for one showtime. It
// snapshots the movie title so sales reports survive a later title edit
// or movie removal.
type Booking struct {
	TransactionID string
	Username      string
	MovieID       uuid.UUID
	MovieTitle    string
	CineplexName  string
	CinemaID      uuid.UUID
	CinemaCode    string
	Date          DateKey
	Time          TimeKey
	Tickets       []Ticket
	TotalPrice    float64
	CreatedAt     time.Time
}

package entity

import "github.com/google/uuid"

type Cinema struct {
	ID   uuid.UUID
	Code string
	Type CinemaType
}

// Cineplex owns its cinemas and its showtime schedule. Name is the
// unique key; the schedule maps each date to the showtimes on it, with
// buckets created lazily on first insert.
type Cineplex struct {
	Name     string
	Location string
	Cinemas  []Cinema
	Schedule map[DateKey][]Showtime
}

func (c *Cineplex) CinemaByID(id uuid.UUID) (Cinema, bool) {
	for _, cin := range c.Cinemas {
		if cin.ID == id {
			return cin, true
		}
	}
	return Cinema{}, false
}

func (c *Cineplex) CinemaByCode(code string) (Cinema, bool) {
	for _, cin := range c.Cinemas {
		if cin.Code == code {
			return cin, true
		}
	}
	return Cinema{}, false
}

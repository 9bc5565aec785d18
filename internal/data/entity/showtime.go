package entity

import "github.com/google/uuid"

// Showtime references its movie and cinema by ID rather than by
// pointer, so a dangling reference after a removal shows up as a failed
// lookup instead of silent aliasing.
type Showtime struct {
	MovieID      uuid.UUID
	CinemaID     uuid.UUID
	CineplexName string
	Date         DateKey
	Time         TimeKey
}

// Equal reports value equality on all five identity fields. Showtime
// removal matches on this.
func (s Showtime) Equal(other Showtime) bool {
	return s.MovieID == other.MovieID &&
		s.CinemaID == other.CinemaID &&
		s.CineplexName == other.CineplexName &&
		s.Date == other.Date &&
		s.Time == other.Time
}

// Collides reports whether two showtimes occupy the same cinema at the
// same date and time, regardless of movie.
func (s Showtime) Collides(other Showtime) bool {
	return s.CinemaID == other.CinemaID &&
		s.Date == other.Date &&
		s.Time == other.Time
}

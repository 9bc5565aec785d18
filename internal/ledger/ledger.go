// Package ledger records bookings against customer history, keeps the
// per-movie sales counters, and maintains movie reviews together with
// the aggregate rating they drive.
package ledger

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"cinema-chain/internal/data/entity"
)

type Ledger struct {
	sales map[string]int // movie title -> tickets sold
	log   *zap.Logger
}

func New(sales map[string]int, log *zap.Logger) *Ledger {
	if sales == nil {
		sales = make(map[string]int)
	}
	return &Ledger{
		sales: sales,
		log:   log.With(zap.String("service", "ledger")),
	}
}

// RecordBooking appends the booking to the customer's history and
// bumps the movie's sales counter by the ticket count.
func (l *Ledger) RecordBooking(customer *entity.Customer, booking entity.Booking) {
	customer.Bookings = append(customer.Bookings, booking)
	l.sales[booking.MovieTitle] += len(booking.Tickets)

	l.log.Info("Booking recorded",
		zap.String("transaction_id", booking.TransactionID),
		zap.String("username", customer.Username),
		zap.String("movie", booking.MovieTitle),
		zap.Int("tickets", len(booking.Tickets)),
		zap.Float64("total_price", booking.TotalPrice),
	)
}

// SalesFor returns the running ticket total for a movie title, zero if
// it never sold.
func (l *Ledger) SalesFor(title string) int {
	return l.sales[title]
}

func (l *Ledger) Sales() map[string]int {
	return l.sales
}

// AddReview appends the review and recomputes the movie's overall
// rating as the mean of all review scores.
func (l *Ledger) AddReview(movie *entity.Movie, reviewer string, score float64, comment string) entity.Review {
	review := entity.Review{
		ID:        uuid.New(),
		Reviewer:  reviewer,
		Score:     score,
		Comment:   comment,
		CreatedAt: time.Now(),
	}
	movie.Reviews = append(movie.Reviews, review)
	movie.RecomputeOverallRating()

	l.log.Info("Review added",
		zap.String("movie", movie.Title),
		zap.String("reviewer", reviewer),
		zap.Float64("score", score),
		zap.Float64p("overall_rating", movie.OverallRating),
	)
	return review
}

// TopBySales ranks movie titles by tickets sold, descending, ties by
// title. At most n entries are returned.
func (l *Ledger) TopBySales(n int) []RankedMovie {
	out := make([]RankedMovie, 0, len(l.sales))
	for title, sold := range l.sales {
		out = append(out, RankedMovie{Title: title, Sold: sold})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Sold != out[j].Sold {
			return out[i].Sold > out[j].Sold
		}
		return out[i].Title < out[j].Title
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// TopByRating ranks the given movies by overall rating, descending.
// Movies without any review are skipped. At most n entries are
// returned.
func TopByRating(movies []*entity.Movie, n int) []RankedMovie {
	var out []RankedMovie
	for _, m := range movies {
		if m.OverallRating == nil {
			continue
		}
		out = append(out, RankedMovie{Title: m.Title, Rating: *m.OverallRating})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Rating != out[j].Rating {
			return out[i].Rating > out[j].Rating
		}
		return out[i].Title < out[j].Title
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

type RankedMovie struct {
	Title  string
	Sold   int
	Rating float64
}

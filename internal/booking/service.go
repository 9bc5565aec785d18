// Package booking orchestrates ticket purchase: it resolves the
// showtime against the catalog, prices every ticket through the pricing
// engine, and records the result in the ledger.
package booking

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"cinema-chain/internal/accounts"
	"cinema-chain/internal/catalog"
	"cinema-chain/internal/data/entity"
	"cinema-chain/internal/dto/request"
	"cinema-chain/internal/ledger"
	"cinema-chain/internal/pricing"
	"cinema-chain/pkg/utils"
)

type Service struct {
	catalog  *catalog.Catalog
	pricing  *pricing.Engine
	ledger   *ledger.Ledger
	accounts *accounts.Registry
	log      *zap.Logger
}

func NewService(cat *catalog.Catalog, eng *pricing.Engine, led *ledger.Ledger, acc *accounts.Registry, log *zap.Logger) *Service {
	return &Service{
		catalog:  cat,
		pricing:  eng,
		ledger:   led,
		accounts: acc,
		log:      log.With(zap.String("service", "booking")),
	}
}

// BookTickets books one or more tickets on a single showtime for the
// customer. The booking must match an existing showtime exactly; each
// ticket is priced by age group against the show date.
func (s *Service) BookTickets(username string, req *request.BookingRequest) (*entity.Booking, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Booking validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", entity.ErrValidation, utils.FormatValidationErrors(errs))
	}

	customer, err := s.accounts.CustomerByUsername(username)
	if err != nil {
		return nil, err
	}

	movie, err := s.catalog.MovieByTitle(req.MovieTitle)
	if err != nil {
		return nil, err
	}

	cpx, err := s.catalog.CineplexByName(req.CineplexName)
	if err != nil {
		return nil, err
	}

	cinema, ok := cpx.CinemaByCode(req.CinemaCode)
	if !ok {
		return nil, fmt.Errorf("cinema %q in %q: %w", req.CinemaCode, cpx.Name, entity.ErrNotFound)
	}

	date, err := entity.ParseDateKey(req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %q", entity.ErrValidation, req.Date)
	}
	showTime, err := entity.ParseTimeKey(req.Time)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid time %q", entity.ErrValidation, req.Time)
	}

	// The requested slot must be a scheduled showtime
	if err := s.resolveShowtime(cpx, movie, cinema, date, showTime); err != nil {
		return nil, err
	}

	// Price each ticket
	tickets := make([]entity.Ticket, 0, len(req.AgeGroups))
	total := 0.0
	for _, ag := range req.AgeGroups {
		price := s.pricing.ComputePrice(movie.Type, cinema.Type, entity.AgeGroup(ag), date)
		tickets = append(tickets, entity.Ticket{
			AgeGroup: entity.AgeGroup(ag),
			Price:    price,
		})
		total += price
	}

	bkg := entity.Booking{
		TransactionID: utils.GenerateBookingID(),
		Username:      customer.Username,
		MovieID:       movie.ID,
		MovieTitle:    movie.Title,
		CineplexName:  cpx.Name,
		CinemaID:      cinema.ID,
		CinemaCode:    cinema.Code,
		Date:          date,
		Time:          showTime,
		Tickets:       tickets,
		TotalPrice:    total,
		CreatedAt:     time.Now(),
	}

	s.ledger.RecordBooking(customer, bkg)

	s.log.Info("Tickets booked",
		zap.String("transaction_id", bkg.TransactionID),
		zap.String("username", username),
		zap.String("movie", movie.Title),
		zap.Int("tickets", len(tickets)),
		zap.Float64("total_price", total),
	)
	return &bkg, nil
}

func (s *Service) resolveShowtime(cpx *entity.Cineplex, movie *entity.Movie, cinema entity.Cinema, date entity.DateKey, t entity.TimeKey) error {
	for _, st := range cpx.Schedule[date] {
		if st.MovieID == movie.ID && st.CinemaID == cinema.ID && st.Time == t {
			return nil
		}
	}
	return fmt.Errorf("showtime %s %s for %q in %q: %w",
		date, t, movie.Title, cpx.Name, entity.ErrNotFound)
}

package booking

import (
	"errors"
	"testing"

	"go.uber.org/zap"

	"cinema-chain/internal/accounts"
	"cinema-chain/internal/catalog"
	"cinema-chain/internal/data/entity"
	"cinema-chain/internal/dto/request"
	"cinema-chain/internal/ledger"
	"cinema-chain/internal/pricing"
)

// fixture wires real services around empty state, seeds one cineplex,
// one gold cinema, one movie, one showtime and one customer.
type fixture struct {
	svc *Service
	cat *catalog.Catalog
	led *ledger.Ledger
	acc *accounts.Registry
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	log := zap.NewNop()

	table := pricing.NewTable()
	table.SetBasePrice(10.00)
	table.SetCinemaTypeSurcharge(entity.CinemaTypeGold, 4.00)
	table.SetAgeGroupAdjustment(entity.AgeGroupChild, -3.00)
	table.SetWeekendCharge(2.00)

	cat := catalog.New(nil, nil, log)
	led := ledger.New(nil, log)
	acc := accounts.New(nil, nil, log)
	svc := NewService(cat, pricing.NewEngine(table, log), led, acc, log)

	if _, err := acc.RegisterCustomer(&request.RegisterRequest{
		Username: "alice",
		Password: "s3cret!",
		Name:     "Alice",
		Email:    "alice@example.com",
	}); err != nil {
		t.Fatal(err)
	}

	if _, err := cat.AddCineplex(&request.CineplexRequest{Name: "Orchard"}); err != nil {
		t.Fatal(err)
	}
	cinema, err := cat.AddCinema(&request.CinemaRequest{CineplexName: "Orchard", Code: "C1", Type: "gold"})
	if err != nil {
		t.Fatal(err)
	}
	movie, err := cat.AddMovie(&request.MovieRequest{
		Title:    "Inception",
		Director: "Christopher Nolan",
		Cast:     []string{"Leonardo DiCaprio"},
		Synopsis: "Dreams within dreams.",
		Language: "english",
		Subtitle: "none",
		Status:   "showing",
		Rating:   "PG13",
		Type:     "digital",
	})
	if err != nil {
		t.Fatal(err)
	}

	// 2024-03-06 is a Wednesday
	st := entity.Showtime{
		MovieID:      movie.ID,
		CinemaID:     cinema.ID,
		CineplexName: "Orchard",
		Date:         "2024-03-06",
		Time:         "19:30",
	}
	if err := cat.AddShowtime("Orchard", st.Date, st); err != nil {
		t.Fatal(err)
	}

	return &fixture{svc: svc, cat: cat, led: led, acc: acc}
}

func bookingReq() *request.BookingRequest {
	return &request.BookingRequest{
		CineplexName: "Orchard",
		CinemaCode:   "C1",
		MovieTitle:   "Inception",
		Date:         "2024-03-06",
		Time:         "19:30",
		AgeGroups:    []string{"adult", "adult", "child"},
	}
}

func TestBookTickets(t *testing.T) {
	f := newFixture(t)

	bkg, err := f.svc.BookTickets("alice", bookingReq())
	if err != nil {
		t.Fatalf("BookTickets: %v", err)
	}

	if len(bkg.Tickets) != 3 {
		t.Fatalf("booking has %d tickets, want 3", len(bkg.Tickets))
	}
	// adult: 10 + 0 + 4 + 0 = 14, child: 10 + 0 + 4 - 3 = 11
	if want := 14.00 + 14.00 + 11.00; bkg.TotalPrice != want {
		t.Errorf("TotalPrice = %.2f, want %.2f", bkg.TotalPrice, want)
	}
	if bkg.TransactionID == "" {
		t.Error("booking has no transaction ID")
	}

	if got := f.led.SalesFor("Inception"); got != 3 {
		t.Errorf("SalesFor(Inception) = %d, want 3", got)
	}

	customer, _ := f.acc.CustomerByUsername("alice")
	if len(customer.Bookings) != 1 {
		t.Errorf("customer history has %d bookings, want 1", len(customer.Bookings))
	}
}

func TestBookTicketsUnknownShowtime(t *testing.T) {
	f := newFixture(t)

	req := bookingReq()
	req.Time = "23:00"
	if _, err := f.svc.BookTickets("alice", req); !errors.Is(err, entity.ErrNotFound) {
		t.Errorf("unscheduled time = %v, want ErrNotFound", err)
	}

	req = bookingReq()
	req.MovieTitle = "Missing"
	if _, err := f.svc.BookTickets("alice", req); !errors.Is(err, entity.ErrNotFound) {
		t.Errorf("unknown movie = %v, want ErrNotFound", err)
	}
}

func TestBookTicketsUnknownCustomer(t *testing.T) {
	f := newFixture(t)
	if _, err := f.svc.BookTickets("nobody", bookingReq()); !errors.Is(err, entity.ErrNotFound) {
		t.Errorf("unknown customer = %v, want ErrNotFound", err)
	}
}

func TestBookTicketsValidatesAgeGroups(t *testing.T) {
	f := newFixture(t)

	req := bookingReq()
	req.AgeGroups = []string{"toddler"}
	if _, err := f.svc.BookTickets("alice", req); !errors.Is(err, entity.ErrValidation) {
		t.Errorf("bad age group = %v, want ErrValidation", err)
	}

	req = bookingReq()
	req.AgeGroups = nil
	if _, err := f.svc.BookTickets("alice", req); !errors.Is(err, entity.ErrValidation) {
		t.Errorf("no tickets = %v, want ErrValidation", err)
	}
}

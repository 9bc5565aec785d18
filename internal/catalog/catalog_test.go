package catalog

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"cinema-chain/internal/data/entity"
	"cinema-chain/internal/dto/request"
)

func newTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	return New(nil, nil, zap.NewNop())
}

func movieReq(title string) *request.MovieRequest {
	return &request.MovieRequest{
		Title:    title,
		Director: "Jane Doe",
		Cast:     []string{"Actor One", "Actor Two"},
		Synopsis: "A test movie.",
		Language: "english",
		Subtitle: "none",
		Status:   "showing",
		Rating:   "PG",
		Type:     "digital",
	}
}

func addCineplexWithCinema(t *testing.T, c *Catalog, name, code string) entity.Cinema {
	t.Helper()
	if _, err := c.AddCineplex(&request.CineplexRequest{Name: name}); err != nil {
		t.Fatalf("AddCineplex(%q): %v", name, err)
	}
	cin, err := c.AddCinema(&request.CinemaRequest{CineplexName: name, Code: code, Type: "standard"})
	if err != nil {
		t.Fatalf("AddCinema(%q): %v", code, err)
	}
	return *cin
}

func TestAddMovieDuplicateTitle(t *testing.T) {
	c := newTestCatalog(t)

	if _, err := c.AddMovie(movieReq("Inception")); err != nil {
		t.Fatalf("first AddMovie: %v", err)
	}
	if _, err := c.AddMovie(movieReq("Inception")); !errors.Is(err, entity.ErrDuplicateKey) {
		t.Errorf("second AddMovie = %v, want ErrDuplicateKey", err)
	}
}

func TestRemoveMovieNotFound(t *testing.T) {
	c := newTestCatalog(t)
	if err := c.RemoveMovie("Missing"); !errors.Is(err, entity.ErrNotFound) {
		t.Errorf("RemoveMovie = %v, want ErrNotFound", err)
	}
}

func TestAddCineplexRejectsDuplicateName(t *testing.T) {
	c := newTestCatalog(t)

	if _, err := c.AddCineplex(&request.CineplexRequest{Name: "Orchard"}); err != nil {
		t.Fatalf("first AddCineplex: %v", err)
	}
	if _, err := c.AddCineplex(&request.CineplexRequest{Name: "Orchard"}); !errors.Is(err, entity.ErrDuplicateKey) {
		t.Errorf("duplicate AddCineplex = %v, want ErrDuplicateKey", err)
	}
}

func TestRemoveCineplexNotFound(t *testing.T) {
	c := newTestCatalog(t)
	if err := c.RemoveCineplex("Nowhere"); !errors.Is(err, entity.ErrNotFound) {
		t.Errorf("RemoveCineplex = %v, want ErrNotFound", err)
	}
}

func TestAddCinemaIsCopyOnWrite(t *testing.T) {
	c := newTestCatalog(t)
	if _, err := c.AddCineplex(&request.CineplexRequest{Name: "Orchard"}); err != nil {
		t.Fatal(err)
	}

	before, _ := c.CineplexByName("Orchard")
	if _, err := c.AddCinema(&request.CinemaRequest{CineplexName: "Orchard", Code: "C1", Type: "gold"}); err != nil {
		t.Fatalf("AddCinema: %v", err)
	}

	// The stored cineplex was rebuilt; the old snapshot pointer must
	// not have grown a cinema.
	if len(before.Cinemas) != 0 {
		t.Errorf("old cineplex value mutated, has %d cinemas", len(before.Cinemas))
	}

	after, _ := c.CineplexByName("Orchard")
	if len(after.Cinemas) != 1 {
		t.Fatalf("stored cineplex has %d cinemas, want 1", len(after.Cinemas))
	}
	if after.Cinemas[0].Code != "C1" || after.Cinemas[0].Type != entity.CinemaTypeGold {
		t.Errorf("stored cinema = %+v", after.Cinemas[0])
	}
}

func TestRemoveCinema(t *testing.T) {
	c := newTestCatalog(t)
	addCineplexWithCinema(t, c, "Orchard", "C1")

	if err := c.RemoveCinema("Orchard", "C1"); err != nil {
		t.Fatalf("RemoveCinema: %v", err)
	}
	if err := c.RemoveCinema("Orchard", "C1"); !errors.Is(err, entity.ErrNotFound) {
		t.Errorf("second RemoveCinema = %v, want ErrNotFound", err)
	}
}

func TestAddShowtimeCreatesBucketLazily(t *testing.T) {
	c := newTestCatalog(t)
	cin := addCineplexWithCinema(t, c, "Orchard", "C1")
	movie, _ := c.AddMovie(movieReq("Inception"))

	st := entity.Showtime{
		MovieID:      movie.ID,
		CinemaID:     cin.ID,
		CineplexName: "Orchard",
		Date:         "2024-03-10",
		Time:         "19:30",
	}
	if err := c.AddShowtime("Orchard", st.Date, st); err != nil {
		t.Fatalf("AddShowtime: %v", err)
	}

	got, err := c.ShowtimesOn("Orchard", "2024-03-10")
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || !got[0].Equal(st) {
		t.Errorf("ShowtimesOn = %+v, want the added showtime", got)
	}
}

func TestAddShowtimeRejectsCollision(t *testing.T) {
	c := newTestCatalog(t)
	cin := addCineplexWithCinema(t, c, "Orchard", "C1")
	first, _ := c.AddMovie(movieReq("Inception"))
	second, _ := c.AddMovie(movieReq("Arrival"))

	base := entity.Showtime{
		MovieID:      first.ID,
		CinemaID:     cin.ID,
		CineplexName: "Orchard",
		Date:         "2024-03-10",
		Time:         "19:30",
	}
	if err := c.AddShowtime("Orchard", base.Date, base); err != nil {
		t.Fatal(err)
	}

	// Different movie, same cinema/date/time
	clash := base
	clash.MovieID = second.ID
	if err := c.AddShowtime("Orchard", clash.Date, clash); !errors.Is(err, entity.ErrDuplicateKey) {
		t.Errorf("colliding AddShowtime = %v, want ErrDuplicateKey", err)
	}

	// Same cinema and time on another date is fine
	other := base
	other.Date = "2024-03-11"
	if err := c.AddShowtime("Orchard", other.Date, other); err != nil {
		t.Errorf("non-colliding AddShowtime = %v, want nil", err)
	}
}

func TestAddThenRemoveShowtimeRestoresSchedule(t *testing.T) {
	c := newTestCatalog(t)
	cin := addCineplexWithCinema(t, c, "Orchard", "C1")
	movie, _ := c.AddMovie(movieReq("Inception"))

	st := entity.Showtime{
		MovieID:      movie.ID,
		CinemaID:     cin.ID,
		CineplexName: "Orchard",
		Date:         "2024-03-10",
		Time:         "19:30",
	}
	if err := c.AddShowtime("Orchard", st.Date, st); err != nil {
		t.Fatal(err)
	}
	if err := c.RemoveShowtime(movie.ID, cin.ID, "Orchard", st.Date, st.Time); err != nil {
		t.Fatalf("RemoveShowtime: %v", err)
	}

	cpx, _ := c.CineplexByName("Orchard")
	if _, ok := cpx.Schedule[st.Date]; ok {
		t.Error("date bucket still present after removing its only showtime")
	}
}

func TestRemoveShowtimeAbsentBucketIsNoop(t *testing.T) {
	c := newTestCatalog(t)
	cin := addCineplexWithCinema(t, c, "Orchard", "C1")

	if err := c.RemoveShowtime(uuid.New(), cin.ID, "Orchard", "2030-01-01", "10:00"); err != nil {
		t.Errorf("RemoveShowtime on absent bucket = %v, want nil", err)
	}
}

func TestRemoveShowtimeUnknownCineplex(t *testing.T) {
	c := newTestCatalog(t)
	err := c.RemoveShowtime(uuid.New(), uuid.New(), "Nowhere", "2030-01-01", "10:00")
	if !errors.Is(err, entity.ErrNotFound) {
		t.Errorf("RemoveShowtime = %v, want ErrNotFound", err)
	}
}

func TestListMoviesFiltersByStatus(t *testing.T) {
	c := newTestCatalog(t)
	if _, err := c.AddMovie(movieReq("Inception")); err != nil {
		t.Fatal(err)
	}
	soon := movieReq("Dune Part Three")
	soon.Status = "coming_soon"
	if _, err := c.AddMovie(soon); err != nil {
		t.Fatal(err)
	}

	showing := entity.MovieStatusShowing
	got := c.ListMovies(&showing)
	if len(got) != 1 || got[0].Title != "Inception" {
		t.Errorf("ListMovies(showing) = %d movies, want just Inception", len(got))
	}
	if all := c.ListMovies(nil); len(all) != 2 {
		t.Errorf("ListMovies(nil) = %d movies, want 2", len(all))
	}
}

func TestShowtimesForMovie(t *testing.T) {
	c := newTestCatalog(t)
	cinOrchard := addCineplexWithCinema(t, c, "Orchard", "C1")
	cinJurong := addCineplexWithCinema(t, c, "Jurong", "J1")
	movie, _ := c.AddMovie(movieReq("Inception"))
	other, _ := c.AddMovie(movieReq("Arrival"))

	add := func(cin entity.Cinema, cpx string, id uuid.UUID, date entity.DateKey) {
		t.Helper()
		st := entity.Showtime{MovieID: id, CinemaID: cin.ID, CineplexName: cpx, Date: date, Time: "19:30"}
		if err := c.AddShowtime(cpx, date, st); err != nil {
			t.Fatal(err)
		}
	}
	add(cinOrchard, "Orchard", movie.ID, "2024-03-10")
	add(cinJurong, "Jurong", movie.ID, "2024-03-11")
	add(cinOrchard, "Orchard", other.ID, "2024-03-12")

	got := c.ShowtimesForMovie(movie.ID)
	if len(got) != 2 {
		t.Fatalf("ShowtimesForMovie = %d showtimes, want 2", len(got))
	}
	for _, st := range got {
		if st.MovieID != movie.ID {
			t.Errorf("returned showtime for wrong movie: %+v", st)
		}
	}
}

func TestSearchMovies(t *testing.T) {
	c := newTestCatalog(t)
	if _, err := c.AddMovie(movieReq("The Dark Knight")); err != nil {
		t.Fatal(err)
	}

	if got := c.SearchMovies("dark"); len(got) != 1 {
		t.Errorf("SearchMovies(dark) = %d matches, want 1", len(got))
	}
	if got := c.SearchMovies("zzz"); len(got) != 0 {
		t.Errorf("SearchMovies(zzz) = %d matches, want 0", len(got))
	}
}

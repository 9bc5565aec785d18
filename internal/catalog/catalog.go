// Package catalog owns the movie list, the cineplexes with their
// cinemas, and the per-cineplex showtime schedule. It enforces key
// uniqueness and schedule collision rules; all prompting and formatting
// stays in the console layer.
package catalog

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"cinema-chain/internal/data/entity"
	"cinema-chain/internal/dto/request"
	"cinema-chain/pkg/utils"
)

type Catalog struct {
	movies     []*entity.Movie
	cineplexes map[string]*entity.Cineplex
	log        *zap.Logger
}

// New builds a catalog around state loaded from a snapshot. Both
// arguments may be nil/empty on first run.
func New(movies []*entity.Movie, cineplexes map[string]*entity.Cineplex, log *zap.Logger) *Catalog {
	if cineplexes == nil {
		cineplexes = make(map[string]*entity.Cineplex)
	}
	return &Catalog{
		movies:     movies,
		cineplexes: cineplexes,
		log:        log.With(zap.String("service", "catalog")),
	}
}

// ---- movies ----

func (c *Catalog) AddMovie(req *request.MovieRequest) (*entity.Movie, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		c.log.Warn("Add movie validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", entity.ErrValidation, utils.FormatValidationErrors(errs))
	}

	if _, err := c.MovieByTitle(req.Title); err == nil {
		return nil, fmt.Errorf("movie %q: %w", req.Title, entity.ErrDuplicateKey)
	}

	now := time.Now()
	movie := &entity.Movie{
		ID:        uuid.New(),
		Title:     req.Title,
		Director:  req.Director,
		Cast:      req.Cast,
		Synopsis:  req.Synopsis,
		Language:  entity.Language(req.Language),
		Subtitle:  entity.Subtitle(req.Subtitle),
		Status:    entity.MovieStatus(req.Status),
		Rating:    entity.MovieRating(req.Rating),
		Type:      entity.MovieType(req.Type),
		CreatedAt: now,
		UpdatedAt: now,
	}
	c.movies = append(c.movies, movie)

	c.log.Info("Movie added",
		zap.String("movie_id", movie.ID.String()),
		zap.String("title", movie.Title),
	)
	return movie, nil
}

func (c *Catalog) UpdateMovie(title string, req *request.MovieUpdateRequest) (*entity.Movie, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		c.log.Warn("Update movie validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", entity.ErrValidation, utils.FormatValidationErrors(errs))
	}

	movie, err := c.MovieByTitle(title)
	if err != nil {
		return nil, err
	}

	if req.Title != nil && *req.Title != movie.Title {
		if _, err := c.MovieByTitle(*req.Title); err == nil {
			return nil, fmt.Errorf("movie %q: %w", *req.Title, entity.ErrDuplicateKey)
		}
		movie.Title = *req.Title
	}
	if req.Director != nil {
		movie.Director = *req.Director
	}
	if req.Synopsis != nil {
		movie.Synopsis = *req.Synopsis
	}
	if req.Language != nil {
		movie.Language = entity.Language(*req.Language)
	}
	if req.Subtitle != nil {
		movie.Subtitle = entity.Subtitle(*req.Subtitle)
	}
	if req.Status != nil {
		movie.Status = entity.MovieStatus(*req.Status)
	}
	if req.Rating != nil {
		movie.Rating = entity.MovieRating(*req.Rating)
	}
	if req.Type != nil {
		movie.Type = entity.MovieType(*req.Type)
	}
	movie.UpdatedAt = time.Now()

	c.log.Info("Movie updated", zap.String("movie_id", movie.ID.String()))
	return movie, nil
}

// RemoveMovie deletes the movie from the listing. Showtimes that still
// reference it are left alone; their movie lookup fails from then on.
func (c *Catalog) RemoveMovie(title string) error {
	for i, m := range c.movies {
		if m.Title == title {
			c.movies = append(c.movies[:i], c.movies[i+1:]...)
			c.log.Info("Movie removed", zap.String("title", title))
			return nil
		}
	}
	return fmt.Errorf("movie %q: %w", title, entity.ErrNotFound)
}

// ListMovies returns movies in insertion order, optionally filtered by
// status. Callers must not mutate the returned slice.
func (c *Catalog) ListMovies(status *entity.MovieStatus) []*entity.Movie {
	if status == nil {
		return c.movies
	}

	var out []*entity.Movie
	for _, m := range c.movies {
		if m.Status == *status {
			out = append(out, m)
		}
	}
	return out
}

func (c *Catalog) MovieByTitle(title string) (*entity.Movie, error) {
	for _, m := range c.movies {
		if m.Title == title {
			return m, nil
		}
	}
	return nil, fmt.Errorf("movie %q: %w", title, entity.ErrNotFound)
}

func (c *Catalog) MovieByID(id uuid.UUID) (*entity.Movie, error) {
	for _, m := range c.movies {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, fmt.Errorf("movie %s: %w", id, entity.ErrNotFound)
}

// SearchMovies does a case-insensitive substring match on titles.
func (c *Catalog) SearchMovies(query string) []*entity.Movie {
	var out []*entity.Movie
	for _, m := range c.movies {
		if containsFold(m.Title, query) {
			out = append(out, m)
		}
	}
	return out
}

// ---- cineplexes and cinemas ----

func (c *Catalog) AddCineplex(req *request.CineplexRequest) (*entity.Cineplex, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		c.log.Warn("Add cineplex validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", entity.ErrValidation, utils.FormatValidationErrors(errs))
	}

	if _, ok := c.cineplexes[req.Name]; ok {
		return nil, fmt.Errorf("cineplex %q: %w", req.Name, entity.ErrDuplicateKey)
	}

	cpx := &entity.Cineplex{
		Name:     req.Name,
		Location: req.Location,
		Schedule: make(map[entity.DateKey][]entity.Showtime),
	}
	c.cineplexes[req.Name] = cpx

	c.log.Info("Cineplex added", zap.String("name", req.Name))
	return cpx, nil
}

func (c *Catalog) RemoveCineplex(name string) error {
	if _, ok := c.cineplexes[name]; !ok {
		return fmt.Errorf("cineplex %q: %w", name, entity.ErrNotFound)
	}
	delete(c.cineplexes, name)
	c.log.Info("Cineplex removed", zap.String("name", name))
	return nil
}

func (c *Catalog) CineplexByName(name string) (*entity.Cineplex, error) {
	cpx, ok := c.cineplexes[name]
	if !ok {
		return nil, fmt.Errorf("cineplex %q: %w", name, entity.ErrNotFound)
	}
	return cpx, nil
}

// ListCineplexes returns cineplexes sorted by name for stable display.
func (c *Catalog) ListCineplexes() []*entity.Cineplex {
	out := make([]*entity.Cineplex, 0, len(c.cineplexes))
	for _, cpx := range c.cineplexes {
		out = append(out, cpx)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// AddCinema rebuilds the cineplex's cinema list and re-stores the
// cineplex under its name, so the mapping is copy-on-write for this
// operation.
func (c *Catalog) AddCinema(req *request.CinemaRequest) (*entity.Cinema, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		c.log.Warn("Add cinema validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", entity.ErrValidation, utils.FormatValidationErrors(errs))
	}

	cpx, err := c.CineplexByName(req.CineplexName)
	if err != nil {
		return nil, err
	}

	if _, ok := cpx.CinemaByCode(req.Code); ok {
		return nil, fmt.Errorf("cinema %q in %q: %w", req.Code, cpx.Name, entity.ErrDuplicateKey)
	}

	cinema := entity.Cinema{
		ID:   uuid.New(),
		Code: req.Code,
		Type: entity.CinemaType(req.Type),
	}

	rebuilt := *cpx
	rebuilt.Cinemas = append(append([]entity.Cinema{}, cpx.Cinemas...), cinema)
	c.cineplexes[cpx.Name] = &rebuilt

	c.log.Info("Cinema added",
		zap.String("cineplex", cpx.Name),
		zap.String("code", cinema.Code),
		zap.String("type", string(cinema.Type)),
	)
	return &cinema, nil
}

func (c *Catalog) RemoveCinema(cineplexName, code string) error {
	cpx, err := c.CineplexByName(cineplexName)
	if err != nil {
		return err
	}

	found := false
	rebuilt := *cpx
	rebuilt.Cinemas = make([]entity.Cinema, 0, len(cpx.Cinemas))
	for _, cin := range cpx.Cinemas {
		if cin.Code == code {
			found = true
			continue
		}
		rebuilt.Cinemas = append(rebuilt.Cinemas, cin)
	}
	if !found {
		return fmt.Errorf("cinema %q in %q: %w", code, cineplexName, entity.ErrNotFound)
	}
	c.cineplexes[cpx.Name] = &rebuilt

	c.log.Info("Cinema removed",
		zap.String("cineplex", cineplexName),
		zap.String("code", code),
	)
	return nil
}

// ---- showtimes ----

// AddShowtime creates the date bucket on first insert and rejects a
// showtime that collides with an existing one on (cinema, date, time).
func (c *Catalog) AddShowtime(cineplexName string, date entity.DateKey, st entity.Showtime) error {
	cpx, err := c.CineplexByName(cineplexName)
	if err != nil {
		return err
	}

	for _, existing := range cpx.Schedule[date] {
		if existing.Collides(st) {
			return fmt.Errorf("showtime %s %s in cinema %s: %w",
				date, st.Time, st.CinemaID, entity.ErrDuplicateKey)
		}
	}

	cpx.Schedule[date] = append(cpx.Schedule[date], st)

	c.log.Info("Showtime added",
		zap.String("cineplex", cineplexName),
		zap.String("date", string(date)),
		zap.String("time", string(st.Time)),
		zap.String("movie_id", st.MovieID.String()),
	)
	return nil
}

// RemoveShowtime removes every showtime matching all five identity
// fields. A date bucket that was never created means nothing to remove,
// not an error; a bucket emptied by the removal is deleted so an
// add-then-remove pair leaves the schedule as it was.
func (c *Catalog) RemoveShowtime(movieID, cinemaID uuid.UUID, cineplexName string, date entity.DateKey, t entity.TimeKey) error {
	cpx, err := c.CineplexByName(cineplexName)
	if err != nil {
		return err
	}

	bucket, ok := cpx.Schedule[date]
	if !ok {
		return nil
	}

	target := entity.Showtime{
		MovieID:      movieID,
		CinemaID:     cinemaID,
		CineplexName: cineplexName,
		Date:         date,
		Time:         t,
	}

	kept := bucket[:0]
	removed := 0
	for _, st := range bucket {
		if st.Equal(target) {
			removed++
			continue
		}
		kept = append(kept, st)
	}

	if len(kept) == 0 {
		delete(cpx.Schedule, date)
	} else {
		cpx.Schedule[date] = kept
	}

	if removed > 0 {
		c.log.Info("Showtime removed",
			zap.String("cineplex", cineplexName),
			zap.String("date", string(date)),
			zap.String("time", string(t)),
			zap.Int("count", removed),
		)
	}
	return nil
}

// ShowtimesOn returns the showtimes for one cineplex and date, sorted
// by time then cinema.
func (c *Catalog) ShowtimesOn(cineplexName string, date entity.DateKey) ([]entity.Showtime, error) {
	cpx, err := c.CineplexByName(cineplexName)
	if err != nil {
		return nil, err
	}

	bucket := append([]entity.Showtime{}, cpx.Schedule[date]...)
	sort.Slice(bucket, func(i, j int) bool {
		if bucket[i].Time != bucket[j].Time {
			return bucket[i].Time < bucket[j].Time
		}
		return bucket[i].CinemaID.String() < bucket[j].CinemaID.String()
	})
	return bucket, nil
}

// ShowtimesForMovie scans every cineplex's schedule for the movie.
func (c *Catalog) ShowtimesForMovie(movieID uuid.UUID) []entity.Showtime {
	var out []entity.Showtime
	for _, cpx := range c.ListCineplexes() {
		dates := make([]entity.DateKey, 0, len(cpx.Schedule))
		for d := range cpx.Schedule {
			dates = append(dates, d)
		}
		sort.Slice(dates, func(i, j int) bool { return dates[i] < dates[j] })
		for _, d := range dates {
			for _, st := range cpx.Schedule[d] {
				if st.MovieID == movieID {
					out = append(out, st)
				}
			}
		}
	}
	return out
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// ---- snapshot access ----

func (c *Catalog) Movies() []*entity.Movie {
	return c.movies
}

func (c *Catalog) Cineplexes() map[string]*entity.Cineplex {
	return c.cineplexes
}

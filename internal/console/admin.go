package console

import (
	"go.uber.org/zap"

	"cinema-chain/internal/data/entity"
	"cinema-chain/internal/dto/request"
)

func (c *Console) adminLogin() {
	username := c.prompt("Username: ")
	password := c.prompt("Password: ")

	admin, err := c.app.Accounts.AuthenticateAdmin(username, password)
	if err != nil {
		c.printf("Login failed\n")
		return
	}
	c.adminMenu(admin)
}

func (c *Console) adminMenu(admin *entity.Admin) {
	for {
		c.printf("\n===== Admin Panel (%s) =====\n", admin.Username)
		c.printf("1. Add movie\n")
		c.printf("2. Edit movie\n")
		c.printf("3. Remove movie\n")
		c.printf("4. List movies\n")
		c.printf("5. Manage cineplexes\n")
		c.printf("6. Add showtime\n")
		c.printf("7. Remove showtime\n")
		c.printf("8. Configure ticket prices\n")
		c.printf("9. Sales report\n")
		c.printf("0. Logout\n")

		switch c.promptInt("Choice: ") {
		case 1:
			c.addMovie()
		case 2:
			c.editMovie()
		case 3:
			c.removeEntity("Movie title: ", c.app.Catalog.RemoveMovie)
		case 4:
			c.listMovies(nil)
		case 5:
			c.cineplexMenu()
		case 6:
			c.addShowtime()
		case 7:
			c.removeShowtime()
		case 8:
			c.priceMenu()
		case 9:
			c.salesReport()
		case 0:
			return
		default:
			c.printf("Invalid choice\n")
		}
	}
}

func (c *Console) addMovie() {
	req := &request.MovieRequest{
		Title:    c.prompt("Title: "),
		Director: c.prompt("Director: "),
		Cast:     c.promptList("Cast (comma separated): "),
		Synopsis: c.prompt("Synopsis: "),
		Language: c.prompt("Language (english/mandarin/malay/tamil): "),
		Subtitle: c.prompt("Subtitle (none/english/chinese): "),
		Status:   c.prompt("Status (coming_soon/showing/end_of_showing): "),
		Rating:   c.prompt("Rating (G/PG/PG13/NC16/M18/R21): "),
		Type:     c.prompt("Type (digital/3d/blockbuster_digital/blockbuster_3d): "),
	}

	movie, err := c.app.Catalog.AddMovie(req)
	if err != nil {
		c.printf("Error: %v\n", err)
		return
	}
	c.printf("Added %q\n", movie.Title)
}

func (c *Console) editMovie() {
	title := c.prompt("Movie title: ")
	if _, err := c.app.Catalog.MovieByTitle(title); err != nil {
		c.printf("Error: %v\n", err)
		return
	}

	req := &request.MovieUpdateRequest{}
	if v := c.prompt("New title (blank to keep): "); v != "" {
		req.Title = &v
	}
	if v := c.prompt("New director (blank to keep): "); v != "" {
		req.Director = &v
	}
	if v := c.prompt("New synopsis (blank to keep): "); v != "" {
		req.Synopsis = &v
	}
	if v := c.prompt("New status (blank to keep): "); v != "" {
		req.Status = &v
	}
	if v := c.prompt("New type (blank to keep): "); v != "" {
		req.Type = &v
	}

	if _, err := c.app.Catalog.UpdateMovie(title, req); err != nil {
		c.printf("Error: %v\n", err)
		return
	}
	c.printf("Updated\n")
}

func (c *Console) removeEntity(label string, remove func(string) error) {
	key := c.prompt(label)
	if err := remove(key); err != nil {
		c.printf("Error: %v\n", err)
		return
	}
	c.printf("Removed\n")
}

func (c *Console) listMovies(status *entity.MovieStatus) {
	movies := c.app.Catalog.ListMovies(status)
	if len(movies) == 0 {
		c.printf("No movies\n")
		return
	}
	for _, m := range movies {
		rating := "-"
		if m.OverallRating != nil {
			rating = c.fmtRating(*m.OverallRating)
		}
		c.printf("%-30s %-12s %-20s rating %s\n", m.Title, m.Status, m.Director, rating)
	}
}

func (c *Console) cineplexMenu() {
	for {
		c.printf("\n--- Cineplexes ---\n")
		c.printf("1. Add cineplex\n")
		c.printf("2. Remove cineplex\n")
		c.printf("3. Add cinema\n")
		c.printf("4. Remove cinema\n")
		c.printf("5. List cineplexes\n")
		c.printf("0. Back\n")

		switch c.promptInt("Choice: ") {
		case 1:
			req := &request.CineplexRequest{
				Name:     c.prompt("Name: "),
				Location: c.prompt("Location: "),
			}
			if _, err := c.app.Catalog.AddCineplex(req); err != nil {
				c.printf("Error: %v\n", err)
			}
		case 2:
			c.removeEntity("Cineplex name: ", c.app.Catalog.RemoveCineplex)
		case 3:
			req := &request.CinemaRequest{
				CineplexName: c.prompt("Cineplex name: "),
				Code:         c.prompt("Cinema code: "),
				Type:         c.prompt("Cinema type (standard/gold/platinum): "),
			}
			if _, err := c.app.Catalog.AddCinema(req); err != nil {
				c.printf("Error: %v\n", err)
			}
		case 4:
			name := c.prompt("Cineplex name: ")
			code := c.prompt("Cinema code: ")
			if err := c.app.Catalog.RemoveCinema(name, code); err != nil {
				c.printf("Error: %v\n", err)
			}
		case 5:
			for _, cpx := range c.app.Catalog.ListCineplexes() {
				c.printf("%-20s %-30s %d cinemas\n", cpx.Name, cpx.Location, len(cpx.Cinemas))
				for _, cin := range cpx.Cinemas {
					c.printf("    %-6s %s\n", cin.Code, cin.Type)
				}
			}
		case 0:
			return
		default:
			c.printf("Invalid choice\n")
		}
	}
}

func (c *Console) addShowtime() {
	req := &request.ShowtimeRequest{
		CineplexName: c.prompt("Cineplex name: "),
		CinemaCode:   c.prompt("Cinema code: "),
		MovieTitle:   c.prompt("Movie title: "),
		Date:         c.prompt("Date (2006-01-02): "),
		Time:         c.prompt("Time (15:04): "),
	}

	st, date, err := c.resolveShowtimeRequest(req)
	if err != nil {
		c.printf("Error: %v\n", err)
		return
	}

	if err := c.app.Catalog.AddShowtime(req.CineplexName, date, st); err != nil {
		c.printf("Error: %v\n", err)
		return
	}
	c.printf("Showtime added\n")
}

func (c *Console) removeShowtime() {
	req := &request.ShowtimeRequest{
		CineplexName: c.prompt("Cineplex name: "),
		CinemaCode:   c.prompt("Cinema code: "),
		MovieTitle:   c.prompt("Movie title: "),
		Date:         c.prompt("Date (2006-01-02): "),
		Time:         c.prompt("Time (15:04): "),
	}

	st, date, err := c.resolveShowtimeRequest(req)
	if err != nil {
		c.printf("Error: %v\n", err)
		return
	}

	if err := c.app.Catalog.RemoveShowtime(st.MovieID, st.CinemaID, req.CineplexName, date, st.Time); err != nil {
		c.printf("Error: %v\n", err)
		return
	}
	c.printf("Showtime removed\n")
}

// resolveShowtimeRequest validates the raw request and resolves its
// names to entity IDs.
func (c *Console) resolveShowtimeRequest(req *request.ShowtimeRequest) (entity.Showtime, entity.DateKey, error) {
	movie, err := c.app.Catalog.MovieByTitle(req.MovieTitle)
	if err != nil {
		return entity.Showtime{}, "", err
	}

	cpx, err := c.app.Catalog.CineplexByName(req.CineplexName)
	if err != nil {
		return entity.Showtime{}, "", err
	}

	cinema, ok := cpx.CinemaByCode(req.CinemaCode)
	if !ok {
		return entity.Showtime{}, "", entity.ErrNotFound
	}

	date, err := entity.ParseDateKey(req.Date)
	if err != nil {
		return entity.Showtime{}, "", err
	}
	t, err := entity.ParseTimeKey(req.Time)
	if err != nil {
		return entity.Showtime{}, "", err
	}

	return entity.Showtime{
		MovieID:      movie.ID,
		CinemaID:     cinema.ID,
		CineplexName: cpx.Name,
		Date:         date,
		Time:         t,
	}, date, nil
}

func (c *Console) priceMenu() {
	table := c.app.Pricing.Table()

	for {
		c.printf("\n--- Ticket Prices ---\n")
		c.printf("Base price: %.2f, weekend charge: %.2f\n", table.Base, table.WeekendCharge)
		c.printf("1. Set base price\n")
		c.printf("2. Set movie type surcharge\n")
		c.printf("3. Set cinema type surcharge\n")
		c.printf("4. Set age group adjustment\n")
		c.printf("5. Set weekend charge\n")
		c.printf("6. Add public holiday\n")
		c.printf("7. Remove public holiday\n")
		c.printf("0. Back\n")

		switch c.promptInt("Choice: ") {
		case 1:
			table.SetBasePrice(c.promptFloat("Base price: "))
		case 2:
			mt := entity.MovieType(c.prompt("Movie type: "))
			table.SetMovieTypeSurcharge(mt, c.promptFloat("Surcharge: "))
		case 3:
			ct := entity.CinemaType(c.prompt("Cinema type: "))
			table.SetCinemaTypeSurcharge(ct, c.promptFloat("Surcharge: "))
		case 4:
			ag := entity.AgeGroup(c.prompt("Age group: "))
			table.SetAgeGroupAdjustment(ag, c.promptFloat("Adjustment (negative = discount): "))
		case 5:
			table.SetWeekendCharge(c.promptFloat("Weekend charge: "))
		case 6:
			date, err := entity.ParseDateKey(c.prompt("Date (2006-01-02): "))
			if err != nil {
				c.printf("Error: %v\n", err)
				continue
			}
			table.SetHoliday(date, c.promptFloat("Holiday charge: "))
		case 7:
			date, err := entity.ParseDateKey(c.prompt("Date (2006-01-02): "))
			if err != nil {
				c.printf("Error: %v\n", err)
				continue
			}
			table.RemoveHoliday(date)
		case 0:
			if err := table.Validate(); err != nil {
				c.log.Error("Price table invalid after configuration", zap.Error(err))
				c.printf("Warning: %v\n", err)
			}
			return
		default:
			c.printf("Invalid choice\n")
		}
	}
}

func (c *Console) salesReport() {
	c.printf("\n--- Ticket Sales ---\n")
	for _, m := range c.app.Catalog.ListMovies(nil) {
		c.printf("%-30s %d tickets\n", m.Title, c.app.Ledger.SalesFor(m.Title))
	}
}

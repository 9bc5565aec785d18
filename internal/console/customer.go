package console

import (
	"cinema-chain/internal/data/entity"
	"cinema-chain/internal/dto/request"
	"cinema-chain/internal/ledger"
	"cinema-chain/pkg/utils"
)

func (c *Console) customerRegister() {
	req := &request.RegisterRequest{
		Username: c.prompt("Username: "),
		Password: c.prompt("Password: "),
		Name:     c.prompt("Name: "),
		Email:    c.prompt("Email: "),
		Phone:    c.prompt("Phone: "),
	}

	if _, err := c.app.Accounts.RegisterCustomer(req); err != nil {
		c.printf("Error: %v\n", err)
		return
	}
	c.printf("Registered, please log in\n")
}

func (c *Console) customerLogin() {
	username := c.prompt("Username: ")
	password := c.prompt("Password: ")

	customer, err := c.app.Accounts.AuthenticateCustomer(username, password)
	if err != nil {
		c.printf("Login failed\n")
		return
	}
	c.customerMenu(customer)
}

func (c *Console) customerMenu(customer *entity.Customer) {
	for {
		c.printf("\n===== Welcome, %s =====\n", customer.Name)
		c.printf("1. Browse movies\n")
		c.printf("2. Search movies\n")
		c.printf("3. View showtimes\n")
		c.printf("4. Book tickets\n")
		c.printf("5. Booking history\n")
		c.printf("6. Leave a review\n")
		c.printf("7. Top 5 movies\n")
		c.printf("0. Logout\n")

		switch c.promptInt("Choice: ") {
		case 1:
			showing := entity.MovieStatusShowing
			c.listMovies(&showing)
		case 2:
			c.searchMovies()
		case 3:
			c.viewShowtimes()
		case 4:
			c.bookTickets(customer)
		case 5:
			c.bookingHistory(customer)
		case 6:
			c.leaveReview(customer)
		case 7:
			c.topFive()
		case 0:
			return
		default:
			c.printf("Invalid choice\n")
		}
	}
}

func (c *Console) searchMovies() {
	query := c.prompt("Search: ")
	matches := c.app.Catalog.SearchMovies(query)
	if len(matches) == 0 {
		c.printf("No matches\n")
		return
	}
	for _, m := range matches {
		c.printf("%-30s %-12s %s\n", m.Title, m.Status, m.Synopsis)
		for _, st := range c.app.Catalog.ShowtimesForMovie(m.ID) {
			c.printf("    %s %s  %s\n", st.Date, st.Time, st.CineplexName)
		}
	}
}

func (c *Console) viewShowtimes() {
	name := c.prompt("Cineplex name: ")
	date, err := entity.ParseDateKey(c.prompt("Date (2006-01-02): "))
	if err != nil {
		c.printf("Error: %v\n", err)
		return
	}

	showtimes, err := c.app.Catalog.ShowtimesOn(name, date)
	if err != nil {
		c.printf("Error: %v\n", err)
		return
	}
	if len(showtimes) == 0 {
		c.printf("No showtimes on %s\n", date)
		return
	}

	for _, st := range showtimes {
		title := "(removed movie)"
		if movie, err := c.app.Catalog.MovieByID(st.MovieID); err == nil {
			title = movie.Title
		}
		code := st.CinemaID.String()[:8]
		if cpx, err := c.app.Catalog.CineplexByName(name); err == nil {
			if cin, ok := cpx.CinemaByID(st.CinemaID); ok {
				code = cin.Code
			}
		}
		c.printf("%s  cinema %-6s %s\n", st.Time, code, title)
	}
}

func (c *Console) bookTickets(customer *entity.Customer) {
	req := &request.BookingRequest{
		CineplexName: c.prompt("Cineplex name: "),
		CinemaCode:   c.prompt("Cinema code: "),
		MovieTitle:   c.prompt("Movie title: "),
		Date:         c.prompt("Date (2006-01-02): "),
		Time:         c.prompt("Time (15:04): "),
		AgeGroups:    c.promptList("Age groups, one per ticket (child/adult/senior, comma separated): "),
	}

	bkg, err := c.app.Booking.BookTickets(customer.Username, req)
	if err != nil {
		c.printf("Error: %v\n", err)
		return
	}

	c.printf("Booked %d ticket(s), total %.2f\n", len(bkg.Tickets), bkg.TotalPrice)
	c.printf("Transaction ID: %s\n", bkg.TransactionID)
}

func (c *Console) bookingHistory(customer *entity.Customer) {
	if len(customer.Bookings) == 0 {
		c.printf("No bookings yet\n")
		return
	}
	for _, b := range customer.Bookings {
		c.printf("%s  %s %s  %-30s %d ticket(s)  %.2f\n",
			b.TransactionID, b.Date, b.Time, b.MovieTitle, len(b.Tickets), b.TotalPrice)
	}
}

func (c *Console) leaveReview(customer *entity.Customer) {
	req := &request.ReviewRequest{
		MovieTitle: c.prompt("Movie title: "),
		Score:      c.promptFloat("Score (0-5): "),
		Comment:    c.prompt("Comment: "),
	}

	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		c.printf("Error: %s\n", utils.FormatValidationErrors(errs))
		return
	}

	movie, err := c.app.Catalog.MovieByTitle(req.MovieTitle)
	if err != nil {
		c.printf("Error: %v\n", err)
		return
	}

	c.app.Ledger.AddReview(movie, customer.Username, req.Score, req.Comment)
	c.printf("Review added, overall rating now %s\n", c.fmtRating(*movie.OverallRating))
}

func (c *Console) topFive() {
	c.printf("\n--- Top 5 by ticket sales ---\n")
	for i, r := range c.app.Ledger.TopBySales(5) {
		c.printf("%d. %-30s %d tickets\n", i+1, r.Title, r.Sold)
	}

	c.printf("\n--- Top 5 by rating ---\n")
	for i, r := range ledger.TopByRating(c.app.Catalog.ListMovies(nil), 5) {
		c.printf("%d. %-30s %s\n", i+1, r.Title, c.fmtRating(r.Rating))
	}
}

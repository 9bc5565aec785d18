package request

type BookingRequest struct {
	CineplexName string   `validate:"required,min=1"`
	CinemaCode   string   `validate:"required,min=1"`
	MovieTitle   string   `validate:"required,min=1"`
	Date         string   `validate:"required,datetime=2006-01-02"`
	Time         string   `validate:"required,datetime=15:04"`
	AgeGroups    []string `validate:"required,min=1,dive,oneof=child adult senior"`
}

type ReviewRequest struct {
	MovieTitle string  `validate:"required,min=1"`
	Score      float64 `validate:"required,min=0,max=5"`
	Comment    string  `validate:"omitempty,max=500"`
}

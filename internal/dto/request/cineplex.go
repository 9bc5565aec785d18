package request

type CineplexRequest struct {
	Name     string `validate:"required,min=1,max=100"`
	Location string `validate:"omitempty,max=200"`
}

type CinemaRequest struct {
	CineplexName string `validate:"required,min=1"`
	Code         string `validate:"required,min=1,max=10"`
	Type         string `validate:"required,oneof=standard gold platinum"`
}

type ShowtimeRequest struct {
	CineplexName string `validate:"required,min=1"`
	CinemaCode   string `validate:"required,min=1"`
	MovieTitle   string `validate:"required,min=1"`
	Date         string `validate:"required,datetime=2006-01-02"`
	Time         string `validate:"required,datetime=15:04"`
}

package request

type RegisterRequest struct {
	Username string `validate:"required,min=3,max=50"`
	Password string `validate:"required,min=6,max=100"`
	Name     string `validate:"required,min=1,max=100"`
	Email    string `validate:"required,email"`
	Phone    string `validate:"omitempty,min=8,max=20"`
}

type LoginRequest struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

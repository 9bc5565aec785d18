package request

type MovieRequest struct {
	Title    string   `validate:"required,min=1,max=200"`
	Director string   `validate:"required,min=1,max=100"`
	Cast     []string `validate:"required,min=1,dive,min=1"`
	Synopsis string   `validate:"required,min=1"`
	Language string   `validate:"required,oneof=english mandarin malay tamil"`
	Subtitle string   `validate:"required,oneof=none english chinese"`
	Status   string   `validate:"required,oneof=coming_soon showing end_of_showing"`
	Rating   string   `validate:"required,oneof=G PG PG13 NC16 M18 R21"`
	Type     string   `validate:"required,oneof=digital 3d blockbuster_digital blockbuster_3d"`
}

type MovieUpdateRequest struct {
	Title    *string `validate:"omitempty,min=1,max=200"`
	Director *string `validate:"omitempty,min=1,max=100"`
	Synopsis *string `validate:"omitempty,min=1"`
	Language *string `validate:"omitempty,oneof=english mandarin malay tamil"`
	Subtitle *string `validate:"omitempty,oneof=none english chinese"`
	Status   *string `validate:"omitempty,oneof=coming_soon showing end_of_showing"`
	Rating   *string `validate:"omitempty,oneof=G PG PG13 NC16 M18 R21"`
	Type     *string `validate:"omitempty,oneof=digital 3d blockbuster_digital blockbuster_3d"`
}

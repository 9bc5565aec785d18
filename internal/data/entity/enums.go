package entity

// Declaration order of every enum below is load-bearing: the snapshot
// file stores price tables as positional arrays aligned to these slices.
// New values go at the end.

type MovieType string

const (
	MovieTypeDigital            MovieType = "digital"
	MovieTypeThreeD             MovieType = "3d"
	MovieTypeBlockbusterDigital MovieType = "blockbuster_digital"
	MovieTypeBlockbusterThreeD  MovieType = "blockbuster_3d"
)

func AllMovieTypes() []MovieType {
	return []MovieType{
		MovieTypeDigital,
		MovieTypeThreeD,
		MovieTypeBlockbusterDigital,
		MovieTypeBlockbusterThreeD,
	}
}

type CinemaType string

const (
	CinemaTypeStandard CinemaType = "standard"
	CinemaTypeGold     CinemaType = "gold"
	CinemaTypePlatinum CinemaType = "platinum"
)

func AllCinemaTypes() []CinemaType {
	return []CinemaType{
		CinemaTypeStandard,
		CinemaTypeGold,
		CinemaTypePlatinum,
	}
}

type AgeGroup string

const (
	AgeGroupChild  AgeGroup = "child"
	AgeGroupAdult  AgeGroup = "adult"
	AgeGroupSenior AgeGroup = "senior"
)

func AllAgeGroups() []AgeGroup {
	return []AgeGroup{
		AgeGroupChild,
		AgeGroupAdult,
		AgeGroupSenior,
	}
}

type MovieStatus string

const (
	MovieStatusComingSoon   MovieStatus = "coming_soon"
	MovieStatusShowing      MovieStatus = "showing"
	MovieStatusEndOfShowing MovieStatus = "end_of_showing"
)

type Language string

const (
	LanguageEnglish  Language = "english"
	LanguageMandarin Language = "mandarin"
	LanguageMalay    Language = "malay"
	LanguageTamil    Language = "tamil"
)

type Subtitle string

const (
	SubtitleNone    Subtitle = "none"
	SubtitleEnglish Subtitle = "english"
	SubtitleChinese Subtitle = "chinese"
)

type MovieRating string

const (
	MovieRatingG    MovieRating = "G"
	MovieRatingPG   MovieRating = "PG"
	MovieRatingPG13 MovieRating = "PG13"
	MovieRatingNC16 MovieRating = "NC16"
	MovieRatingM18  MovieRating = "M18"
	MovieRatingR21  MovieRating = "R21"
)

package model

// Film represents one title in the rental catalogue.  A film is linked
// to a language, to actors through film_actor and to categories through
// film_category; physical copies live in the inventory table.
//
// Fields:
//  FilmID          – primary key identifier.
//  Title           – film title.
//  Description     – synopsis text (nullable).
//  ReleaseYear     – year of release (nullable).
//  LanguageID      – spoken language reference.
//  RentalDuration  – standard rental period in days.
//  RentalRate      – rental price, DECIMAL(4,2) in the schema, carried
//                    as a float so it serializes as a JSON number.
//  Length          – running time in minutes (nullable).
//  Rating          – MPAA code, one of G, PG, PG-13, R, NC-17.
//  SpecialFeatures – comma separated feature list (nullable).
type Film struct {
	FilmID          uint64  `json:"film_id"`          // film.film_id
	Title           string  `json:"title"`            // film.title
	Description     *string `json:"description"`      // film.description (nullable)
	ReleaseYear     *int    `json:"release_year"`     // film.release_year (nullable)
	LanguageID      uint64  `json:"language_id"`      // film.language_id
	RentalDuration  int     `json:"rental_duration"`  // film.rental_duration
	RentalRate      float64 `json:"rental_rate"`      // film.rental_rate
	Length          *int    `json:"length"`           // film.length (nullable)
	Rating          string  `json:"rating"`           // film.rating
	SpecialFeatures *string `json:"special_features"` // film.special_features (nullable)
}

package model

// Movie is a single catalog entry.  The catalog stores whatever the
// client submits; there is no rating-range or duration validation at
// this layer.
//
// Fields:
//  ID          – primary key identifier, assigned by the database.
//  Title       – movie title.
//  Genre       – genre label, matched exactly (case-sensitive) by the
//                genre filter.
//  Director    – director name.
//  Duration    – running time in minutes.
//  Description – free-form synopsis.
//  Rating      – average rating.
type Movie struct {
    ID          uint64  `json:"id"`          // movies.id
    Title       string  `json:"title"`       // movies.title
    Genre       string  `json:"genre"`       // movies.genre
    Director    string  `json:"director"`    // movies.director
    Duration    int     `json:"duration"`    // movies.duration (minutes)
    Description string  `json:"description"` // movies.description
    Rating      float64 `json:"rating"`      // movies.rating
}

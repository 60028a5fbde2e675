package model

import "time"

// Booking status values.  The column itself is a plain string and the
// update operation writes whatever status the caller supplies; these
// constants cover the two transitions the service performs itself.
const (
    StatusConfirmed = "CONFIRMED" // entry state, forced on create
    StatusCancelled = "CANCELLED" // set by the cancel operation
)

// Booking records a user's seats for a movie showing.  MovieID and
// MovieTitle are a value snapshot taken at booking time; they are not
// kept in sync with the movie catalog and no referential integrity is
// enforced between the two services.
//
// Fields:
//  ID            – primary key identifier, assigned by the database.
//  UserID        – user who made the booking (reference by value).
//  MovieID       – booked movie (reference by value).
//  MovieTitle    – movie title snapshot taken at creation.
//  NumberOfSeats – seats booked.
//  TotalPrice    – total price for all seats.
//  ShowTime      – when the show starts (UTC).
//  Status        – booking state, conventionally CONFIRMED or CANCELLED.
//  BookingDate   – set once at creation, never altered afterwards.
type Booking struct {
    ID            uint64    `json:"id"`            // bookings.id
    UserID        uint64    `json:"userId"`        // bookings.user_id
    MovieID       uint64    `json:"movieId"`       // bookings.movie_id
    MovieTitle    string    `json:"movieTitle"`    // bookings.movie_title
    NumberOfSeats int       `json:"numberOfSeats"` // bookings.number_of_seats
    TotalPrice    float64   `json:"totalPrice"`    // bookings.total_price
    ShowTime      time.Time `json:"showTime"`      // bookings.show_time
    Status        string    `json:"status"`        // bookings.status
    BookingDate   time.Time `json:"bookingDate"`   // bookings.booking_date
}

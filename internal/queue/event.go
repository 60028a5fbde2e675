// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingCreatedEvent is published when a booking is created.  It
// carries enough information for downstream consumers to log, notify,
// or trigger analytics without querying the primary database.
type BookingCreatedEvent struct {
    BookingID     uint64  `json:"booking_id"`
    UserID        uint64  `json:"user_id"`
    MovieID       uint64  `json:"movie_id"`
    MovieTitle    string  `json:"movie_title"`
    NumberOfSeats int     `json:"number_of_seats"`
    TotalPrice    float64 `json:"total_price"`
    ShowTime      string  `json:"show_time"`
    BookingDate   string  `json:"booking_date"`
}

// BookingCancelledEvent is published when a booking is cancelled.
type BookingCancelledEvent struct {
    BookingID   uint64 `json:"booking_id"`
    UserID      uint64 `json:"user_id"`
    MovieID     uint64 `json:"movie_id"`
    MovieTitle  string `json:"movie_title"`
    CancelledAt string `json:"cancelled_at"`
}

// Package repository contains data access logic for bookings.  A
// booking row carries a denormalized movie id/title snapshot; nothing
// here cross-checks the movie catalog.
package repository

import (
    "context"
    "database/sql"
    "errors"

    "github.com/iliyamo/movie-booking/internal/model"
)

const bookingCols = `id, user_id, movie_id, movie_title, number_of_seats, total_price, show_time, status, booking_date`

// BookingRepo manages persistence for bookings.
type BookingRepo struct {
    db *sql.DB
}

// NewBookingRepo constructs a BookingRepo with the given DB handle.
func NewBookingRepo(db *sql.DB) *BookingRepo {
    return &BookingRepo{db: db}
}

// DB exposes the underlying sql.DB.
func (r *BookingRepo) DB() *sql.DB {
    return r.db
}

func scanBooking(row interface{ Scan(...any) error }, b *model.Booking) error {
    return row.Scan(&b.ID, &b.UserID, &b.MovieID, &b.MovieTitle, &b.NumberOfSeats,
        &b.TotalPrice, &b.ShowTime, &b.Status, &b.BookingDate)
}

// List returns every booking in store order, empty slice when none.
func (r *BookingRepo) List(ctx context.Context) ([]model.Booking, error) {
    const q = `SELECT ` + bookingCols + ` FROM bookings`
    return r.queryBookings(ctx, q)
}

// GetByID retrieves a booking by its ID.  It returns ErrBookingNotFound
// if there is no matching row.
func (r *BookingRepo) GetByID(ctx context.Context, id uint64) (*model.Booking, error) {
    const q = `SELECT ` + bookingCols + ` FROM bookings WHERE id = ?`
    var b model.Booking
    if err := scanBooking(r.db.QueryRowContext(ctx, q, id), &b); err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return nil, ErrBookingNotFound
        }
        return nil, err
    }
    return &b, nil
}

// ListByUser returns all bookings made by the given user.
func (r *BookingRepo) ListByUser(ctx context.Context, userID uint64) ([]model.Booking, error) {
    const q = `SELECT ` + bookingCols + ` FROM bookings WHERE user_id = ?`
    return r.queryBookings(ctx, q, userID)
}

// ListByMovie returns all bookings referencing the given movie ID.
func (r *BookingRepo) ListByMovie(ctx context.Context, movieID uint64) ([]model.Booking, error) {
    const q = `SELECT ` + bookingCols + ` FROM bookings WHERE movie_id = ?`
    return r.queryBookings(ctx, q, movieID)
}

// ListByStatus returns all bookings whose status equals the argument
// exactly.
func (r *BookingRepo) ListByStatus(ctx context.Context, status string) ([]model.Booking, error) {
    const q = `SELECT ` + bookingCols + ` FROM bookings WHERE status = ?`
    return r.queryBookings(ctx, q, status)
}

// Create inserts a new booking and assigns the generated ID back to the
// struct.  Status and BookingDate are expected to have been set by the
// service layer before this call.
func (r *BookingRepo) Create(ctx context.Context, b *model.Booking) error {
    const q = `INSERT INTO bookings (user_id, movie_id, movie_title, number_of_seats, total_price, show_time, status, booking_date)
               VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
    res, err := r.db.ExecContext(ctx, q, b.UserID, b.MovieID, b.MovieTitle, b.NumberOfSeats,
        b.TotalPrice, b.ShowTime, b.Status, b.BookingDate)
    if err != nil {
        return err
    }
    id, err := res.LastInsertId()
    if err != nil {
        return err
    }
    b.ID = uint64(id)
    return nil
}

// Update overwrites the mutable columns of the booking identified by
// b.ID: seats, price, show time and status.  User, movie snapshot and
// booking date are never touched.  A zero affected-row count is
// disambiguated with an existence probe, as in MovieRepo.Update.
func (r *BookingRepo) Update(ctx context.Context, b *model.Booking) error {
    const q = `UPDATE bookings SET number_of_seats = ?, total_price = ?, show_time = ?, status = ? WHERE id = ?`
    res, err := r.db.ExecContext(ctx, q, b.NumberOfSeats, b.TotalPrice, b.ShowTime, b.Status, b.ID)
    if err != nil {
        return err
    }
    if n, _ := res.RowsAffected(); n > 0 {
        return nil
    }
    return r.exists(ctx, b.ID)
}

// UpdateStatus sets only the status column.  Writing the value a row
// already holds affects zero rows but still succeeds, which makes the
// cancel operation idempotent.
func (r *BookingRepo) UpdateStatus(ctx context.Context, id uint64, status string) error {
    const q = `UPDATE bookings SET status = ? WHERE id = ?`
    res, err := r.db.ExecContext(ctx, q, status, id)
    if err != nil {
        return err
    }
    if n, _ := res.RowsAffected(); n > 0 {
        return nil
    }
    return r.exists(ctx, id)
}

// Delete removes a booking by ID.  Absence is a silent no-op.
func (r *BookingRepo) Delete(ctx context.Context, id uint64) error {
    const q = `DELETE FROM bookings WHERE id = ?`
    _, err := r.db.ExecContext(ctx, q, id)
    return err
}

func (r *BookingRepo) exists(ctx context.Context, id uint64) error {
    const q = `SELECT 1 FROM bookings WHERE id = ? LIMIT 1`
    var one int
    if err := r.db.QueryRowContext(ctx, q, id).Scan(&one); err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return ErrBookingNotFound
        }
        return err
    }
    return nil
}

func (r *BookingRepo) queryBookings(ctx context.Context, q string, args ...any) ([]model.Booking, error) {
    rows, err := r.db.QueryContext(ctx, q, args...)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    result := make([]model.Booking, 0)
    for rows.Next() {
        var b model.Booking
        if err := scanBooking(rows, &b); err != nil {
            return nil, err
        }
        result = append(result, b)
    }
    if err := rows.Err(); err != nil {
        return nil, err
    }
    return result, nil
}

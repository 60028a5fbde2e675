package service

import (
    "context"
    "time"

    "github.com/iliyamo/movie-booking/internal/model"
    "github.com/iliyamo/movie-booking/internal/queue"
    "github.com/iliyamo/movie-booking/internal/repository"
)

// EventPublisher sends booking lifecycle events to the broker.  The
// service treats publication as best-effort: a failing publisher never
// fails the request, so implementations should log their own errors.
type EventPublisher interface {
    BookingCreated(ctx context.Context, ev queue.BookingCreatedEvent) error
    BookingCancelled(ctx context.Context, ev queue.BookingCancelledEvent) error
}

// BookingService owns the booking lifecycle.  Create forces the entry
// status and booking date; Cancel is the only guarded transition.  The
// update operation deliberately writes whatever status the caller
// supplies, matching the behavior the HTTP API has always had.
type BookingService struct {
    bookings *repository.BookingRepo
    events   EventPublisher // may be nil, e.g. in tests
}

// NewBookingService constructs a BookingService.  events may be nil to
// disable publication.
func NewBookingService(bookings *repository.BookingRepo, events EventPublisher) *BookingService {
    return &BookingService{bookings: bookings, events: events}
}

// GetAll returns every booking.
func (s *BookingService) GetAll(ctx context.Context) ([]model.Booking, error) {
    return s.bookings.List(ctx)
}

// GetByID returns the booking or repository.ErrBookingNotFound.
func (s *BookingService) GetByID(ctx context.Context, id uint64) (*model.Booking, error) {
    return s.bookings.GetByID(ctx, id)
}

// GetByUser returns all bookings made by the given user.
func (s *BookingService) GetByUser(ctx context.Context, userID uint64) ([]model.Booking, error) {
    return s.bookings.ListByUser(ctx, userID)
}

// GetByMovie returns all bookings for the given movie id.
func (s *BookingService) GetByMovie(ctx context.Context, movieID uint64) ([]model.Booking, error) {
    return s.bookings.ListByMovie(ctx, movieID)
}

// GetByStatus returns all bookings whose status matches exactly.
func (s *BookingService) GetByStatus(ctx context.Context, status string) ([]model.Booking, error) {
    return s.bookings.ListByStatus(ctx, status)
}

// Create persists a new booking.  Whatever status and booking date the
// caller supplied are discarded: status always starts as CONFIRMED and
// the booking date is the creation instant.  Everything else (user,
// movie snapshot, seats, price, show time) is stored verbatim with no
// cross-check against the movie catalog.
func (s *BookingService) Create(ctx context.Context, b *model.Booking) error {
    b.Status = model.StatusConfirmed
    b.BookingDate = time.Now().UTC().Truncate(time.Second)
    if err := s.bookings.Create(ctx, b); err != nil {
        return err
    }
    if s.events != nil {
        // Best-effort: the publisher logs its own failures.
        _ = s.events.BookingCreated(ctx, queue.BookingCreatedEvent{
            BookingID:     b.ID,
            UserID:        b.UserID,
            MovieID:       b.MovieID,
            MovieTitle:    b.MovieTitle,
            NumberOfSeats: b.NumberOfSeats,
            TotalPrice:    b.TotalPrice,
            ShowTime:      b.ShowTime.UTC().Format(time.RFC3339),
            BookingDate:   b.BookingDate.Format(time.RFC3339),
        })
    }
    return nil
}

// Update overwrites seats, price, show time and status of the booking
// identified by id.  User, movie snapshot and booking date cannot be
// changed through this operation.  It returns
// repository.ErrBookingNotFound when the id does not exist, otherwise
// the freshly stored row.
func (s *BookingService) Update(ctx context.Context, id uint64, details model.Booking) (*model.Booking, error) {
    b := model.Booking{
        ID:            id,
        NumberOfSeats: details.NumberOfSeats,
        TotalPrice:    details.TotalPrice,
        ShowTime:      details.ShowTime,
        Status:        details.Status,
    }
    if err := s.bookings.Update(ctx, &b); err != nil {
        return nil, err
    }
    // Re-read so the caller sees the immutable columns too.
    return s.bookings.GetByID(ctx, id)
}

// Cancel sets the booking's status to CANCELLED and leaves every other
// field untouched.  Cancelling an already-cancelled booking succeeds
// again with no state change.  It returns
// repository.ErrBookingNotFound when the id does not exist.
func (s *BookingService) Cancel(ctx context.Context, id uint64) error {
    b, err := s.bookings.GetByID(ctx, id)
    if err != nil {
        return err
    }
    if err := s.bookings.UpdateStatus(ctx, id, model.StatusCancelled); err != nil {
        return err
    }
    if s.events != nil {
        _ = s.events.BookingCancelled(ctx, queue.BookingCancelledEvent{
            BookingID:   b.ID,
            UserID:      b.UserID,
            MovieID:     b.MovieID,
            MovieTitle:  b.MovieTitle,
            CancelledAt: time.Now().UTC().Format(time.RFC3339),
        })
    }
    return nil
}

// Delete removes the booking; a missing id is a silent no-op.
func (s *BookingService) Delete(ctx context.Context, id uint64) error {
    return s.bookings.Delete(ctx, id)
}

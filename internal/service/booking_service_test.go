package service

import (
    "context"
    "errors"
    "testing"
    "time"

    "github.com/DATA-DOG/go-sqlmock"

    "github.com/iliyamo/movie-booking/internal/model"
    "github.com/iliyamo/movie-booking/internal/queue"
    "github.com/iliyamo/movie-booking/internal/repository"
)

// fakePublisher records published events instead of talking to a broker.
type fakePublisher struct {
    created   []queue.BookingCreatedEvent
    cancelled []queue.BookingCancelledEvent
}

func (f *fakePublisher) BookingCreated(_ context.Context, ev queue.BookingCreatedEvent) error {
    f.created = append(f.created, ev)
    return nil
}

func (f *fakePublisher) BookingCancelled(_ context.Context, ev queue.BookingCancelledEvent) error {
    f.cancelled = append(f.cancelled, ev)
    return nil
}

func newBookingServiceMock(t *testing.T, events EventPublisher) (*BookingService, sqlmock.Sqlmock, func()) {
    t.Helper()
    db, mock, err := sqlmock.New()
    if err != nil {
        t.Fatalf("sqlmock init error: %v", err)
    }
    return NewBookingService(repository.NewBookingRepo(db), events), mock, func() { db.Close() }
}

func bookingRow(id uint64, status string, booked time.Time) *sqlmock.Rows {
    return sqlmock.NewRows([]string{"id", "user_id", "movie_id", "movie_title",
        "number_of_seats", "total_price", "show_time", "status", "booking_date"}).
        AddRow(id, 7, 1, "Dune", 3, 45.0, booked.Add(24*time.Hour), status, booked)
}

func TestBookingServiceCreateForcesStatusAndDate(t *testing.T) {
    pub := &fakePublisher{}
    svc, mock, done := newBookingServiceMock(t, pub)
    defer done()

    mock.ExpectExec("INSERT INTO bookings").
        WithArgs(uint64(7), uint64(1), "Dune", 3, 45.0, sqlmock.AnyArg(), model.StatusConfirmed, sqlmock.AnyArg()).
        WillReturnResult(sqlmock.NewResult(1, 1))

    // Caller tries to smuggle in a status and a booking date; both must
    // be discarded.
    b := model.Booking{
        UserID:        7,
        MovieID:       1,
        MovieTitle:    "Dune",
        NumberOfSeats: 3,
        TotalPrice:    45.0,
        ShowTime:      time.Now().Add(24 * time.Hour),
        Status:        "CANCELLED",
        BookingDate:   time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC),
    }
    before := time.Now().UTC().Add(-2 * time.Second)
    if err := svc.Create(context.Background(), &b); err != nil {
        t.Fatalf("create error: %v", err)
    }
    if b.Status != model.StatusConfirmed {
        t.Fatalf("expected status CONFIRMED, got %q", b.Status)
    }
    if b.BookingDate.Before(before) || b.BookingDate.After(time.Now().UTC().Add(2*time.Second)) {
        t.Fatalf("booking date not set to creation instant: %v", b.BookingDate)
    }
    if b.ID != 1 {
        t.Fatalf("expected id 1, got %d", b.ID)
    }
    if len(pub.created) != 1 || pub.created[0].BookingID != 1 || pub.created[0].MovieTitle != "Dune" {
        t.Fatalf("expected one created event, got %#v", pub.created)
    }
    if err := mock.ExpectationsWereMet(); err != nil {
        t.Fatalf("unmet expectations: %v", err)
    }
}

func TestBookingServiceCancelSetsStatusAndPublishes(t *testing.T) {
    pub := &fakePublisher{}
    svc, mock, done := newBookingServiceMock(t, pub)
    defer done()

    booked := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
    mock.ExpectQuery("FROM bookings WHERE id =").WithArgs(uint64(11)).
        WillReturnRows(bookingRow(11, model.StatusConfirmed, booked))
    mock.ExpectExec("UPDATE bookings SET status =").
        WithArgs(model.StatusCancelled, uint64(11)).
        WillReturnResult(sqlmock.NewResult(0, 1))

    if err := svc.Cancel(context.Background(), 11); err != nil {
        t.Fatalf("cancel error: %v", err)
    }
    if len(pub.cancelled) != 1 || pub.cancelled[0].BookingID != 11 || pub.cancelled[0].UserID != 7 {
        t.Fatalf("expected one cancelled event, got %#v", pub.cancelled)
    }
}

func TestBookingServiceCancelMissingReturnsNotFound(t *testing.T) {
    pub := &fakePublisher{}
    svc, mock, done := newBookingServiceMock(t, pub)
    defer done()

    mock.ExpectQuery("FROM bookings WHERE id =").WithArgs(uint64(99)).
        WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "movie_id", "movie_title",
            "number_of_seats", "total_price", "show_time", "status", "booking_date"}))

    if err := svc.Cancel(context.Background(), 99); !errors.Is(err, repository.ErrBookingNotFound) {
        t.Fatalf("expected ErrBookingNotFound, got %v", err)
    }
    if len(pub.cancelled) != 0 {
        t.Fatalf("no event expected for a missing booking, got %#v", pub.cancelled)
    }
}

func TestBookingServiceUpdateReturnsFreshRow(t *testing.T) {
    svc, mock, done := newBookingServiceMock(t, nil)
    defer done()

    booked := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
    show := booked.Add(48 * time.Hour)
    mock.ExpectExec("UPDATE bookings SET number_of_seats =").
        WithArgs(5, 75.0, show, "CONFIRMED", uint64(11)).
        WillReturnResult(sqlmock.NewResult(0, 1))
    mock.ExpectQuery("FROM bookings WHERE id =").WithArgs(uint64(11)).
        WillReturnRows(bookingRow(11, "CONFIRMED", booked))

    details := model.Booking{
        // Caller-supplied immutable fields are ignored by update.
        UserID:        1234,
        MovieID:       999,
        MovieTitle:    "Other",
        NumberOfSeats: 5,
        TotalPrice:    75.0,
        ShowTime:      show,
        Status:        "CONFIRMED",
    }
    b, err := svc.Update(context.Background(), 11, details)
    if err != nil {
        t.Fatalf("update error: %v", err)
    }
    // The fresh row keeps the stored user/movie snapshot.
    if b.UserID != 7 || b.MovieID != 1 || b.MovieTitle != "Dune" {
        t.Fatalf("immutable fields leaked into update: %+v", b)
    }
    if !b.BookingDate.Equal(booked) {
        t.Fatalf("booking date must not change on update: %v", b.BookingDate)
    }
}

func TestBookingServiceUpdateMissingReturnsNotFound(t *testing.T) {
    svc, mock, done := newBookingServiceMock(t, nil)
    defer done()

    mock.ExpectExec("UPDATE bookings SET number_of_seats =").
        WillReturnResult(sqlmock.NewResult(0, 0))
    mock.ExpectQuery("SELECT 1 FROM bookings WHERE id =").WithArgs(uint64(404)).
        WillReturnRows(sqlmock.NewRows([]string{"1"}))

    if _, err := svc.Update(context.Background(), 404, model.Booking{NumberOfSeats: 2}); !errors.Is(err, repository.ErrBookingNotFound) {
        t.Fatalf("expected ErrBookingNotFound, got %v", err)
    }
}

package service

import (
    "context"
    "errors"
    "testing"

    "github.com/DATA-DOG/go-sqlmock"

    "github.com/iliyamo/movie-booking/internal/model"
    "github.com/iliyamo/movie-booking/internal/repository"
)

func newMovieServiceMock(t *testing.T) (*MovieService, sqlmock.Sqlmock, func()) {
    t.Helper()
    db, mock, err := sqlmock.New()
    if err != nil {
        t.Fatalf("sqlmock init error: %v", err)
    }
    return NewMovieService(repository.NewMovieRepo(db)), mock, func() { db.Close() }
}

func TestMovieServiceUpdateUsesPathID(t *testing.T) {
    svc, mock, done := newMovieServiceMock(t)
    defer done()

    // The id in the body (9) must lose to the path id (5).
    mock.ExpectExec("UPDATE movies SET").
        WithArgs("Dune", "Sci-Fi", "Denis Villeneuve", 155, "", 8.4, uint64(5)).
        WillReturnResult(sqlmock.NewResult(0, 1))

    details := model.Movie{ID: 9, Title: "Dune", Genre: "Sci-Fi", Director: "Denis Villeneuve", Duration: 155, Rating: 8.4}
    m, err := svc.Update(context.Background(), 5, details)
    if err != nil {
        t.Fatalf("update error: %v", err)
    }
    if m.ID != 5 {
        t.Fatalf("expected id 5, got %d", m.ID)
    }
    if err := mock.ExpectationsWereMet(); err != nil {
        t.Fatalf("unmet expectations: %v", err)
    }
}

func TestMovieServiceUpdateMissingReturnsNotFound(t *testing.T) {
    svc, mock, done := newMovieServiceMock(t)
    defer done()

    mock.ExpectExec("UPDATE movies SET").
        WillReturnResult(sqlmock.NewResult(0, 0))
    mock.ExpectQuery("SELECT 1 FROM movies WHERE id =").WithArgs(uint64(99)).
        WillReturnRows(sqlmock.NewRows([]string{"1"}))

    if _, err := svc.Update(context.Background(), 99, model.Movie{Title: "Ghost"}); !errors.Is(err, repository.ErrMovieNotFound) {
        t.Fatalf("expected ErrMovieNotFound, got %v", err)
    }
}

// Package repository contains data access logic for the movie catalog.
package repository

import (
    "context"      // context for controlling query lifetime
    "database/sql" // sql provides DB abstraction
    "errors"       // errors for sentinel comparison

    "github.com/iliyamo/movie-booking/internal/model"
)

// movieCols is the column list shared by every movie SELECT so scans
// stay in one order.
const movieCols = `id, title, genre, director, duration, description, rating`

// MovieRepo manages persistence for catalog entries.
type MovieRepo struct {
    db *sql.DB
}

// NewMovieRepo constructs a MovieRepo with the given DB handle.
func NewMovieRepo(db *sql.DB) *MovieRepo {
    return &MovieRepo{db: db}
}

// DB exposes the underlying sql.DB for callers that need fine-grained
// control (e.g. sharing the handle with another repository).
func (r *MovieRepo) DB() *sql.DB {
    return r.db
}

func scanMovie(row interface{ Scan(...any) error }, m *model.Movie) error {
    return row.Scan(&m.ID, &m.Title, &m.Genre, &m.Director, &m.Duration, &m.Description, &m.Rating)
}

// List returns every movie in store order.  When the table is empty it
// returns an empty slice and nil error.
func (r *MovieRepo) List(ctx context.Context) ([]model.Movie, error) {
    const q = `SELECT ` + movieCols + ` FROM movies`
    return r.queryMovies(ctx, q)
}

// GetByID retrieves a movie by its ID.  It returns ErrMovieNotFound if
// there is no matching row.
func (r *MovieRepo) GetByID(ctx context.Context, id uint64) (*model.Movie, error) {
    const q = `SELECT ` + movieCols + ` FROM movies WHERE id = ?`
    var m model.Movie
    if err := scanMovie(r.db.QueryRowContext(ctx, q, id), &m); err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return nil, ErrMovieNotFound
        }
        return nil, err
    }
    return &m, nil
}

// ListByGenre returns all movies whose genre equals the argument
// exactly.  The genre column carries a binary collation, so "Action"
// and "action" are different values.
func (r *MovieRepo) ListByGenre(ctx context.Context, genre string) ([]model.Movie, error) {
    const q = `SELECT ` + movieCols + ` FROM movies WHERE genre = ?`
    return r.queryMovies(ctx, q, genre)
}

// SearchByTitle returns all movies whose title contains the argument as
// a case-insensitive substring.
func (r *MovieRepo) SearchByTitle(ctx context.Context, title string) ([]model.Movie, error) {
    const q = `SELECT ` + movieCols + ` FROM movies WHERE LOWER(title) LIKE CONCAT('%', LOWER(?), '%')`
    return r.queryMovies(ctx, q, title)
}

// Create inserts a new movie and assigns the generated ID back to the
// struct.  All supplied fields are persisted verbatim.
func (r *MovieRepo) Create(ctx context.Context, m *model.Movie) error {
    const q = `INSERT INTO movies (title, genre, director, duration, description, rating) VALUES (?, ?, ?, ?, ?, ?)`
    res, err := r.db.ExecContext(ctx, q, m.Title, m.Genre, m.Director, m.Duration, m.Description, m.Rating)
    if err != nil {
        return err
    }
    id, err := res.LastInsertId()
    if err != nil {
        return err
    }
    m.ID = uint64(id)
    return nil
}

// Update overwrites every mutable column of the movie identified by
// m.ID.  MySQL reports zero affected rows both when the row is missing
// and when the new values equal the old ones, so a zero result is
// followed by an existence probe: a present row means the write was a
// no-op and succeeds, an absent row yields ErrMovieNotFound.
func (r *MovieRepo) Update(ctx context.Context, m *model.Movie) error {
    const q = `UPDATE movies SET title = ?, genre = ?, director = ?, duration = ?, description = ?, rating = ? WHERE id = ?`
    res, err := r.db.ExecContext(ctx, q, m.Title, m.Genre, m.Director, m.Duration, m.Description, m.Rating, m.ID)
    if err != nil {
        return err
    }
    if n, _ := res.RowsAffected(); n > 0 {
        return nil
    }
    return r.exists(ctx, m.ID)
}

// Delete removes a movie by ID.  Deleting an absent ID is not an
// error; the operation is a silent no-op.
func (r *MovieRepo) Delete(ctx context.Context, id uint64) error {
    const q = `DELETE FROM movies WHERE id = ?`
    _, err := r.db.ExecContext(ctx, q, id)
    return err
}

// exists reports whether a movie row is present, mapping absence to
// ErrMovieNotFound.
func (r *MovieRepo) exists(ctx context.Context, id uint64) error {
    const q = `SELECT 1 FROM movies WHERE id = ? LIMIT 1`
    var one int
    if err := r.db.QueryRowContext(ctx, q, id).Scan(&one); err != nil {
        if errors.Is(err, sql.ErrNoRows) {
            return ErrMovieNotFound
        }
        return err
    }
    return nil
}

func (r *MovieRepo) queryMovies(ctx context.Context, q string, args ...any) ([]model.Movie, error) {
    rows, err := r.db.QueryContext(ctx, q, args...)
    if err != nil {
        return nil, err
    }
    defer rows.Close()
    result := make([]model.Movie, 0)
    for rows.Next() {
        var m model.Movie
        if err := scanMovie(rows, &m); err != nil {
            return nil, err
        }
        result = append(result, m)
    }
    if err := rows.Err(); err != nil {
        return nil, err
    }
    return result, nil
}

// Package service applies the business rules of both services around
// their repositories.  The movie side is a plain pass-through; the
// booking side owns the status lifecycle.
package service

import (
    "context"

    "github.com/iliyamo/movie-booking/internal/model"
    "github.com/iliyamo/movie-booking/internal/repository"
)

// MovieService exposes catalog operations.  Every call is a direct
// delegation to the repository; update orchestrates the id-keyed
// overwrite so the path id always wins over any id in the body.
type MovieService struct {
    movies *repository.MovieRepo
}

// NewMovieService constructs a MovieService.
func NewMovieService(movies *repository.MovieRepo) *MovieService {
    return &MovieService{movies: movies}
}

// GetAll returns every movie in the catalog.
func (s *MovieService) GetAll(ctx context.Context) ([]model.Movie, error) {
    return s.movies.List(ctx)
}

// GetByID returns the movie or repository.ErrMovieNotFound.
func (s *MovieService) GetByID(ctx context.Context, id uint64) (*model.Movie, error) {
    return s.movies.GetByID(ctx, id)
}

// GetByGenre returns all movies with exactly the given genre.
func (s *MovieService) GetByGenre(ctx context.Context, genre string) ([]model.Movie, error) {
    return s.movies.ListByGenre(ctx, genre)
}

// SearchByTitle returns all movies whose title contains the argument,
// ignoring case.
func (s *MovieService) SearchByTitle(ctx context.Context, title string) ([]model.Movie, error) {
    return s.movies.SearchByTitle(ctx, title)
}

// Create stores the candidate record verbatim; the store assigns the ID.
func (s *MovieService) Create(ctx context.Context, m *model.Movie) error {
    return s.movies.Create(ctx, m)
}

// Update overwrites every mutable field of the movie identified by id.
// It returns repository.ErrMovieNotFound when the id does not exist and
// the stored row otherwise.  The id itself is never altered.
func (s *MovieService) Update(ctx context.Context, id uint64, details model.Movie) (*model.Movie, error) {
    m := model.Movie{
        ID:          id,
        Title:       details.Title,
        Genre:       details.Genre,
        Director:    details.Director,
        Duration:    details.Duration,
        Description: details.Description,
        Rating:      details.Rating,
    }
    if err := s.movies.Update(ctx, &m); err != nil {
        return nil, err
    }
    return &m, nil
}

// Delete removes the movie; a missing id is a silent no-op.
func (s *MovieService) Delete(ctx context.Context, id uint64) error {
    return s.movies.Delete(ctx, id)
}

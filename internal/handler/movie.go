// Package handler maps HTTP requests onto the service layer.  Handlers
// translate path/query/body input into service calls and sentinel
// errors into status codes; they contain no business logic themselves.
package handler

import (
    "errors"
    "net/http"
    "strconv"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/movie-booking/internal/model"
    "github.com/iliyamo/movie-booking/internal/repository"
    "github.com/iliyamo/movie-booking/internal/service"
)

// MovieHandler serves the movie catalog endpoints.
type MovieHandler struct {
    Movies *service.MovieService
}

// NewMovieHandler constructs a MovieHandler.
func NewMovieHandler(movies *service.MovieService) *MovieHandler {
    return &MovieHandler{Movies: movies}
}

// GetAll handles GET /api/movies and returns every catalog entry.
func (h *MovieHandler) GetAll(c echo.Context) error {
    movies, err := h.Movies.GetAll(c.Request().Context())
    if err != nil {
        return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load movies"})
    }
    return c.JSON(http.StatusOK, movies)
}

// GetByID handles GET /api/movies/:id.  An absent id yields an empty
// 404 response, never an error body.
func (h *MovieHandler) GetByID(c echo.Context) error {
    id, err := parseID(c, "id")
    if err != nil {
        return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
    }
    m, err := h.Movies.GetByID(c.Request().Context(), id)
    if err != nil {
        if errors.Is(err, repository.ErrMovieNotFound) {
            return c.NoContent(http.StatusNotFound)
        }
        return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load movie"})
    }
    return c.JSON(http.StatusOK, m)
}

// GetByGenre handles GET /api/movies/genre/:genre.  The match is exact
// and case-sensitive; no matches yield an empty array.
func (h *MovieHandler) GetByGenre(c echo.Context) error {
    movies, err := h.Movies.GetByGenre(c.Request().Context(), c.Param("genre"))
    if err != nil {
        return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load movies"})
    }
    return c.JSON(http.StatusOK, movies)
}

// Search handles GET /api/movies/search?title= with a case-insensitive
// substring match on the title.
func (h *MovieHandler) Search(c echo.Context) error {
    title := c.QueryParam("title")
    if title == "" {
        return c.JSON(http.StatusBadRequest, map[string]string{"error": "title is required"})
    }
    movies, err := h.Movies.SearchByTitle(c.Request().Context(), title)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to search movies"})
    }
    return c.JSON(http.StatusOK, movies)
}

// Create handles POST /api/movies.  The body is persisted verbatim; the
// store assigns the id.
func (h *MovieHandler) Create(c echo.Context) error {
    var m model.Movie
    if err := c.Bind(&m); err != nil {
        return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
    }
    if err := h.Movies.Create(c.Request().Context(), &m); err != nil {
        return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not create movie"})
    }
    return c.JSON(http.StatusCreated, m)
}

// Update handles PUT /api/movies/:id, overwriting every mutable field.
// A missing id yields an empty 404.
func (h *MovieHandler) Update(c echo.Context) error {
    id, err := parseID(c, "id")
    if err != nil {
        return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
    }
    var details model.Movie
    if err := c.Bind(&details); err != nil {
        return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
    }
    m, err := h.Movies.Update(c.Request().Context(), id, details)
    if err != nil {
        if errors.Is(err, repository.ErrMovieNotFound) {
            return c.NoContent(http.StatusNotFound)
        }
        return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not update movie"})
    }
    return c.JSON(http.StatusOK, m)
}

// Delete handles DELETE /api/movies/:id.  Deleting a never-existing id
// still responds 204.
func (h *MovieHandler) Delete(c echo.Context) error {
    id, err := parseID(c, "id")
    if err != nil {
        return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
    }
    if err := h.Movies.Delete(c.Request().Context(), id); err != nil {
        return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not delete movie"})
    }
    return c.NoContent(http.StatusNoContent)
}

// parseID parses a numeric path parameter.
func parseID(c echo.Context, name string) (uint64, error) {
    return strconv.ParseUint(c.Param(name), 10, 64)
}

package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/movie-booking/internal/handler"
	"github.com/iliyamo/movie-booking/internal/model"
	"github.com/iliyamo/movie-booking/internal/repository"
	"github.com/iliyamo/movie-booking/internal/router"
	"github.com/iliyamo/movie-booking/internal/service"
)

func setupMovieAPI(t *testing.T) (*echo.Echo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	e := echo.New()
	h := handler.NewMovieHandler(service.NewMovieService(repository.NewMovieRepo(db)))
	router.RegisterMovieRoutes(e, h)
	return e, mock
}

func movieRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "title", "genre", "director", "duration", "description", "rating"})
}

func TestMovieAPIListReturnsArray(t *testing.T) {
	e, mock := setupMovieAPI(t)
	mock.ExpectQuery("SELECT (.+) FROM movies").
		WillReturnRows(movieRows().
			AddRow(1, "Dune", "Sci-Fi", "Denis Villeneuve", 155, "", 8.4).
			AddRow(2, "The Godfather", "Crime", "Francis Ford Coppola", 175, "", 9.2))

	req := httptest.NewRequest(http.MethodGet, "/api/movies", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var movies []model.Movie
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&movies))
	assert.Len(t, movies, 2)
	assert.Equal(t, "Dune", movies[0].Title)
}

func TestMovieAPIListEmptySerializesAsArray(t *testing.T) {
	e, mock := setupMovieAPI(t)
	mock.ExpectQuery("SELECT (.+) FROM movies").WillReturnRows(movieRows())

	req := httptest.NewRequest(http.MethodGet, "/api/movies", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestMovieAPIGetByIDAbsentReturns404(t *testing.T) {
	e, mock := setupMovieAPI(t)
	mock.ExpectQuery("FROM movies WHERE id =").WithArgs(uint64(42)).
		WillReturnRows(movieRows())

	req := httptest.NewRequest(http.MethodGet, "/api/movies/42", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestMovieAPIGetByIDInvalidReturns400(t *testing.T) {
	e, _ := setupMovieAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/api/movies/abc", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMovieAPISearchRequiresTitle(t *testing.T) {
	e, _ := setupMovieAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/api/movies/search", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMovieAPISearchByTitle(t *testing.T) {
	e, mock := setupMovieAPI(t)
	mock.ExpectQuery("FROM movies WHERE LOWER").WithArgs("inception").
		WillReturnRows(movieRows().AddRow(1, "Inception", "Sci-Fi", "Christopher Nolan", 148, "", 8.8))

	req := httptest.NewRequest(http.MethodGet, "/api/movies/search?title=inception", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	var movies []model.Movie
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&movies))
	require.Len(t, movies, 1)
	assert.Equal(t, "Inception", movies[0].Title)
}

func TestMovieAPIGetByGenrePassesExactValue(t *testing.T) {
	e, mock := setupMovieAPI(t)
	mock.ExpectQuery("FROM movies WHERE genre =").WithArgs("Action").
		WillReturnRows(movieRows())

	req := httptest.NewRequest(http.MethodGet, "/api/movies/genre/Action", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMovieAPICreateReturns201(t *testing.T) {
	e, mock := setupMovieAPI(t)
	mock.ExpectExec("INSERT INTO movies").
		WithArgs("Dune", "Sci-Fi", "Denis Villeneuve", 155, "desert planet", 8.4).
		WillReturnResult(sqlmock.NewResult(1, 1))

	body := `{"title":"Dune","genre":"Sci-Fi","director":"Denis Villeneuve","duration":155,"description":"desert planet","rating":8.4}`
	req := httptest.NewRequest(http.MethodPost, "/api/movies", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	var m model.Movie
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&m))
	assert.Equal(t, uint64(1), m.ID)
}

func TestMovieAPIUpdateMissingReturns404(t *testing.T) {
	e, mock := setupMovieAPI(t)
	mock.ExpectExec("UPDATE movies SET").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("SELECT 1 FROM movies WHERE id =").WithArgs(uint64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"1"}))

	req := httptest.NewRequest(http.MethodPut, "/api/movies/99", strings.NewReader(`{"title":"Ghost"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestMovieAPIDeleteMissingStillReturns204(t *testing.T) {
	e, mock := setupMovieAPI(t)
	mock.ExpectExec("DELETE FROM movies WHERE id =").WithArgs(uint64(404)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	req := httptest.NewRequest(http.MethodDelete, "/api/movies/404", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

package handler

import (
    "errors"
    "net/http"

    "github.com/labstack/echo/v4"

    "github.com/iliyamo/movie-booking/internal/model"
    "github.com/iliyamo/movie-booking/internal/repository"
    "github.com/iliyamo/movie-booking/internal/service"
)

// BookingHandler serves the booking endpoints.
type BookingHandler struct {
    Bookings *service.BookingService
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(bookings *service.BookingService) *BookingHandler {
    return &BookingHandler{Bookings: bookings}
}

// GetAll handles GET /api/bookings.
func (h *BookingHandler) GetAll(c echo.Context) error {
    bookings, err := h.Bookings.GetAll(c.Request().Context())
    if err != nil {
        return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load bookings"})
    }
    return c.JSON(http.StatusOK, bookings)
}

// GetByID handles GET /api/bookings/:id.  Absence is an empty 404.
func (h *BookingHandler) GetByID(c echo.Context) error {
    id, err := parseID(c, "id")
    if err != nil {
        return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
    }
    b, err := h.Bookings.GetByID(c.Request().Context(), id)
    if err != nil {
        if errors.Is(err, repository.ErrBookingNotFound) {
            return c.NoContent(http.StatusNotFound)
        }
        return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load booking"})
    }
    return c.JSON(http.StatusOK, b)
}

// GetByUser handles GET /api/bookings/user/:userId.
func (h *BookingHandler) GetByUser(c echo.Context) error {
    userID, err := parseID(c, "userId")
    if err != nil {
        return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid userId"})
    }
    bookings, err := h.Bookings.GetByUser(c.Request().Context(), userID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load bookings"})
    }
    return c.JSON(http.StatusOK, bookings)
}

// GetByMovie handles GET /api/bookings/movie/:movieId.
func (h *BookingHandler) GetByMovie(c echo.Context) error {
    movieID, err := parseID(c, "movieId")
    if err != nil {
        return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid movieId"})
    }
    bookings, err := h.Bookings.GetByMovie(c.Request().Context(), movieID)
    if err != nil {
        return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load bookings"})
    }
    return c.JSON(http.StatusOK, bookings)
}

// GetByStatus handles GET /api/bookings/status/:status with an exact
// status match.
func (h *BookingHandler) GetByStatus(c echo.Context) error {
    bookings, err := h.Bookings.GetByStatus(c.Request().Context(), c.Param("status"))
    if err != nil {
        return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to load bookings"})
    }
    return c.JSON(http.StatusOK, bookings)
}

// Create handles POST /api/bookings.  Caller-supplied status and
// bookingDate are discarded by the service; the response shows the
// values actually stored.
func (h *BookingHandler) Create(c echo.Context) error {
    var b model.Booking
    if err := c.Bind(&b); err != nil {
        return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
    }
    if err := h.Bookings.Create(c.Request().Context(), &b); err != nil {
        return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not create booking"})
    }
    return c.JSON(http.StatusCreated, b)
}

// Update handles PUT /api/bookings/:id.  Only seats, price, show time
// and status can change; a missing id yields an empty 404.
func (h *BookingHandler) Update(c echo.Context) error {
    id, err := parseID(c, "id")
    if err != nil {
        return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
    }
    var details model.Booking
    if err := c.Bind(&details); err != nil {
        return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
    }
    b, err := h.Bookings.Update(c.Request().Context(), id, details)
    if err != nil {
        if errors.Is(err, repository.ErrBookingNotFound) {
            return c.NoContent(http.StatusNotFound)
        }
        return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not update booking"})
    }
    return c.JSON(http.StatusOK, b)
}

// Cancel handles PUT /api/bookings/:id/cancel.  Repeated cancels keep
// succeeding; a missing id yields an empty 404.
func (h *BookingHandler) Cancel(c echo.Context) error {
    id, err := parseID(c, "id")
    if err != nil {
        return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
    }
    if err := h.Bookings.Cancel(c.Request().Context(), id); err != nil {
        if errors.Is(err, repository.ErrBookingNotFound) {
            return c.NoContent(http.StatusNotFound)
        }
        return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not cancel booking"})
    }
    return c.NoContent(http.StatusOK)
}

// Delete handles DELETE /api/bookings/:id.  Always responds 204.
func (h *BookingHandler) Delete(c echo.Context) error {
    id, err := parseID(c, "id")
    if err != nil {
        return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
    }
    if err := h.Bookings.Delete(c.Request().Context(), id); err != nil {
        return c.JSON(http.StatusInternalServerError, map[string]string{"error": "could not delete booking"})
    }
    return c.NoContent(http.StatusNoContent)
}

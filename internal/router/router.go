// Package router registers the HTTP routes of both services.  Each
// binary calls RegisterRoutes plus its own service-specific function.
package router

import (
    "github.com/labstack/echo/v4"

    "github.com/iliyamo/movie-booking/internal/handler"
)

// RegisterRoutes registers the routes shared by every binary.  At the
// moment that is only the health check used by load balancers.
func RegisterRoutes(e *echo.Echo) {
    e.GET("/healthz", handler.Health)
}

// RegisterMovieRoutes mounts the movie catalog API under /api/movies.
func RegisterMovieRoutes(e *echo.Echo, h *handler.MovieHandler, mw ...echo.MiddlewareFunc) {
    g := e.Group("/api/movies", mw...)
    g.GET("", h.GetAll)
    // Echo matches static segments before :id, so /search and /genre
    // never collide with the id route.
    g.GET("/search", h.Search)
    g.GET("/genre/:genre", h.GetByGenre)
    g.GET("/:id", h.GetByID)
    g.POST("", h.Create)
    g.PUT("/:id", h.Update)
    g.DELETE("/:id", h.Delete)
}

// RegisterBookingRoutes mounts the booking API under /api/bookings.
func RegisterBookingRoutes(e *echo.Echo, h *handler.BookingHandler, mw ...echo.MiddlewareFunc) {
    g := e.Group("/api/bookings", mw...)
    g.GET("", h.GetAll)
    g.GET("/user/:userId", h.GetByUser)
    g.GET("/movie/:movieId", h.GetByMovie)
    g.GET("/status/:status", h.GetByStatus)
    g.GET("/:id", h.GetByID)
    g.POST("", h.Create)
    g.PUT("/:id", h.Update)
    g.PUT("/:id/cancel", h.Cancel)
    g.DELETE("/:id", h.Delete)
}

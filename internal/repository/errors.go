// Package repository translates typed queries and mutations for the
// movie and booking tables into SQL. The sentinel errors defined here
// let handlers distinguish a missing target row from an infrastructure
// failure; read paths that legitimately find nothing return empty
// collections instead of an error.
package repository

import "errors"

// ErrMovieNotFound indicates that a movie row was not located in the DB.
var ErrMovieNotFound = errors.New("movie not found")

// ErrBookingNotFound indicates that a booking row was not located in the DB.
var ErrBookingNotFound = errors.New("booking not found")

package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// Open connects to MySQL and verifies the connection.
func Open(user, pass, host, port, name string) (*sql.DB, error) {
	auth := user
	if pass != "" {
		auth = fmt.Sprintf("%s:%s", user, pass)
	}
	// parseTime=true -> DATETIME -> time.Time | loc=UTC keeps times consistent
	dsn := fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
		auth, host, port, name)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	// Pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(30 * time.Minute)

	// Ping with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}
	return db, nil
}

// EnsureMovieSchema creates the movies table when it does not exist yet.
// The genre column uses a binary collation so the genre filter matches
// exactly (case-sensitive); the title index serves the substring search.
func EnsureMovieSchema(ctx context.Context, db *sql.DB) error {
	const ddl = `CREATE TABLE IF NOT EXISTS movies (
        id          BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
        title       VARCHAR(255)    NOT NULL,
        genre       VARCHAR(100)    NOT NULL COLLATE utf8mb4_bin,
        director    VARCHAR(255)    NOT NULL DEFAULT '',
        duration    INT             NOT NULL DEFAULT 0,
        description TEXT,
        rating      DOUBLE          NOT NULL DEFAULT 0,
        PRIMARY KEY (id),
        KEY idx_movies_genre (genre),
        KEY idx_movies_title (title)
    ) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`
	_, err := db.ExecContext(ctx, ddl)
	return err
}

// EnsureBookingSchema creates the bookings table when it does not exist
// yet.  movie_id and movie_title are a denormalized snapshot of the
// catalog entry; no foreign key is declared on purpose.
func EnsureBookingSchema(ctx context.Context, db *sql.DB) error {
	const ddl = `CREATE TABLE IF NOT EXISTS bookings (
        id              BIGINT UNSIGNED NOT NULL AUTO_INCREMENT,
        user_id         BIGINT UNSIGNED NOT NULL,
        movie_id        BIGINT UNSIGNED NOT NULL,
        movie_title     VARCHAR(255)    NOT NULL DEFAULT '',
        number_of_seats INT             NOT NULL DEFAULT 0,
        total_price     DOUBLE          NOT NULL DEFAULT 0,
        show_time       DATETIME        NOT NULL,
        status          VARCHAR(32)     NOT NULL DEFAULT 'CONFIRMED',
        booking_date    DATETIME        NOT NULL,
        PRIMARY KEY (id),
        KEY idx_bookings_user (user_id),
        KEY idx_bookings_movie (movie_id),
        KEY idx_bookings_status (status)
    ) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`
	_, err := db.ExecContext(ctx, ddl)
	return err
}

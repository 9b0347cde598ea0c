package constants

import "time"

// Redis cache keys and TTLs, centralized.
// Pattern: cinebook:{module}:{operation}:{identifier}

const CACHE_PREFIX = "cinebook"

// Seat availability is derived on read and goes stale the moment a hold
// or booking lands, so it only gets a few seconds in cache.
const (
	TTL_SEAT_AVAILABILITY = 5 * time.Second
	TTL_SHOWTIME_DETAIL   = 15 * time.Minute
	TTL_FILM_DETAIL       = 1 * time.Hour
)

const (
	CACHE_KEY_SEAT_AVAILABILITY = CACHE_PREFIX + ":availability:showtime:" // + showtime-id
	CACHE_KEY_SHOWTIME_DETAIL   = CACHE_PREFIX + ":catalog:showtime:"      // + showtime-id
	CACHE_KEY_FILM_DETAIL       = CACHE_PREFIX + ":catalog:film:"          // + film-id
)

func BuildSeatAvailabilityKey(showtimeID string) string {
	return CACHE_KEY_SEAT_AVAILABILITY + showtimeID
}

func BuildShowtimeDetailKey(showtimeID string) string {
	return CACHE_KEY_SHOWTIME_DETAIL + showtimeID
}

func BuildFilmDetailKey(filmID string) string {
	return CACHE_KEY_FILM_DETAIL + filmID
}

package errors

import "net/http"

var (
	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInvalidContinent = New(
		"INVALID_CONTINENT",
		"Unknown continent",
		http.StatusBadRequest,
	)

	ErrInvalidListingType = New(
		"INVALID_LISTING_TYPE",
		"Unknown listing type",
		http.StatusBadRequest,
	)

	ErrGeolocationUnavailable = New(
		"GEOLOCATION_UNAVAILABLE",
		"Failed to resolve geolocation",
		http.StatusInternalServerError,
	)

	ErrOrderNotFound = New(
		"ORDER_NOT_FOUND",
		"Order not found",
		http.StatusNotFound,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)

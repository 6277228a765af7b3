package v1

import (
	"errors"
	"net/http"

	"github.com/gagyebu/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"An ID specified in the query string was not a valid UUID"`
}

// status returns the appropriate status for a database error
func status(err error) int {
	if errors.Is(err, models.ErrGeneral) {
		return http.StatusInternalServerError
	}

	if errors.Is(err, models.ErrResourceNotFound) {
		return http.StatusNotFound
	}

	if errors.Is(err, models.ErrSessionNotFound) {
		return http.StatusUnauthorized
	}

	return http.StatusBadRequest
}

// Auth errors
var (
	errNoToken           = errors.New("this endpoint requires a bearer token in the Authorization header")
	errWrongCredentials  = errors.New("the email address or password is wrong")
	errCredentialsNotSet = errors.New("the email and password fields must both be set")
)

// Query errors
var (
	errMonthNotSetInQuery = errors.New("the month query parameter must be set")
)

// Import errors
var (
	errNoFilePost      = errors.New("you must send a file to this endpoint")
	errWrongFileSuffix = errors.New("this endpoint only supports files of the following types")
)

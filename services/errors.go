package services

import "errors"

// Failure taxonomy shared by the services. Controllers translate these into
// HTTP statuses.
var (
	ErrUnauthenticated    = errors.New("not logged in")
	ErrMissingParameters  = errors.New("missing parameters")
	ErrInvalidInput       = errors.New("invalid input")
	ErrNotFound           = errors.New("not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUpstream           = errors.New("upstream request failed")
	ErrBadModelOutput     = errors.New("could not parse meal plan from model response")
)

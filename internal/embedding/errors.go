package embedding

import "errors"

var (
	// ErrUnavailable is returned when the embedding provider cannot be
	// reached or is misconfigured (missing credential, transport failure,
	// non-2xx response).
	ErrUnavailable = errors.New("embedding provider unavailable")

	// ErrMalformed is returned when the provider responds without the
	// expected vector payload.
	ErrMalformed = errors.New("embedding response malformed")
)

package pipeline

import "errors"

var (
	// ErrUserRequired is returned when no user is present on the request.
	ErrUserRequired = errors.New("user required")

	// ErrNotAuthenticated is returned when the user is not authenticated.
	ErrNotAuthenticated = errors.New("access denied, user not authenticated")

	// ErrDistanceNotANumber is returned when the distance is NaN or infinite.
	ErrDistanceNotANumber = errors.New("distance must be a number")

	// ErrDistanceNotPositive is returned when the distance is zero or negative.
	ErrDistanceNotPositive = errors.New("distance must be positive")
)

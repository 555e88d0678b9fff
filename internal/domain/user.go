package domain

// User represents a passenger in the system.
type User struct {
	Name          string
	Authenticated bool
}

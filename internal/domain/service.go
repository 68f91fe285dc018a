package domain

// Service is a bookable salon service. Immutable during a booking
// computation; referenced by id everywhere else.
type Service struct {
	ID              int64
	Name            string
	Description     *string
	Price           float64
	DurationMinutes int
}

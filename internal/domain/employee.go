package domain

// Employee is a bookable staff member.
type Employee struct {
	ID     int64
	Name   string
	Active bool
}

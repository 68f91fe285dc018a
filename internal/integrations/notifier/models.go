package notifier

// Event names accepted by the notification service.
const (
	EventNewReservation       = "reservation.created"
	EventReservationConfirmed = "reservation.confirmed"
)

// Message is the payload posted to the notification service.
type Message struct {
	Event         string  `json:"event"`
	ReservationID int64   `json:"reservation_id"`
	CustomerName  string  `json:"customer_name"`
	Email         string  `json:"email,omitempty"`
	Phone         string  `json:"phone,omitempty"`
	Date          string  `json:"date"`
	StartTime     string  `json:"start_time"`
	EndTime       string  `json:"end_time"`
	ServiceID     int64   `json:"service_id"`
	EmployeeID    *int64  `json:"employee_id,omitempty"`
	Status        string  `json:"status"`
}

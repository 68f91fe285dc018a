// Package notifier is the HTTP client for the notification service, which
// fans out customer emails and messenger pings. The booking flow treats it
// as best-effort: failures here never affect a committed reservation.
package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Pawel-Truszkowski/SalonManager/internal/domain"
)

// Logger is the printf-style logger consumed by the client.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client posts notification messages over HTTP.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient creates a notification service client.
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Send posts one message to the notification service.
func (c *Client) Send(ctx context.Context, msg *Message) error {
	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal message: %v", ErrInternal, err)
	}

	url := fmt.Sprintf("%s/internal/notifications", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK, http.StatusAccepted, http.StatusNoContent:
		return nil
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}
}

// MessageFromReservation builds the payload for a reservation event. The
// reservation must carry its joined request.
func MessageFromReservation(event string, res *domain.Reservation) *Message {
	msg := &Message{
		Event:         event,
		ReservationID: res.ID,
		CustomerName:  res.CustomerName,
		Email:         res.Email,
		Phone:         res.Phone,
		Status:        string(res.Status),
	}

	if res.Request != nil {
		msg.Date = res.Request.Date.Format(domain.DateFormat)
		msg.StartTime = res.Request.StartTime.String()
		msg.EndTime = res.Request.EndTime.String()
		msg.ServiceID = res.Request.ServiceID
		msg.EmployeeID = res.Request.EmployeeID
	}

	return msg
}

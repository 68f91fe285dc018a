package finalize_reservation

import (
	"fmt"
	"strings"

	"github.com/Pawel-Truszkowski/SalonManager/internal/domain"
)

func validateRequest(req *Request) error {
	if req.RequestID <= 0 {
		return fmt.Errorf("%w: requestID must be positive", ErrInvalidRequest)
	}
	if req.RequestToken == "" {
		return fmt.Errorf("%w: request token is required", ErrInvalidRequest)
	}
	if strings.TrimSpace(req.CustomerName) == "" {
		return fmt.Errorf("%w: customer name is required", ErrInvalidRequest)
	}
	if len(req.CustomerName) > domain.MaxNameLength {
		return fmt.Errorf("%w: customer name exceeds %d characters", ErrInvalidRequest, domain.MaxNameLength)
	}
	if strings.TrimSpace(req.Email) == "" && strings.TrimSpace(req.Phone) == "" {
		return fmt.Errorf("%w: email or phone is required", ErrInvalidRequest)
	}
	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidRequest, domain.MaxNotesLength)
	}
	return nil
}

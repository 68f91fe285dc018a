package domain

import (
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewRequestToken(t *testing.T) {
	now := time.Date(2026, 5, 20, 12, 0, 0, 0, time.UTC)

	token := NewRequestToken(now, 42)

	assert.True(t, strings.HasPrefix(token, strconv.FormatInt(now.UnixMicro(), 10)+"42"))
	assert.NotContains(t, token, "-")
	// timestamp digits + service id + 32 hex chars of random suffix
	assert.Len(t, token, len(strconv.FormatInt(now.UnixMicro(), 10))+2+32)

	assert.NotEqual(t, token, NewRequestToken(now, 42))
}

func TestReservationRequest_IsExpired(t *testing.T) {
	expiry := time.Date(2026, 5, 20, 12, 15, 0, 0, time.UTC)
	req := &ReservationRequest{ExpiresAt: expiry}

	assert.False(t, req.IsExpired(expiry.Add(-time.Minute)))
	// Exactly at the deadline the hold is still alive.
	assert.False(t, req.IsExpired(expiry))
	assert.True(t, req.IsExpired(expiry.Add(time.Second)))
}

func TestParseReservationStatus(t *testing.T) {
	for _, valid := range []string{"PENDING", "CONFIRMED", "CANCELLED", "PAST"} {
		status, ok := ParseReservationStatus(valid)
		assert.True(t, ok)
		assert.Equal(t, ReservationStatus(valid), status)
	}

	_, ok := ParseReservationStatus("pending")
	assert.False(t, ok)
}

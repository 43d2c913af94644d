package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingStatus_Transitions(t *testing.T) {
	tests := []struct {
		name    string
		from    BookingStatus
		to      BookingStatus
		allowed bool
	}{
		{"waiting to approved", StatusWaiting, StatusApproved, true},
		{"waiting to rejected", StatusWaiting, StatusRejected, true},
		{"approved to approved blocked", StatusApproved, StatusApproved, false},
		{"approved to rejected", StatusApproved, StatusRejected, true},
		{"rejected to approved", StatusRejected, StatusApproved, true},
		{"rejected to rejected", StatusRejected, StatusRejected, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestBookingStatus_IsValid(t *testing.T) {
	assert.True(t, StatusWaiting.IsValid())
	assert.True(t, StatusApproved.IsValid())
	assert.True(t, StatusRejected.IsValid())
	assert.False(t, BookingStatus("COMPLETED").IsValid())
	assert.False(t, BookingStatus("waiting").IsValid())
}

func TestParseBookingStatus(t *testing.T) {
	status, err := ParseBookingStatus("APPROVED")
	require.NoError(t, err)
	assert.Equal(t, StatusApproved, status)

	_, err = ParseBookingStatus("approved")
	assert.Error(t, err)
}

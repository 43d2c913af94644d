package booking

import (
	"testing"

	"github.com/lendwise/service-lending/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBookingState_AcceptsAllTokens(t *testing.T) {
	for _, token := range []string{"ALL", "CURRENT", "FUTURE", "PAST", "WAITING", "REJECTED"} {
		state, err := ParseBookingState(token)
		require.NoError(t, err, token)
		assert.Equal(t, BookingState(token), state)
	}
}

func TestParseBookingState_RejectsUnknownTokens(t *testing.T) {
	for _, token := range []string{"BOGUS", "all", "Current", ""} {
		_, err := ParseBookingState(token)
		require.Error(t, err, token)
		assert.True(t, domain.IsKind(err, domain.KindWrongState))
		assert.EqualError(t, err, "Unknown state: "+token)
	}
}

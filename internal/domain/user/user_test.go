package user

import (
	"testing"

	"github.com/lendwise/service-lending/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestNewUser_ValidatesEmail(t *testing.T) {
	_, err := NewUser("alice", "")
	assert.EqualError(t, err, "email field cannot be empty")

	_, err = NewUser("alice", "not-an-email")
	assert.True(t, domain.IsKind(err, domain.KindValidation))
	assert.EqualError(t, err, "invalid email provided")

	u, err := NewUser("alice", "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", u.Email())
}

func TestNewUser_RequiresName(t *testing.T) {
	_, err := NewUser("", "alice@example.com")
	assert.EqualError(t, err, "name field cannot be empty")
}

func TestUser_ApplyPatch(t *testing.T) {
	u, err := NewUser("alice", "alice@example.com")
	require.NoError(t, err)

	require.NoError(t, u.ApplyPatch(strPtr("alicia"), nil))
	assert.Equal(t, "alicia", u.Name())
	assert.Equal(t, "alice@example.com", u.Email())

	require.NoError(t, u.ApplyPatch(nil, strPtr("alicia@example.com")))
	assert.Equal(t, "alicia@example.com", u.Email())

	err = u.ApplyPatch(nil, strPtr("broken"))
	assert.True(t, domain.IsKind(err, domain.KindValidation))
}

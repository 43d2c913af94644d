package application

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/lendwise/service-lending/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newUserService() (*UserService, *fakeUserRepo) {
	repo := newFakeUserRepo()
	return NewUserService(repo, zap.NewNop()), repo
}

func TestCreateUser(t *testing.T) {
	s, _ := newUserService()
	ctx := context.Background()

	dto, err := s.CreateUser(ctx, CreateUserRequest{Name: "alice", Email: "alice@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "alice", dto.Name)
	assert.NotEqual(t, uuid.Nil, dto.ID)

	_, err = s.CreateUser(ctx, CreateUserRequest{Name: "alice2", Email: "alice@example.com"})
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindDuplicateEmail))

	_, err = s.CreateUser(ctx, CreateUserRequest{Name: "bob", Email: "not-an-email"})
	assert.True(t, domain.IsKind(err, domain.KindValidation))
}

func TestUpdateUser(t *testing.T) {
	s, _ := newUserService()
	ctx := context.Background()

	alice, err := s.CreateUser(ctx, CreateUserRequest{Name: "alice", Email: "alice@example.com"})
	require.NoError(t, err)
	bob, err := s.CreateUser(ctx, CreateUserRequest{Name: "bob", Email: "bob@example.com"})
	require.NoError(t, err)

	// Keeping one's own email is not a duplicate.
	dto, err := s.UpdateUser(ctx, alice.ID, UpdateUserRequest{
		Name:  strPtr("alicia"),
		Email: strPtr("alice@example.com"),
	})
	require.NoError(t, err)
	assert.Equal(t, "alicia", dto.Name)

	// Taking somebody else's email is.
	_, err = s.UpdateUser(ctx, bob.ID, UpdateUserRequest{Email: strPtr("alice@example.com")})
	assert.True(t, domain.IsKind(err, domain.KindDuplicateEmail))

	_, err = s.UpdateUser(ctx, uuid.New(), UpdateUserRequest{Name: strPtr("ghost")})
	assert.True(t, domain.IsKind(err, domain.KindUnknownID))
}

func TestGetListDeleteUser(t *testing.T) {
	s, _ := newUserService()
	ctx := context.Background()

	alice, err := s.CreateUser(ctx, CreateUserRequest{Name: "alice", Email: "alice@example.com"})
	require.NoError(t, err)

	got, err := s.GetUser(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, *alice, *got)

	_, err = s.GetUser(ctx, uuid.New())
	assert.True(t, domain.IsKind(err, domain.KindUnknownID))

	all, err := s.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, s.DeleteUser(ctx, alice.ID))
	_, err = s.GetUser(ctx, alice.ID)
	assert.True(t, domain.IsKind(err, domain.KindUnknownID))
}

package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"systemgp/internal/core/domain"
	"systemgp/internal/core/session"
)

func TestUserService_Create(t *testing.T) {
	env := newTestEnv(t)
	svc := NewUserService(env.users, session.New())
	ctx := context.Background()

	t.Run("Should create a user from valid input", func(t *testing.T) {
		user, err := svc.Create(ctx, CreateUserInput{
			Name:     "Alice Souza",
			CPF:      "123.456.789-00",
			Email:    "alice@example.com",
			Login:    "alice",
			Password: "secret-1",
			Role:     domain.RoleAdministrator,
		})
		require.NoError(t, err)
		assert.Positive(t, user.ID)
		assert.Equal(t, domain.RoleAdministrator, user.Role)
	})

	t.Run("Should reject a malformed email", func(t *testing.T) {
		_, err := svc.Create(ctx, CreateUserInput{
			Name: "Bob", Email: "not-an-email", Login: "bob", Password: "secret-1",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("Should reject a short password", func(t *testing.T) {
		_, err := svc.Create(ctx, CreateUserInput{
			Name: "Bob", Email: "bob@example.com", Login: "bob", Password: "abc",
		})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("Should reject missing required fields", func(t *testing.T) {
		_, err := svc.Create(ctx, CreateUserInput{Password: "secret-1"})
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestUserService_Delete(t *testing.T) {
	env := newTestEnv(t)
	sess := session.New()
	svc := NewUserService(env.users, sess)
	ctx := context.Background()

	current := env.saveUser(t, "admin", domain.RoleAdministrator)
	other := env.saveUser(t, "temp", domain.RoleCollaborator)
	sess.Set(current)

	t.Run("Should refuse to delete the current actor", func(t *testing.T) {
		assert.ErrorIs(t, svc.Delete(ctx, current.ID), ErrCannotDeleteSelf)
	})

	t.Run("Should delete another user", func(t *testing.T) {
		require.NoError(t, svc.Delete(ctx, other.ID))
		_, err := svc.Get(ctx, other.ID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestUserService_List(t *testing.T) {
	env := newTestEnv(t)
	svc := NewUserService(env.users, session.New())
	ctx := context.Background()

	env.saveUser(t, "u1", domain.RoleCollaborator)
	env.saveUser(t, "u2", domain.RoleManager)

	users, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)

	n, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, n)
}

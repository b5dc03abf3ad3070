package auth

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Veraticus/faktura/internal/common"
	"github.com/Veraticus/faktura/internal/model"
	"github.com/Veraticus/faktura/internal/store"
)

func createTestService(t *testing.T) (*Service, store.Store) {
	t.Helper()

	st, err := store.NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	require.NoError(t, st.Migrate(context.Background()))
	t.Cleanup(func() { _ = st.Close() })

	return NewService(st), st
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("demo credentials succeed", func(t *testing.T) {
		svc, st := createTestService(t)

		user, err := svc.Login(ctx, "demo@example.com", "password")
		require.NoError(t, err)
		assert.Equal(t, "Demo User", user.Name)
		assert.Equal(t, model.RoleUser, user.Role)
		assert.True(t, svc.IsAuthenticated())
		assert.Equal(t, MockToken, svc.Token())

		// Both keys are persisted.
		token, ok, err := st.Get(ctx, store.KeyAuthToken)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, MockToken, token)

		_, ok, err = st.Get(ctx, store.KeyUserData)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("alias credentials succeed", func(t *testing.T) {
		svc, _ := createTestService(t)

		_, err := svc.Login(ctx, "demo", "demo")
		require.NoError(t, err)
		assert.True(t, svc.IsAuthenticated())
	})

	t.Run("wrong credentials fail without mutating state", func(t *testing.T) {
		svc, st := createTestService(t)

		_, err := svc.Login(ctx, "wrong@x.com", "bad")
		assert.ErrorIs(t, err, common.ErrInvalidCredentials)
		assert.False(t, svc.IsAuthenticated())
		assert.Nil(t, svc.CurrentUser())

		_, ok, err := st.Get(ctx, store.KeyAuthToken)
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestInit(t *testing.T) {
	ctx := context.Background()

	t.Run("restores a persisted session", func(t *testing.T) {
		svc, st := createTestService(t)
		_, err := svc.Login(ctx, "demo@example.com", "password")
		require.NoError(t, err)

		// A fresh service over the same store picks up the session.
		restored := NewService(st)
		restored.Init(ctx)
		assert.True(t, restored.IsAuthenticated())
		require.NotNil(t, restored.CurrentUser())
		assert.Equal(t, "demo@example.com", restored.CurrentUser().Email)
	})

	t.Run("missing token leaves session unauthenticated", func(t *testing.T) {
		svc, st := createTestService(t)
		require.NoError(t, st.Set(ctx, store.KeyUserData, `{"id":"1","email":"x@y.z","name":"X","role":"user"}`))

		svc.Init(ctx)
		assert.False(t, svc.IsAuthenticated())
	})

	t.Run("corrupt user record leaves session unauthenticated", func(t *testing.T) {
		svc, st := createTestService(t)
		require.NoError(t, st.Set(ctx, store.KeyAuthToken, MockToken))
		require.NoError(t, st.Set(ctx, store.KeyUserData, "{broken"))

		svc.Init(ctx)
		assert.False(t, svc.IsAuthenticated())
	})
}

func TestLogout(t *testing.T) {
	ctx := context.Background()
	svc, st := createTestService(t)

	_, err := svc.Login(ctx, "demo@example.com", "password")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx))
	assert.False(t, svc.IsAuthenticated())
	assert.Nil(t, svc.CurrentUser())
	assert.Empty(t, svc.Token())

	_, ok, err := st.Get(ctx, store.KeyAuthToken)
	require.NoError(t, err)
	assert.False(t, ok)

	// Idempotent.
	assert.NoError(t, svc.Logout(ctx))
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	svc, _ := createTestService(t)

	user, err := svc.Register(ctx, RegisterInput{
		Email:   "new@example.com",
		Name:    "New User",
		Company: "New Co",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, model.RoleUser, user.Role)
	assert.Equal(t, "New Co", user.Company)
	assert.True(t, svc.IsAuthenticated())

	// Ids are unique per registration.
	again, err := svc.Register(ctx, RegisterInput{Email: "other@example.com", Name: "Other"})
	require.NoError(t, err)
	assert.NotEqual(t, user.ID, again.ID)
}

func TestPasswordStubs(t *testing.T) {
	ctx := context.Background()
	svc, _ := createTestService(t)

	// Reset succeeds without a session.
	assert.NoError(t, svc.ResetPassword(ctx, "demo@example.com"))

	// Change requires one.
	assert.ErrorIs(t, svc.ChangePassword(ctx, "old", "new"), common.ErrNotAuthenticated)

	_, err := svc.Login(ctx, "demo@example.com", "password")
	require.NoError(t, err)
	assert.NoError(t, svc.ChangePassword(ctx, "old", "new"))
}

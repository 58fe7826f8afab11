package identity

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lmsales/backend/internal/domain/shared"
)

func TestActorResolveStore(t *testing.T) {
	ownStore := uuid.New()
	otherStore := uuid.New()

	admin := Actor{UserID: uuid.New(), Role: RoleAdmin}
	storeUser := Actor{UserID: uuid.New(), Role: RoleStore, StoreID: &ownStore}

	t.Run("admin must name a store", func(t *testing.T) {
		_, err := admin.ResolveStore(nil)
		assert.ErrorIs(t, err, shared.ErrStoreRequired)

		got, err := admin.ResolveStore(&otherStore)
		require.NoError(t, err)
		assert.Equal(t, otherStore, got)
	})

	t.Run("store user defaults to own store", func(t *testing.T) {
		got, err := storeUser.ResolveStore(nil)
		require.NoError(t, err)
		assert.Equal(t, ownStore, got)
	})

	t.Run("store user may name own store", func(t *testing.T) {
		got, err := storeUser.ResolveStore(&ownStore)
		require.NoError(t, err)
		assert.Equal(t, ownStore, got)
	})

	t.Run("store user cannot reach another store", func(t *testing.T) {
		_, err := storeUser.ResolveStore(&otherStore)
		assert.ErrorIs(t, err, shared.ErrForbidden)
	})
}

func TestActorRequireAdmin(t *testing.T) {
	admin := Actor{Role: RoleAdmin}
	assert.NoError(t, admin.RequireAdmin())

	storeID := uuid.New()
	storeUser := Actor{Role: RoleStore, StoreID: &storeID}
	assert.ErrorIs(t, storeUser.RequireAdmin(), shared.ErrForbidden)
}

package kvstore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUserKeys(t *testing.T) {
	keys := KeysFor("abc-123")

	require.Equal(t, "orders_abc-123", keys.Cart())
	require.Equal(t, "ordersHistory_abc-123", keys.History())
	require.Equal(t, "redeemedOffers_abc-123", keys.Redeemed())
	require.Equal(t, "lastWheelSpin_abc-123", keys.LastSpin())

	require.ElementsMatch(t, []string{
		"orders_abc-123",
		"ordersHistory_abc-123",
		"redeemedOffers_abc-123",
		"lastWheelSpin_abc-123",
	}, keys.All())
}

func TestUserKeys_Isolation(t *testing.T) {
	// Utenti diversi non condividono mai una chiave.
	a := KeysFor("u1").All()
	b := KeysFor("u2").All()
	for _, ka := range a {
		require.NotContains(t, b, ka)
	}
}

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	_, ok, err := store.Get(ctx, "manca")
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, store.Set(ctx, "k", "v1"))
	raw, ok, err := store.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "v1", raw)

	require.NoError(t, store.Set(ctx, "k", "v2"))
	raw, _, _ = store.Get(ctx, "k")
	require.Equal(t, "v2", raw)

	require.NoError(t, store.Remove(ctx, "k"))
	_, ok, err = store.Get(ctx, "k")
	require.NoError(t, err)
	require.False(t, ok)

	// Remove su chiave assente è un no-op.
	require.NoError(t, store.Remove(ctx, "k"))
}

package cart

import (
	"testing"

	"botfactory-miniapp/storefront-svc/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	tea   = domain.CatalogItem{ID: 1, Name: "Choy", Price: 1000}
	samsa = domain.CatalogItem{ID: 2, Name: "Somsa", Price: 500}
	plov  = domain.CatalogItem{ID: 3, Name: "Osh", Price: 25000}
)

func TestCart_AddMergesSameItem(t *testing.T) {
	c := New()
	require.NoError(t, c.Add(tea, 2))
	require.NoError(t, c.Add(tea, 3))

	entries := c.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, 5, entries[0].Quantity)
}

func TestCart_AddKeepsInsertionOrder(t *testing.T) {
	c := New()
	require.NoError(t, c.Add(plov, 1))
	require.NoError(t, c.Add(tea, 1))
	require.NoError(t, c.Add(plov, 1))

	entries := c.Entries()
	require.Len(t, entries, 2)
	assert.Equal(t, plov.ID, entries[0].Item.ID)
	assert.Equal(t, tea.ID, entries[1].Item.ID)
}

func TestCart_AddRejectsNonPositiveQuantity(t *testing.T) {
	c := New()
	assert.ErrorIs(t, c.Add(tea, 0), ErrInvalidQuantity)
	assert.ErrorIs(t, c.Add(tea, -1), ErrInvalidQuantity)
	assert.Equal(t, 0, c.Len())
}

func TestCart_Summary(t *testing.T) {
	c := New()
	require.NoError(t, c.Add(tea, 2))
	require.NoError(t, c.Add(samsa, 1))

	summary := c.Summary()
	assert.Equal(t, 2500.0, summary.Total)
	assert.Equal(t, 3, summary.Count)
}

func TestCart_SetQuantityRemovesAtZeroOrBelow(t *testing.T) {
	tests := []struct {
		name  string
		delta int
	}{
		{name: "to_zero", delta: -1},
		{name: "below_zero", delta: -5},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			c := New()
			require.NoError(t, c.Add(tea, 1))
			c.SetQuantity(0, testCase.delta)
			assert.Equal(t, 0, c.Len())
		})
	}
}

func TestCart_SetQuantityOutOfRangeIsNoop(t *testing.T) {
	c := New()
	require.NoError(t, c.Add(tea, 1))

	c.SetQuantity(5, 1)
	c.SetQuantity(-1, 1)

	entries := c.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, 1, entries[0].Quantity)
}

func TestCart_RemoveOutOfRangeIsNoop(t *testing.T) {
	c := New()
	require.NoError(t, c.Add(tea, 1))

	c.Remove(3)
	c.Remove(-1)
	assert.Equal(t, 1, c.Len())

	c.Remove(0)
	assert.Equal(t, 0, c.Len())
}

func TestCart_SnapshotIsImmutable(t *testing.T) {
	c := New()
	require.NoError(t, c.Add(tea, 2))

	snapshot := c.Snapshot()
	require.NoError(t, c.Add(samsa, 1))
	c.SetQuantity(0, 1)

	require.Len(t, snapshot, 1)
	assert.Equal(t, tea.ID, snapshot[0].ID)
	assert.Equal(t, tea.Name, snapshot[0].Name)
	assert.Equal(t, 2, snapshot[0].Quantity)
}

func TestCart_ClearEmptiesCart(t *testing.T) {
	c := New()
	require.NoError(t, c.Add(tea, 2))
	require.NoError(t, c.Add(samsa, 1))

	c.Clear()

	assert.Equal(t, 0, c.Len())
	assert.Equal(t, domain.CartSummary{Total: 0, Count: 0}, c.Summary())
}

func TestStore_SessionsAreIsolated(t *testing.T) {
	store := NewStore()
	require.NoError(t, store.Add("alice", tea, 2))
	require.NoError(t, store.Add("bob", samsa, 1))

	assert.Equal(t, 2, store.Summary("alice").Count)
	assert.Equal(t, 1, store.Summary("bob").Count)

	store.Clear("alice")
	assert.Equal(t, 0, store.Summary("alice").Count)
	assert.Equal(t, 1, store.Summary("bob").Count)
}

func TestStore_UnknownSessionYieldsEmptyCart(t *testing.T) {
	store := NewStore()
	assert.Empty(t, store.Entries("ghost"))
	assert.Equal(t, domain.CartSummary{}, store.Summary("ghost"))
	store.SetQuantity("ghost", 0, 1)
	store.Remove("ghost", 0)
}

package favorites

import (
	"testing"

	"homenest/server/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleRoundTrip(t *testing.T) {
	set := NewSet(storage.NewMemoryStore(), nil)

	saved, err := set.Toggle(3)
	require.NoError(t, err)
	assert.True(t, saved)
	assert.True(t, set.Contains(3))

	saved, err = set.Toggle(3)
	require.NoError(t, err)
	assert.False(t, saved)
	assert.False(t, set.Contains(3))
}

func TestListPreservesInsertionOrder(t *testing.T) {
	set := NewSet(storage.NewMemoryStore(), nil)

	for _, id := range []int64{5, 1, 9} {
		_, err := set.Toggle(id)
		require.NoError(t, err)
	}

	assert.Equal(t, []int64{5, 1, 9}, set.List())
}

func TestRemovalKeepsOthers(t *testing.T) {
	set := NewSet(storage.NewMemoryStore(), nil)

	for _, id := range []int64{1, 2, 3} {
		_, err := set.Toggle(id)
		require.NoError(t, err)
	}
	_, err := set.Toggle(2)
	require.NoError(t, err)

	assert.Equal(t, []int64{1, 3}, set.List())
}

func TestEmptySlotReadsAsEmpty(t *testing.T) {
	set := NewSet(storage.NewMemoryStore(), nil)
	assert.Empty(t, set.List())
}

func TestCorruptedSlotReadsAsEmpty(t *testing.T) {
	slots := storage.NewMemoryStore()
	require.NoError(t, slots.Set(Slot, "not json"))

	set := NewSet(slots, nil)
	assert.Empty(t, set.List())

	saved, err := set.Toggle(7)
	require.NoError(t, err)
	assert.True(t, saved)
	assert.Equal(t, []int64{7}, set.List())
}

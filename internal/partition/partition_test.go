package partition

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/TheDhejavu/hashring/internal/store"
)

func TestTable_IndexOf_Bounds(t *testing.T) {
	for _, count := range []int{1, 2, 100, 271} {
		tab := NewTable(count)
		assert.Equal(t, 0, tab.IndexOf(0))
		assert.Equal(t, count-1, tab.IndexOf(math.MaxUint64),
			"largest hash must land in the last partition (count=%d)", count)
	}
}

func TestTable_Rebuild_SingleOwnerEverywhere(t *testing.T) {
	s := store.New()
	require.NoError(t, s.Insert([]store.Entry{{Position: 12345, Owner: "a"}}))

	tab := NewTable(16)
	tab.Rebuild(s)

	for i := 0; i < tab.Count(); i++ {
		owner, ok := tab.Owner(i)
		require.True(t, ok, "partition %d must have an owner", i)
		assert.Equal(t, "a", owner)
	}
}

func TestTable_Rebuild_EveryPartitionOwned(t *testing.T) {
	s := store.New()
	require.NoError(t, s.Insert([]store.Entry{
		{Position: 1 << 16, Owner: "a"},
		{Position: 1 << 40, Owner: "b"},
		{Position: 1 << 60, Owner: "a"},
	}))

	tab := NewTable(100)
	tab.Rebuild(s)

	for i := 0; i < tab.Count(); i++ {
		owner, ok := tab.Owner(i)
		require.True(t, ok, "partition %d must have an owner", i)
		assert.Contains(t, []string{"a", "b"}, owner)
	}
}

func TestTable_Rebuild_Deterministic(t *testing.T) {
	s := store.New()
	require.NoError(t, s.Insert([]store.Entry{
		{Position: 1 << 20, Owner: "a"},
		{Position: 1 << 50, Owner: "b"},
	}))

	tab1 := NewTable(32)
	tab1.Rebuild(s)
	tab2 := NewTable(32)
	tab2.Rebuild(s)

	for i := 0; i < 32; i++ {
		o1, _ := tab1.Owner(i)
		o2, _ := tab2.Owner(i)
		assert.Equal(t, o1, o2, "partition %d", i)
	}
}

func TestTable_Rebuild_EmptyStoreClearsOwnership(t *testing.T) {
	s := store.New()
	require.NoError(t, s.Insert([]store.Entry{{Position: 7, Owner: "a"}}))

	tab := NewTable(8)
	tab.Rebuild(s)

	s.Remove("a")
	tab.Rebuild(s)

	for i := 0; i < tab.Count(); i++ {
		_, ok := tab.Owner(i)
		assert.False(t, ok, "partition %d must be unowned on an empty ring", i)
	}
}

func TestTable_Owner_OutOfRange(t *testing.T) {
	tab := NewTable(4)
	_, ok := tab.Owner(-1)
	assert.False(t, ok)
	_, ok = tab.Owner(4)
	assert.False(t, ok)
}

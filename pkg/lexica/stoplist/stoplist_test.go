package stoplist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManagerBasic(t *testing.T) {
	mgr := NewManager([]string{"the", "a", "and"})

	assert.True(t, mgr.IsStop("the"))
	assert.True(t, mgr.IsStop("The"), "lookups are case-folded")
	assert.False(t, mgr.IsStop("hello"))
}

func TestManagerAddRemove(t *testing.T) {
	mgr := NewManager([]string{"the"})

	mgr.Add("Test", Reason{Category: User})
	assert.True(t, mgr.IsStop("test"))

	mgr.Remove("TEST")
	assert.False(t, mgr.IsStop("test"))

	mgr.Add("   ", Reason{Category: User})
	assert.Equal(t, 1, mgr.Len())
}

func TestManagerUserCategoryWins(t *testing.T) {
	mgr := NewManager([]string{"today"})
	mgr.AddAll(Temporal, []string{"today"})
	r, ok := mgr.Lookup("today")
	require.True(t, ok)
	assert.Equal(t, General, r.Category, "first category sticks")

	mgr.AddAll(User, []string{"today"})
	r, _ = mgr.Lookup("today")
	assert.Equal(t, User, r.Category)
}

func TestManagerAllSorted(t *testing.T) {
	mgr := NewManager([]string{"the", "a", "and"})
	assert.Equal(t, []string{"a", "and", "the"}, mgr.All())
}

func TestDefaultCoversEveryCategory(t *testing.T) {
	mgr := Default()
	counts := mgr.CountByCategory()
	for _, cat := range Categories {
		assert.Greater(t, counts[cat], 0, "category %s should contribute words", cat)
	}

	for _, w := range []string{"the", "yesterday", "hundred", "north", "make", "good"} {
		assert.True(t, mgr.IsStop(w), w)
	}
	for _, w := range []string{"resilient", "quickly", "architected", "robust", "distributed", "engineer", "system"} {
		assert.False(t, mgr.IsStop(w), w)
	}
}

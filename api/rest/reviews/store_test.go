package reviews

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_AddStartsPending(t *testing.T) {
	s := NewStore()

	id := s.Add(&Review{ProductID: "p1", Author: "Dana", Rating: 5, Content: "solid part"})

	require.NotEmpty(t, id)

	all := s.List()
	require.Len(t, all, 1)
	assert.False(t, all[0].Approved)
	assert.False(t, all[0].Featured)
	assert.False(t, all[0].CreatedAt.IsZero())
}

func TestStore_ListNewestFirst(t *testing.T) {
	s := NewStore()

	first := s.Add(&Review{ProductID: "p1", Author: "a", Rating: 4, Content: "one"})

	// distinct creation timestamps
	time.Sleep(2 * time.Millisecond)
	second := s.Add(&Review{ProductID: "p1", Author: "b", Rating: 5, Content: "two"})

	all := s.List()
	require.Len(t, all, 2)
	assert.Equal(t, second, all[0].ID)
	assert.Equal(t, first, all[1].ID)
}

func TestStore_FeaturedRequiresApproval(t *testing.T) {
	s := NewStore()

	s.Add(&Review{ProductID: "p1", Author: "a", Rating: 4, Content: "pending"})
	approved := s.Add(&Review{ProductID: "p1", Author: "b", Rating: 5, Content: "approved only"})
	featured := s.Add(&Review{ProductID: "p1", Author: "c", Rating: 5, Content: "front page"})

	require.True(t, s.Approve(approved, false))
	require.True(t, s.Approve(featured, true))

	got := s.Featured()
	require.Len(t, got, 1)
	assert.Equal(t, featured, got[0].ID)
}

func TestStore_ApproveUnknown(t *testing.T) {
	s := NewStore()

	assert.False(t, s.Approve("missing", true))
}

func TestStore_Delete(t *testing.T) {
	s := NewStore()

	id := s.Add(&Review{ProductID: "p1", Author: "a", Rating: 1, Content: "spam"})

	assert.True(t, s.Delete(id))
	assert.False(t, s.Delete(id))
	assert.Empty(t, s.List())
}

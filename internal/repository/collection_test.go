package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRecord struct {
	id       int
	parentID int
	name     string
}

func (r *fakeRecord) EntityID() int { return r.id }

func newTestCollection() *Collection[*fakeRecord] {
	return NewCollection(
		WithIndex("parent_id", func(r *fakeRecord) int { return r.parentID }),
	)
}

func TestCollectionReplace(t *testing.T) {
	t.Run("replaces the full record set", func(t *testing.T) {
		c := newTestCollection()
		require.NoError(t, c.Replace([]*fakeRecord{{id: 1}, {id: 2}}))
		assert.Equal(t, 2, c.Len())

		require.NoError(t, c.Replace([]*fakeRecord{{id: 7}}))
		assert.Equal(t, 1, c.Len())
		_, found := c.FindByID(1)
		assert.False(t, found)
	})

	t.Run("rejects duplicate ids and keeps previous state", func(t *testing.T) {
		c := newTestCollection()
		require.NoError(t, c.Replace([]*fakeRecord{{id: 1}}))

		err := c.Replace([]*fakeRecord{{id: 2}, {id: 2}})
		require.ErrorIs(t, err, ErrDuplicateID)
		assert.Equal(t, 1, c.Len())
		_, found := c.FindByID(1)
		assert.True(t, found)
	})

	t.Run("rejects non-positive ids", func(t *testing.T) {
		c := newTestCollection()
		err := c.Replace([]*fakeRecord{{id: 0}})
		require.ErrorIs(t, err, ErrInvalidID)
	})
}

func TestCollectionAll(t *testing.T) {
	t.Run("returns empty slice when unloaded", func(t *testing.T) {
		c := newTestCollection()
		all := c.All()
		assert.NotNil(t, all)
		assert.Empty(t, all)
	})

	t.Run("preserves insertion order", func(t *testing.T) {
		c := newTestCollection()
		require.NoError(t, c.Replace([]*fakeRecord{{id: 9}, {id: 3}, {id: 5}}))

		ids := []int{}
		for _, r := range c.All() {
			ids = append(ids, r.id)
		}
		assert.Equal(t, []int{9, 3, 5}, ids)
	})

	t.Run("returns a copy the caller cannot corrupt", func(t *testing.T) {
		c := newTestCollection()
		require.NoError(t, c.Replace([]*fakeRecord{{id: 1}, {id: 2}}))

		all := c.All()
		all[0] = &fakeRecord{id: 99}
		r, found := c.FindByID(1)
		require.True(t, found)
		assert.Equal(t, 1, r.id)
	})
}

func TestCollectionFindByID(t *testing.T) {
	c := newTestCollection()
	require.NoError(t, c.Replace([]*fakeRecord{{id: 1, name: "one"}, {id: 2, name: "two"}}))

	t.Run("finds an existing record", func(t *testing.T) {
		r, found := c.FindByID(2)
		require.True(t, found)
		assert.Equal(t, 2, r.EntityID())
		assert.Equal(t, "two", r.name)
	})

	t.Run("miss is absent, not an error", func(t *testing.T) {
		r, found := c.FindByID(42)
		assert.False(t, found)
		assert.Nil(t, r)
	})
}

func TestCollectionFindAllBy(t *testing.T) {
	c := newTestCollection()
	require.NoError(t, c.Replace([]*fakeRecord{
		{id: 1, parentID: 10},
		{id: 2, parentID: 20},
		{id: 3, parentID: 10},
	}))

	t.Run("returns matches in insertion order", func(t *testing.T) {
		got := c.FindAllBy("parent_id", 10)
		require.Len(t, got, 2)
		assert.Equal(t, 1, got[0].id)
		assert.Equal(t, 3, got[1].id)
	})

	t.Run("no match yields empty slice, never nil", func(t *testing.T) {
		got := c.FindAllBy("parent_id", 999)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})

	t.Run("unknown field yields empty slice", func(t *testing.T) {
		got := c.FindAllBy("no_such_field", 10)
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestCollectionCreate(t *testing.T) {
	c := newTestCollection()
	require.NoError(t, c.Replace([]*fakeRecord{{id: 4}}))

	t.Run("assigns the next unused id", func(t *testing.T) {
		r := c.Create(func(id int) *fakeRecord { return &fakeRecord{id: id} })
		assert.Equal(t, 5, r.id)

		found, ok := c.FindByID(5)
		require.True(t, ok)
		assert.Same(t, r, found)
	})

	t.Run("created record joins secondary indexes", func(t *testing.T) {
		c.Create(func(id int) *fakeRecord { return &fakeRecord{id: id, parentID: 77} })
		assert.Len(t, c.FindAllBy("parent_id", 77), 1)
	})
}

func TestCollectionUpdate(t *testing.T) {
	c := newTestCollection()
	require.NoError(t, c.Replace([]*fakeRecord{{id: 1, name: "before", parentID: 10}}))

	t.Run("applies the merge callback", func(t *testing.T) {
		updated, ok := c.Update(1, func(current *fakeRecord, now time.Time) *fakeRecord {
			return &fakeRecord{id: current.id, name: "after", parentID: 20}
		})
		require.True(t, ok)
		assert.Equal(t, "after", updated.name)

		assert.Empty(t, c.FindAllBy("parent_id", 10))
		assert.Len(t, c.FindAllBy("parent_id", 20), 1)
	})

	t.Run("unknown id reports false", func(t *testing.T) {
		_, ok := c.Update(42, func(current *fakeRecord, now time.Time) *fakeRecord { return current })
		assert.False(t, ok)
	})
}

func TestCollectionDelete(t *testing.T) {
	t.Run("removes the record and retires its id", func(t *testing.T) {
		c := newTestCollection()
		require.NoError(t, c.Replace([]*fakeRecord{{id: 1}, {id: 2}, {id: 3}}))

		require.True(t, c.Delete(3))
		_, found := c.FindByID(3)
		assert.False(t, found)

		// A deleted id is never handed out again.
		r := c.Create(func(id int) *fakeRecord { return &fakeRecord{id: id} })
		assert.Equal(t, 4, r.id)
	})

	t.Run("unknown id reports false", func(t *testing.T) {
		c := newTestCollection()
		assert.False(t, c.Delete(12))
	})

	t.Run("positions stay consistent after a middle delete", func(t *testing.T) {
		c := newTestCollection()
		require.NoError(t, c.Replace([]*fakeRecord{
			{id: 1, parentID: 5},
			{id: 2, parentID: 5},
			{id: 3, parentID: 5},
		}))

		require.True(t, c.Delete(2))

		got := c.FindAllBy("parent_id", 5)
		require.Len(t, got, 2)
		assert.Equal(t, 1, got[0].id)
		assert.Equal(t, 3, got[1].id)

		r, found := c.FindByID(3)
		require.True(t, found)
		assert.Equal(t, 3, r.id)
	})
}

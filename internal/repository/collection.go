// Package repository provides the generic indexed collection every entity
// type of the sales dataset is stored in. A collection owns the full set of
// records of one type, preserves insertion order, and answers point lookups
// through an id index plus scan lookups through registered foreign-key
// indexes.
package repository

import (
	"errors"
	"sync"
	"time"
)

// Replace errors
var (
	// ErrDuplicateID is returned when a record set holds the same id twice.
	ErrDuplicateID = errors.New("duplicate record id")

	// ErrInvalidID is returned when a record carries a non-positive id.
	ErrInvalidID = errors.New("record id must be a positive integer")
)

// Entity is the minimal contract a record must satisfy to live in a
// Collection. Ids are positive integers, unique within one collection.
type Entity interface {
	EntityID() int
}

// FieldFunc extracts an integer field (typically a foreign key) from a record.
type FieldFunc[T Entity] func(T) int

// Collection is an in-memory, order-preserving repository for one entity
// type. Reads and writes are guarded by a single-writer/many-reader lock;
// analytics workloads only ever take the read side.
type Collection[T Entity] struct {
	mu      sync.RWMutex
	records []T
	byID    map[int]int           // id -> position in records
	fields  map[string]FieldFunc[T]
	indexes map[string]map[int][]int // field -> value -> positions, insertion order
	nextID  int                      // never reused, survives deletes
}

// Option configures a Collection at construction time.
type Option[T Entity] func(*Collection[T])

// WithIndex registers a secondary index over an integer field, enabling
// index-assisted FindAllBy for that field name.
func WithIndex[T Entity](field string, fn FieldFunc[T]) Option[T] {
	return func(c *Collection[T]) {
		c.fields[field] = fn
	}
}

// NewCollection creates an empty collection. Until Replace is called it
// answers every query with an empty result.
func NewCollection[T Entity](opts ...Option[T]) *Collection[T] {
	c := &Collection[T]{
		byID:    make(map[int]int),
		fields:  make(map[string]FieldFunc[T]),
		indexes: make(map[string]map[int][]int),
		nextID:  1,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Replace swaps in a full set of records, rebuilding every index. This is the
// load operation: there are no merge semantics, and on error the previous
// state is left untouched.
func (c *Collection[T]) Replace(records []T) error {
	byID := make(map[int]int, len(records))
	nextID := 1
	for pos, r := range records {
		id := r.EntityID()
		if id <= 0 {
			return ErrInvalidID
		}
		if _, dup := byID[id]; dup {
			return ErrDuplicateID
		}
		byID[id] = pos
		if id >= nextID {
			nextID = id + 1
		}
	}

	indexes := make(map[string]map[int][]int, len(c.fields))
	for field, fn := range c.fields {
		idx := make(map[int][]int)
		for pos, r := range records {
			v := fn(r)
			idx[v] = append(idx[v], pos)
		}
		indexes[field] = idx
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.records = append([]T(nil), records...)
	c.byID = byID
	c.indexes = indexes
	c.nextID = nextID
	return nil
}

// All returns every record in insertion order. The result is a copy and is
// never nil; an unloaded collection yields an empty slice.
func (c *Collection[T]) All() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.records))
	copy(out, c.records)
	return out
}

// Len returns the number of records currently held.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.records)
}

// FindByID returns the record with the given id. A miss is not an error:
// the second return value is false and the first is the zero value.
func (c *Collection[T]) FindByID(id int) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if pos, ok := c.byID[id]; ok {
		return c.records[pos], true
	}
	var zero T
	return zero, false
}

// FindAllBy returns every record whose indexed field equals value, in
// insertion order. The result is never nil. A field with no registered
// index falls back to a linear scan only if an extractor is known;
// otherwise the result is empty.
func (c *Collection[T]) FindAllBy(field string, value int) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if idx, ok := c.indexes[field]; ok {
		positions := idx[value]
		out := make([]T, 0, len(positions))
		for _, pos := range positions {
			out = append(out, c.records[pos])
		}
		return out
	}

	out := []T{}
	fn, ok := c.fields[field]
	if !ok {
		return out
	}
	for _, r := range c.records {
		if fn(r) == value {
			out = append(out, r)
		}
	}
	return out
}

// Create appends a new record built with the next unused integer id.
// Deleted ids are never reassigned. The build callback receives the
// assigned id and must return a record carrying it.
func (c *Collection[T]) Create(build func(id int) T) T {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.nextID
	c.nextID++
	r := build(id)
	c.byID[id] = len(c.records)
	c.records = append(c.records, r)
	c.indexRecord(r, len(c.records)-1)
	return r
}

// Update applies a partial modification to the record with the given id and
// returns the updated record. The apply callback receives the current record
// and the update timestamp; it must return the merged record with the same id.
func (c *Collection[T]) Update(id int, apply func(current T, now time.Time) T) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	pos, ok := c.byID[id]
	if !ok {
		var zero T
		return zero, false
	}
	updated := apply(c.records[pos], time.Now())
	c.records[pos] = updated
	c.rebuildIndexesLocked()
	return updated, true
}

// Delete removes the record with the given id. The id is permanently
// invalidated and will not be handed out again by Create.
func (c *Collection[T]) Delete(id int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	pos, ok := c.byID[id]
	if !ok {
		return false
	}
	c.records = append(c.records[:pos], c.records[pos+1:]...)
	delete(c.byID, id)
	for i := pos; i < len(c.records); i++ {
		c.byID[c.records[i].EntityID()] = i
	}
	c.rebuildIndexesLocked()
	return true
}

// indexRecord adds a single record at position pos to every secondary index.
// Caller must hold the write lock.
func (c *Collection[T]) indexRecord(r T, pos int) {
	for field, fn := range c.fields {
		idx, ok := c.indexes[field]
		if !ok {
			idx = make(map[int][]int)
			c.indexes[field] = idx
		}
		v := fn(r)
		idx[v] = append(idx[v], pos)
	}
}

// rebuildIndexesLocked recomputes every secondary index from scratch.
// Mutations are rare enough that a full rebuild is simpler than incremental
// maintenance of positional lists. Caller must hold the write lock.
func (c *Collection[T]) rebuildIndexesLocked() {
	for field, fn := range c.fields {
		idx := make(map[int][]int)
		for pos, r := range c.records {
			idx[fn(r)] = append(idx[fn(r)], pos)
		}
		c.indexes[field] = idx
	}
}

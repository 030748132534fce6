package store

import "fmt"

// Collection is an ordered, in-memory set of records of one entity type.
// Records are held by pointer: handlers borrow a record via Find and mutate
// it in place. Requests are processed sequentially, so there is no locking.
type Collection[T any] struct {
	items []*T
	id    func(*T) string
}

// NewCollection builds an empty collection; id extracts a record's identifier.
func NewCollection[T any](id func(*T) string) *Collection[T] {
	return &Collection[T]{
		items: []*T{},
		id:    id,
	}
}

// List returns every record in insertion order. The slice is a live
// snapshot, not a defensive copy.
func (c *Collection[T]) List() []*T {
	return c.items
}

// Find returns the first record with the given id, or nil. Absence is a
// first-class result, not an error.
func (c *Collection[T]) Find(id string) *T {
	for _, item := range c.items {
		if c.id(item) == id {
			return item
		}
	}
	return nil
}

// Insert appends a record. It fails only when the id is already taken,
// which the id generator contract rules out for generated ids.
func (c *Collection[T]) Insert(item *T) error {
	id := c.id(item)
	if c.Find(id) != nil {
		return fmt.Errorf("record %q already exists", id)
	}
	c.items = append(c.items, item)
	return nil
}

// Remove deletes the first record with the given id and reports whether
// anything was removed. Callers are expected to have confirmed existence
// via Find already.
func (c *Collection[T]) Remove(id string) bool {
	for i, item := range c.items {
		if c.id(item) == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

// Len reports the number of records.
func (c *Collection[T]) Len() int {
	return len(c.items)
}

package record

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/clinichq/hms/internal/platform/store"
)

// SchemaVersion tags every persisted snapshot so a future layout change can
// migrate old data instead of guessing.
const SchemaVersion = 1

// Entity is any clinic record with an integer id unique within its
// collection.
type Entity interface {
	GetID() int
	SetID(id int)
}

type envelope struct {
	SchemaVersion int             `json:"schema_version"`
	Records       json.RawMessage `json:"records"`
}

// Collection is an ordered, single-writer set of records of one entity kind.
// It owns id allocation (max existing id + 1, never reused), preserves
// insertion order, and re-saves the whole collection through the store after
// every successful mutation.
//
// A failed save is reported as a *PersistenceError but the in-memory change
// stands; subsequent operations keep working against memory.
type Collection[T Entity] struct {
	mu    sync.RWMutex
	kind  string
	key   string
	store store.Store
	items []T
}

func NewCollection[T Entity](kind, key string, st store.Store) *Collection[T] {
	return &Collection[T]{kind: kind, key: key, store: st}
}

// Hydrate loads the collection from the store. When no snapshot exists yet
// the seed records are installed and persisted immediately. The returned
// error is nil or a *PersistenceError; in the latter case the collection is
// still usable in memory.
func (c *Collection[T]) Hydrate(ctx context.Context, seed []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	raw, ok, err := c.store.Load(ctx, c.key)
	if err != nil {
		return fmt.Errorf("load %s: %w", c.key, err)
	}
	if !ok {
		c.items = append([]T(nil), seed...)
		return c.persistLocked(ctx)
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return fmt.Errorf("decode %s snapshot: %w", c.key, err)
	}
	if env.SchemaVersion > SchemaVersion {
		return fmt.Errorf("%s snapshot has schema version %d, this build reads up to %d",
			c.key, env.SchemaVersion, SchemaVersion)
	}
	var items []T
	if err := json.Unmarshal(env.Records, &items); err != nil {
		return fmt.Errorf("decode %s records: %w", c.key, err)
	}
	c.items = items
	return nil
}

// List returns the records in insertion order. The slice is a copy; the
// records themselves are shared and treated as immutable by convention
// (updates go through Replace with a fresh record).
func (c *Collection[T]) List() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]T(nil), c.items...)
}

func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func (c *Collection[T]) Get(id int) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, it := range c.items {
		if it.GetID() == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// Insert assigns the next id, appends the record, and persists. Ids are
// never reused after deletion.
func (c *Collection[T]) Insert(ctx context.Context, item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	next := 0
	for _, it := range c.items {
		if it.GetID() > next {
			next = it.GetID()
		}
	}
	item.SetID(next + 1)
	c.items = append(c.items, item)
	return c.persistLocked(ctx)
}

// Replace swaps the record with the same id in place, keeping its position
// in the collection order.
func (c *Collection[T]) Replace(ctx context.Context, item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, it := range c.items {
		if it.GetID() == item.GetID() {
			c.items[i] = item
			return c.persistLocked(ctx)
		}
	}
	return &NotFoundError{Kind: c.kind, ID: item.GetID()}
}

// Remove deletes the record with the given id. A second remove of the same
// id reports NotFound.
func (c *Collection[T]) Remove(ctx context.Context, id int) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, it := range c.items {
		if it.GetID() == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return c.persistLocked(ctx)
		}
	}
	return &NotFoundError{Kind: c.kind, ID: id}
}

func (c *Collection[T]) persistLocked(ctx context.Context) error {
	records, err := json.Marshal(c.items)
	if err != nil {
		return &PersistenceError{Key: c.key, Err: err}
	}
	raw, err := json.Marshal(envelope{SchemaVersion: SchemaVersion, Records: records})
	if err != nil {
		return &PersistenceError{Key: c.key, Err: err}
	}
	if err := c.store.Save(ctx, c.key, raw); err != nil {
		return &PersistenceError{Key: c.key, Err: err}
	}
	return nil
}

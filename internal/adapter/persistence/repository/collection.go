package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"mercado_erp/internal/logger"
	"mercado_erp/internal/usecase/interfaces"

	"github.com/rs/zerolog"
)

// Snapshot keys, one per collection.
const (
	KeyUsers            = "erp_users"
	KeySuppliers        = "erp_suppliers"
	KeyProducts         = "erp_products"
	KeyInvoices         = "erp_invoices"
	KeyFinancialRecords = "erp_financial"
	KeyTrips            = "erp_trips"
)

// collection is an in-memory list mirrored to one snapshot key.
//
// Mutations build a new slice and swap it in, then write the whole list to
// the store. Memory stays authoritative: a failed write is logged only.
type collection[T any] struct {
	mu    sync.RWMutex
	key   string
	store interfaces.ISnapshotStore
	items []T
	idOf  func(T) string
	log   zerolog.Logger
}

// openCollection reads key once. An absent key starts from seed and writes
// it back; an unreadable snapshot also falls back to seed. Only store I/O
// errors are returned.
func openCollection[T any](ctx context.Context, store interfaces.ISnapshotStore, key string, seed []T, idOf func(T) string) (*collection[T], error) {
	c := &collection[T]{
		key:   key,
		store: store,
		idOf:  idOf,
		log:   logger.WithComponent("repository").With().Str("collection", key).Logger(),
	}

	raw, err := store.Load(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("open collection %s: %w", key, err)
	}

	if raw == nil {
		c.log.Info().Int("items", len(seed)).Msg("[collection][load] no snapshot, using seed")
		c.items = clone(seed)
		c.persist(ctx)
		return c, nil
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		c.log.Warn().Err(err).Msg("[collection][load] corrupt snapshot, using seed")
		c.items = clone(seed)
		return c, nil
	}
	c.items = items
	c.log.Debug().Int("items", len(items)).Msg("[collection][load] snapshot loaded")
	return c, nil
}

func (c *collection[T]) all() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return clone(c.items)
}

func (c *collection[T]) find(match func(T) bool) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, it := range c.items {
		if match(it) {
			return it, true
		}
	}
	var zero T
	return zero, false
}

func (c *collection[T]) filter(match func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, 0)
	for _, it := range c.items {
		if match(it) {
			out = append(out, it)
		}
	}
	return out
}

// upsert replaces the item with the same id in place or appends it.
func (c *collection[T]) upsert(ctx context.Context, item T) {
	id := c.idOf(item)
	c.mutate(ctx, func(cur []T) []T {
		next := make([]T, 0, len(cur)+1)
		replaced := false
		for _, it := range cur {
			if !replaced && c.idOf(it) == id {
				next = append(next, item)
				replaced = true
				continue
			}
			next = append(next, it)
		}
		if !replaced {
			next = append(next, item)
		}
		return next
	})
}

func (c *collection[T]) prepend(ctx context.Context, item T) {
	c.mutate(ctx, func(cur []T) []T {
		next := make([]T, 0, len(cur)+1)
		next = append(next, item)
		return append(next, cur...)
	})
}

// remove drops every item matching and reports how many went.
func (c *collection[T]) remove(ctx context.Context, match func(T) bool) int {
	removed := 0
	c.mutate(ctx, func(cur []T) []T {
		next := make([]T, 0, len(cur))
		for _, it := range cur {
			if match(it) {
				removed++
				continue
			}
			next = append(next, it)
		}
		return next
	})
	return removed
}

// replace swaps the whole collection.
func (c *collection[T]) replace(ctx context.Context, items []T) {
	c.mutate(ctx, func([]T) []T { return clone(items) })
}

func (c *collection[T]) mutate(ctx context.Context, fn func([]T) []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = fn(c.items)
	c.persist(ctx)
}

// persist must run with c.mu held.
func (c *collection[T]) persist(ctx context.Context) {
	items := c.items
	if items == nil {
		items = []T{}
	}
	b, err := json.Marshal(items)
	if err != nil {
		c.log.Error().Err(err).Msg("[collection][save] marshal failed")
		return
	}
	if err := c.store.Save(ctx, c.key, b); err != nil {
		c.log.Error().Err(err).Msg("[collection][save] write failed, keeping in-memory state")
	}
}

func clone[T any](in []T) []T {
	out := make([]T, len(in))
	copy(out, in)
	return out
}

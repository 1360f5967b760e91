// Package collection owns the in-memory item collection: an ordered,
// id-keyed sequence populated once by a batch fetch and mutated only by
// rename and delete.
package collection

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/idilsaglam/triptych/internal/logging"
	"github.com/idilsaglam/triptych/internal/model"
)

// ErrAlreadyLoaded is returned by Init once the collection has been
// populated. A failed load does not count; the caller may call Init
// again after a failure (the store itself never retries).
var ErrAlreadyLoaded = errors.New("collection already loaded")

// Fetcher produces the initial batch. Implemented by *fetch.Client.
type Fetcher interface {
	BatchFetch(ctx context.Context, quantity int) ([]*model.Item, error)
}

// Observer receives the full snapshot after every mutation. Called
// synchronously on the mutating goroutine.
type Observer func(items []*model.Item)

// Store holds exactly one collection for its lifetime. Snapshots are
// replace-on-write: a published slice and the items it points to are
// never mutated afterwards, so readers can hold on to them freely.
type Store struct {
	fetcher Fetcher
	log     logging.Logger

	mu        sync.Mutex
	items     []*model.Item
	loaded    bool
	observers []Observer
}

type Option func(*Store)

func WithLogger(l logging.Logger) Option {
	return func(s *Store) { s.log = l }
}

func New(f Fetcher, opts ...Option) *Store {
	s := &Store{fetcher: f, log: logging.Discard()}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Init populates the collection with quantity freshly fetched items,
// ids [0, quantity). All-or-nothing: on any fetch error the collection
// stays empty and the error is returned once. Calling Init again after
// a successful load returns ErrAlreadyLoaded.
func (s *Store) Init(ctx context.Context, quantity int) error {
	s.mu.Lock()
	if s.loaded {
		s.mu.Unlock()
		return ErrAlreadyLoaded
	}
	s.mu.Unlock()

	items, err := s.fetcher.BatchFetch(ctx, quantity)
	if err != nil {
		s.log.Error(ctx, "initial load failed", "quantity", quantity, "err", err)
		return fmt.Errorf("initial load: %w", err)
	}

	s.mu.Lock()
	if s.loaded {
		// Two overlapping Init calls: the slower one loses.
		s.mu.Unlock()
		return ErrAlreadyLoaded
	}
	s.items = items
	s.loaded = true
	s.publishLocked(items)
	s.mu.Unlock()

	s.log.Info(ctx, "collection loaded", "items", len(items))
	return nil
}

// Rename sets the post title of the item with the given id. Unknown ids
// are ignored silently (a stale view racing a delete is not an error).
// Every other item is carried into the new snapshot unchanged, same
// pointer and all, so observers can change-detect by identity.
func (s *Store) Rename(id int, title string) {
	s.mu.Lock()
	idx := indexOf(s.items, id)
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	next := make([]*model.Item, len(s.items))
	copy(next, s.items)
	renamed := *s.items[idx]
	renamed.Post.Title = title
	next[idx] = &renamed
	s.items = next
	s.publishLocked(next)
	s.mu.Unlock()
}

// Delete removes the item with the given id, keeping the relative order
// of the rest and shifting no other item's id. Unknown ids are ignored
// silently, so a second delete of the same id is a no-op.
func (s *Store) Delete(id int) {
	s.mu.Lock()
	idx := indexOf(s.items, id)
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	next := make([]*model.Item, 0, len(s.items)-1)
	next = append(next, s.items[:idx]...)
	next = append(next, s.items[idx+1:]...)
	s.items = next
	s.publishLocked(next)
	s.mu.Unlock()
}

// Items returns the current snapshot. The returned slice is never
// mutated by the store.
func (s *Store) Items() []*model.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items
}

// Subscribe registers an observer for future snapshots. Observers run
// while the store's lock is held, so delivery order always matches
// mutation order; an observer must not call back into the store.
func (s *Store) Subscribe(o Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observers = append(s.observers, o)
}

// publishLocked delivers items to every observer. Callers hold mu, so
// a mutation's snapshot cannot be overtaken by a later mutation's.
func (s *Store) publishLocked(items []*model.Item) {
	for _, o := range s.observers {
		o(items)
	}
}

func indexOf(items []*model.Item, id int) int {
	for i, it := range items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

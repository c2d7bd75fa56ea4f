package impl

import (
	"context"
	"sync"
)

// lockTable serializes tap processing per identity. Slots are created lazily
// on first use and removed once the last waiter releases, so the table stays
// proportional to the number of identities currently tapping, not the number
// of identities that ever tapped. Slots for different identities are fully
// independent.
type lockTable struct {
	mu    sync.Mutex
	slots map[string]*lockSlot
}

type lockSlot struct {
	// ch holds the single token; whoever sends into it owns the slot.
	ch   chan struct{}
	refs int
}

func newLockTable() *lockTable {
	return &lockTable{
		slots: make(map[string]*lockSlot),
	}
}

// Acquire blocks until the slot for key is owned or ctx is done. On success
// it returns the release function; the caller must invoke it exactly once.
func (t *lockTable) Acquire(ctx context.Context, key string) (func(), error) {
	t.mu.Lock()
	slot, ok := t.slots[key]
	if !ok {
		slot = &lockSlot{ch: make(chan struct{}, 1)}
		t.slots[key] = slot
	}
	slot.refs++
	t.mu.Unlock()

	select {
	case slot.ch <- struct{}{}:
		return func() {
			<-slot.ch
			t.unref(key, slot)
		}, nil
	case <-ctx.Done():
		t.unref(key, slot)

		return nil, ctx.Err()
	}
}

func (t *lockTable) unref(key string, slot *lockSlot) {
	t.mu.Lock()
	defer t.mu.Unlock()

	slot.refs--
	if slot.refs == 0 {
		delete(t.slots, key)
	}
}

// size reports the number of live slots; used by tests to verify cleanup.
func (t *lockTable) size() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return len(t.slots)
}

package impl

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLockTable_AcquireRelease(t *testing.T) {
	table := newLockTable()
	ctx := context.Background()

	release, err := table.Acquire(ctx, "student:a")
	require.NoError(t, err)
	assert.Equal(t, 1, table.size())

	release()
	assert.Equal(t, 0, table.size())
}

func TestLockTable_MutualExclusion(t *testing.T) {
	table := newLockTable()
	ctx := context.Background()

	const workers = 20
	var wg sync.WaitGroup
	inCritical := 0
	maxInCritical := 0
	var mu sync.Mutex

	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()

			release, err := table.Acquire(ctx, "student:a")
			require.NoError(t, err)
			defer release()

			mu.Lock()
			inCritical++
			if inCritical > maxInCritical {
				maxInCritical = inCritical
			}
			mu.Unlock()

			time.Sleep(time.Millisecond)

			mu.Lock()
			inCritical--
			mu.Unlock()
		}()
	}

	wg.Wait()
	assert.Equal(t, 1, maxInCritical)
	assert.Equal(t, 0, table.size())
}

func TestLockTable_IndependentKeys(t *testing.T) {
	table := newLockTable()
	ctx := context.Background()

	releaseA, err := table.Acquire(ctx, "student:a")
	require.NoError(t, err)

	// A held slot for one key never blocks another key.
	done := make(chan struct{})
	go func() {
		releaseB, err := table.Acquire(ctx, "student:b")
		assert.NoError(t, err)
		releaseB()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("acquire on independent key blocked")
	}

	releaseA()
	assert.Equal(t, 0, table.size())
}

func TestLockTable_AcquireCancelled(t *testing.T) {
	table := newLockTable()

	release, err := table.Acquire(context.Background(), "student:a")
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err = table.Acquire(ctx, "student:a")
	require.ErrorIs(t, err, context.DeadlineExceeded)

	// The failed waiter must not leak a reference.
	release()
	assert.Equal(t, 0, table.size())
}

func TestLockTable_SlotReusableAfterCancel(t *testing.T) {
	table := newLockTable()

	release, err := table.Acquire(context.Background(), "student:a")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = table.Acquire(ctx, "student:a")
	require.Error(t, err)

	release()

	release, err = table.Acquire(context.Background(), "student:a")
	require.NoError(t, err)
	release()
	assert.Equal(t, 0, table.size())
}

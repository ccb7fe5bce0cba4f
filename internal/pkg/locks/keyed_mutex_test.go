package locks_test

import (
	"sync"
	"testing"
	"time"

	"dispatch/internal/pkg/locks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyedMutex_SerializesSameKey(t *testing.T) {
	km := locks.NewKeyedMutex()

	const goroutines = 50
	counter := 0

	var wg sync.WaitGroup
	for range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			km.Lock("order-1")
			defer km.Unlock("order-1")
			counter++
		}()
	}
	wg.Wait()

	assert.Equal(t, goroutines, counter)
}

func TestKeyedMutex_DifferentKeysDoNotBlock(t *testing.T) {
	km := locks.NewKeyedMutex()

	km.Lock("order-1")
	defer km.Unlock("order-1")

	done := make(chan struct{})
	go func() {
		km.Lock("order-2")
		km.Unlock("order-2")
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("lock on a different key blocked")
	}
}

func TestKeyedMutex_UnlockWithoutLockPanics(t *testing.T) {
	km := locks.NewKeyedMutex()

	require.Panics(t, func() {
		km.Unlock("never-locked")
	})
}

func TestKeyedMutex_ReuseAfterRelease(t *testing.T) {
	km := locks.NewKeyedMutex()

	km.Lock("order-1")
	km.Unlock("order-1")

	// The entry is dropped once released; locking again must work.
	km.Lock("order-1")
	km.Unlock("order-1")
}

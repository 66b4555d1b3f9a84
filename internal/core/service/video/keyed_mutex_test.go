package video

import (
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestKeyedMutex_MutualExclusionPerID(t *testing.T) {
	locks := newKeyedMutex()
	id := uuid.New()

	const workers = 50
	var wg sync.WaitGroup
	counter := 0

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			locks.Lock(id)
			defer locks.Unlock(id)
			counter++
		}()
	}
	wg.Wait()

	// a lost update here means two holders were inside at once
	assert.Equal(t, workers, counter)
}

func TestKeyedMutex_EntriesAreReleased(t *testing.T) {
	locks := newKeyedMutex()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		id := uuid.New()
		for j := 0; j < 5; j++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				locks.Lock(id)
				locks.Unlock(id)
			}()
		}
	}
	wg.Wait()

	locks.mu.Lock()
	remaining := len(locks.entries)
	locks.mu.Unlock()
	assert.Zero(t, remaining, "entry map must drain once all holders release")
}

func TestKeyedMutex_DistinctIDsDoNotBlockEachOther(t *testing.T) {
	locks := newKeyedMutex()
	first := uuid.New()
	second := uuid.New()

	locks.Lock(first)
	defer locks.Unlock(first)

	done := make(chan struct{})
	go func() {
		locks.Lock(second)
		locks.Unlock(second)
		close(done)
	}()

	<-done
}

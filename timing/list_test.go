package timing

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestList_ClonesShareOneSequence verifies that appends through two handles
// land in the same underlying sequence and both handles observe identical
// snapshots.
func TestList_ClonesShareOneSequence(t *testing.T) {
	profiler := New[Timer]()
	other := profiler.Clone()

	profiler.Add(Fixed("hello", 10*time.Microsecond))
	other.Add(Fixed("wow", 99*time.Nanosecond))

	first := profiler.Snapshot()
	second := other.Snapshot()

	require.Len(t, first, 2)
	assert.Equal(t, first, second)
	assert.Equal(t, "hello", first[0].Name)
	assert.Equal(t, "wow", first[1].Name)
}

// TestList_SnapshotIsDetached verifies that a snapshot does not observe
// appends made after it was taken.
func TestList_SnapshotIsDetached(t *testing.T) {
	list := New[string]()
	list.Add("before")

	snapshot := list.Snapshot()
	list.Add("after")

	assert.Equal(t, []string{"before"}, snapshot)
	assert.Equal(t, 2, list.Len())
}

// TestList_ConcurrentAddsFromTwoHandles verifies the contract from the
// accumulator's concurrency model: two handles racing one append each lose
// nothing and duplicate nothing.
func TestList_ConcurrentAddsFromTwoHandles(t *testing.T) {
	list := New[Timer]()
	clone := list.Clone()

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		list.Add(Fixed("a", time.Microsecond))
	}()
	go func() {
		defer wg.Done()
		clone.Add(Fixed("b", time.Microsecond))
	}()
	wg.Wait()

	snapshot := list.Snapshot()
	require.Len(t, snapshot, 2)
	names := map[string]int{}
	for _, timer := range snapshot {
		names[timer.Name]++
	}
	assert.Equal(t, map[string]int{"a": 1, "b": 1}, names)
}

// TestList_ConcurrentAddsUnderContention hammers one list from many
// goroutines and verifies no append is lost.
func TestList_ConcurrentAddsUnderContention(t *testing.T) {
	const goroutines = 8
	const perGoroutine = 200

	list := New[int]()

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		g := g
		wg.Add(1)
		handle := list.Clone()
		go func() {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				handle.Add(g*perGoroutine + i)
			}
		}()
	}
	wg.Wait()

	snapshot := list.Snapshot()
	require.Len(t, snapshot, goroutines*perGoroutine)

	seen := make(map[int]bool, len(snapshot))
	for _, v := range snapshot {
		assert.False(t, seen[v], "value %d appended twice", v)
		seen[v] = true
	}
}

// TestList_SnapshotOfEmptyList verifies that an untouched list snapshots to
// an empty sequence.
func TestList_SnapshotOfEmptyList(t *testing.T) {
	list := New[Timer]()
	assert.Empty(t, list.Snapshot())
	assert.Zero(t, list.Len())
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package timing

import "sync"

// List is a handle to an append-only sequence of T shared between goroutines.
// Handles are small values: copying one (or calling [List.Clone]) produces
// another handle to the same underlying sequence, never a copy of its
// contents. Every access goes through one mutex, so concurrent appends from
// any number of handles are safe and individually atomic.
//
// The zero List has no backing storage; always create one with [New].
type List[T any] struct {
	shared *listState[T]
}

type listState[T any] struct {
	mu    sync.Mutex
	items []T
}

// New creates an empty list with a single handle.
func New[T any]() List[T] {
	return List[T]{shared: &listState[T]{}}
}

// Clone returns another handle to the same underlying sequence. It is O(1)
// and equivalent to copying the List value; the method exists to make the
// sharing explicit at call sites.
func (l List[T]) Clone() List[T] {
	return l
}

// Add appends item under the list's lock. It blocks only while another
// handle's Add or Snapshot holds the lock.
func (l List[T]) Add(item T) {
	l.shared.mu.Lock()
	defer l.shared.mu.Unlock()
	l.shared.items = append(l.shared.items, item)
}

// Snapshot returns a detached point-in-time copy of the list's contents in
// append order. Later appends through any handle do not affect a snapshot
// already taken. All elements are copied; use as needed.
func (l List[T]) Snapshot() []T {
	l.shared.mu.Lock()
	defer l.shared.mu.Unlock()

	items := make([]T, len(l.shared.items))
	copy(items, l.shared.items)
	return items
}

// Len returns the current number of items under the list's lock.
func (l List[T]) Len() int {
	l.shared.mu.Lock()
	defer l.shared.mu.Unlock()
	return len(l.shared.items)
}

// Package resource is the shared fetch/loading/error wrapper the screens
// use instead of re-implementing the same remote-value state per view.
package resource

import (
	"context"
	"sync"
)

type State int

const (
	StateIdle State = iota
	StateLoading
	StateLoaded
	StateFailed
)

// Resource holds one remote value and its fetch lifecycle. Each fetched
// value gets its own Resource slot; independent slots resolve in any
// order and one slot's outcome implies nothing about another's.
type Resource[T any] struct {
	mu    sync.Mutex
	state State
	data  T
	err   error
}

// Load runs fetch and stores its outcome. The caller's control flow
// suspends until the fetch returns; concurrent loads of different
// resources belong in separate goroutines.
func (r *Resource[T]) Load(ctx context.Context, fetch func(context.Context) (T, error)) {
	r.mu.Lock()
	r.state = StateLoading
	r.err = nil
	r.mu.Unlock()

	data, err := fetch(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()
	if err != nil {
		r.state = StateFailed
		r.err = err
		return
	}
	r.state = StateLoaded
	r.data = data
}

func (r *Resource[T]) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

func (r *Resource[T]) Loading() bool {
	return r.State() == StateLoading
}

// Data returns the loaded value; ok is false until a load succeeds.
func (r *Resource[T]) Data() (T, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.state != StateLoaded {
		var zero T
		return zero, false
	}
	return r.data, true
}

func (r *Resource[T]) Err() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

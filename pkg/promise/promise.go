package promise

import (
	"sync"
)

// A disposable write-once latch representing a result that is not
// ready yet. Event handlers that kick off asynchronous work can return
// one of these from their invocation; the emitting caller finds it in
// the emit result sequence and decides when (or whether) to wait.
//
// Functions that operate on this type (IsComplete, Complete, Await,
// AndThen) are idempotent and thread-safe.
type Promise interface {
	IsComplete() bool
	Complete(errors []error)
	Await() []error
	AndThen(f func([]error))
}

func NewPromise() Promise {
	return &promise{
		complete:     false,
		completeChan: make(chan struct{}),
	}
}

type promise struct {
	sync.Mutex

	complete     bool
	errors       []error
	completeChan chan struct{}
}

// Returns whether this promise is complete yet, without blocking.
func (p *promise) IsComplete() bool {
	return p.complete
}

// Unblock all goroutines awaiting promise completion.
func (p *promise) Complete(errors []error) {
	p.Lock()
	defer p.Unlock()

	if !p.complete {
		p.complete = true
		p.errors = errors
		close(p.completeChan)
	}
}

// Blocks the caller until the promise is marked complete.
func (p *promise) Await() []error {
	<-p.completeChan
	return p.errors
}

// Invokes the supplied function after this promise completes.
func (p *promise) AndThen(f func([]error)) {
	go func() {
		f(p.Await())
	}()
}

// Join combines pending promises into a single joined wait: the
// returned promise completes once every input has completed, carrying
// the concatenation of their errors in argument order. Joining no
// promises completes immediately.
func Join(promises ...Promise) Promise {
	joined := NewPromise()
	go func() {
		errors := []error{}
		for _, p := range promises {
			errors = append(errors, p.Await()...)
		}
		joined.Complete(errors)
	}()
	return joined
}

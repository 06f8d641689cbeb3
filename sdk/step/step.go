// Copyright 2022, Pulumi Corporation.  All rights reserved.

// Generic Concurrency primitives.
package step

import (
	"context"
	"fmt"

	"github.com/sourcegraph/conc/panics"
)

// Step represents a computation that may produce a value. This is equivalent to
// a `Future` in other languages.
type Step[T any] struct {
	// The returned data, once it is returned.
	data T
	// Why the computation failed, if it did.
	err error
	// When this channel is closed, the computation has finished, successfully
	// or not.
	done chan struct{}
	// If this context is canceled, we return.
	ctx context.Context
}

// Block on retrieving the computed result. If the context of the step is
// canceled first, the context's error is returned.
func (s *Step[T]) GetResult() (T, error) {
	if s == nil {
		return Zero[T](), fmt.Errorf("step was never started")
	}
	select {
	case <-s.done:
		return s.data, s.err
	case <-s.ctx.Done():
		return Zero[T](), s.ctx.Err()
	}
}

// Create a new Step not predicated on any other step. `f` is the computation
// that the step represents. A panic in `f` fails the step instead of crashing
// the process.
func New[T any, F func() (T, error)](ctx context.Context, f F) *Step[T] {
	s := &Step[T]{
		ctx:  ctx,
		done: make(chan struct{}),
	}
	go func() {
		defer close(s.done)
		var data T
		var err error
		var catcher panics.Catcher
		catcher.Try(func() { data, err = f() })
		if r := catcher.Recovered(); r != nil {
			s.err = r.AsError()
			return
		}
		s.data, s.err = data, err
	}()
	return s
}

// Chain a step (if it succeeded) into another step.
func Then[T, U any, F func(T) (U, error)](s *Step[T], f F) *Step[U] {
	return New(s.ctx, func() (U, error) {
		t, err := s.GetResult()
		if err != nil {
			return Zero[U](), err
		}
		return f(t)
	})
}

// Zero returns the zero value for a type.
func Zero[T any]() (zero T) {
	return
}

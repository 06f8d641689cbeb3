// Copyright 2022, Pulumi Corporation.  All rights reserved.

package step

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStepResult(t *testing.T) {
	s := New(context.Background(), func() (int, error) { return 42, nil })
	v, err := s.GetResult()
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	// Results can be read more than once.
	v, err = s.GetResult()
	require.NoError(t, err)
	assert.Equal(t, 42, v)
}

func TestStepError(t *testing.T) {
	boom := errors.New("boom")
	s := New(context.Background(), func() (string, error) { return "ignored", boom })
	_, err := s.GetResult()
	assert.ErrorIs(t, err, boom)
}

func TestStepPanic(t *testing.T) {
	s := New(context.Background(), func() (int, error) { panic("oops") })
	v, err := s.GetResult()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "oops")
	assert.Zero(t, v)
}

func TestStepCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	block := make(chan struct{})
	defer close(block)
	s := New(ctx, func() (int, error) {
		<-block
		return 1, nil
	})
	cancel()
	_, err := s.GetResult()
	assert.ErrorIs(t, err, context.Canceled)
}

func TestThen(t *testing.T) {
	ctx := context.Background()
	s := Then(New(ctx, func() (int, error) { return 7, nil }), func(i int) (string, error) {
		return strconv.Itoa(i * 6), nil
	})
	v, err := s.GetResult()
	require.NoError(t, err)
	assert.Equal(t, "42", v)

	boom := errors.New("boom")
	failed := Then(New(ctx, func() (int, error) { return 0, boom }), func(i int) (string, error) {
		t.Fatal("must not run after a failed step")
		return "", nil
	})
	_, err = failed.GetResult()
	assert.ErrorIs(t, err, boom)
}

func TestNilStep(t *testing.T) {
	var s *Step[int]
	_, err := s.GetResult()
	assert.Error(t, err)
}

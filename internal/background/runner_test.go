package background

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestSubmit_RunsTask(t *testing.T) {
	r := NewRunner(2, zap.NewNop())
	defer r.Close()

	var ran atomic.Bool
	ok := r.Submit(context.Background(), "t", func(context.Context) error {
		ran.Store(true)
		return nil
	})
	if !ok {
		t.Fatal("Submit returned false with capacity available")
	}

	r.Close()
	if !ran.Load() {
		t.Error("task did not run")
	}
}

func TestSubmit_DropsWhenSaturated(t *testing.T) {
	r := NewRunner(1, zap.NewNop())
	defer r.Close()

	release := make(chan struct{})
	started := make(chan struct{})
	r.Submit(context.Background(), "blocker", func(context.Context) error {
		close(started)
		<-release
		return nil
	})
	<-started

	if r.Submit(context.Background(), "extra", func(context.Context) error { return nil }) {
		t.Error("Submit accepted a task past the concurrency bound")
	}
	close(release)
}

func TestSubmit_AfterCloseRejected(t *testing.T) {
	r := NewRunner(1, zap.NewNop())
	r.Close()

	if r.Submit(context.Background(), "late", func(context.Context) error { return nil }) {
		t.Error("Submit accepted a task after Close")
	}
}

func TestSubmit_RecoversFromPanic(t *testing.T) {
	r := NewRunner(1, zap.NewNop())

	done := make(chan struct{})
	r.Submit(context.Background(), "boom", func(context.Context) error {
		defer close(done)
		panic("boom")
	})
	<-done

	// Capacity must be released despite the panic. The deferred release
	// races with the channel close, so retry briefly.
	var ran atomic.Bool
	accepted := false
	for i := 0; i < 100 && !accepted; i++ {
		accepted = r.Submit(context.Background(), "after", func(context.Context) error {
			ran.Store(true)
			return nil
		})
		if !accepted {
			time.Sleep(time.Millisecond)
		}
	}
	r.Close()
	if !accepted || !ran.Load() {
		t.Error("runner unusable after a panicked task")
	}
}

func TestSubmit_ErrorsAreSwallowed(t *testing.T) {
	r := NewRunner(1, zap.NewNop())
	ok := r.Submit(context.Background(), "failing", func(context.Context) error {
		return errors.New("nope")
	})
	if !ok {
		t.Fatal("Submit refused a runnable task")
	}
	r.Close()
}

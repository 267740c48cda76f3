package game

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestFrameSchedulerRunsFramesAndEvents(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var frames, events int
	inbox := make(chan func(), 1)
	inbox <- func() { events++ }

	fs := NewFrameScheduler(time.Millisecond, func() {
		frames++
		if frames >= 3 && events == 1 {
			cancel()
		}
	})

	err := fs.Run(ctx, inbox)

	if !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v, want context.Canceled", err)
	}
	if frames < 3 {
		t.Errorf("frames = %d, want at least 3", frames)
	}
	if events != 1 {
		t.Errorf("events = %d, want 1", events)
	}
}

func TestFrameSchedulerClosedInbox(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	inbox := make(chan func())
	close(inbox)

	frames := 0
	fs := NewFrameScheduler(time.Millisecond, func() {
		frames++
		if frames == 2 {
			cancel()
		}
	})

	if err := fs.Run(ctx, inbox); !errors.Is(err, context.Canceled) {
		t.Errorf("Run() error = %v", err)
	}
	if frames < 2 {
		t.Errorf("frames = %d, want at least 2", frames)
	}
}

func TestNewFrameSchedulerDefaultInterval(t *testing.T) {
	fs := NewFrameScheduler(0, func() {})
	if fs.interval != time.Second/30 {
		t.Errorf("interval = %v, want 1/30s", fs.interval)
	}
}

package preview

import (
	"sync"
	"testing"
	"time"
)

func TestImageTracker_Lifecycle(t *testing.T) {
	tracker := NewImageTracker(WithTimeout(time.Minute))
	defer tracker.Close()

	if state := tracker.Watch("stats"); state != ImageLoading {
		t.Fatalf("first watch = %q, want loading", state)
	}

	tracker.Complete("stats", true)
	if state := tracker.Watch("stats"); state != ImageLoaded {
		t.Fatalf("after complete = %q, want loaded", state)
	}

	tracker.Watch("graph")
	tracker.Complete("graph", false)
	if state := tracker.State("graph"); state != ImageError {
		t.Fatalf("after failure = %q, want error", state)
	}
}

func TestImageTracker_TerminalStatesAreSticky(t *testing.T) {
	tracker := NewImageTracker(WithTimeout(time.Minute))
	defer tracker.Close()

	tracker.Watch("card")
	tracker.Complete("card", false)
	tracker.Complete("card", true)
	if state := tracker.State("card"); state != ImageError {
		t.Fatalf("late success overwrote terminal state: %q", state)
	}
}

func TestImageTracker_TimeoutForcesError(t *testing.T) {
	events := make(chan ImageState, 1)
	tracker := NewImageTracker(
		WithTimeout(10*time.Millisecond),
		WithStateListener(func(id string, state ImageState) {
			if id == "slow" {
				events <- state
			}
		}),
	)
	defer tracker.Close()

	tracker.Watch("slow")

	select {
	case state := <-events:
		if state != ImageError {
			t.Fatalf("timeout transition = %q, want error", state)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timeout never fired")
	}

	if state := tracker.State("slow"); state != ImageError {
		t.Fatalf("state after timeout = %q", state)
	}
}

func TestImageTracker_CompleteBeatsTimeout(t *testing.T) {
	tracker := NewImageTracker(WithTimeout(time.Hour))
	defer tracker.Close()

	tracker.Watch("fast")
	tracker.Complete("fast", true)
	if state := tracker.State("fast"); state != ImageLoaded {
		t.Fatalf("state = %q, want loaded", state)
	}
}

func TestImageTracker_CloseSettlesPending(t *testing.T) {
	tracker := NewImageTracker(WithTimeout(time.Hour))
	tracker.Watch("pending")
	tracker.Close()

	if state := tracker.State("pending"); state != ImageError {
		t.Fatalf("pending after close = %q, want error", state)
	}
	if state := tracker.Watch("never-seen"); state != ImageError {
		t.Fatalf("watch after close = %q, want error", state)
	}
	// Close is idempotent.
	tracker.Close()
}

func TestImageTracker_UnknownCompletionsIgnored(t *testing.T) {
	tracker := NewImageTracker(WithTimeout(time.Minute))
	defer tracker.Close()

	tracker.Complete("never-watched", true)
	if state := tracker.State("never-watched"); state != ImageLoading {
		t.Fatalf("unwatched id = %q, want loading", state)
	}
}

func TestImageTracker_NilIsAlwaysLoaded(t *testing.T) {
	var tracker *ImageTracker
	if state := tracker.Watch("anything"); state != ImageLoaded {
		t.Fatalf("nil tracker watch = %q", state)
	}
	if state := tracker.State("anything"); state != ImageLoaded {
		t.Fatalf("nil tracker state = %q", state)
	}
	tracker.Complete("anything", false)
	tracker.Close()
}

func TestImageTracker_ConcurrentCompletions(t *testing.T) {
	var notifications sync.Map
	tracker := NewImageTracker(
		WithTimeout(time.Hour),
		WithStateListener(func(id string, state ImageState) {
			count, _ := notifications.LoadOrStore(id, new(int))
			*count.(*int)++
		}),
	)
	defer tracker.Close()

	tracker.Watch("contested")

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(ok bool) {
			defer wg.Done()
			tracker.Complete("contested", ok)
		}(i%2 == 0)
	}
	wg.Wait()

	state := tracker.State("contested")
	if state != ImageLoaded && state != ImageError {
		t.Fatalf("state after contested completions = %q", state)
	}
	count, ok := notifications.Load("contested")
	if !ok || *count.(*int) != 1 {
		t.Fatalf("expected exactly one transition notification, got %v", count)
	}
}

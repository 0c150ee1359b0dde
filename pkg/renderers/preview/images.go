package preview

import (
	"sync"
	"time"
)

// ImageState is the lifecycle position of one tracked remote image.
type ImageState string

const (
	ImageLoading ImageState = "loading"
	ImageLoaded  ImageState = "loaded"
	ImageError   ImageState = "error"
)

// DefaultImageTimeout bounds how long a tracked image may stay in the loading
// state before it is forced into the error state.
const DefaultImageTimeout = 3 * time.Second

// TrackerOption configures an ImageTracker.
type TrackerOption func(*ImageTracker)

// WithTimeout overrides the loading deadline.
func WithTimeout(d time.Duration) TrackerOption {
	return func(t *ImageTracker) {
		if d > 0 {
			t.timeout = d
		}
	}
}

// WithStateListener registers a callback invoked on every state transition.
// The callback runs outside the tracker lock and may call back into it.
func WithStateListener(fn func(id string, state ImageState)) TrackerOption {
	return func(t *ImageTracker) {
		t.listener = fn
	}
}

// ImageTracker follows remote card images through loading → loaded | error.
// Watch arms a per-image deadline timer; Complete reports the outcome; a
// missed deadline forces loading → error so a preview never waits forever.
// Terminal states are sticky: the first signal wins, later ones are ignored.
// All methods are safe for concurrent use. A nil tracker reports every image
// as loaded, which is what static (non-interactive) rendering wants.
type ImageTracker struct {
	mu       sync.Mutex
	timeout  time.Duration
	states   map[string]ImageState
	timers   map[string]*time.Timer
	listener func(string, ImageState)
	closed   bool
}

// NewImageTracker returns a tracker with the default 3s deadline.
func NewImageTracker(opts ...TrackerOption) *ImageTracker {
	t := &ImageTracker{
		timeout: DefaultImageTimeout,
		states:  make(map[string]ImageState),
		timers:  make(map[string]*time.Timer),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(t)
		}
	}
	return t
}

// Watch registers an image and returns its current state. The first call for
// an id starts the loading deadline; later calls just read the state. After
// Close, unknown images report error because no completion can ever arrive.
func (t *ImageTracker) Watch(id string) ImageState {
	if t == nil {
		return ImageLoaded
	}

	t.mu.Lock()
	if state, ok := t.states[id]; ok {
		t.mu.Unlock()
		return state
	}
	if t.closed {
		t.mu.Unlock()
		return ImageError
	}

	t.states[id] = ImageLoading
	t.timers[id] = time.AfterFunc(t.timeout, func() {
		t.expire(id)
	})
	t.mu.Unlock()
	return ImageLoading
}

// State reads the current state without registering. Unknown images report
// loading on a live tracker and error on a closed one.
func (t *ImageTracker) State(id string) ImageState {
	if t == nil {
		return ImageLoaded
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if state, ok := t.states[id]; ok {
		return state
	}
	if t.closed {
		return ImageError
	}
	return ImageLoading
}

// Complete records the load outcome for an image. Only the loading state
// transitions; completions for already-settled or unknown images are ignored.
func (t *ImageTracker) Complete(id string, ok bool) {
	if t == nil {
		return
	}

	next := ImageLoaded
	if !ok {
		next = ImageError
	}

	t.mu.Lock()
	if t.states[id] != ImageLoading {
		t.mu.Unlock()
		return
	}
	t.states[id] = next
	t.stopTimer(id)
	listener := t.listener
	t.mu.Unlock()

	if listener != nil {
		listener(id, next)
	}
}

// Close stops all timers and forces pending images into the error state.
// Further Watch calls register nothing.
func (t *ImageTracker) Close() {
	if t == nil {
		return
	}

	t.mu.Lock()
	if t.closed {
		t.mu.Unlock()
		return
	}
	t.closed = true

	var expired []string
	for id, state := range t.states {
		t.stopTimer(id)
		if state == ImageLoading {
			t.states[id] = ImageError
			expired = append(expired, id)
		}
	}
	listener := t.listener
	t.mu.Unlock()

	if listener != nil {
		for _, id := range expired {
			listener(id, ImageError)
		}
	}
}

func (t *ImageTracker) expire(id string) {
	t.mu.Lock()
	if t.states[id] != ImageLoading {
		t.mu.Unlock()
		return
	}
	t.states[id] = ImageError
	delete(t.timers, id)
	listener := t.listener
	t.mu.Unlock()

	if listener != nil {
		listener(id, ImageError)
	}
}

// stopTimer must be called with the lock held.
func (t *ImageTracker) stopTimer(id string) {
	if timer, ok := t.timers[id]; ok {
		timer.Stop()
		delete(t.timers, id)
	}
}

package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"

	"github.com/goliatone/go-readmegen/pkg/profile"
	"github.com/goliatone/go-readmegen/pkg/template"
)

// Open loads the persisted canvas at path and wires the store to it. A
// missing file seeds the default canvas instead of failing, so first runs
// start with something to edit.
func Open(path string, opts ...Option) (*Store, error) {
	state, err := ReadState(path)
	if errors.Is(err, os.ErrNotExist) {
		state = DefaultState()
	} else if err != nil {
		return nil, err
	}

	opts = append(opts, WithPath(path))
	return New(state, opts...), nil
}

// DefaultState is the canvas a fresh install starts from.
func DefaultState() State {
	return State{
		Template: template.Classic(),
		Profile:  profile.Profile{},
	}
}

// ReadState loads and validates a persisted canvas.
func ReadState(path string) (State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return State{}, fmt.Errorf("store: read state: %w", err)
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return State{}, fmt.Errorf("store: parse state %s: %w", path, err)
	}

	state.Template = template.Normalize(state.Template)
	if issues := template.Validate(state.Template); len(issues) > 0 {
		return State{}, fmt.Errorf("store: state %s holds an invalid template: %s", path, issues[0])
	}
	return state, nil
}

// WriteState persists a canvas with an atomic replace so a crash mid-write
// never corrupts the previous state.
func WriteState(path string, state State) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("store: marshal state: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("store: create state dir: %w", err)
		}
	}
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("store: write state %s: %w", path, err)
	}
	return nil
}

// Save persists the current state to the configured path.
func (s *Store) Save() error {
	if s.path == "" {
		return errors.New("store: no persistence path configured")
	}
	return s.read("save", func(st *State) error {
		return WriteState(s.path, *st)
	})
}

// persist is the autosave hook, called from the op loop.
func (s *Store) persist() error {
	return WriteState(s.path, s.state)
}

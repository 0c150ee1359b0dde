// Package store owns the live editing state: the current template, profile
// and latest render output. A single goroutine consumes an op channel and
// applies one state transition at a time, so the state itself needs no locks.
// Every successful mutation marks a pending render; ops already queued are
// drained first so bursts of edits coalesce into one render whose output
// replaces the previous one wholesale.
package store

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/goliatone/go-readmegen/pkg/block"
	"github.com/goliatone/go-readmegen/pkg/engine"
	"github.com/goliatone/go-readmegen/pkg/logger"
	"github.com/goliatone/go-readmegen/pkg/profile"
	"github.com/goliatone/go-readmegen/pkg/template"
	"github.com/goliatone/go-readmegen/pkg/theme"
)

// ErrClosed is returned by operations on a closed store.
var ErrClosed = errors.New("store: closed")

// State is the persisted canvas: what the user is editing.
type State struct {
	Template template.Template `json:"template"`
	Profile  profile.Profile   `json:"profile"`
}

// Snapshot is an immutable view handed to readers and subscribers. Output is
// the latest successful render; it survives failed renders so a broken edit
// degrades the preview instead of blanking it.
type Snapshot struct {
	State    State
	Output   *block.Output
	Errors   []error
	Revision uint64
}

type op struct {
	name     string
	apply    func(*State) error
	readonly bool
	reply    chan<- error
}

type snapshotReq struct {
	reply chan<- Snapshot
}

type subscribeReq struct {
	ch    chan Snapshot
	reply chan<- func()
}

// Option configures a Store.
type Option func(*Store)

// WithLogger attaches a logger. The default discards everything.
func WithLogger(log logger.Logger) Option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

// WithEngine replaces the render engine.
func WithEngine(eng *engine.Engine) Option {
	return func(s *Store) {
		if eng != nil {
			s.engine = eng
		}
	}
}

// WithRenderOptions overrides the per-render options. The default keeps
// rendering on section failures, which is what a live preview wants.
func WithRenderOptions(opts engine.Options) Option {
	return func(s *Store) {
		s.renderOpts = opts
	}
}

// WithThemes replaces the theme resolver used to vet SetTheme.
func WithThemes(resolver *theme.Resolver) Option {
	return func(s *Store) {
		if resolver != nil {
			s.themes = resolver
		}
	}
}

// WithPath sets the JSON persistence location used by Save.
func WithPath(path string) Option {
	return func(s *Store) {
		s.path = path
	}
}

// WithAutosave persists the state after every successful mutation. Requires
// a path.
func WithAutosave() Option {
	return func(s *Store) {
		s.autosave = true
	}
}

// Store serializes all access to the editing state through its op loop.
type Store struct {
	engine     *engine.Engine
	renderOpts engine.Options
	themes     *theme.Resolver
	log        logger.Logger
	path       string
	autosave   bool

	mu       sync.RWMutex
	isClosed bool
	ops      chan any
	done     chan struct{}

	// loop-owned, never touched from outside the run goroutine
	state       State
	output      *block.Output
	renderErrs  []error
	revision    uint64
	subscribers map[uint64]chan Snapshot
	nextSubID   uint64
}

// New starts a store around the given state.
func New(state State, opts ...Option) *Store {
	s := &Store{
		engine:      engine.New(),
		renderOpts:  engine.Options{ContinueOnError: true},
		themes:      theme.NewResolver(),
		log:         logger.NewNop(),
		ops:         make(chan any, 64),
		done:        make(chan struct{}),
		state:       state,
		subscribers: make(map[uint64]chan Snapshot),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}

	go s.run()
	return s
}

// run is the op loop: apply everything queued, render once, fan out.
func (s *Store) run() {
	defer close(s.done)

	s.render()

	for msg := range s.ops {
		dirty, pending := s.dispatch(msg)

	drain:
		for {
			select {
			case next, ok := <-s.ops:
				if !ok {
					break drain
				}
				d, p := s.dispatch(next)
				dirty = dirty || d
				pending = append(pending, p...)
			default:
				break drain
			}
		}

		if dirty {
			s.render()
		}
		if len(pending) > 0 {
			snap := s.snapshot()
			for _, reply := range pending {
				reply <- snap
			}
		}
	}
}

// dispatch applies one queued message. It returns whether the state changed
// and any snapshot replies that must wait for the next render.
func (s *Store) dispatch(msg any) (bool, []chan<- Snapshot) {
	switch m := msg.(type) {
	case op:
		err := m.apply(&s.state)
		if err == nil && !m.readonly && s.autosave && s.path != "" {
			if saveErr := s.persist(); saveErr != nil {
				s.log.Error("store: autosave failed", saveErr, zap.String("op", m.name))
			}
		}
		if err != nil {
			s.log.Debug("store: op rejected", zap.String("op", m.name), zap.String("error", err.Error()))
		}
		m.reply <- err
		return err == nil && !m.readonly, nil
	case snapshotReq:
		return false, []chan<- Snapshot{m.reply}
	case subscribeReq:
		id := s.nextSubID
		s.nextSubID++
		s.subscribers[id] = m.ch
		m.ch <- s.snapshot()
		m.reply <- func() { s.unsubscribe(id) }
		return false, nil
	case unsubscribeReq:
		if ch, ok := s.subscribers[m.id]; ok {
			delete(s.subscribers, m.id)
			close(ch)
		}
		return false, nil
	default:
		return false, nil
	}
}

type unsubscribeReq struct {
	id uint64
}

func (s *Store) unsubscribe(id uint64) {
	// Best effort: after Close the loop is gone and the channel is closed
	// there anyway.
	_ = s.enqueue(unsubscribeReq{id: id})
}

// render runs the engine over the current state and replaces the held output.
func (s *Store) render() {
	result := s.engine.Render(s.state.Template, s.state.Profile, s.renderOpts)
	s.renderErrs = result.Errors

	for _, err := range result.Errors {
		s.log.Warn("store: render error", zap.String("error", err.Error()))
	}

	if result.Success {
		s.output = result.Output
		s.revision++
	}

	snap := s.snapshot()
	for _, ch := range s.subscribers {
		select {
		case ch <- snap:
		default:
			// Replace the stale snapshot so slow subscribers always see the
			// latest state, never an intermediate one.
			select {
			case <-ch:
			default:
			}
			ch <- snap
		}
	}
}

func (s *Store) snapshot() Snapshot {
	return Snapshot{
		State:    s.state,
		Output:   s.output,
		Errors:   s.renderErrs,
		Revision: s.revision,
	}
}

// enqueue offers a message to the loop unless the store is closed. Sends
// happen under the read lock: Close takes the write lock before closing the
// channel, so a send can never race the close.
func (s *Store) enqueue(msg any) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.isClosed {
		return ErrClosed
	}
	s.ops <- msg
	return nil
}

// do queues a mutation and waits for it to be applied. The render it triggers
// happens asynchronously after the queue drains.
func (s *Store) do(name string, apply func(*State) error) error {
	reply := make(chan error, 1)
	if err := s.enqueue(op{name: name, apply: apply, reply: reply}); err != nil {
		return err
	}
	return <-reply
}

// read queues an op that observes state without mutating it, so it neither
// triggers a render nor an autosave.
func (s *Store) read(name string, apply func(*State) error) error {
	reply := make(chan error, 1)
	if err := s.enqueue(op{name: name, apply: apply, readonly: true, reply: reply}); err != nil {
		return err
	}
	return <-reply
}

// Snapshot returns the state as of the next settled render, so a caller that
// just mutated reads its own write.
func (s *Store) Snapshot() (Snapshot, error) {
	reply := make(chan Snapshot, 1)
	if err := s.enqueue(snapshotReq{reply: reply}); err != nil {
		return Snapshot{}, err
	}
	return <-reply, nil
}

// Subscribe registers for snapshot fan-out. The current snapshot arrives
// immediately, then one per render; slow consumers only ever miss
// intermediate snapshots. The returned cancel closes the channel.
func (s *Store) Subscribe() (<-chan Snapshot, func(), error) {
	ch := make(chan Snapshot, 1)
	reply := make(chan func(), 1)
	if err := s.enqueue(subscribeReq{ch: ch, reply: reply}); err != nil {
		return nil, nil, err
	}
	return ch, <-reply, nil
}

// Close stops accepting ops, drains what is queued, and waits for the loop
// to exit. Subscriber channels are closed.
func (s *Store) Close() error {
	s.mu.Lock()
	if s.isClosed {
		s.mu.Unlock()
		<-s.done
		return nil
	}
	s.isClosed = true
	close(s.ops)
	s.mu.Unlock()

	<-s.done

	for id, ch := range s.subscribers {
		delete(s.subscribers, id)
		close(ch)
	}
	return nil
}

// SetTemplate replaces the whole template.
func (s *Store) SetTemplate(tpl template.Template) error {
	return s.do("set-template", func(st *State) error {
		if issues := template.Validate(tpl); len(issues) > 0 {
			return fmt.Errorf("store: invalid template: %s", issues[0])
		}
		st.Template = tpl
		return nil
	})
}

// SetProfile replaces the whole profile.
func (s *Store) SetProfile(prof profile.Profile) error {
	return s.do("set-profile", func(st *State) error {
		st.Profile = prof
		return nil
	})
}

// SetTheme switches the template's theme after vetting it against the
// resolver, so a typo fails the mutation instead of the next render.
func (s *Store) SetTheme(name string) error {
	return s.do("set-theme", func(st *State) error {
		if !s.themes.Has(name) {
			return fmt.Errorf("store: %w: %q", theme.ErrUnknownTheme, name)
		}
		st.Template.Theme = name
		return nil
	})
}

// ToggleSection flips a section's enabled gate.
func (s *Store) ToggleSection(id string, enabled bool) error {
	return s.do("toggle-section", func(st *State) error {
		tpl, err := st.Template.WithSectionEnabled(id, enabled)
		if err != nil {
			return err
		}
		st.Template = tpl
		return nil
	})
}

// RenameSection sets a section title.
func (s *Store) RenameSection(id, title string) error {
	return s.do("rename-section", func(st *State) error {
		tpl, err := st.Template.WithSectionTitle(id, title)
		if err != nil {
			return err
		}
		st.Template = tpl
		return nil
	})
}

// ConfigureSection swaps a section's config payload.
func (s *Store) ConfigureSection(id string, cfg template.Config) error {
	return s.do("configure-section", func(st *State) error {
		tpl, err := st.Template.WithSectionConfig(id, cfg)
		if err != nil {
			return err
		}
		st.Template = tpl
		return nil
	})
}

// MoveSection repositions a section to the target index.
func (s *Store) MoveSection(id string, to int) error {
	return s.do("move-section", func(st *State) error {
		tpl, err := st.Template.MoveSection(id, to)
		if err != nil {
			return err
		}
		st.Template = tpl
		return nil
	})
}

// AddSection appends a new section of the given type with a minted id and
// returns the id.
func (s *Store) AddSection(sectionType template.SectionType) (string, error) {
	id := mintSectionID(sectionType)
	err := s.do("add-section", func(st *State) error {
		tpl, err := st.Template.AddSection(template.Section{
			ID:      id,
			Type:    sectionType,
			Enabled: true,
		})
		if err != nil {
			return err
		}
		st.Template = tpl
		return nil
	})
	if err != nil {
		return "", err
	}
	return id, nil
}

// RemoveSection deletes a section.
func (s *Store) RemoveSection(id string) error {
	return s.do("remove-section", func(st *State) error {
		tpl, err := st.Template.RemoveSection(id)
		if err != nil {
			return err
		}
		st.Template = tpl
		return nil
	})
}

func mintSectionID(sectionType template.SectionType) string {
	return fmt.Sprintf("%s-%s", sectionType, uuid.NewString()[:8])
}

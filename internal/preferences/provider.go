// Package preferences owns the process-wide colour scheme preference.
//
// A Provider loads the persisted mode once, keeps it in memory, pushes every
// change to the persistent store and to a Presenter, then notifies
// subscribers. Components never read the store directly; they receive the
// provider and go through it.
package preferences

import (
	"fmt"
	"sync"

	"github.com/alexisbeaulieu97/tskpay/internal/logger"
	"github.com/alexisbeaulieu97/tskpay/internal/storage"
	apperrors "github.com/alexisbeaulieu97/tskpay/pkg/errors"
)

// DefaultKey is the storage key under which the mode is persisted.
const DefaultKey = "tskpay-theme"

// Listener receives the mode after each applied change.
type Listener func(mode Mode)

// Option customises a Provider.
type Option func(*Provider)

// WithKey overrides the storage key.
func WithKey(key string) Option {
	return func(p *Provider) {
		if key != "" {
			p.key = key
		}
	}
}

// WithLogger attaches a logger for load and persist diagnostics.
func WithLogger(log *logger.Logger) Option {
	return func(p *Provider) {
		p.log = log.WithComponent("preferences")
	}
}

// Provider is the single owner of the theme mode.
type Provider struct {
	store     storage.KeyValueStore
	presenter Presenter
	key       string
	log       *logger.Logger

	once sync.Once
	mu   sync.Mutex
	mode Mode

	nextID    int
	listeners map[int]Listener
}

// NewProvider wires a provider to its store and presenter. A nil store keeps
// the preference in memory; a nil presenter applies nothing.
func NewProvider(store storage.KeyValueStore, presenter Presenter, opts ...Option) *Provider {
	if store == nil {
		store = storage.NewMemoryStore()
	}
	if presenter == nil {
		presenter = noopPresenter{}
	}

	p := &Provider{
		store:     store,
		presenter: presenter,
		key:       DefaultKey,
		mode:      DefaultMode,
		listeners: make(map[int]Listener),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Key returns the storage key in use.
func (p *Provider) Key() string {
	return p.key
}

func (p *Provider) ensureInitialized() {
	p.once.Do(p.initialize)
}

func (p *Provider) initialize() {
	p.mu.Lock()
	defer p.mu.Unlock()

	mode := DefaultMode
	raw, ok, err := p.store.Get(p.key)
	switch {
	case err != nil:
		p.log.Error(err, "read persisted theme; using default")
	case !ok:
		p.log.Debug("no persisted theme; using default")
	default:
		if parsed, parseErr := ParseMode(raw); parseErr == nil {
			mode = parsed
		} else {
			p.log.Warn(fmt.Sprintf("ignoring persisted theme %q", raw))
		}
	}

	p.mode = mode
	p.presenter.ApplyPresentationState(stateFor(mode))

	if err := p.store.Set(p.key, string(mode)); err != nil {
		p.log.Error(err, "write back initial theme")
	}
}

// Mode returns the current mode, loading it on first use.
func (p *Provider) Mode() Mode {
	p.ensureInitialized()

	p.mu.Lock()
	defer p.mu.Unlock()
	return p.mode
}

// Subscribe registers fn for future changes and returns the current mode
// together with a function that removes the registration.
func (p *Provider) Subscribe(fn Listener) (Mode, func()) {
	p.ensureInitialized()

	p.mu.Lock()
	defer p.mu.Unlock()

	if fn == nil {
		return p.mode, func() {}
	}

	id := p.nextID
	p.nextID++
	p.listeners[id] = fn

	var unsubscribeOnce sync.Once
	return p.mode, func() {
		unsubscribeOnce.Do(func() {
			p.mu.Lock()
			delete(p.listeners, id)
			p.mu.Unlock()
		})
	}
}

// SetTheme replaces the mode. Values outside the enum are rejected without
// any effect, and so is a change the store fails to persist.
func (p *Provider) SetTheme(mode Mode) error {
	if _, err := ParseMode(string(mode)); err != nil {
		return err
	}
	p.ensureInitialized()
	return p.apply(func(Mode) Mode { return mode })
}

// SetThemeString parses value and applies it.
func (p *Provider) SetThemeString(value string) error {
	mode, err := ParseMode(value)
	if err != nil {
		return err
	}
	return p.SetTheme(mode)
}

// Toggle flips the mode and returns the new value.
func (p *Provider) Toggle() (Mode, error) {
	p.ensureInitialized()

	var next Mode
	err := p.apply(func(current Mode) Mode {
		next = current.Opposite()
		return next
	})
	if err != nil {
		return p.Mode(), err
	}
	return next, nil
}

// apply runs persist, memory, presenter and listeners in that order. The
// first three happen under the lock; listeners run after it is released so
// they may read the provider again.
func (p *Provider) apply(next func(current Mode) Mode) error {
	p.mu.Lock()
	mode := next(p.mode)

	if err := p.store.Set(p.key, string(mode)); err != nil {
		p.mu.Unlock()
		p.log.Error(err, "persist theme")
		return fmt.Errorf("persist theme %q: %w", mode, err)
	}

	p.mode = mode
	p.presenter.ApplyPresentationState(stateFor(mode))

	listeners := make([]Listener, 0, len(p.listeners))
	for id := 0; id < p.nextID; id++ {
		if fn, ok := p.listeners[id]; ok {
			listeners = append(listeners, fn)
		}
	}
	p.mu.Unlock()

	p.log.Debug("theme set to " + string(mode))
	for _, fn := range listeners {
		fn(mode)
	}
	return nil
}

// Use is the consumer-side presence check. Components that depend on the
// preference call it with the provider they were given.
func Use(p *Provider) (*Provider, error) {
	if p == nil {
		return nil, apperrors.NewConfigurationError("theme consumer", "a preferences.Provider")
	}
	return p, nil
}

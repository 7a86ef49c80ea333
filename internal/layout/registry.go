// Package layout resolves (layout, slot) pairs to concrete component
// implementations. Bundles register factories at startup; resolution is a
// pure lookup with per-slot override precedence, replacing the string-built
// dynamic imports of the original storefront with a statically verifiable
// registry.
package layout

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
)

// Component renders one slot. Implementations must be pure with respect to
// props: the same props value always produces the same markup.
type Component interface {
	Render(ctx context.Context, w io.Writer, props any) error
}

// Factory constructs a slot component. Factories run at most once per
// (layout, slot) pair; construction cost (template parsing) is paid lazily on
// first resolve and cached for the process lifetime.
type Factory func() (Component, error)

// ComponentFunc adapts a plain function to the Component interface.
type ComponentFunc func(ctx context.Context, w io.Writer, props any) error

// Render implements Component.
func (f ComponentFunc) Render(ctx context.Context, w io.Writer, props any) error {
	return f(ctx, w, props)
}

var (
	// ErrUnknownLayout reports a layout name no bundle registered under.
	ErrUnknownLayout = errors.New("unknown layout")
	// ErrMissingSlot reports a bundle that does not implement a slot.
	ErrMissingSlot = errors.New("layout does not implement slot")
)

type slotKey struct {
	layout string
	slot   Slot
}

// Registry maps (layout, slot) to component factories and memoizes
// constructed components.
type Registry struct {
	mu        sync.RWMutex
	factories map[slotKey]Factory
	instances map[slotKey]Component
	layouts   map[string]struct{}
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		factories: make(map[slotKey]Factory),
		instances: make(map[slotKey]Component),
		layouts:   make(map[string]struct{}),
	}
}

// Register adds a factory for one slot of a layout bundle. Registering the
// same (layout, slot) twice is a wiring bug and is rejected.
func (r *Registry) Register(layout string, slot Slot, factory Factory) error {
	if layout == "" {
		return fmt.Errorf("register %s: empty layout name", slot.Path())
	}
	if factory == nil {
		return fmt.Errorf("register %s/%s: nil factory", layout, slot.Path())
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	key := slotKey{layout: layout, slot: slot}
	if _, exists := r.factories[key]; exists {
		return fmt.Errorf("register %s/%s: already registered", layout, slot.Path())
	}
	r.factories[key] = factory
	r.layouts[layout] = struct{}{}
	return nil
}

// Resolve selects the component implementing slot. A non-empty override wins
// over defaultLayout; otherwise defaultLayout is used. Unknown layouts and
// unimplemented slots are configuration errors, never silent empty renders.
func (r *Registry) Resolve(slot Slot, defaultLayout, override string) (Component, error) {
	effective := defaultLayout
	if override != "" {
		effective = override
	}
	return r.component(effective, slot)
}

func (r *Registry) component(layout string, slot Slot) (Component, error) {
	key := slotKey{layout: layout, slot: slot}

	r.mu.RLock()
	if instance, ok := r.instances[key]; ok {
		r.mu.RUnlock()
		return instance, nil
	}
	factory, ok := r.factories[key]
	_, layoutKnown := r.layouts[layout]
	r.mu.RUnlock()

	if !ok {
		if !layoutKnown {
			return nil, fmt.Errorf("resolve %s/%s: %w", layout, slot.Path(), ErrUnknownLayout)
		}
		return nil, fmt.Errorf("resolve %s/%s: %w", layout, slot.Path(), ErrMissingSlot)
	}

	// Load-once guard: concurrent first resolves of the same key construct
	// the component a single time.
	r.mu.Lock()
	defer r.mu.Unlock()
	if instance, ok := r.instances[key]; ok {
		return instance, nil
	}
	instance, err := factory()
	if err != nil {
		return nil, fmt.Errorf("construct %s/%s: %w", layout, slot.Path(), err)
	}
	r.instances[key] = instance
	return instance, nil
}

// Layouts returns the names of all registered bundles.
func (r *Registry) Layouts() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.layouts))
	for name := range r.layouts {
		names = append(names, name)
	}
	return names
}

// Verify checks that the named bundle implements every required slot. Run at
// startup so malformed bundles fail deployment instead of a page render.
func (r *Registry) Verify(layout string) error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if _, ok := r.layouts[layout]; !ok {
		return fmt.Errorf("verify %s: %w", layout, ErrUnknownLayout)
	}
	for _, slot := range RequiredSlots() {
		if _, ok := r.factories[slotKey{layout: layout, slot: slot}]; !ok {
			return fmt.Errorf("verify %s/%s: %w", layout, slot.Path(), ErrMissingSlot)
		}
	}
	return nil
}

// VerifyAll verifies every registered bundle.
func (r *Registry) VerifyAll() error {
	for _, name := range r.Layouts() {
		if err := r.Verify(name); err != nil {
			return err
		}
	}
	return nil
}

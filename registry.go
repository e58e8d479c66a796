package skemap

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/hashicorp/go-multierror"
)

var (
	// ErrNilMapper is returned when a nil descriptor is registered.
	ErrNilMapper = errors.New("skemap(registry): nil mapper provided")
	// ErrEmptyClassName is returned when a descriptor has no class name.
	ErrEmptyClassName = errors.New("skemap(registry): empty class name provided")
	// ErrRegistrySealed is returned when writing to a sealed registry.
	ErrRegistrySealed = errors.New("skemap(registry): registry is sealed")
)

// Registry maps type names to Mapper descriptors. It is safe for concurrent
// use; registration must happen before any Resolve that depends on it.
type Registry struct {
	mu     sync.RWMutex
	m      map[string]*Mapper
	sealed bool
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{m: make(map[string]*Mapper)}
}

// Register inserts or overwrites the descriptor under m.ClassName.
func (r *Registry) Register(m *Mapper) error {
	if m == nil {
		return ErrNilMapper
	}
	if m.ClassName == "" {
		return ErrEmptyClassName
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.sealed {
		return fmt.Errorf("%w: cannot register %q", ErrRegistrySealed, m.ClassName)
	}
	r.m[m.ClassName] = m
	return nil
}

// RegisterAll registers every descriptor, stopping at the first failure.
func (r *Registry) RegisterAll(ms ...*Mapper) error {
	for _, m := range ms {
		if err := r.Register(m); err != nil {
			return err
		}
	}
	return nil
}

// MustRegister is like Register but panics on error. It is intended for
// package-level model tables.
func (r *Registry) MustRegister(ms ...*Mapper) {
	if err := r.RegisterAll(ms...); err != nil {
		panic(err)
	}
}

// Resolve returns the descriptor registered under name or an
// *UnknownTypeError.
func (r *Registry) Resolve(name string) (*Mapper, error) {
	r.mu.RLock()
	m, ok := r.m[name]
	r.mu.RUnlock()
	if !ok {
		return nil, &UnknownTypeError{Name: name}
	}
	return m, nil
}

// Lookup returns the descriptor if present.
func (r *Registry) Lookup(name string) (*Mapper, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.m[name]
	return m, ok
}

// Names returns the registered type names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	out := make([]string, 0, len(r.m))
	for k := range r.m {
		out = append(out, k)
	}
	r.mu.RUnlock()
	sort.Strings(out)
	return out
}

// Len returns the number of registered descriptors.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.m)
}

// Seal makes the registry read-only. Further writes fail with
// ErrRegistrySealed.
func (r *Registry) Seal() {
	r.mu.Lock()
	r.sealed = true
	r.mu.Unlock()
}

// Sealed reports whether Seal was called.
func (r *Registry) Sealed() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sealed
}

// Reset clears all registered entries and unseals the registry.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.m = make(map[string]*Mapper)
	r.sealed = false
}

// Check walks every descriptor and reports all dangling Composite references
// and malformed type nodes at once. A nil result means every reference
// resolves.
func (r *Registry) Check() error {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.m))
	for k := range r.m {
		names = append(names, k)
	}
	sort.Strings(names)

	var result *multierror.Error
	for _, name := range names {
		m := r.m[name]
		if m.Elements != nil {
			result = r.checkNode(result, *m.Elements, name+"[]")
		}
		for _, p := range m.ModelProperties {
			result = r.checkNode(result, p.Type, name+"."+p.Name)
		}
	}
	return result.ErrorOrNil()
}

// checkNode reports problems in n and every node nested under it.
func (r *Registry) checkNode(result *multierror.Error, n TypeNode, referrer string) *multierror.Error {
	if !n.Name.Known() {
		return multierror.Append(result, fmt.Errorf("skemap(registry): %s: unsupported type %q", referrer, n.Name))
	}
	switch n.Name {
	case TypeComposite:
		if _, ok := r.m[n.ClassName]; !ok {
			result = multierror.Append(result, &UnknownTypeError{Name: n.ClassName, Referrer: referrer})
		}
	case TypeSequence:
		if n.Element == nil {
			return multierror.Append(result, fmt.Errorf("skemap(registry): %s: Sequence without element type", referrer))
		}
		return r.checkNode(result, *n.Element, referrer)
	case TypeDictionary:
		if n.Value == nil {
			return multierror.Append(result, fmt.Errorf("skemap(registry): %s: Dictionary without value type", referrer))
		}
		return r.checkNode(result, *n.Value, referrer)
	}
	return result
}

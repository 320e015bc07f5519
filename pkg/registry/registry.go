package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/akuroiwa/mcts-gen/pkg/domain"
	"github.com/mitchellh/mapstructure"
)

// Factory builds the initial state of a domain from loosely typed arguments,
// as they arrive from JSON, YAML or CLI flags.
type Factory func(args map[string]any) (domain.State, error)

// Entry describes a registered domain.
type Entry struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	factory     Factory
}

// Registry maps domain names to factories. It replaces loading domain code
// by module path at runtime: only what was registered at startup can be built.
type Registry struct {
	mu      sync.RWMutex
	domains map[string]Entry
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		domains: make(map[string]Entry),
	}
}

// Register adds a domain to the registry.
// If a domain with the same name exists, it is overwritten.
func (r *Registry) Register(name, description string, fn Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.domains[name] = Entry{Name: name, Description: description, factory: fn}
}

// Build looks up a domain by name and constructs its initial state.
// Returns domain.ErrUnknownDomain if the domain is not registered.
func (r *Registry) Build(desc domain.Descriptor) (domain.State, error) {
	r.mu.RLock()
	e, ok := r.domains[desc.Domain]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownDomain, desc.Domain)
	}

	args := desc.Args
	if args == nil {
		args = map[string]any{}
	}
	state, err := e.factory(args)
	if err != nil {
		return nil, fmt.Errorf("build %s: %w", desc.Domain, err)
	}
	return state, nil
}

// List returns every registered domain sorted by name.
func (r *Registry) List() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Entry, 0, len(r.domains))
	for _, e := range r.domains {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Decode copies loosely typed factory arguments into a typed struct.
// Field names come from `json` tags, strings are converted where the target
// type requires it, and unknown keys are rejected.
func Decode(args map[string]any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		TagName:          "json",
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(args); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidConfiguration, err)
	}
	return nil
}

package rules

import (
	"fmt"

	"github.com/gost-tex/lint-gost-tex/internal/core/domain"
	"github.com/gost-tex/lint-gost-tex/internal/core/ports/driven"
)

// BuilderFunc creates a Rule from the lint configuration.
type BuilderFunc func(cfg *domain.Config) (driven.Rule, error)

var _ driven.RuleFactory = (*Registry)(nil)

// Registry maps rule names to their builders.
// Rules are built in registration order, which is also the order their
// issues are produced in.
type Registry struct {
	builders map[string]BuilderFunc
	order    []string
}

// NewRegistry creates an empty rule registry.
func NewRegistry() *Registry {
	return &Registry{
		builders: make(map[string]BuilderFunc),
	}
}

// Register adds a rule builder to the registry.
// Name should be unique and match the rule's Name() return value.
// Registering a name twice replaces the builder but keeps its position.
func (r *Registry) Register(name string, builder BuilderFunc) {
	if _, ok := r.builders[name]; !ok {
		r.order = append(r.order, name)
	}
	r.builders[name] = builder
}

// Build creates a rule by name with the given config.
func (r *Registry) Build(name string, cfg *domain.Config) (driven.Rule, error) {
	builder, ok := r.builders[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownRule, name)
	}
	return builder(cfg)
}

// BuildAll creates every registered rule.
func (r *Registry) BuildAll(cfg *domain.Config) ([]driven.Rule, error) {
	built := make([]driven.Rule, 0, len(r.order))
	for _, name := range r.order {
		rule, err := r.Build(name, cfg)
		if err != nil {
			return nil, fmt.Errorf("rule %s: %w", name, err)
		}
		built = append(built, rule)
	}
	return built, nil
}

// BuildSet creates every registered rule and wraps them in a Pipeline.
func (r *Registry) BuildSet(cfg *domain.Config) (driven.RuleSet, error) {
	built, err := r.BuildAll(cfg)
	if err != nil {
		return nil, err
	}
	return NewPipeline(built...), nil
}

// Has returns true if a rule with the given name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.builders[name]
	return ok
}

// Names returns all registered rule names in registration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.order...)
}

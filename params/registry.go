package params

import "fmt"

// Registry is a model's ordered parameter table. Parameters are
// registered once at construction and never mutated afterwards; per-call
// values are resolved against an optional Packed bundle.
type Registry struct {
	model   string
	names   []string
	index   map[string]int
	static  map[string]float64
	dynamic map[string]bool
}

// NewRegistry returns an empty Registry for the named model. The model
// name is the key under which Packed overrides are addressed, so it must
// be unique within any composed model graph sharing one bundle.
func NewRegistry(model string) *Registry {
	return &Registry{
		model:   model,
		index:   make(map[string]int),
		static:  make(map[string]float64),
		dynamic: make(map[string]bool),
	}
}

// Model returns the model name the Registry was built for.
func (r *Registry) Model() string { return r.model }

// Names returns the registered parameter names in registration order.
func (r *Registry) Names() []string {
	return append([]string(nil), r.names...)
}

// Len returns the number of registered parameters.
func (r *Registry) Len() int { return len(r.names) }

// Add registers a parameter with a statically bound default value.
// Registration order is preserved and significant.
func (r *Registry) Add(name string, value float64) error {
	if err := r.register(name); err != nil {
		return err
	}
	r.static[name] = value

	return nil
}

// AddDynamic registers a parameter with no default: a value must be
// supplied through the Packed bundle on every call.
func (r *Registry) AddDynamic(name string) error {
	if err := r.register(name); err != nil {
		return err
	}
	r.dynamic[name] = true

	return nil
}

// register appends name to the ordered table, rejecting duplicates.
func (r *Registry) register(name string) error {
	if _, ok := r.index[name]; ok {
		return fmt.Errorf("%w: %q on model %q", ErrDuplicateParameter, name, r.model)
	}
	r.index[name] = len(r.names)
	r.names = append(r.names, name)

	return nil
}

// Unpack resolves the effective value of every registered parameter, in
// registration order, against the optional override bundle p (nil means
// no overrides). Resolution per parameter: positional override → named
// override → static default → ErrMissingParameter.
//
// The bundle entry for this model is validated: positional overrides may
// not outnumber registered parameters (ErrTooManyValues) and named
// overrides must match registered names (ErrUnknownParameter).
func (r *Registry) Unpack(p *Packed) ([]float64, error) {
	e, _ := p.lookup(r.model)
	if err := r.validate(e); err != nil {
		return nil, err
	}

	values := make([]float64, len(r.names))
	for i, name := range r.names {
		v, err := r.resolveAt(e, i, name)
		if err != nil {
			return nil, err
		}
		values[i] = v
	}

	return values, nil
}

// Resolve returns the effective value of a single named parameter against
// the optional override bundle p.
func (r *Registry) Resolve(p *Packed, name string) (float64, error) {
	i, ok := r.index[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q on model %q", ErrUnknownParameter, name, r.model)
	}
	e, _ := p.lookup(r.model)
	if err := r.validate(e); err != nil {
		return 0, err
	}

	return r.resolveAt(e, i, name)
}

// resolveAt applies the resolution order for the parameter at slot i.
func (r *Registry) resolveAt(e *entry, i int, name string) (float64, error) {
	if e != nil {
		if i < len(e.positional) {
			return e.positional[i], nil
		}
		if v, ok := e.named[name]; ok {
			return v, nil
		}
	}
	if !r.dynamic[name] {
		return r.static[name], nil
	}

	return 0, fmt.Errorf("%w: %q on model %q", ErrMissingParameter, name, r.model)
}

// validate checks the bundle entry for this model against the table.
func (r *Registry) validate(e *entry) error {
	if e == nil {
		return nil
	}
	if len(e.positional) > len(r.names) {
		return fmt.Errorf("%w: model %q takes %d, got %d",
			ErrTooManyValues, r.model, len(r.names), len(e.positional))
	}
	for name := range e.named {
		if _, ok := r.index[name]; !ok {
			return fmt.Errorf("%w: %q on model %q", ErrUnknownParameter, name, r.model)
		}
	}

	return nil
}

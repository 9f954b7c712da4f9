package params

// Packed is a per-call parameter override bundle. It maps model names to
// positional and/or named override values, is built fresh at the call
// site, and is read-only once handed to a model.
//
// A nil *Packed is valid everywhere and means "no overrides": every model
// falls back to its statically bound defaults.
//
// Positional overrides follow each model's registration order; a shorter
// positional list covers only the leading parameters. Named overrides may
// fill any subset and win over defaults but lose to positional values for
// the same slot.
type Packed struct {
	models map[string]*entry
}

// entry holds the overrides supplied for a single model.
type entry struct {
	positional []float64
	named      map[string]float64
}

// NewPacked returns an empty override bundle ready for chaining.
func NewPacked() *Packed {
	return &Packed{models: make(map[string]*entry)}
}

// WithPositional records override values for model, matched one-to-one to
// the model's parameter registration order. Later calls for the same
// model replace the earlier positional list. Returns the bundle for
// chaining.
func (p *Packed) WithPositional(model string, values ...float64) *Packed {
	e := p.entryFor(model)
	e.positional = append([]float64(nil), values...)

	return p
}

// WithNamed records a single named override for model. Returns the bundle
// for chaining.
func (p *Packed) WithNamed(model, param string, value float64) *Packed {
	e := p.entryFor(model)
	if e.named == nil {
		e.named = make(map[string]float64)
	}
	e.named[param] = value

	return p
}

// entryFor fetches or creates the entry for model.
func (p *Packed) entryFor(model string) *entry {
	if p.models == nil {
		p.models = make(map[string]*entry)
	}
	e, ok := p.models[model]
	if !ok {
		e = &entry{}
		p.models[model] = e
	}

	return e
}

// lookup returns the entry for model, if any. Nil-receiver safe.
func (p *Packed) lookup(model string) (*entry, bool) {
	if p == nil || p.models == nil {
		return nil, false
	}
	e, ok := p.models[model]

	return e, ok
}

package unitgo

import "sync"

// Registry maps canonical exponent vectors to their preferred named unit.
// It is the runtime rendition of the compile-time name-resolution table:
// populated once per primary unit declaration, append-only, never mutated
// after a dimension is claimed.
//
// Duplicate registration for a dimension is rejected with
// *DuplicateUnitError: the first declaration wins, so "which unit is
// canonical for this exponent vector" always has exactly one answer.
//
// The built-in catalog populates the default registry during package init.
// Additional user units may be declared at program start; reads are safe for
// concurrent use.
type Registry struct {
	mu     sync.RWMutex
	byDim  map[Dimension]Unit
	logger *Logger
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithLogger sets the logger used for registration events.
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) RegistryOption {
	return func(r *Registry) {
		if l == nil {
			l = NoopLogger()
		}
		r.logger = l
	}
}

// NewRegistry creates an empty Registry.
func NewRegistry(optFns ...RegistryOption) *Registry {
	r := &Registry{
		byDim:  make(map[Dimension]Unit),
		logger: NoopLogger(),
	}
	for _, fn := range optFns {
		fn(r)
	}
	return r
}

// register claims d for u. The first registration for a dimension wins;
// a second attempt returns *DuplicateUnitError and leaves the entry intact.
func (r *Registry) register(u Unit) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.byDim[u.dim]; ok {
		err := &DuplicateUnitError{Dimension: u.dim, Existing: existing.name, Rejected: u.name}
		r.logger.LogRegister(u.name, u.symbol, u.dim, err)
		return err
	}
	r.byDim[u.dim] = u
	r.logger.LogRegister(u.name, u.symbol, u.dim, nil)
	return nil
}

// Lookup returns the named unit registered for d. Lookup is total in the
// sense of name resolution: when no entry exists the second result is false
// and the caller renders or returns the raw exponent vector unchanged.
func (r *Registry) Lookup(d Dimension) (Unit, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byDim[d]
	return u, ok
}

// SetLogger replaces the registration logger. Pass nil to disable logging.
func (r *Registry) SetLogger(l *Logger) {
	if l == nil {
		l = NoopLogger()
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logger = l
}

// defaultRegistry backs the package-level declaration facility. It must be
// initialized before any unit variable, which Go's init ordering guarantees
// because every declaration references it.
var defaultRegistry = NewRegistry()

// DefaultRegistry returns the process-wide registry used by NewUnit and the
// built-in catalog.
func DefaultRegistry() *Registry {
	return defaultRegistry
}

// LookupName resolves an exponent vector to its preferred named unit in the
// default registry. Resolution is deterministic: a dimension either has
// exactly one named unit or none.
func LookupName(d Dimension) (Unit, bool) {
	return defaultRegistry.Lookup(d)
}

package udf

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/fyrsmithlabs/colfuncs/pkg/columnar"
)

// Registry holds the scalar functions a host can invoke, keyed by name.
// Safe for concurrent use.
type Registry struct {
	logger *zap.Logger

	mu    sync.RWMutex
	funcs map[string]*ScalarFunction
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithLogger sets the registry's logger. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) RegistryOption {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// NewRegistry creates an empty function registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		logger: zap.NewNop(),
		funcs:  make(map[string]*ScalarFunction),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a function to the registry. Duplicate names are rejected.
func (r *Registry) Register(fn *ScalarFunction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.funcs[fn.Name]; ok {
		return fmt.Errorf("%w: %s", ErrAlreadyRegistered, fn.Name)
	}
	r.funcs[fn.Name] = fn
	r.logger.Debug("registered scalar function",
		zap.String("name", fn.Name),
		zap.Int("args", len(fn.ArgTypes)),
		zap.Stringer("volatility", fn.Volatility),
	)
	return nil
}

// Lookup returns the function registered under name.
func (r *Registry) Lookup(name string) (*ScalarFunction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.funcs[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotRegistered, name)
	}
	return fn, nil
}

// Invoke resolves name and runs the function on one batch.
func (r *Registry) Invoke(name string, args columnar.BatchArgs) (columnar.Datum, error) {
	fn, err := r.Lookup(name)
	if err != nil {
		return nil, err
	}
	out, err := fn.Invoke(args)
	if err != nil {
		r.logger.Warn("scalar function invocation failed",
			zap.String("name", name),
			zap.Int("rows", args.NumRows),
			zap.Error(err),
		)
		return nil, err
	}
	return out, nil
}

package storage

import (
	"sync"
	"sync/atomic"
)

// BuildFunc constructs the handles from resolved credentials.
type BuildFunc func(creds Credentials, cfg Config) (*Handles, error)

// Registry owns the handles of one process. They are built on the first
// successful GetOrInit and are never rebuilt or closed afterwards.
type Registry struct {
	cfg    Config
	lookup LookupFunc
	build  BuildFunc

	mu      sync.Mutex
	handles atomic.Pointer[Handles]
}

// RegistryOption customizes a Registry.
type RegistryOption func(*Registry)

// WithLookup replaces the environment lookup used to resolve credentials.
func WithLookup(fn LookupFunc) RegistryOption {
	return func(r *Registry) {
		r.lookup = fn
	}
}

// WithBuilder replaces the handle constructor.
func WithBuilder(fn BuildFunc) RegistryOption {
	return func(r *Registry) {
		r.build = fn
	}
}

// NewRegistry creates a registry that has not yet built its handles.
func NewRegistry(cfg Config, opts ...RegistryOption) *Registry {
	r := &Registry{
		cfg:   cfg,
		build: NewHandles,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// GetOrInit returns the shared handles, building them on first use.
// A failed attempt leaves the registry empty so that a later call can retry.
func (r *Registry) GetOrInit() (*Handles, error) {
	if h := r.handles.Load(); h != nil {
		return h, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if h := r.handles.Load(); h != nil {
		return h, nil
	}

	creds, err := ResolveCredentials(r.lookup, r.cfg.accessKeyEnv(), r.cfg.secretKeyEnv(), r.cfg.Region)
	if err != nil {
		return nil, err
	}

	h, err := r.build(creds, r.cfg)
	if err != nil {
		return nil, err
	}

	r.handles.Store(h)
	return h, nil
}

var (
	processOnce     sync.Once
	processRegistry *Registry
)

// Process returns the registry shared by the whole process.
// Only the configuration passed by the first caller is used.
func Process(cfg Config) *Registry {
	processOnce.Do(func() {
		processRegistry = NewRegistry(cfg)
	})
	return processRegistry
}

package module

import "sync"

// Registry maps module names to their port sets during bootstrap
type Registry struct {
	mu  sync.RWMutex
	reg map[string]any
}

// NewRegistry returns an empty Registry
func NewRegistry() *Registry { return &Registry{reg: map[string]any{}} }

// Register stores every module's ports under its name
func (r *Registry) Register(mods ...Module) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range mods {
		r.reg[m.Name()] = m.Ports()
	}
}

// Names lists registered module names in no particular order
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.reg))
	for k := range r.reg {
		out = append(out, k)
	}
	return out
}

// PortsAs fetches and type asserts the port set registered for name
func PortsAs[T any](r *Registry, name string) (T, bool) {
	r.mu.RLock()
	v, ok := r.reg[name]
	r.mu.RUnlock()
	out, ok2 := v.(T)
	return out, ok && ok2
}

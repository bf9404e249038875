package rebuild

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// ToolFunc is one registered tool operation.
type ToolFunc func(ctx context.Context, args map[string]any) *ToolResult

// Registry is a map-backed ToolCaller. Unknown tool names yield a
// structured not-found result, never an error; absence of a handler is a
// per-module condition the executor downgrades to a warning.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]ToolFunc
}

// NewRegistry creates an empty tool registry.
func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]ToolFunc)}
}

// Register adds or replaces a tool handler.
func (r *Registry) Register(name string, fn ToolFunc) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tools[name] = fn
}

// List returns registered tool names, sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Call invokes a registered tool. A nil result from a handler is
// normalized to a bare success so callers can always dereference.
func (r *Registry) Call(ctx context.Context, name string, args map[string]any) *ToolResult {
	r.mu.RLock()
	fn, ok := r.tools[name]
	r.mu.RUnlock()

	if !ok {
		return &ToolResult{
			Success: false,
			Error:   fmt.Sprintf("Tool not found: %s", name),
		}
	}

	result := fn(ctx, args)
	if result == nil {
		result = &ToolResult{Success: true}
	}
	return result
}

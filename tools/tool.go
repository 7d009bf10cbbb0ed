// Package tools provides the tool surface exposed to the model.
//
// Information Hiding:
// - Tool execution details hidden behind interface
// - Argument schemas hidden in implementations
// - Registry lookup and dispatch recovery hidden from consumers
package tools

import (
	"context"
	"fmt"
	"sort"

	"github.com/richinex/phonewise/llm"
)

// Tool is the contract every registered tool implements.
type Tool interface {
	// Name is the exact name the model calls the tool by.
	Name() string

	// Description explains the tool to the model.
	Description() string

	// Schema returns the JSON-schema-shaped argument declaration.
	Schema() map[string]interface{}

	// Invoke executes the tool and returns its textual result.
	Invoke(ctx context.Context, args Args) (string, error)
}

// Registry maps tool names to handlers. It is built once at startup and
// immutable afterwards, so concurrent lookups need no locking.
type Registry struct {
	tools map[string]Tool
	order []string
}

// NewRegistry builds a registry from the given tools.
// Returns an error if two tools share a name.
func NewRegistry(toolList ...Tool) (*Registry, error) {
	r := &Registry{tools: make(map[string]Tool, len(toolList))}
	for _, t := range toolList {
		name := t.Name()
		if _, exists := r.tools[name]; exists {
			return nil, fmt.Errorf("tool '%s' already registered", name)
		}
		r.tools[name] = t
		r.order = append(r.order, name)
	}
	return r, nil
}

// Get returns a tool by exact name.
func (r *Registry) Get(name string) (Tool, bool) {
	tool, exists := r.tools[name]
	return tool, exists
}

// Has checks if a tool exists in the registry.
func (r *Registry) Has(name string) bool {
	_, exists := r.tools[name]
	return exists
}

// Names returns all registered tool names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Definitions returns the tool declarations for the model backend,
// in registration order.
func (r *Registry) Definitions() []llm.ToolDefinition {
	defs := make([]llm.ToolDefinition, 0, len(r.order))
	for _, name := range r.order {
		t := r.tools[name]
		defs = append(defs, llm.ToolDefinition{
			Name:        t.Name(),
			Description: t.Description(),
			Parameters:  t.Schema(),
		})
	}
	return defs
}

// Dispatch invokes the named tool and always returns usable result text.
// An unknown name, a handler error, or a handler panic all degrade to
// error text scoped to this one call; they never propagate.
func (r *Registry) Dispatch(ctx context.Context, name string, args Args) (result string) {
	tool, exists := r.tools[name]
	if !exists {
		return fmt.Sprintf("Tool %s not found", name)
	}

	defer func() {
		if rec := recover(); rec != nil {
			result = fmt.Sprintf("Error executing tool: %v", rec)
		}
	}()

	out, err := tool.Invoke(ctx, args)
	if err != nil {
		return fmt.Sprintf("Error executing tool: %v", err)
	}
	return out
}

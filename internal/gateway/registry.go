package gateway

import (
	"context"

	"awsmcp/pkg/logging"

	"github.com/google/uuid"
)

const logSubsystem = "Gateway"

// Registry is the dispatch table mapping tool names to descriptors and
// handlers. It is populated during startup and read-only afterwards, so
// concurrent invocations need no mutual exclusion. No retry, no caching.
type Registry struct {
	tools map[string]Tool
	order []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]Tool)}
}

// Register adds a tool to the registry. Names are unique and registration is
// write-once per name; a duplicate registration returns DuplicateToolError.
//
// Register is not safe for concurrent use. All registration must complete
// before the registry starts serving invocations.
func (r *Registry) Register(tool Tool) error {
	if _, exists := r.tools[tool.Name]; exists {
		return &DuplicateToolError{Name: tool.Name}
	}
	r.tools[tool.Name] = tool
	r.order = append(r.order, tool.Name)
	logging.Debug(logSubsystem, "Registered tool %s", tool.Name)
	return nil
}

// Contains reports whether a tool is registered under the given name. Tool
// sets sharing an operation use it to let the first registration win.
func (r *Registry) Contains(name string) bool {
	_, ok := r.tools[name]
	return ok
}

// Tools returns the registered descriptors in registration order.
func (r *Registry) Tools() []Tool {
	out := make([]Tool, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.tools[name])
	}
	return out
}

// Len returns the number of registered tools.
func (r *Registry) Len() int {
	return len(r.tools)
}

// Invoke looks up a tool by name and runs the invocation pipeline:
// required-argument validation, handler execution, envelope wrapping on
// success, error normalization on failure. Exactly one of the two return
// values is non-nil.
func (r *Registry) Invoke(ctx context.Context, name string, argValues map[string]interface{}) (*Envelope, error) {
	tool, ok := r.tools[name]
	if !ok {
		return nil, &UnknownToolError{Name: name}
	}

	invocationID := uuid.NewString()
	args := NewArgs(argValues)

	// Fail fast on missing required arguments: no provider call is attempted
	// and nothing reaches the error log as a system fault.
	for _, spec := range tool.Args {
		if spec.Required && !args.Has(spec.Name) {
			err := &MissingArgumentError{Arg: spec.Name}
			logging.Debug(logSubsystem, "Tool %s rejected (invocation %s): %v", name, invocationID, err)
			return nil, err
		}
	}

	logging.Debug(logSubsystem, "Invoking tool %s (invocation %s)", name, invocationID)

	result, err := tool.Handler(ctx, args)
	if err != nil {
		if IsValidation(err) {
			logging.Debug(logSubsystem, "Tool %s rejected (invocation %s): %v", name, invocationID, err)
			return nil, err
		}
		return nil, Normalize(logSubsystem, invocationID, name, err)
	}

	return Wrap(result), nil
}

package gateway

import "context"

// Argument schema types, mirroring JSON Schema primitive names.
const (
	TypeString  = "string"
	TypeBoolean = "boolean"
	TypeInteger = "integer"
	TypeNumber  = "number"
	TypeArray   = "array"
	TypeObject  = "object"
)

// ArgSpec describes a single tool argument.
type ArgSpec struct {
	Name        string
	Type        string // "string", "boolean", "integer", "number", "array", "object"
	Required    bool
	Description string

	// Default is advertised in the tool schema; handlers apply it through
	// the Args fallback accessors (StringOr, BoolOr, ...).
	Default interface{}

	// ItemType is the element type for array arguments (default "string").
	ItemType string
}

// Handler executes a tool invocation. It receives the caller's arguments and
// returns a JSON-serializable payload or an error classified by the gateway
// error taxonomy.
type Handler func(ctx context.Context, args Args) (interface{}, error)

// Tool binds a name, description and argument schema to a handler.
// Descriptors are immutable once registered.
type Tool struct {
	Name        string
	Description string
	Args        []ArgSpec
	Handler     Handler
}

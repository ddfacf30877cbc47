// Package gateway implements the tool registration and invocation pipeline
// shared by all awsmcp tool sets.
//
// # Architecture
//
// A Registry maps tool names to descriptors (name, description, argument
// schema) and handlers. Tool sets register their tools once at startup;
// afterwards the registry is read-only and safe for concurrent invocation.
//
// Every invocation runs the same pipeline:
//
//  1. Look up the tool by name (UnknownToolError on miss).
//  2. Check required arguments against the schema before any provider call.
//  3. Run the handler. Handlers read arguments through the Args accessors,
//     issue exactly one provider call (or a small fixed sequence), and
//     optionally post-process the response.
//  4. Wrap the result in an Envelope, or normalize the failure into a single
//     error whose message is either a serialized provider diagnostic or a
//     plain string.
//
// The Server type bridges a populated Registry onto an MCP server: each
// descriptor becomes an MCP tool whose input schema is generated from the
// argument specs, and each invocation result becomes a single JSON text
// content. Transport selection (stdio, streamable-http, sse) mirrors the
// gateway configuration.
//
// # Error taxonomy
//
//   - Validation (MissingArgumentError, InvalidArgumentError): the caller
//     supplied missing or malformed arguments. Detected before the provider
//     is contacted; logged at debug only.
//   - Domain (NotFoundError): raised by handlers after inspecting a
//     successful but empty provider response. Passes through normalization
//     unchanged; the message is already caller-facing.
//   - Provider (ProviderError): the provider rejected the request with a
//     structured diagnostic. The code, message and fault are preserved as a
//     JSON payload in the error message.
//   - Transport/unknown: everything else surfaces with its plain text.
//
// No error is retried at this layer; each invocation yields exactly one
// Envelope or exactly one error, never both.
package gateway

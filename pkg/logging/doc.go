// Package logging provides structured logging for awsmcp with unified
// log handling and level filtering.
//
// The package wraps Go's standard slog package. Every log entry carries a
// subsystem identifier ("Gateway", "Config", "EC2", ...) so that output from
// the registry, the transports, and the individual tool sets can be told
// apart when the gateway serves all five tool sets from one process.
//
// # Usage
//
//	import "awsmcp/pkg/logging"
//
//	logging.InitForCLI(logging.LevelInfo, os.Stderr)
//	logging.Info("Bootstrap", "Gateway starting up")
//	logging.Debug("Config", "Loaded configuration from %s", configPath)
//	logging.Error("Gateway", err, "Tool invocation failed")
//
// Output goes to stderr by convention: with the stdio transport the MCP
// protocol owns stdout.
//
// # Thread Safety
//
// All functions are safe for concurrent use after InitForCLI has been
// called once at startup.
package logging

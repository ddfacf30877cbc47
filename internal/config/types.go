package config

// Config is the top-level configuration structure for awsmcp.
//
// It is loaded once at startup, amended with environment overrides, and then
// handed to the gateway constructor. Nothing reloads or mutates it afterwards.
type Config struct {
	AWS     AWSConfig     `yaml:"aws"`
	Gateway GatewayConfig `yaml:"gateway"`

	// LogLevel controls log verbosity: debug, info, warn or error.
	LogLevel string `yaml:"logLevel,omitempty"`
}

// AWSConfig holds the settings used to construct the shared AWS clients.
type AWSConfig struct {
	// Region is the target AWS region (default: us-east-1).
	Region string `yaml:"region,omitempty"`

	// Profile is an optional named credential profile. When empty the SDK's
	// default credential chain applies.
	Profile string `yaml:"profile,omitempty"`
}

const (
	// MCPTransportStreamableHTTP is the streamable HTTP transport.
	MCPTransportStreamableHTTP = "streamable-http"
	// MCPTransportSSE is the Server-Sent Events transport.
	MCPTransportSSE = "sse"
	// MCPTransportStdio is the standard I/O transport.
	MCPTransportStdio = "stdio"
)

// Tool set names accepted in GatewayConfig.ToolSets.
const (
	ToolSetEC2 = "ec2"
	ToolSetVPC = "vpc"
	ToolSetTGW = "tgw"
	ToolSetNLB = "nlb"
	ToolSetS3  = "s3"
)

// GatewayConfig defines how the gateway exposes its tools.
type GatewayConfig struct {
	// ToolSets lists the enabled tool sets (ec2, vpc, tgw, nlb, s3).
	// Empty means all sets are enabled.
	ToolSets []string `yaml:"toolSets,omitempty"`

	// Transport selects the MCP transport (default: stdio).
	Transport string `yaml:"transport,omitempty"`

	// Host and Port apply to the HTTP transports only.
	Host string `yaml:"host,omitempty"`
	Port int    `yaml:"port,omitempty"`
}

// AllToolSets returns every known tool set name in registration order.
func AllToolSets() []string {
	return []string{ToolSetEC2, ToolSetVPC, ToolSetTGW, ToolSetNLB, ToolSetS3}
}

// EnabledToolSets resolves the configured tool set list, expanding the
// empty list to all known sets.
func (g GatewayConfig) EnabledToolSets() []string {
	if len(g.ToolSets) == 0 {
		return AllToolSets()
	}
	return g.ToolSets
}

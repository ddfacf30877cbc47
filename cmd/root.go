package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command for the awsmcp application.
// It is the entry point when the application is called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "awsmcp",
	Short: "MCP gateway for AWS resource management",
	Long: `awsmcp exposes AWS resource management as MCP tools so that AI
assistants can inspect and operate EC2 instances, VPCs, transit gateways,
network load balancers and S3 buckets through a single server.

Tool sets are enabled individually through configuration; by default all of
them are served. The server speaks stdio by default and can also serve the
streamable-http or SSE transports.`,
	// SilenceUsage prevents Cobra from printing the usage message on errors
	// that are handled by the application.
	SilenceUsage: true,
}

// SetVersion sets the version for the root command.
// This function is called from the main package to inject the application
// version at build time.
func SetVersion(v string) {
	rootCmd.Version = v
}

// GetVersion returns the current version of the application.
func GetVersion() string {
	return rootCmd.Version
}

// Execute is the main entry point for the CLI application.
// It initializes and executes the root command, which in turn handles
// subcommands and flags. This function is called by main.main().
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "awsmcp version %s\n" .Version}}`)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newVersionCmd())
}

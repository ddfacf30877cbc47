package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"awsmcp/internal/awsclient"
	"awsmcp/internal/config"
	"awsmcp/internal/gateway"
	"awsmcp/pkg/logging"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

// serveConfigPath specifies a custom configuration directory path.
// When set, configuration is loaded from this directory instead of the
// default user config directory.
var serveConfigPath string

// serveLogLevel overrides the configured log level for this run.
var serveLogLevel string

// serveCmd defines the serve command structure. This is the main command of
// awsmcp: it builds the tool registry from the enabled tool sets and serves
// it over the configured MCP transport until interrupted.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Starts the MCP server with the configured tool sets.

Configuration is read from config.yaml in the config directory
(default: ~/.config/awsmcp). The AWS_REGION, AWS_PROFILE and LOG_LEVEL
environment variables override the file.

The stdio transport (default) serves a single client over stdin/stdout and
stops when the client disconnects or the process is interrupted. The
streamable-http and SSE transports listen on the configured host and port
and stop gracefully on SIGINT or SIGTERM.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

// runServe is the main entry point for the serve command.
func runServe(cmd *cobra.Command, args []string) error {
	configPath := serveConfigPath
	if configPath == "" {
		configPath = config.GetDefaultConfigPathOrPanic()
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if serveLogLevel != "" {
		cfg.LogLevel = serveLogLevel
	}

	// All logging goes to stderr: the stdio transport owns stdout.
	logging.InitForCLI(logging.ParseLevel(cfg.LogLevel), os.Stderr)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	clients, err := awsclient.New(ctx, cfg.AWS)
	if err != nil {
		return err
	}

	registry, err := buildRegistry(clients, cfg.Gateway.EnabledToolSets())
	if err != nil {
		return err
	}
	logging.Info("Serve", "Serving %d tools over %s transport", registry.Len(), cfg.Gateway.Transport)

	srv := gateway.NewServer("awsmcp", GetVersion(), registry, cfg.Gateway)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.Start(gctx)
	})
	g.Go(func() error {
		<-gctx.Done()
		return srv.Shutdown(context.Background())
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	logging.Info("Serve", "Server stopped")
	return nil
}

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config-path", "", "Directory containing config.yaml (default: ~/.config/awsmcp)")
	serveCmd.Flags().StringVar(&serveLogLevel, "log-level", "", "Override the configured log level (debug, info, warn, error)")
	rootCmd.AddCommand(serveCmd)
}

package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/kanban/internal/cli"
	"github.com/thenoetrevino/kanban/internal/logging"
	"github.com/thenoetrevino/kanban/internal/server"
)

func serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Serve the kanban HTTP API until interrupted.

Flags override the config file and KANBAN_* environment variables.

Examples:
  kanban serve
  kanban serve --port 8080 --database postgres://localhost/kanban
  kanban serve --redis redis://localhost:6379/0 --debug
`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}

	cmd.Flags().String("host", "", "Address to bind")
	cmd.Flags().Int("port", 0, "Port to listen on")
	cmd.Flags().String("database", "", "Database URI (sqlite://path or postgres://...)")
	cmd.Flags().Bool("debug", false, "Debug logging and error details in responses")
	cmd.Flags().String("redis", "", "Redis URL for the board cache")

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := cli.ConfigFromContext(cmd.Context())

	flags := cmd.Flags()
	if flags.Changed("host") {
		cfg.Host, _ = flags.GetString("host")
	}
	if flags.Changed("port") {
		cfg.Port, _ = flags.GetInt("port")
	}
	if flags.Changed("database") {
		cfg.DatabaseURI, _ = flags.GetString("database")
	}
	if flags.Changed("redis") {
		cfg.RedisURL, _ = flags.GetString("redis")
	}
	if flags.Changed("debug") {
		cfg.Debug, _ = flags.GetBool("debug")
		logging.Init(os.Stderr, cfg.Debug)
	}

	if err := cfg.Validate(); err != nil {
		return cli.Exit(cli.ExitUsage, err)
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return server.Run(ctx, cfg)
}


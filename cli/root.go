package cli

import (
	"time"

	"github.com/satriahrh/paxos/config"
	"github.com/satriahrh/paxos/utils/log"
	"github.com/spf13/cobra"
)

// NewRootCommand creates the paxos command. It serves the message API until
// the command context is cancelled.
func NewRootCommand() *cobra.Command {
	defaults := config.Default()

	var (
		port            int
		debug           bool
		bodyLimit       string
		shutdownTimeout time.Duration
	)

	cmd := &cobra.Command{
		Use:          "paxos",
		Short:        "Content-addressed message store",
		Long:         "Serves an HTTP API that stores messages under their SHA-256 digest and returns them by digest.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("port") {
				cfg.Port = port
			}
			if flags.Changed("debug") {
				cfg.Debug = debug
			}
			if flags.Changed("body-limit") {
				cfg.BodyLimit = bodyLimit
			}
			if flags.Changed("shutdown-timeout") {
				cfg.ShutdownTimeout = shutdownTimeout
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			log.Configure(cfg.Debug)
			return Serve(cmd.Context(), cfg, nil)
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", defaults.Port, "listen port (env PORT)")
	cmd.Flags().BoolVar(&debug, "debug", defaults.Debug, "development logging (env DEBUG)")
	cmd.Flags().StringVar(&bodyLimit, "body-limit", defaults.BodyLimit, "maximum request body size, e.g. 1M (env BODY_LIMIT)")
	cmd.Flags().DurationVar(&shutdownTimeout, "shutdown-timeout", defaults.ShutdownTimeout, "graceful shutdown timeout (env SHUTDOWN_TIMEOUT)")

	return cmd
}

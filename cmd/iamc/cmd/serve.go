package cmd

import (
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/khaeru/iamc-sdmx-demo/config"
	"github.com/khaeru/iamc-sdmx-demo/schema"
	"github.com/khaeru/iamc-sdmx-demo/server"
)

var (
	serveConfigPath string
	serveAddr       string
	serveSchemaPath string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the schema document as a read-only HTTP registry",
	Long: `Load and validate the schema document, then serve it over HTTP with
health and Prometheus metrics endpoints. The document is immutable for the
lifetime of the process; restart to pick up changes.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg := config.Default()
		if serveConfigPath != "" {
			loaded, err := config.LoadFile(serveConfigPath)
			if err != nil {
				return err
			}
			cfg = loaded
		}
		if cmd.Flags().Changed("addr") {
			cfg.HTTP.Addr = serveAddr
		}
		if cmd.Flags().Changed("schema") {
			cfg.SchemaPath = serveSchemaPath
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		doc, err := schema.LoadFile(cfg.SchemaPath)
		if err != nil {
			return err
		}

		srv, err := server.New(cfg.HTTP, doc, slog.Default())
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		return srv.Run(ctx)
	},
}

func init() {
	serveCmd.Flags().StringVarP(&serveConfigPath, "config", "c", "", "configuration file")
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
	serveCmd.Flags().StringVar(&serveSchemaPath, "schema", "iamc.yaml", "schema document to serve")
}

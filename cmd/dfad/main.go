// Command dfad starts the DFA JSON-RPC server.
//
// The server exposes acceptance checking and state minimization of
// deterministic finite automata as the JSON-RPC methods "check" and
// "minimize" on POST /rpc, plus /health and /metrics.
//
// # Environment Variables
//
//   - DFAD_LISTEN_ADDR: host:port to bind (default: 127.0.0.1:3030)
//   - DFAD_GIN_MODE: gin mode (default: release)
//   - DFAD_TRACING: enable the stdout trace exporter (default: false)
//   - DFAD_SHUTDOWN_GRACE_SECONDS: drain window on shutdown (default: 5)
//
// # Usage
//
//	go build -o dfad ./cmd/dfad
//	./dfad serve --listen 127.0.0.1:3030
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/finitekit/dfa/services/dfarpc"
)

var (
	configPath string
	listenAddr string
)

var rootCmd = &cobra.Command{
	Use:   "dfad",
	Short: "JSON-RPC server for DFA acceptance checking and minimization",
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP JSON-RPC server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := dfarpc.LoadConfig(configPath)
		if err != nil {
			return err
		}
		if listenAddr != "" {
			cfg.ListenAddr = listenAddr
		}

		srv, err := dfarpc.New(cfg)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return srv.Run(ctx)
	},
}

func init() {
	serveCmd.Flags().StringVar(&configPath, "config", "", "path to a YAML config file")
	serveCmd.Flags().StringVar(&listenAddr, "listen", "", "listen address override")
	rootCmd.AddCommand(serveCmd)
}

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error executing command: %v", err)
	}
}

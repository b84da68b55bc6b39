package weatherd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	a2asrv "trpc.group/trpc-go/trpc-a2a-go/server"
	"trpc.group/trpc-go/trpc-a2a-go/taskmanager"

	"github.com/nimbusworks/weatherd/pkg/a2a"
	"github.com/nimbusworks/weatherd/pkg/config"
	"github.com/nimbusworks/weatherd/pkg/server"
	"github.com/nimbusworks/weatherd/pkg/telemetry"
	"github.com/nimbusworks/weatherd/pkg/weather"
)

var (
	serveHost string
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the weather agent server",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveHost, "host", "0.0.0.0", "interface to bind")
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "port to listen on")
}

func runServe(cmd *cobra.Command, args []string) error {
	path := cfgFile
	if path == "" {
		path = config.DefaultConfigPath()
	}

	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Flags win over the config file; the config file wins over defaults.
	host, port := serveHost, servePort
	if !cmd.Flags().Changed("host") && cfg.Server.Host != "" {
		host = cfg.Server.Host
	}
	if !cmd.Flags().Changed("port") && cfg.Server.Port != 0 {
		port = cfg.Server.Port
	}

	logger := telemetry.SetupLogger(cfg.Log, nil)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	shutdownTracer, err := telemetry.InitTracer(ctx, cfg.Tracing, version)
	if err != nil {
		return fmt.Errorf("initializing tracer: %w", err)
	}
	defer shutdownTracer(context.Background())

	url := config.ResolveAgentURL(cfg, host, port, nil)

	processor := weather.NewProcessor(weather.NewAgent(), logger)
	taskMgr, err := taskmanager.NewMemoryTaskManager(processor)
	if err != nil {
		return fmt.Errorf("creating task manager: %w", err)
	}

	app, err := a2asrv.NewA2AServer(weather.Card(url, version), a2a.NewHandler(taskMgr))
	if err != nil {
		return fmt.Errorf("creating a2a server: %w", err)
	}

	logger.Info("starting weather agent",
		slog.String("version", version),
		slog.String("host", host),
		slog.Int("port", port),
		slog.String("agent_url", url),
	)

	srv := server.New(server.Config{
		Host:       host,
		Port:       port,
		A2AHandler: app.Handler(),
		Logger:     logger,
	})

	return srv.Start(telemetry.WithLogger(ctx, logger))
}

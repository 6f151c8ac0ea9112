package cli

import (
	"context"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/mingzhangyang/bond-lab/internal/application/simulation"
	"github.com/mingzhangyang/bond-lab/internal/config"
	"github.com/mingzhangyang/bond-lab/internal/infrastructure/messaging/redis"
	"github.com/mingzhangyang/bond-lab/internal/infrastructure/monitoring/logging"
	"github.com/mingzhangyang/bond-lab/internal/infrastructure/monitoring/prometheus"
	httpapi "github.com/mingzhangyang/bond-lab/internal/interfaces/http"
	"github.com/mingzhangyang/bond-lab/internal/interfaces/http/handlers"
	"github.com/mingzhangyang/bond-lab/internal/interfaces/http/middleware"
)

// ServeOptions are the serve command's flags.
type ServeOptions struct {
	Port        int
	Preset      string
	CORSOrigins []string
	// Watch reloads physics tuning when the config file changes.
	Watch bool
}

// NewServeCmd creates the serve command.
func NewServeCmd() *cobra.Command {
	opts := &ServeOptions{}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the simulation loop behind the HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cliCtx, err := GetCLIContext(cmd)
			if err != nil {
				return err
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return RunServer(ctx, cliCtx.Config, cliCtx.ConfigPath, cliCtx.Logger, *opts)
		},
	}
	f := cmd.Flags()
	f.IntVar(&opts.Port, "port", 0, "HTTP port (overrides server.port)")
	f.StringVarP(&opts.Preset, "preset", "p", "", "preset to load at start (overrides simulation.preset)")
	f.StringSliceVar(&opts.CORSOrigins, "cors-origin", nil, "browser origin allowed to call the API (repeatable, * for any)")
	f.BoolVar(&opts.Watch, "watch", true, "hot-reload physics settings from the config file")
	return cmd
}

// RunServer runs the session loop and the HTTP server until ctx is done,
// then stops both.
func RunServer(ctx context.Context, cfg *config.Config, configPath string, logger logging.Logger, opts ServeOptions) error {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	if opts.Port > 0 {
		cfg.Server.Port = opts.Port
	}
	if opts.Preset != "" {
		cfg.Simulation.Preset = opts.Preset
	}

	var (
		collector   prometheus.MetricsCollector
		httpMetrics *prometheus.HTTPMetrics
		simOpts     []simulation.Option
	)
	if cfg.Metrics.Enabled {
		c, err := prometheus.NewMetricsCollector(prometheus.CollectorConfig{
			Namespace:            cfg.Metrics.Namespace,
			EnableGoMetrics:      cfg.Metrics.EnableGoMetrics,
			EnableProcessMetrics: cfg.Metrics.EnableProcessMetrics,
		}, logger)
		if err != nil {
			return err
		}
		collector = c
		httpMetrics = prometheus.NewHTTPMetrics(c)
		simOpts = append(simOpts, simulation.WithMetrics(prometheus.NewSimulationMetrics(c)))
	}

	scfg := SessionConfig(cfg)
	session := simulation.NewSession(scfg, logger, simOpts...)
	if cfg.Simulation.Preset != "" {
		if err := session.LoadPreset(cfg.Simulation.Preset); err != nil {
			return err
		}
	}

	if opts.Watch && configPath != "" {
		err := config.Watch(configPath, func(c *config.Config) {
			session.UpdateParams(PhysicsParams(c.Physics))
			logger.Info("configuration reloaded", logging.String("path", configPath))
		}, func(err error) {
			logger.Warn("ignoring invalid configuration change", logging.Err(err))
		})
		if err != nil {
			return err
		}
	}

	var cors *middleware.CORSConfig
	if len(opts.CORSOrigins) > 0 {
		c := middleware.DefaultCORSConfig()
		c.AllowedOrigins = opts.CORSOrigins
		cors = &c
	}

	tick := cfg.Simulation.TickInterval
	checkers := []handlers.HealthChecker{
		handlers.TickChecker{Service: session, MaxStale: 50*tick + time.Second},
	}

	var publisher *redis.FramePublisher
	if cfg.Broadcast.Enabled {
		client, err := newBroadcastClient(cfg.Broadcast, logger)
		if err != nil {
			return err
		}
		defer client.Close()
		checkers = append(checkers, client)
		publisher = redis.NewFramePublisher(client, cfg.Broadcast.Channel, cfg.Broadcast.Interval, logger)
	}

	router := httpapi.NewRouter(httpapi.RouterConfig{
		SimulationHandler: handlers.NewSimulationHandler(session, scfg.BondOverlap, scfg.MinBondLength),
		HealthHandler:     handlers.NewHealthHandler(Version, checkers...),
		Logger:            logger,
		LoggingConfig:     middleware.DefaultLoggingConfig(),
		CORS:              cors,
		MetricsCollector:  collector,
		HTTPMetrics:       httpMetrics,
		MetricsPath:       cfg.Metrics.Path,
	})
	srv := httpapi.NewServer(httpapi.ServerConfig{
		Host:            cfg.Server.Host,
		Port:            cfg.Server.Port,
		ReadTimeout:     cfg.Server.ReadTimeout,
		WriteTimeout:    cfg.Server.WriteTimeout,
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	}, router, logger)

	loopCtx, cancelLoop := context.WithCancel(ctx)
	defer cancelLoop()
	var loops sync.WaitGroup
	loops.Add(1)
	go func() {
		defer loops.Done()
		_ = session.Run(loopCtx, tick)
	}()
	if publisher != nil {
		loops.Add(1)
		go func() {
			defer loops.Done()
			_ = publisher.Run(loopCtx, frameSnapshot(session))
		}()
	}

	srvErr := make(chan error, 1)
	go func() { srvErr <- srv.Start() }()

	var runErr error
	select {
	case <-ctx.Done():
	case runErr = <-srvErr:
	}

	cancelLoop()
	loops.Wait()
	if runErr == nil {
		runErr = srv.Stop(context.Background())
	}
	return runErr
}

//Personal.AI order the ending

package web

import (
	"context"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"rical/internal/config"
	"rical/internal/logging"
	"rical/internal/page"
	"rical/internal/telemetry"
)

// Params holds command-line overrides passed to the fx module.
// Empty fields leave the config file value in place.
type Params struct {
	ConfigPath  string
	Addr        string
	ContentPath string
	LogFormat   string
}

// Module returns the fx module for the web server, composing all providers and lifecycle hooks.
func Module(p Params) fx.Option {
	return fx.Module("web",
		fx.Supply(p),
		fx.Provide(
			provideConfig,
			provideLogger,
			provideTelemetry,
			provideContent,
			NewRenderer,
			provideServer,
		),
		fx.Invoke(registerLifecycle),
	)
}

func provideConfig(p Params) (*config.Config, error) {
	cfg, err := config.LoadOrDefault(p.ConfigPath)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv()
	if p.Addr != "" {
		cfg.Web.Addr = p.Addr
	}
	if p.ContentPath != "" {
		cfg.Content.Path = p.ContentPath
	}
	if p.LogFormat != "" {
		cfg.Web.LogFormat = p.LogFormat
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func provideLogger(cfg *config.Config) (*zap.Logger, error) {
	return logging.New(cfg.Web.LogFormat, "web")
}

func provideTelemetry() (*telemetry.Provider, error) {
	return telemetry.NewOTLPProvider(context.Background())
}

func provideContent(cfg *config.Config, logger *zap.Logger) (page.Content, error) {
	c, err := page.ResolveContent(cfg.Content.Path)
	if err != nil {
		return page.Content{}, err
	}
	if cfg.Content.Path != "" {
		logger.Info("page content loaded", zap.String("path", cfg.Content.Path))
	}
	return c, nil
}

func provideServer(cfg *config.Config, c page.Content, r *Renderer, logger *zap.Logger, tp *telemetry.Provider) (*Server, error) {
	return NewServer(cfg.Web.Addr, c, r, logger, tp)
}

func registerLifecycle(lc fx.Lifecycle, srv *Server, tp *telemetry.Provider, logger *zap.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			return srv.Start()
		},
		OnStop: func(ctx context.Context) error {
			if err := srv.Stop(ctx); err != nil {
				logger.Warn("web server shutdown", zap.Error(err))
			}
			if err := tp.Shutdown(ctx); err != nil {
				logger.Warn("telemetry shutdown", zap.Error(err))
			}
			logger.Info("web server stopped")
			_ = logger.Sync()
			return nil
		},
	})
}

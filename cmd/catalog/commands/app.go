package commands

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"marketplace/config"
	"marketplace/internal/delivery"
	"marketplace/internal/delivery/http"
	"marketplace/internal/delivery/http/router/handler"
	"marketplace/internal/fetch"
	"marketplace/internal/infra/api"
	logs "marketplace/internal/infra/log"
	"marketplace/internal/infra/metrics"
	"marketplace/internal/usecase/impl"

	"go.uber.org/fx"
)

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			metrics.NewRegistry,
			metrics.NewFetchMetrics,
			func(m *metrics.FetchMetrics) fetch.Observer { return m },
		),
		fx.Decorate(overrideBackend),
	)
}

// overrideBackend applies the --backend flag on top of file and env config.
func overrideBackend(cfg *config.Config) *config.Config {
	if url := strings.TrimSpace(backendURL); url != "" {
		cfg.Backend.BaseURL = url
	}

	return cfg
}

func injectRepo() fx.Option {
	return fx.Provide(
		api.NewProductClient,
		api.NewProductRepository,
		func(c *api.ProductClient) handler.BackendPinger { return c },
	)
}

func injectUsecase() fx.Option {
	return fx.Provide(
		impl.NewCatalogService,
	)
}

func injectHandler() fx.Option {
	return fx.Provide(
		handler.NewProductHandler,
		handler.NewHealthHandler,
	)
}

func injectDelivery() fx.Option {
	return fx.Provide(
		fx.Annotate(
			http.NewServer,
			fx.ResultTags(`group:"deliveries"`),
		),
	)
}

// catalogOptions is the graph shared by every command.
func catalogOptions() fx.Option {
	return fx.Options(
		injectInfra(),
		injectRepo(),
		injectUsecase(),
	)
}

// terminalOptions keeps stdout for rendered output: logs go to stderr and
// fx's own event log is silenced.
func terminalOptions() fx.Option {
	return fx.Options(
		catalogOptions(),
		fx.Decorate(func(_ *slog.Logger, cfg *config.Config) (*slog.Logger, error) {
			return logs.NewWithWriter(cfg, os.Stderr)
		}),
		fx.NopLogger,
	)
}

type startServerParams struct {
	fx.In

	Deliveries []delivery.Delivery `group:"deliveries"`
	Shutdowner fx.Shutdowner
	Logger     *slog.Logger
}

func startServer(ctx context.Context, params startServerParams) {
	for _, d := range params.Deliveries {
		go func() {
			if err := d.Serve(ctx); err != nil {
				params.Logger.Error("Failed to start server", slog.Any("error", err))
				_ = params.Shutdowner.Shutdown(fx.ExitCode(1))
			}
		}()
	}
}

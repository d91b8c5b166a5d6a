package gazette

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/magabrotheeeer/crime-gazette/internal/clientstore"
	"github.com/magabrotheeeer/crime-gazette/internal/components/dashboard"
	"github.com/magabrotheeeer/crime-gazette/internal/config"
	"github.com/magabrotheeeer/crime-gazette/internal/http/views"
	"github.com/magabrotheeeer/crime-gazette/internal/lib/jwt"
	"github.com/magabrotheeeer/crime-gazette/internal/locale"
	"github.com/magabrotheeeer/crime-gazette/internal/planapi"
)

// App HTTP-приложение фронтенда.
type App struct {
	server     *http.Server
	logger     *slog.Logger
	redis      *clientstore.Redis
	dashboards *dashboard.Registry
	sweep      config.Dashboard
}

// New собирает приложение по конфигу. Без адреса redis клиентское
// хранилище живёт в памяти процесса.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	const op = "app.gazette.New"

	var (
		store clientstore.Store
		rdb   *clientstore.Redis
	)
	if cfg.AddressRedis != "" {
		var err error
		rdb, err = clientstore.InitRedis(ctx, cfg.RedisConnection)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		store = rdb
		logger.Info("client storage: redis", slog.String("address", cfg.AddressRedis))
	} else {
		store = clientstore.NewMemory()
		logger.Info("client storage: memory")
	}

	cat, err := locale.LoadCatalog()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	renderer, err := views.New()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	plans := planapi.NewClient(cfg.BaseURL, cfg.TimeoutPlanAPI,
		planapi.WithMetrics(planapi.NewMetrics(prometheus.DefaultRegisterer)),
	)
	dashboards := dashboard.NewRegistry(func() *dashboard.Dashboard {
		return dashboard.New(logger, plans, cfg.MessageTTL)
	})

	deps := Deps{
		Store:      store,
		Catalog:    cat,
		Renderer:   renderer,
		Dashboards: dashboards,
		AdminRole:  cfg.AdminRole,
		Limiter:    rate.NewLimiter(rate.Limit(cfg.RPS), cfg.Burst),
		Metrics:    promhttp.Handler(),
	}
	if cfg.JWTSecretKey != "" {
		deps.Tokens = jwt.NewJWTMaker(cfg.JWTSecretKey, 0)
	}

	router := chi.NewRouter()
	RegisterRoutes(router, logger, deps)

	// отмена базового контекста закрывает потоки событий при остановке
	baseCtx, cancelBase := context.WithCancel(context.Background())
	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      router,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
		BaseContext:  func(net.Listener) context.Context { return baseCtx },
	}
	srv.RegisterOnShutdown(cancelBase)

	return &App{
		server:     srv,
		logger:     logger,
		redis:      rdb,
		dashboards: dashboards,
		sweep:      cfg.Dashboard,
	}, nil
}

// Run обслуживает запросы до отмены ctx, затем корректно останавливает сервер.
func (a *App) Run(ctx context.Context) error {
	sweepCtx, stopSweep := context.WithCancel(ctx)
	defer stopSweep()
	go a.dashboards.RunSweeper(sweepCtx, a.logger, a.sweep.SweepInterval, a.sweep.IdleTTL)

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		a.close()
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		a.close()
		return err
	}
}

func (a *App) close() {
	a.dashboards.Close()
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.logger.Error("failed to close redis", slog.Any("err", err))
		}
	}
}

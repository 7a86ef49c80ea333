package main

import (
	"context"
	"fmt"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/Rom943/ecommerce-template/internal/adapter/cache"
	mediahost "github.com/Rom943/ecommerce-template/internal/adapter/media"
	"github.com/Rom943/ecommerce-template/internal/bootstrap"
	"github.com/Rom943/ecommerce-template/internal/composition"
	"github.com/Rom943/ecommerce-template/internal/config"
	httptransport "github.com/Rom943/ecommerce-template/internal/http"
	"github.com/Rom943/ecommerce-template/internal/http/handler"
	"github.com/Rom943/ecommerce-template/internal/http/middleware"
	"github.com/Rom943/ecommerce-template/internal/layout"
	"github.com/Rom943/ecommerce-template/internal/layouts/art"
	"github.com/Rom943/ecommerce-template/internal/layouts/fitness"
	"github.com/Rom943/ecommerce-template/internal/repository"
	"github.com/Rom943/ecommerce-template/internal/server"
	"github.com/Rom943/ecommerce-template/internal/service"
	"github.com/Rom943/ecommerce-template/internal/session"
	"github.com/Rom943/ecommerce-template/internal/telemetry"
	"github.com/Rom943/ecommerce-template/internal/tenant"
	"github.com/Rom943/ecommerce-template/internal/throttle"
)

func main() {
	app := fx.New(
		fx.Provide(
			newConfig,
			newLogger,
			newTelemetry,
			newSnowflake,
			newPGXPool,
			newRedisClient,
			newTenantRepository,
			newPageRepository,
			newAdminRepository,
			newProductRepository,
			newCategoryRepository,
			newMediaRepository,
			newRegistry,
			newEngine,
			newTenantResolver,
			newPageCache,
			newMediaHost,
			newThrottleCodec,
			newThrottleMachine,
			newSessionManager,
			newRateLimiter,
			service.NewAdminAuthService,
			service.NewCatalogService,
			service.NewMediaService,
			service.NewPageService,
			handler.NewAdminHandler,
			handler.NewStorefrontHandler,
			httptransport.NewRouter,
			server.NewHTTPServer,
		),
		fx.Invoke(useTelemetry, bootstrap.EnsureAdmin, startHTTPServer),
	)

	app.Run()
}

func newConfig() (config.Config, error) {
	return config.Load()
}

func newLogger(cfg config.Config) (*zap.Logger, error) {
	var (
		logger *zap.Logger
		err    error
	)
	if cfg.IsDevelopment() {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}
	zap.ReplaceGlobals(logger)
	return logger, nil
}

func newTelemetry(lc fx.Lifecycle, cfg config.Config, logger *zap.Logger) (*telemetry.Provider, error) {
	provider, err := telemetry.New(context.Background(), cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("telemetry init: %w", err)
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			stopCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			defer cancel()
			return provider.Shutdown(stopCtx)
		},
	})

	return provider, nil
}

func newSnowflake() (*snowflake.Node, error) {
	node, err := snowflake.NewNode(1)
	return node, err
}

func newPGXPool(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("connect database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			pool.Close()
			return nil
		},
	})

	return pool, nil
}

func newRedisClient(lc fx.Lifecycle, cfg config.Config) redis.UniversalClient {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})

	return client
}

func newTenantRepository(pool *pgxpool.Pool) repository.TenantRepository {
	return repository.NewPostgresTenantRepo(pool)
}

func newPageRepository(pool *pgxpool.Pool) repository.PageRepository {
	return repository.NewPostgresPageRepo(pool)
}

func newAdminRepository(pool *pgxpool.Pool) repository.AdminRepository {
	return repository.NewPostgresAdminRepo(pool)
}

func newProductRepository(pool *pgxpool.Pool) repository.ProductRepository {
	return repository.NewPostgresProductRepo(pool)
}

func newCategoryRepository(pool *pgxpool.Pool) repository.CategoryRepository {
	return repository.NewPostgresCategoryRepo(pool)
}

func newMediaRepository(pool *pgxpool.Pool) repository.MediaRepository {
	return repository.NewPostgresMediaRepo(pool)
}

// newRegistry installs every layout bundle and verifies each one covers the
// full slot set before the server accepts traffic.
func newRegistry() (*layout.Registry, error) {
	reg := layout.NewRegistry()
	if err := fitness.Register(reg); err != nil {
		return nil, fmt.Errorf("register fitness layout: %w", err)
	}
	if err := art.Register(reg); err != nil {
		return nil, fmt.Errorf("register art layout: %w", err)
	}
	if err := reg.VerifyAll(); err != nil {
		return nil, fmt.Errorf("verify layouts: %w", err)
	}
	return reg, nil
}

func newEngine(reg *layout.Registry, logger *zap.Logger) *composition.Engine {
	return composition.NewEngine(reg, logger)
}

func newTenantResolver(cfg config.Config, repo repository.TenantRepository) *tenant.Resolver {
	return tenant.NewResolver(repo, cfg.DefaultLayout)
}

func newPageCache(cfg config.Config, client redis.UniversalClient) *cache.PageCache {
	return cache.NewPageCache(client, cfg.PageCacheTTL)
}

func newMediaHost(cfg config.Config) mediahost.Host {
	return mediahost.NewHTTPHost(cfg.MediaHostURL, cfg.MediaHostKey, nil)
}

func newThrottleCodec(cfg config.Config) *throttle.Codec {
	return throttle.NewCodec(cfg.CookieSecret)
}

func newThrottleMachine() *throttle.Machine {
	return throttle.NewMachine(nil)
}

func newSessionManager(cfg config.Config) *session.Manager {
	return session.NewManager(cfg.SessionSecret, cfg.SessionTTL, !cfg.IsDevelopment())
}

func newRateLimiter(cfg config.Config) *middleware.RateLimiter {
	return middleware.NewRateLimiter(cfg.RateLimitRPM)
}

func useTelemetry(*telemetry.Provider) {}

func startHTTPServer(lc fx.Lifecycle, srv *server.HTTPServer, cfg config.Config, logger *zap.Logger) {
	addr := ":" + cfg.HTTPPort
	var (
		cancel context.CancelFunc
		done   chan struct{}
	)

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			runCtx, stop := context.WithCancel(context.Background())
			cancel = stop
			done = make(chan struct{})

			go func() {
				logger.Info("http server starting", zap.String("addr", addr))
				if err := srv.Run(runCtx, addr); err != nil {
					logger.Error("http server stopped", zap.Error(err))
				}
				close(done)
			}()

			return nil
		},
		OnStop: func(ctx context.Context) error {
			if cancel != nil {
				cancel()
			}
			if done == nil {
				return nil
			}
			select {
			case <-done:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	})
}

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"burokrat-site/config"
	"burokrat-site/domain/admin"
	"burokrat-site/domain/catalog"
	"burokrat-site/domain/contact"
	"burokrat-site/domain/content"
	"burokrat-site/domain/email"
	"burokrat-site/domain/health"
	"burokrat-site/domain/site"
	"burokrat-site/middleware"
	"burokrat-site/pages"
	"burokrat-site/pkg/apperrors"
	"burokrat-site/pkg/logger"
	"burokrat-site/routes"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 10 * time.Second

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP site",
	Long: `Start the site. Content is read from CONTENT_DIR. Without DATABASE_URL
submissions are delivered but not stored, the catalog is served from the
content files and the admin views are not registered.`,
	RunE: runServer,
}

func init() {
	rootCmd.AddCommand(serverCmd)
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, log, err := bootstrap()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := content.NewStore(content.FileLoader{Dir: cfg.ContentDir},
		content.WithLiveReload(cfg.LiveReload),
		content.WithLogger(log),
	)
	if err := store.Init(); err != nil {
		return fmt.Errorf("load content from %s: %w", cfg.ContentDir, err)
	}

	var (
		db       *sqlx.DB
		subs     *contact.Repository
		cat      pages.Catalog
		subStore contact.Store
		counter  health.Counter
	)
	if cfg.Database.URL != "" {
		db, err = config.InitDB(cfg.Database)
		if err != nil {
			return err
		}
		defer db.Close()

		subs = contact.NewRepository(db)
		subStore, counter = subs, subs
		cat = catalog.NewRepository(db)
	} else {
		log.Warn("DATABASE_URL not set, submissions will not be stored and the catalog is read from content files")
		mem := catalog.NewMemory()
		if _, err := catalog.NewImporter(store, mem, log).Import(ctx, true); err != nil {
			return fmt.Errorf("load catalog from content: %w", err)
		}
		cat = mem
	}

	rdb := config.InitRedis(cfg.RedisURL)
	if rdb != nil {
		defer rdb.Close()
	}

	checks := map[string]health.Pinger{"database": nil, "redis": nil}
	if db != nil {
		checks["database"] = db
	}
	if rdb != nil {
		checks["redis"] = health.PingFunc(func(ctx context.Context) error { return rdb.Ping(ctx).Err() })
	}

	composer := pages.New(store, cat)
	siteHandler := site.NewHandler(composer)
	gateway := email.NewGateway(ctx, cfg.Mail, log)
	contactHandler := contact.NewHandler(contact.NewService(gateway, subStore, log), store)

	var adminHandler *admin.Handler
	switch {
	case subs == nil:
	case !cfg.Admin.AuthEnabled():
		log.Warn("ADMIN_PASSWORD_HASH not set, admin views are disabled")
	default:
		if cfg.Admin.JWTSecret == "" {
			cfg.Admin.JWTSecret = uuid.NewString()
			log.Warn("JWT_SECRET not set, admin sessions will not survive a restart")
		}
		adminHandler = admin.NewHandler(subs, composer, cfg.Admin)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = apperrors.HTTPErrorHandler(log, siteHandler.RenderError)

	e.Use(logger.RequestLoggerMiddleware(log))
	e.Use(logger.RecoveryMiddleware(log))
	e.Use(echomw.Gzip())
	e.Use(echomw.SecureWithConfig(echomw.SecureConfig{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "SAMEORIGIN",
	}))

	routes.RegisterRoutes(e, routes.Deps{
		Site:      siteHandler,
		Pages:     composer,
		Contact:   contactHandler,
		Admin:     adminHandler,
		Health:    health.NewHandler(cfg.Version, checks, counter),
		AssetsDir: cfg.AssetsDir,
		RateLimiter: middleware.RateLimiterMiddleware(middleware.RateLimiterConfig{
			MaxRequests: cfg.RateLimit.Requests,
			Window:      cfg.RateLimit.Window,
			Prefix:      "contact",
			Client:      rdb,
			OnLimit:     contact.RateLimitedHandler,
		}),
		AdminAuth: middleware.AdminAuth(middleware.AdminAuthConfig{
			Enabled:   cfg.Admin.AuthEnabled(),
			JWTSecret: cfg.Admin.JWTSecret,
		}),
	})

	errCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server",
			logger.String("addr", cfg.HTTPAddr),
			logger.String("env", cfg.Env),
			logger.Provider(gateway.Name()),
		)
		if err := e.Start(cfg.HTTPAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

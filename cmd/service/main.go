package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	application "dispatch/internal/app"
	"dispatch/internal/handlers/rest/courier_get"
	"dispatch/internal/handlers/rest/courier_post"
	"dispatch/internal/handlers/rest/courier_put"
	"dispatch/internal/handlers/rest/couriers_get"
	"dispatch/internal/handlers/rest/dispatch_get"
	"dispatch/internal/handlers/rest/dispatch_post"
	"dispatch/internal/handlers/rest/dispatch_put"
	"dispatch/internal/handlers/rest/dispatch_transition_post"
	"dispatch/internal/handlers/rest/dispatches_get"
	"dispatch/internal/handlers/rest/dispatches_stats_get"
	"dispatch/internal/handlers/rest/healthcheck_head"
	"dispatch/internal/handlers/rest/pharmacies_get"
	"dispatch/internal/handlers/rest/pharmacy_assignment_post"
	"dispatch/internal/handlers/rest/pharmacy_assignment_reassign_post"
	"dispatch/internal/handlers/rest/pharmacy_assignment_release_post"
	"dispatch/internal/handlers/rest/pharmacy_get"
	"dispatch/internal/handlers/rest/pharmacy_post"
	"dispatch/internal/handlers/rest/pharmacy_put"
	"dispatch/internal/handlers/rest/ping_get"
	"dispatch/internal/handlers/rest/vehicle_assignment_post"
	"dispatch/internal/handlers/rest/vehicle_assignment_reassign_post"
	"dispatch/internal/handlers/rest/vehicle_assignment_release_post"
	"dispatch/internal/handlers/rest/vehicle_get"
	"dispatch/internal/handlers/rest/vehicle_post"
	"dispatch/internal/handlers/rest/vehicle_put"
	"dispatch/internal/handlers/rest/vehicles_get"
	"dispatch/internal/pkg/config"
	"dispatch/internal/pkg/dotenv"
	metrics_system "dispatch/internal/pkg/metrics"
	"dispatch/internal/pkg/middlewares/auth"
	"dispatch/internal/pkg/middlewares/graceful_shutdown"
	"dispatch/internal/pkg/middlewares/metrics"
	"dispatch/internal/pkg/middlewares/rate_limiter"
	"dispatch/internal/pkg/middlewares/timeout"
	"dispatch/internal/pkg/postgres"
	"dispatch/internal/service/access"
	"dispatch/pkg/logger"
	"dispatch/pkg/logger/zap_adapter"
	"dispatch/pkg/token_bucket"
)

func main() {
	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			stdlog.Fatalf("failed to load .env file: %v", err)
		}
	}

	if err := dotenv.ApplyPortFlag(os.Args[1:]); err != nil {
		stdlog.Fatalf("failed to parse flags: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatalf("load config: %v", err)
	}

	zapLogger, err := zap_adapter.NewZapAdapter(cfg.Log.Level)
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting dispatch application")

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // ongoingCtx и shutdownCtx намеренно наследуются от context.Background()
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return fmt.Errorf("database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.MigrateOnStart {
		if err := postgres.Migrate(ctx, log, pool); err != nil {
			return fmt.Errorf("migrations: %w", err)
		}
	}

	businessApp, err := application.InitializeApplication(ctx, log, pool, pgxv5.DefaultCtxGetter, cfg)
	if err != nil {
		return fmt.Errorf("business logic: %w", err)
	}
	defer businessApp.BackgroundWorkers.Wait()

	metrics_system.StartSystemMetricsCollector(ctx, 0)

	// ongoingCtx используется для BaseContext и не должен отменяться при SIGTERM.
	// Он отменяется только после server.Shutdown() для завершения in-flight запросов.
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	// основной http сервер
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, pool, businessApp, cfg),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	// pprof http сервер
	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown, pool),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // при выключенном pprof канал nil и кейс не срабатывает
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx должен быть независим от ctx, который уже отменен на этом этапе.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
	defer cancel()

	var shutdownErr error
	err = server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	runLog.Info("Server stopped")
	return nil
}

func initRouter(
	ongoingCtx context.Context,
	log logger.Logger,
	isShuttingDown *atomic.Bool,
	db healthcheck_head.Pinger,
	app *application.Application,
	cfg *config.Config,
) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(timeout.Middleware(cfg.Server.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.Server.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.Server.RateLimiterQPS, float64(cfg.Server.RateLimiterBurst))))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, db)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	api := router.NewRoute().Subrouter()
	api.Use(auth.Middleware(log, auth.NewVerifier(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)))

	// права на запись отправлений проверяет сервис
	require := func(op access.Operation, h http.Handler) http.Handler {
		return auth.Require(log, app.Policy, op)(h)
	}

	api.Handle("/courier/{id}", require(access.OpRead, courier_get.New(log, app.ServiceCourier))).Methods("GET")
	api.Handle("/couriers", require(access.OpRead, couriers_get.New(log, app.ServiceCourier))).Methods("GET")
	api.Handle("/courier", require(access.OpCourierWrite, courier_post.New(log, app.ServiceCourier))).Methods("POST")
	api.Handle("/courier", require(access.OpCourierWrite, courier_put.New(log, app.ServiceCourier))).Methods("PUT")

	api.Handle("/vehicle/{id}", require(access.OpRead, vehicle_get.New(log, app.ServiceVehicle))).Methods("GET")
	api.Handle("/vehicles", require(access.OpRead, vehicles_get.New(log, app.ServiceVehicle))).Methods("GET")
	api.Handle("/vehicle", require(access.OpVehicleWrite, vehicle_post.New(log, app.ServiceVehicle))).Methods("POST")
	api.Handle("/vehicle", require(access.OpVehicleWrite, vehicle_put.New(log, app.ServiceVehicle))).Methods("PUT")

	api.Handle("/pharmacy/{id}", require(access.OpRead, pharmacy_get.New(log, app.ServicePharmacy))).Methods("GET")
	api.Handle("/pharmacies", require(access.OpRead, pharmacies_get.New(log, app.ServicePharmacy))).Methods("GET")
	api.Handle("/pharmacy", require(access.OpPharmacyWrite, pharmacy_post.New(log, app.ServicePharmacy))).Methods("POST")
	api.Handle("/pharmacy", require(access.OpPharmacyWrite, pharmacy_put.New(log, app.ServicePharmacy))).Methods("PUT")

	api.Handle("/vehicle-assignment", require(access.OpAssignmentWrite, vehicle_assignment_post.New(log, app.ServiceVehicleAssignment))).Methods("POST")
	api.Handle("/vehicle-assignment/{id}/release", require(access.OpAssignmentWrite, vehicle_assignment_release_post.New(log, app.ServiceVehicleAssignment))).Methods("POST")
	api.Handle("/vehicle-assignment/{id}/reassign", require(access.OpAssignmentWrite, vehicle_assignment_reassign_post.New(log, app.ServiceVehicleAssignment))).Methods("POST")

	api.Handle("/pharmacy-assignment", require(access.OpAssignmentWrite, pharmacy_assignment_post.New(log, app.ServicePharmacyAssignment))).Methods("POST")
	api.Handle("/pharmacy-assignment/{id}/release", require(access.OpAssignmentWrite, pharmacy_assignment_release_post.New(log, app.ServicePharmacyAssignment))).Methods("POST")
	api.Handle("/pharmacy-assignment/{id}/reassign", require(access.OpAssignmentWrite, pharmacy_assignment_reassign_post.New(log, app.ServicePharmacyAssignment))).Methods("POST")

	api.Handle("/dispatch", dispatch_post.New(log, app.ServiceDispatch)).Methods("POST")
	api.Handle("/dispatch", dispatch_put.New(log, app.ServiceDispatch)).Methods("PUT")
	api.Handle("/dispatch/{id}", require(access.OpRead, dispatch_get.New(log, app.ServiceDispatch))).Methods("GET")
	api.Handle("/dispatch/{id}/transition", dispatch_transition_post.New(log, app.ServiceDispatch)).Methods("POST")
	api.Handle("/dispatches", require(access.OpRead, dispatches_get.New(log, app.ServiceDispatch))).Methods("GET")
	api.Handle("/dispatches/stats", require(access.OpDispatchStatsRead, dispatches_stats_get.New(log, app.ServiceDispatch))).Methods("GET")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool, db healthcheck_head.Pinger) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown, db)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}

package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/drazenc/fittrack/internal/auth"
	"github.com/drazenc/fittrack/internal/catalog"
	"github.com/drazenc/fittrack/internal/config"
	"github.com/drazenc/fittrack/internal/db"
	"github.com/drazenc/fittrack/internal/identity"
	"github.com/drazenc/fittrack/internal/middleware"
	"github.com/drazenc/fittrack/internal/ops"
	"github.com/drazenc/fittrack/internal/stats"
	"github.com/drazenc/fittrack/internal/telemetry/metrics"
	"github.com/drazenc/fittrack/internal/telemetry/tracing"
	"github.com/drazenc/fittrack/internal/users"
	"github.com/drazenc/fittrack/internal/workoutlog"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config          *config.Config
	dbPool          *pgxpool.Pool
	catalogRepo     *catalog.Repo
	catalogSnapshot *catalog.Snapshot
	identityClient  identity.Client
	tokenVerifier   *identity.CachedVerifier

	redisClient  *redis.Client
	loginChecker *auth.LoginChecker
	authService  *auth.Service
	admin        *auth.Admin

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	IdentityAPIKey          string
	VersionInfo             string
	AdminUsername           string
	AdminPasswordHash       string
	RedisPassword           string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         params.Config.PostgresHost,
		DBPort:         params.Config.PostgresPort,
		DBName:         params.Config.PostgresDBName,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": params.Config.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("fittrack", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	authService := auth.NewService(auth.DefaultTTL, rdb)
	go func() {
		for range time.Tick(time.Hour * 8) {
			authService.ScanAndClean(ctx)
		}
	}()

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "fittrack-backend", rdb)
	if err != nil {
		return nil, err
	}

	tracedHttpClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}

	identityClient := identity.NewHTTPClient(
		params.Config.IdentityBaseURL,
		params.IdentityAPIKey,
		tracedHttpClient,
	)

	catalogRepo := catalog.NewRepo(dbPool)
	catalogExercises, err := catalogRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("load exercise catalog: %w", err)
	}
	catalogSnapshot := catalog.NewSnapshot(catalogExercises)
	log.Debugf("exercise catalog loaded: %d exercises", catalogSnapshot.Len())

	return &Server{
		config:          params.Config,
		versionInfo:     params.VersionInfo,
		dbPool:          dbPool,
		catalogRepo:     catalogRepo,
		catalogSnapshot: catalogSnapshot,
		identityClient:  identityClient,
		tokenVerifier:   identity.NewCachedVerifier(identityClient),

		redisClient:  rdb,
		authService:  authService,
		loginChecker: auth.NewLoginChecker(auth.DefaultTTL, rdb),
		admin: &auth.Admin{
			Username:     params.AdminUsername,
			PasswordHash: params.AdminPasswordHash,
		},

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() (*mux.Router, error) {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)
	opsHandler := ops.NewHandler(s.versionInfo, s.authService, s.loginChecker, s.admin)
	opsHandler.SetupRoutes(r, reqRateLimiter, s.config.LoginRateLimitAllowedPerMin, s.metricsManager)

	logsRepo := workoutlog.NewRepo(s.dbPool)
	logsService := workoutlog.NewService(logsRepo, s.catalogSnapshot)
	logsHandler := workoutlog.NewHandler(logsService, s.metricsManager)
	// log routes have to be registered before the catalog {id} route
	r.HandleFunc("/api/exercises/logs", logsHandler.HandleAdd).Methods("POST", "OPTIONS").Name("new-log")
	r.HandleFunc("/api/exercises/logs", logsHandler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-log")
	r.HandleFunc("/api/exercises/logs", logsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-logs")
	r.HandleFunc("/api/exercises/logs/by-date", logsHandler.HandleListByDate).Methods("GET", "OPTIONS").Name("logs-by-date")
	r.HandleFunc("/api/exercises/logs/by-date-range", logsHandler.HandleListByDateRange).Methods("GET", "OPTIONS").Name("logs-by-date-range")

	analyzer := stats.NewAnalyzer(s.catalogSnapshot)
	usersRepo := users.NewRepo(s.dbPool)
	comparator := stats.NewComparator(logsRepo, usersRepo, s.catalogSnapshot)
	statsHandler := stats.NewHandler(logsRepo, analyzer, comparator)
	r.HandleFunc("/api/exercises/muscle-percentage/by-date", statsHandler.HandleMusclePercentageByDate).Methods("GET", "OPTIONS").Name("muscle-pct-by-date")
	r.HandleFunc("/api/exercises/muscle-percentage/by-date-range", statsHandler.HandleMusclePercentageByDateRange).Methods("GET", "OPTIONS").Name("muscle-pct-by-date-range")
	r.HandleFunc("/api/users/me/dashboard", statsHandler.HandleDashboard).Methods("GET", "OPTIONS").Name("dashboard")

	catalogHandler := catalog.NewHandler(s.catalogRepo)
	r.HandleFunc("/api/exercises", catalogHandler.HandleList).Methods("GET", "OPTIONS").Name("list-exercises")
	r.HandleFunc("/api/exercises/{id}", catalogHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-exercise")

	usersHandler := users.NewHandler(usersRepo, logsService, s.identityClient, s.metricsManager)
	r.HandleFunc("/api/users", usersHandler.HandleRegister).Methods("POST", "OPTIONS").Name("register-user")
	r.HandleFunc("/api/auth/login", usersHandler.HandleLogin).Methods("POST", "OPTIONS").Name("user-login")
	r.HandleFunc("/api/auth/uid", usersHandler.HandleGetUID).Methods("GET", "OPTIONS").Name("user-uid")
	r.HandleFunc("/api/username", usersHandler.HandleGetUsername).Methods("GET", "OPTIONS").Name("username")
	r.HandleFunc("/api/users/me/info", usersHandler.HandleGetInfo).Methods("GET", "OPTIONS").Name("user-info")
	r.HandleFunc("/api/users/me/info", usersHandler.HandleUpdateInfo).Methods("PUT", "OPTIONS").Name("update-user-info")
	r.HandleFunc("/api/users/me", usersHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-user")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.tokenVerifier)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r, nil
}

func (s *Server) Serve(_ context.Context, host string, port int) {
	router, err := s.routerSetup()
	if err != nil {
		log.Fatalf("failed to setup router: %s", err)
	}

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{},
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown http server")
	}
	log.Warnln("server shut down")

	if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown metrics http server")
	}
	log.Warnln("metrics server shut down")
}

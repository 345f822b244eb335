package internal

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
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

	"github.com/2beens/gymplan/internal/auth"
	"github.com/2beens/gymplan/internal/config"
	"github.com/2beens/gymplan/internal/db"
	"github.com/2beens/gymplan/internal/gymplan/catalog"
	"github.com/2beens/gymplan/internal/gymplan/generator"
	gymplanmcp "github.com/2beens/gymplan/internal/gymplan/mcp"
	"github.com/2beens/gymplan/internal/gymplan/profile"
	"github.com/2beens/gymplan/internal/gymplan/routines"
	"github.com/2beens/gymplan/internal/gymplan/workouts"
	"github.com/2beens/gymplan/internal/middleware"
	"github.com/2beens/gymplan/internal/telemetry/metrics"
	"github.com/2beens/gymplan/internal/telemetry/tracing"
	"github.com/2beens/gymplan/pkg"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string
	mcpKeyHash        string // bcrypt hash of the key MCP clients send in X-MCP-Key

	config *config.Config
	dbPool *pgxpool.Pool

	redisClient  *redis.Client
	tokenChecker *auth.TokenChecker

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	DBPassword              string
	RedisPassword           string
	MCPKeyHash              string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	dbParams := db.NewDBPoolParams{
		DBHost:         params.Config.PostgresHost,
		DBPort:         params.Config.PostgresPort,
		DBName:         params.Config.PostgresDBName,
		DBUser:         params.Config.PostgresUser,
		DBPassword:     params.DBPassword,
		TracingEnabled: params.HoneycombTracingEnabled,
	}

	if params.Config.RunMigrations {
		if err := db.Migrate(dbParams.ConnString()); err != nil {
			return nil, fmt.Errorf("migrate db: %w", err)
		}
	}

	dbPool, err := db.NewDBPool(ctx, dbParams)
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
	metricsManager := metrics.NewManager("gymplan", "main", promRegistry)
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

	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "gymplan", rdb)
	if err != nil {
		return nil, err
	}

	return &Server{
		config:      params.Config,
		dbPool:      dbPool,
		versionInfo: params.VersionInfo,
		mcpKeyHash:  params.MCPKeyHash,

		redisClient:  rdb,
		tokenChecker: auth.NewTokenChecker(auth.DefaultTTL, rdb),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("gymplan-router"))

	profileRepo := profile.NewRepo(s.dbPool)
	routinesRepo := routines.NewRepo(s.dbPool)
	catalogStore := catalog.NewCachedStore(
		catalog.NewRepo(s.dbPool),
		s.config.CatalogCacheSizeMB,
		s.config.CatalogCacheTTLSeconds,
		s.metricsManager,
	)
	sessionService := workouts.NewService(routinesRepo, workouts.NewRepo(s.dbPool), s.metricsManager)

	r.HandleFunc("/health", s.handleHealth).Methods("GET").Name("health")

	profileHandler := profile.NewHandler(profileRepo)
	r.HandleFunc("/profile", profileHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-profile")
	r.HandleFunc("/profile", profileHandler.HandleUpsert).Methods("PUT", "OPTIONS").Name("upsert-profile")

	engine := generator.NewEngine(
		profileRepo,
		catalogStore,
		routinesRepo,
		generator.NewAllocator(rand.NewSource(time.Now().UnixNano())),
		s.metricsManager,
	)
	generatorHandler := generator.NewHandler(engine)
	generateRateLimit := middleware.RateLimit(
		redis_rate.NewLimiter(s.redisClient),
		"generate-routine",
		s.config.GenerateRateLimitPerMin,
		s.metricsManager,
	)
	r.Handle("/routines/generate", generateRateLimit(http.HandlerFunc(generatorHandler.HandleGenerate))).
		Methods("POST", "OPTIONS").Name("generate-routine")

	routinesHandler := routines.NewHandler(routinesRepo)
	r.HandleFunc("/routines", routinesHandler.HandleList).Methods("GET", "OPTIONS").Name("list-routines")
	r.HandleFunc("/routines", routinesHandler.HandleCreate).Methods("POST", "OPTIONS").Name("new-routine")
	r.HandleFunc("/routines/active", routinesHandler.HandleGetActive).Methods("GET", "OPTIONS").Name("active-routine")
	r.HandleFunc("/routines/{id}", routinesHandler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-routine")
	r.HandleFunc("/routines/{id}", routinesHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-routine")
	r.HandleFunc("/routines/{id}/activate", routinesHandler.HandleActivate).Methods("POST", "OPTIONS").Name("activate-routine")
	r.HandleFunc("/routines/{id}/days", routinesHandler.HandleListDays).Methods("GET", "OPTIONS").Name("list-days")
	r.HandleFunc("/routines/{id}/days", routinesHandler.HandleAddDay).Methods("POST", "OPTIONS").Name("new-day")
	r.HandleFunc("/routines/{id}/days", routinesHandler.HandleDeleteDays).Methods("DELETE", "OPTIONS").Name("delete-days")
	r.HandleFunc("/days/{id}/exercises", routinesHandler.HandleReplaceExercises).Methods("PUT", "OPTIONS").Name("replace-day-exercises")
	r.HandleFunc("/days/{id}/exercises", routinesHandler.HandleAddExercise).Methods("POST", "OPTIONS").Name("new-day-exercise")
	r.HandleFunc("/days/{id}/exercises", routinesHandler.HandleDeleteExercises).Methods("DELETE", "OPTIONS").Name("delete-day-exercises")
	r.HandleFunc("/assignments/{id}", routinesHandler.HandleUpdateAssignment).Methods("PUT", "OPTIONS").Name("update-assignment")
	r.HandleFunc("/assignments/{id}", routinesHandler.HandleDeleteAssignment).Methods("DELETE", "OPTIONS").Name("delete-assignment")

	catalogHandler := catalog.NewHandler(catalogStore)
	r.HandleFunc("/catalog", catalogHandler.HandleList).Methods("GET", "OPTIONS").Name("list-catalog")
	r.HandleFunc("/catalog", catalogHandler.HandleAddCustom).Methods("POST", "OPTIONS").Name("new-catalog-exercise")
	r.HandleFunc("/catalog/basic", catalogHandler.HandleListBasic).Methods("GET", "OPTIONS").Name("list-basic-catalog")

	sessionsHandler := workouts.NewHandler(sessionService)
	r.HandleFunc("/sessions", sessionsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-sessions")
	r.HandleFunc("/sessions/open", sessionsHandler.HandleOpen).Methods("POST", "OPTIONS").Name("open-session")
	r.HandleFunc("/sessions/{id}/progress", sessionsHandler.HandleProgress).Methods("GET", "OPTIONS").Name("session-progress")
	r.HandleFunc("/sessions/{id}/logs", sessionsHandler.HandleLogSet).Methods("POST", "OPTIONS").Name("log-set")
	r.HandleFunc("/sessions/{id}/finish", sessionsHandler.HandleFinish).Methods("POST", "OPTIONS").Name("finish-session")
	r.HandleFunc("/logs/{id}", sessionsHandler.HandleUpdateLog).Methods("PUT", "OPTIONS").Name("update-log")

	if s.config.MCPEnabled {
		mcpServer := gymplanmcp.NewServer(
			gymplanmcp.NewPlanService(routinesRepo, sessionService, catalogStore),
			s.versionInfo,
		)
		r.PathPrefix("/mcp").
			Handler(otelhttp.NewHandler(gymplanmcp.NewHTTPHandler(mcpServer), "mcp")).
			Name("mcp")
	}

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "DELETE", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.tokenChecker)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.MCPKeyCheck(s.mcpKeyHash))
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteJSONResponseOK(w, map[string]string{
		"status":  "ok",
		"version": s.versionInfo,
	})
}

func (s *Server) Serve(host string, port int) {
	router := s.routerSetup()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.InstrumentMetricHandler(
		s.promRegistry,
		promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}),
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

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
		log.Warnln("server shut down")
	}

	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
		log.Warnln("metrics server shut down")
	}

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
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}

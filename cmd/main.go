package main

//
//  @title           comexstat-parana API
//  @version         1.0
//  @description     ComexStat ingestion & agribusiness aggregation service for Paraná.
//  @termsOfService  https://github.com/avnergomes/comexstat-parana
//  @contact.name    API Support
//  @contact.url     https://github.com/avnergomes/comexstat-parana
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        trade
//  @tag.description Endpoints for querying aggregated trade views
//
//  @tag.name        health
//  @tag.description Liveness and readiness probes

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/avnergomes/comexstat-parana/config"
	_ "github.com/avnergomes/comexstat-parana/docs" // swagger docs
	"github.com/avnergomes/comexstat-parana/internal/app"
	"github.com/avnergomes/comexstat-parana/internal/export"
	"github.com/avnergomes/comexstat-parana/internal/ingestion"
	"github.com/avnergomes/comexstat-parana/internal/logger"
	"github.com/avnergomes/comexstat-parana/internal/service"
	"github.com/avnergomes/comexstat-parana/internal/storage"
)

// startServer initializes and starts the HTTP server in a separate goroutine.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown gracefully terminates the HTTP server and cleans up resources
// when an OS interrupt signal (SIGINT, SIGTERM) is received.
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// newSummaryService wires a summary service directly against the database,
// used by the export mode which has no HTTP layer.
func newSummaryService(db *sql.DB, auxDir string) *service.SummaryService {
	cfg := config.AppConfig
	return service.NewSummaryService(
		storage.NewTradeRepository(db),
		ingestion.LoadLookups(auxDir),
		service.Options{
			Filter:          cfg.Pipeline.FilterOptions(),
			TopCountries:    cfg.Pipeline.TopCountries,
			TopProducts:     cfg.Pipeline.TopProducts,
			Flow:            cfg.Pipeline.FlowOptions(),
			ForecastPeriods: cfg.Pipeline.ForecastPeriods,
		},
	)
}

// main is the entry point of the comexstat-parana application.
//
// Modes (selected via --mode flag):
//   - ingest: Loads EXP_/IMP_ yearly extracts from --dir into Postgres.
//   - export: Writes the aggregated JSON artifacts to --out.
//   - api:    Starts the REST API exposing the aggregated views.
//
// Flags:
//   - --mode:     Execution mode ("ingest", "export" or "api"). Default: "ingest".
//   - --dir:      Directory containing the yearly CSV extracts. Default: "./data/input".
//   - --aux:      Directory containing auxiliary lookup tables. Default: "./data/aux".
//   - --out:      Output directory for the export mode. Default: "./data/output".
//   - --parallel: Concurrent files during ingestion (0=auto up to CPU, max 7).
//   - --force:    Reprocess years already ingested (deletes existing rows first).
//   - --port:     Port for API mode. Defaults to value from config (SERVER_PORT).
func main() {
	ctx := context.Background()

	// Load configuration from environment or .env file
	config.LoadConfig()

	// Initialize JSON logger
	logger.Init()

	mode := flag.String("mode", "ingest", "Mode: ingest, export or api")
	dir := flag.String("dir", "./data/input", "Directory with yearly CSV extracts")
	auxDir := flag.String("aux", "./data/aux", "Directory with auxiliary lookup tables")
	out := flag.String("out", "./data/output", "Output directory for export mode")
	parallel := flag.Int("parallel", 0, "How many files to process concurrently (0=auto up to CPU, max 7)")
	force := flag.Bool("force", false, "Reprocess years even if already ingested (deletes existing records for that year)")
	port := flag.String("port", config.AppConfig.Server.Port, "Port for API mode")
	flag.Parse()

	cfg := config.AppConfig

	switch *mode {
	case "ingest":
		logger.L().Info().Msg("running ingestion")

		db, err := app.InitPostgres(cfg)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("db connect error")
		}
		defer func() { _ = db.Close() }()

		opts := ingestion.Options{
			YearStart: cfg.Pipeline.YearStart,
			YearEnd:   cfg.Pipeline.YearEnd,
			Parallel:  *parallel,
			Force:     *force,
			Filter:    cfg.Pipeline.FilterOptions(),
		}
		if err := ingestion.ProcessDirectory(ctx, *dir, db, opts); err != nil {
			logger.L().Fatal().Err(err).Msg("ingestion failed")
		}
		logger.L().Info().Msg("ingestion completed successfully")

	case "export":
		logger.L().Info().Msg("running export")

		db, err := app.InitPostgres(cfg)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("db connect error")
		}
		defer func() { _ = db.Close() }()

		svc := newSummaryService(db, *auxDir)
		if err := export.WriteAll(ctx, svc, *out); err != nil {
			logger.L().Fatal().Err(err).Msg("export failed")
		}
		logger.L().Info().Str("dir", *out).Msg("export completed successfully")

	case "api":
		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp(*auxDir)
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, *port)
		gracefulShutdown(ctx, server, cleanup)

	default:
		logger.L().Fatal().Str("mode", *mode).Msg("unknown mode")
	}
}

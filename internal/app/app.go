package app

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/avnergomes/comexstat-parana/config"
	"github.com/avnergomes/comexstat-parana/internal/api"
	"github.com/avnergomes/comexstat-parana/internal/ingestion"
	"github.com/avnergomes/comexstat-parana/internal/service"
	"github.com/avnergomes/comexstat-parana/internal/storage"
)

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Parameters:
//   - auxDir: directory holding the auxiliary lookup tables (NCM.csv, PAIS.csv,
//     UF_MUN.csv or the geojson fallback). Missing tables degrade to placeholders.
//
// Responsibilities:
//   - Connects to PostgreSQL using InitPostgres().
//   - Initializes the repository layer (TradeRepository).
//   - Loads the auxiliary lookup tables used to enrich records.
//   - Creates the summary service and the HTTP handler layer.
//   - Configures the Gin router with all API routes.
//   - Registers health and readiness probes.
//   - Provides a cleanup function to close resources (e.g., DB connection).
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp(auxDir string) (*gin.Engine, func(), error) {
	cfg := config.AppConfig

	// Connect to PostgreSQL
	// indirection for unit testing
	db, err := postgresOpener(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize postgres: %w", err)
	}

	// Repository layer (DB access)
	repo := storage.NewTradeRepository(db)

	// Auxiliary lookup tables (product descriptions, countries, municipalities)
	lookups := ingestion.LoadLookups(auxDir)

	// Service layer (classification, aggregation, forecasts)
	svc := service.NewSummaryService(repo, lookups, service.Options{
		Filter:          cfg.Pipeline.FilterOptions(),
		TopCountries:    cfg.Pipeline.TopCountries,
		TopProducts:     cfg.Pipeline.TopProducts,
		Flow:            cfg.Pipeline.FlowOptions(),
		ForecastPeriods: cfg.Pipeline.ForecastPeriods,
	})

	// HTTP handler layer and router
	handler := api.NewHandler(svc)
	router := api.NewRouter(handler)

	// Health and readiness probes
	healthHandler := api.NewHealthHandler(db.Ping)
	healthHandler.Register(router)

	// Cleanup resources on shutdown
	cleanup := func() {
		_ = db.Close()
	}

	return router, cleanup, nil
}

package config

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/spf13/viper"

	"github.com/avnergomes/comexstat-parana/internal/pipeline"
)

// Config holds the full application configuration loaded from environment variables or .env file.
//
// It is composed of smaller structs that represent different concerns of the system,
// such as server settings, Postgres connection details, and the analysis scope.
//
// Example YAML/ENV equivalent:
//
//	SERVER_PORT=8080
//	POSTGRES_HOST=localhost
//	POSTGRES_PORT=5432
//	POSTGRES_USER=admin
//	POSTGRES_PASSWORD=secret
//	POSTGRES_DB=comexstat
//	POSTGRES_SSLMODE=disable
//	PIPELINE_REGION=PR
//	PIPELINE_YEAR_START=2020
//	PIPELINE_YEAR_END=2025
type Config struct {
	Server   ServerConfig   // HTTP server configuration
	Postgres PostgresConfig // PostgreSQL connection settings
	Pipeline PipelineConfig // Analysis scope and view limits
}

// ServerConfig holds HTTP server settings such as the port to listen on.
type ServerConfig struct {
	Port string // The TCP port the HTTP server will listen on (e.g., "8080")
}

// PostgresConfig defines connection details for PostgreSQL.
//
// Fields:
//   - Host: hostname of the database server.
//   - Port: port number of the database server (default 5432).
//   - User: username for authentication.
//   - Password: password for authentication.
//   - DBName: target database name.
//   - SSLMode: SSL mode (e.g., "disable", "require").
//   - URL: computed DSN used by database/sql to connect.
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	URL      string
}

// PipelineConfig defines the analysis scope (which records are in play)
// and the size limits applied when building the aggregated views.
//
// Fields:
//   - Region: state whose municipalities are analyzed (SG_UF_NCM/SG_UF_MUN).
//   - Chapters: NCM chapters kept by the scope filter.
//   - YearStart, YearEnd: inclusive year window; 0 means unbounded.
//   - TopCountries, TopProducts: row limits for the country and product rollups.
//   - FlowTopEndpoints, FlowTopEdges: pruning limits for the total flow graph.
//   - FlowChainEndpoints, FlowChainEdges: pruning limits applied per chain.
//   - ForecastPeriods: how many years ahead the projections reach.
type PipelineConfig struct {
	Region             string
	Chapters           []int
	YearStart          int
	YearEnd            int
	TopCountries       int
	TopProducts        int
	FlowTopEndpoints   int
	FlowTopEdges       int
	FlowChainEndpoints int
	FlowChainEdges     int
	ForecastPeriods    int
}

// FilterOptions converts the configured scope into pipeline filter options.
func (p PipelineConfig) FilterOptions() pipeline.FilterOptions {
	chapters := make(map[int]bool, len(p.Chapters))
	for _, ch := range p.Chapters {
		chapters[ch] = true
	}
	return pipeline.FilterOptions{
		Region:    p.Region,
		Chapters:  chapters,
		YearStart: p.YearStart,
		YearEnd:   p.YearEnd,
	}
}

// FlowOptions converts the configured graph limits into flow-graph options.
func (p PipelineConfig) FlowOptions() pipeline.FlowOptions {
	return pipeline.FlowOptions{
		TopEndpoints:   p.FlowTopEndpoints,
		TopEdges:       p.FlowTopEdges,
		ChainEndpoints: p.FlowChainEndpoints,
		ChainEdges:     p.FlowChainEdges,
	}
}

// defaultChapters lists the NCM chapters covered by the agribusiness scope:
// chapters 1-24 plus fertilizers (31) and agrochemicals (38).
func defaultChapters() []int {
	chapters := make([]int, 0, 26)
	for ch := 1; ch <= 24; ch++ {
		chapters = append(chapters, ch)
	}
	return append(chapters, 31, 38)
}

// parseChapters reads a comma-separated chapter list (PIPELINE_CHAPTERS).
// An empty value keeps the default scope; malformed entries are skipped.
func parseChapters(s string) []int {
	if strings.TrimSpace(s) == "" {
		return defaultChapters()
	}
	var chapters []int
	for _, part := range strings.Split(s, ",") {
		ch, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || ch < 1 || ch > 99 {
			continue
		}
		chapters = append(chapters, ch)
	}
	if len(chapters) == 0 {
		return defaultChapters()
	}
	return chapters
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the application.
// All services should import this package and read from AppConfig instead of
// reloading environment variables directly.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Behavior:
//   - Sets defaults for all required fields.
//   - Reads environment variables automatically with viper.AutomaticEnv().
//   - Constructs the PostgreSQL connection string (DSN).
//   - Calls validateConfig() to ensure required fields are present.
//
// Fatal exit:
//   - If required variables are missing, validateConfig() will terminate the app
//     with a descriptive log message.
func LoadConfig() {
	// Default values
	viper.SetDefault("SERVER_PORT", "8080")

	viper.SetDefault("POSTGRES_HOST", "localhost")
	viper.SetDefault("POSTGRES_PORT", 5432)
	viper.SetDefault("POSTGRES_USER", "postgres")
	viper.SetDefault("POSTGRES_PASSWORD", "postgres")
	viper.SetDefault("POSTGRES_DB", "comexstat")
	viper.SetDefault("POSTGRES_SSLMODE", "disable")

	viper.SetDefault("PIPELINE_REGION", "PR")
	viper.SetDefault("PIPELINE_CHAPTERS", "")
	viper.SetDefault("PIPELINE_YEAR_START", 2020)
	viper.SetDefault("PIPELINE_YEAR_END", 2025)
	viper.SetDefault("PIPELINE_TOP_COUNTRIES", 20)
	viper.SetDefault("PIPELINE_TOP_PRODUCTS", 100)
	viper.SetDefault("PIPELINE_FLOW_TOP_ENDPOINTS", 12)
	viper.SetDefault("PIPELINE_FLOW_TOP_EDGES", 80)
	viper.SetDefault("PIPELINE_FLOW_CHAIN_ENDPOINTS", 5)
	viper.SetDefault("PIPELINE_FLOW_CHAIN_EDGES", 10)
	viper.SetDefault("PIPELINE_FORECAST_PERIODS", 2)

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	// Read environment variables automatically
	viper.AutomaticEnv()

	// Populate global config instance
	AppConfig = Config{
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
		},
		Postgres: PostgresConfig{
			Host:     viper.GetString("POSTGRES_HOST"),
			Port:     viper.GetInt("POSTGRES_PORT"),
			User:     viper.GetString("POSTGRES_USER"),
			Password: viper.GetString("POSTGRES_PASSWORD"),
			DBName:   viper.GetString("POSTGRES_DB"),
			SSLMode:  viper.GetString("POSTGRES_SSLMODE"),
		},
		Pipeline: PipelineConfig{
			Region:             viper.GetString("PIPELINE_REGION"),
			Chapters:           parseChapters(viper.GetString("PIPELINE_CHAPTERS")),
			YearStart:          viper.GetInt("PIPELINE_YEAR_START"),
			YearEnd:            viper.GetInt("PIPELINE_YEAR_END"),
			TopCountries:       viper.GetInt("PIPELINE_TOP_COUNTRIES"),
			TopProducts:        viper.GetInt("PIPELINE_TOP_PRODUCTS"),
			FlowTopEndpoints:   viper.GetInt("PIPELINE_FLOW_TOP_ENDPOINTS"),
			FlowTopEdges:       viper.GetInt("PIPELINE_FLOW_TOP_EDGES"),
			FlowChainEndpoints: viper.GetInt("PIPELINE_FLOW_CHAIN_ENDPOINTS"),
			FlowChainEdges:     viper.GetInt("PIPELINE_FLOW_CHAIN_EDGES"),
			ForecastPeriods:    viper.GetInt("PIPELINE_FORECAST_PERIODS"),
		},
	}

	// Construct Postgres DSN (used by database/sql)
	AppConfig.Postgres.URL = fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		AppConfig.Postgres.User,
		AppConfig.Postgres.Password,
		AppConfig.Postgres.Host,
		AppConfig.Postgres.Port,
		AppConfig.Postgres.DBName,
		AppConfig.Postgres.SSLMode,
	)

	// Validate critical fields
	validateConfig()
}

// validateConfig ensures required variables are present and terminates
// the application if they are missing.
//
// This avoids unexpected runtime failures due to incomplete configuration.
//
// Behavior:
//   - Checks each critical field of AppConfig.
//   - Collects missing ones in a slice.
//   - If any are missing, logs them and terminates the app with log.Fatalf().
func validateConfig() {
	var missing []string

	if AppConfig.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if AppConfig.Postgres.Host == "" {
		missing = append(missing, "POSTGRES_HOST")
	}
	if AppConfig.Postgres.Port == 0 {
		missing = append(missing, "POSTGRES_PORT")
	}
	if AppConfig.Postgres.User == "" {
		missing = append(missing, "POSTGRES_USER")
	}
	if AppConfig.Postgres.Password == "" {
		missing = append(missing, "POSTGRES_PASSWORD")
	}
	if AppConfig.Postgres.DBName == "" {
		missing = append(missing, "POSTGRES_DB")
	}
	if AppConfig.Pipeline.Region == "" {
		missing = append(missing, "PIPELINE_REGION")
	}

	if len(missing) > 0 {
		log.Fatalf("missing required environment variables: %v\n", missing)
	}
}

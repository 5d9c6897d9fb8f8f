package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/avnergomes/comexstat-parana/internal/domain/models"
	"github.com/avnergomes/comexstat-parana/internal/middleware"
	"github.com/avnergomes/comexstat-parana/internal/service"
)

// TradeService is the slice of the summary service the handlers consume.
type TradeService interface {
	Summary(ctx context.Context) (*models.Summary, error)
	Timeseries(ctx context.Context, monthly bool) ([]models.BalanceRow, error)
	Chains(ctx context.Context, flow models.Flow) ([]models.ChainRow, error)
	Countries(ctx context.Context, flow models.Flow, top int) ([]models.CountryRow, error)
	Products(ctx context.Context, flow models.Flow, top int) ([]models.ProductRow, error)
	FlowGraph(ctx context.Context) (models.FlowGraph, error)
	Balance(ctx context.Context) ([]models.BalanceRow, error)
	Forecast(ctx context.Context) (models.Forecast, error)
}

// Handler provides the HTTP handlers for the trade dashboard endpoints.
//
// Responsibilities:
//   - Validate incoming query parameters
//   - Delegate to the summary service
//   - Map service errors onto HTTP status codes
type Handler struct {
	svc TradeService
}

func NewHandler(svc TradeService) *Handler {
	return &Handler{svc: svc}
}

// respond maps the shared service errors; handlers call it on any service
// failure.
func respond(c *gin.Context, err error) {
	if errors.Is(err, service.ErrNoRecords) {
		middleware.AbortWithError(c, http.StatusNotFound, "no data found", nil)
		return
	}
	middleware.AbortWithError(c, http.StatusInternalServerError, "failed to build view", err)
}

// parseFlow reads the optional "flow" query parameter, defaulting to the
// export side.
func parseFlow(c *gin.Context) (models.Flow, bool) {
	switch strings.ToLower(strings.TrimSpace(c.Query("flow"))) {
	case "", "export", "exp":
		return models.FlowExport, true
	case "import", "imp":
		return models.FlowImport, true
	default:
		middleware.AbortWithError(c, http.StatusBadRequest, "flow must be export or import", nil)
		return "", false
	}
}

// parseTop reads the optional "top" query parameter; 0 means the service
// default.
func parseTop(c *gin.Context) (int, bool) {
	s := c.Query("top")
	if s == "" {
		return 0, true
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		middleware.AbortWithError(c, http.StatusBadRequest, "top must be a positive integer", err)
		return 0, false
	}
	return n, true
}

// GetSummary godoc
// @Summary      Full dashboard summary
// @Description  Returns metadata, filters, timeseries, rollups, flow graph and forecast in one payload
// @Tags         summary
// @Produce      json
// @Success      200  {object}  models.Summary         "Success"
// @Failure      404  {object}  dto.ErrorResponse      "No Data"
// @Failure      500  {object}  dto.ErrorResponse      "Internal Error"
// @Router       /api/v1/summary [get]
func (h *Handler) GetSummary(c *gin.Context) {
	sum, err := h.svc.Summary(c.Request.Context())
	if err != nil {
		respond(c, err)
		return
	}
	c.JSON(http.StatusOK, sum)
}

// GetTimeseries godoc
// @Summary      Reconciled balance timeseries
// @Description  Returns the export/import balance per period, zero-filled on the missing side
// @Tags         timeseries
// @Produce      json
// @Param        by   query     string  false  "Granularity: year (default) or month"  Enums(year, month)
// @Success      200  {array}   models.BalanceRow
// @Failure      400  {object}  dto.ErrorResponse  "Bad Request"
// @Failure      404  {object}  dto.ErrorResponse  "No Data"
// @Router       /api/v1/timeseries [get]
func (h *Handler) GetTimeseries(c *gin.Context) {
	var monthly bool
	switch strings.ToLower(c.DefaultQuery("by", "year")) {
	case "year":
	case "month":
		monthly = true
	default:
		middleware.AbortWithError(c, http.StatusBadRequest, "by must be year or month", nil)
		return
	}
	rows, err := h.svc.Timeseries(c.Request.Context(), monthly)
	if err != nil {
		respond(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GetChains godoc
// @Summary      By-chain rollup
// @Description  Returns value, weight, product count and share per productive chain for one flow side
// @Tags         rollups
// @Produce      json
// @Param        flow  query     string  false  "Flow side: export (default) or import"  Enums(export, import)
// @Success      200   {array}   models.ChainRow
// @Failure      400   {object}  dto.ErrorResponse  "Bad Request"
// @Failure      404   {object}  dto.ErrorResponse  "No Data"
// @Router       /api/v1/chains [get]
func (h *Handler) GetChains(c *gin.Context) {
	flow, ok := parseFlow(c)
	if !ok {
		return
	}
	rows, err := h.svc.Chains(c.Request.Context(), flow)
	if err != nil {
		respond(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GetCountries godoc
// @Summary      By-country rollup
// @Description  Returns the top partner countries for one flow side; shares are of the full dataset
// @Tags         rollups
// @Produce      json
// @Param        flow  query     string  false  "Flow side: export (default) or import"  Enums(export, import)
// @Param        top   query     int     false  "Row cap"  example(20)
// @Success      200   {array}   models.CountryRow
// @Failure      400   {object}  dto.ErrorResponse  "Bad Request"
// @Failure      404   {object}  dto.ErrorResponse  "No Data"
// @Router       /api/v1/countries [get]
func (h *Handler) GetCountries(c *gin.Context) {
	flow, ok := parseFlow(c)
	if !ok {
		return
	}
	top, ok := parseTop(c)
	if !ok {
		return
	}
	rows, err := h.svc.Countries(c.Request.Context(), flow, top)
	if err != nil {
		respond(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GetProducts godoc
// @Summary      Top products rollup
// @Description  Returns the highest-valued products of one flow side with their chain and chapter
// @Tags         rollups
// @Produce      json
// @Param        flow  query     string  false  "Flow side: export (default) or import"  Enums(export, import)
// @Param        top   query     int     false  "Row cap"  example(100)
// @Success      200   {array}   models.ProductRow
// @Failure      400   {object}  dto.ErrorResponse  "Bad Request"
// @Failure      404   {object}  dto.ErrorResponse  "No Data"
// @Router       /api/v1/products [get]
func (h *Handler) GetProducts(c *gin.Context) {
	flow, ok := parseFlow(c)
	if !ok {
		return
	}
	top, ok := parseTop(c)
	if !ok {
		return
	}
	rows, err := h.svc.Products(c.Request.Context(), flow, top)
	if err != nil {
		respond(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GetFlows godoc
// @Summary      Origin-destination flow graph
// @Description  Returns the pruned municipality to country graph; mode=per_chain serves the per-chain edge set
// @Tags         flows
// @Produce      json
// @Param        mode  query     string  false  "Edge set: total (default) or per_chain"  Enums(total, per_chain)
// @Success      200   {object}  models.FlowGraph
// @Failure      400   {object}  dto.ErrorResponse  "Bad Request"
// @Failure      404   {object}  dto.ErrorResponse  "No Data"
// @Router       /api/v1/flows [get]
func (h *Handler) GetFlows(c *gin.Context) {
	mode := strings.ToLower(c.DefaultQuery("mode", "total"))
	if mode != "total" && mode != "per_chain" {
		middleware.AbortWithError(c, http.StatusBadRequest, "mode must be total or per_chain", nil)
		return
	}
	graph, err := h.svc.FlowGraph(c.Request.Context())
	if err != nil {
		respond(c, err)
		return
	}
	if mode == "per_chain" {
		graph.Edges = graph.EdgesByChain
	}
	graph.EdgesByChain = nil
	// The stored node list covers the union of both edge sets; trim it to
	// the one actually served.
	graph.Nodes = nodesFor(graph.Nodes, graph.Edges)
	c.JSON(http.StatusOK, graph)
}

// nodesFor keeps only the nodes referenced by at least one edge.
func nodesFor(nodes []models.FlowNode, edges []models.FlowEdge) []models.FlowNode {
	used := make(map[string]bool, len(edges)*2)
	for _, e := range edges {
		used[e.Source] = true
		used[e.Target] = true
	}
	kept := make([]models.FlowNode, 0, len(used))
	for _, n := range nodes {
		if used[n.ID] {
			kept = append(kept, n)
		}
	}
	return kept
}

// GetBalance godoc
// @Summary      Yearly trade balance
// @Description  Returns the reconciled yearly balance with saldo and corrente per year
// @Tags         timeseries
// @Produce      json
// @Success      200  {array}   models.BalanceRow
// @Failure      404  {object}  dto.ErrorResponse  "No Data"
// @Router       /api/v1/balance [get]
func (h *Handler) GetBalance(c *gin.Context) {
	rows, err := h.svc.Balance(c.Request.Context())
	if err != nil {
		respond(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// GetForecast godoc
// @Summary      Trade forecast
// @Description  Projects both sides and the balance two years ahead with confidence bands
// @Tags         forecast
// @Produce      json
// @Success      200  {object}  models.Forecast
// @Failure      404  {object}  dto.ErrorResponse  "No Data"
// @Router       /api/v1/forecast [get]
func (h *Handler) GetForecast(c *gin.Context) {
	f, err := h.svc.Forecast(c.Request.Context())
	if err != nil {
		respond(c, err)
		return
	}
	c.JSON(http.StatusOK, f)
}

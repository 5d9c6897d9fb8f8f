package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/avnergomes/comexstat-parana/internal/domain/models"
	"github.com/avnergomes/comexstat-parana/internal/service"
)

// stubService returns canned views and records the requested parameters.
type stubService struct {
	err      error
	lastFlow models.Flow
	lastTop  int
	monthly  bool
}

func (s *stubService) Summary(context.Context) (*models.Summary, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.Summary{Metadata: models.Metadata{YearMin: 2020, YearMax: 2024}}, nil
}

func (s *stubService) Timeseries(_ context.Context, monthly bool) ([]models.BalanceRow, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.monthly = monthly
	return []models.BalanceRow{{Year: 2023, ExportValue: 100, Balance: 100, GrossFlow: 100}}, nil
}

func (s *stubService) Chains(_ context.Context, flow models.Flow) ([]models.ChainRow, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.lastFlow = flow
	return []models.ChainRow{{ChainID: "sojicultura", Chain: "Sojicultura", Value: 100, Share: 100}}, nil
}

func (s *stubService) Countries(_ context.Context, flow models.Flow, top int) ([]models.CountryRow, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.lastFlow = flow
	s.lastTop = top
	return []models.CountryRow{{Country: "China", Value: 100}}, nil
}

func (s *stubService) Products(_ context.Context, flow models.Flow, top int) ([]models.ProductRow, error) {
	if s.err != nil {
		return nil, s.err
	}
	s.lastFlow = flow
	s.lastTop = top
	return []models.ProductRow{{Code: "12019000"}}, nil
}

func (s *stubService) FlowGraph(context.Context) (models.FlowGraph, error) {
	if s.err != nil {
		return models.FlowGraph{}, s.err
	}
	return models.FlowGraph{
		Nodes: []models.FlowNode{
			{ID: "municipio:Cascavel", Name: "Cascavel", Type: models.NodeMunicipality},
			{ID: "municipio:Toledo", Name: "Toledo", Type: models.NodeMunicipality},
			{ID: "pais:China", Name: "China", Type: models.NodeCountry},
			{ID: "pais:Japão", Name: "Japão", Type: models.NodeCountry},
		},
		Edges:        []models.FlowEdge{{Source: "municipio:Toledo", Target: "pais:China", Value: 10}},
		EdgesByChain: []models.FlowEdge{{Source: "municipio:Cascavel", Target: "pais:Japão", Value: 4, Chain: "Avicultura"}},
		Chains:       []string{"Avicultura"},
	}, nil
}

func (s *stubService) Balance(ctx context.Context) ([]models.BalanceRow, error) {
	return s.Timeseries(ctx, false)
}

func (s *stubService) Forecast(context.Context) (models.Forecast, error) {
	if s.err != nil {
		return models.Forecast{}, s.err
	}
	return models.Forecast{Method: "LinearTrend", Years: []int{2025, 2026}}, nil
}

func serve(t *testing.T, svc TradeService, path string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewHandler(svc)
	v1 := r.Group("/api/v1")
	v1.GET("/summary", h.GetSummary)
	v1.GET("/timeseries", h.GetTimeseries)
	v1.GET("/chains", h.GetChains)
	v1.GET("/countries", h.GetCountries)
	v1.GET("/products", h.GetProducts)
	v1.GET("/flows", h.GetFlows)
	v1.GET("/balance", h.GetBalance)
	v1.GET("/forecast", h.GetForecast)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func TestGetSummary(t *testing.T) {
	w := serve(t, &stubService{}, "/api/v1/summary")
	if w.Code != http.StatusOK {
		t.Fatalf("code=%d body=%s", w.Code, w.Body.String())
	}
	var sum models.Summary
	if err := json.Unmarshal(w.Body.Bytes(), &sum); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if sum.Metadata.YearMin != 2020 {
		t.Errorf("summary = %+v", sum.Metadata)
	}
}

func TestNoDataMapsTo404(t *testing.T) {
	paths := []string{
		"/api/v1/summary", "/api/v1/timeseries", "/api/v1/chains",
		"/api/v1/countries", "/api/v1/products", "/api/v1/flows",
		"/api/v1/balance", "/api/v1/forecast",
	}
	for _, path := range paths {
		w := serve(t, &stubService{err: service.ErrNoRecords}, path)
		if w.Code != http.StatusNotFound {
			t.Errorf("%s: code=%d, want 404", path, w.Code)
		}
	}
}

func TestGetTimeseriesGranularity(t *testing.T) {
	svc := &stubService{}
	if w := serve(t, svc, "/api/v1/timeseries?by=month"); w.Code != http.StatusOK {
		t.Fatalf("code=%d", w.Code)
	}
	if !svc.monthly {
		t.Error("by=month did not request monthly series")
	}
	if w := serve(t, svc, "/api/v1/timeseries?by=week"); w.Code != http.StatusBadRequest {
		t.Errorf("by=week code=%d, want 400", w.Code)
	}
}

func TestFlowParam(t *testing.T) {
	svc := &stubService{}
	if w := serve(t, svc, "/api/v1/chains?flow=import"); w.Code != http.StatusOK {
		t.Fatalf("code=%d", w.Code)
	}
	if svc.lastFlow != models.FlowImport {
		t.Errorf("flow = %s, want import", svc.lastFlow)
	}
	if w := serve(t, svc, "/api/v1/chains"); w.Code != http.StatusOK {
		t.Fatalf("code=%d", w.Code)
	}
	if svc.lastFlow != models.FlowExport {
		t.Errorf("default flow = %s, want export", svc.lastFlow)
	}
	if w := serve(t, svc, "/api/v1/chains?flow=sideways"); w.Code != http.StatusBadRequest {
		t.Errorf("bad flow code=%d, want 400", w.Code)
	}
}

func TestTopParam(t *testing.T) {
	svc := &stubService{}
	if w := serve(t, svc, "/api/v1/countries?top=5"); w.Code != http.StatusOK {
		t.Fatalf("code=%d", w.Code)
	}
	if svc.lastTop != 5 {
		t.Errorf("top = %d, want 5", svc.lastTop)
	}
	if w := serve(t, svc, "/api/v1/countries?top=0"); w.Code != http.StatusBadRequest {
		t.Errorf("top=0 code=%d, want 400", w.Code)
	}
	if w := serve(t, svc, "/api/v1/countries?top=abc"); w.Code != http.StatusBadRequest {
		t.Errorf("top=abc code=%d, want 400", w.Code)
	}
}

func TestGetFlowsModes(t *testing.T) {
	w := serve(t, &stubService{}, "/api/v1/flows")
	if w.Code != http.StatusOK {
		t.Fatalf("code=%d", w.Code)
	}
	var g models.FlowGraph
	if err := json.Unmarshal(w.Body.Bytes(), &g); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(g.Edges) != 1 || g.Edges[0].Chain != "" {
		t.Errorf("total mode edges = %+v", g.Edges)
	}
	if len(g.Nodes) != 2 || g.Nodes[0].ID != "municipio:Toledo" || g.Nodes[1].ID != "pais:China" {
		t.Errorf("total mode nodes = %+v", g.Nodes)
	}

	w = serve(t, &stubService{}, "/api/v1/flows?mode=per_chain")
	if err := json.Unmarshal(w.Body.Bytes(), &g); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(g.Edges) != 1 || g.Edges[0].Chain != "Avicultura" {
		t.Errorf("per_chain edges = %+v", g.Edges)
	}
	// node list must cover exactly the served edge set
	if len(g.Nodes) != 2 || g.Nodes[0].ID != "municipio:Cascavel" || g.Nodes[1].ID != "pais:Japão" {
		t.Errorf("per_chain nodes = %+v", g.Nodes)
	}

	if w := serve(t, &stubService{}, "/api/v1/flows?mode=bogus"); w.Code != http.StatusBadRequest {
		t.Errorf("bad mode code=%d, want 400", w.Code)
	}
}

func TestInternalErrorMapsTo500(t *testing.T) {
	w := serve(t, &stubService{err: context.DeadlineExceeded}, "/api/v1/summary")
	if w.Code != http.StatusInternalServerError {
		t.Errorf("code=%d, want 500", w.Code)
	}
}

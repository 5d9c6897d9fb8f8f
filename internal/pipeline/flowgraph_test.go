package pipeline

import (
	"fmt"
	"testing"

	"github.com/avnergomes/comexstat-parana/internal/domain/models"
)

func flowRecord(mun, country, chainID, chain string, value float64) models.EnrichedRecord {
	return models.EnrichedRecord{
		TradeRecord: models.TradeRecord{
			Year: 2023, Month: 1, ProductCode: "12019000", Region: "PR",
			CountryCode: country, Value: value, Weight: value,
		},
		CountryName:      country,
		MunicipalityName: mun,
		Chapter:          12,
		ChainID:          chainID,
		Chain:            chain,
	}
}

func TestBuildFlowGraphPrunesToTop(t *testing.T) {
	// 20 municipalities exporting to one country, descending values.
	var records []models.EnrichedRecord
	for i := 0; i < 20; i++ {
		mun := fmt.Sprintf("Mun%02d", i)
		records = append(records, flowRecord(mun, "China", "sojicultura", "Sojicultura", float64(1000-i)))
	}

	g := BuildFlowGraph(records, FlowOptions{TopEndpoints: 12, TopEdges: 80, ChainEndpoints: 5, ChainEdges: 10})
	if len(g.Edges) != 12 {
		t.Fatalf("total edges = %d, want 12 (endpoint cap)", len(g.Edges))
	}
	// The highest-valued municipalities survive.
	if g.Edges[0].Source != "municipio:Mun00" {
		t.Errorf("top edge source = %s", g.Edges[0].Source)
	}
	if len(g.EdgesByChain) != 5 {
		t.Errorf("per-chain edges = %d, want 5 (chain endpoint cap)", len(g.EdgesByChain))
	}
	if g.EdgesByChain[0].Chain != "Sojicultura" {
		t.Errorf("per-chain edge lacks chain: %+v", g.EdgesByChain[0])
	}
}

func TestBuildFlowGraphEdgeCap(t *testing.T) {
	// 5 municipalities x 5 countries = 25 edges, all endpoints retained.
	var records []models.EnrichedRecord
	for m := 0; m < 5; m++ {
		for c := 0; c < 5; c++ {
			records = append(records,
				flowRecord(fmt.Sprintf("Mun%d", m), fmt.Sprintf("Pais%d", c), "sojicultura", "Sojicultura", float64(100+m*5+c)))
		}
	}
	g := BuildFlowGraph(records, FlowOptions{TopEndpoints: 12, TopEdges: 10, ChainEndpoints: 5, ChainEdges: 10})
	if len(g.Edges) != 10 {
		t.Fatalf("total edges = %d, want 10 (edge cap)", len(g.Edges))
	}
	for i := 1; i < len(g.Edges); i++ {
		if g.Edges[i].Value > g.Edges[i-1].Value {
			t.Errorf("edges not sorted by value at %d", i)
		}
	}
}

func TestBuildFlowGraphNodesCoverAllEdges(t *testing.T) {
	records := []models.EnrichedRecord{
		flowRecord("Ponta Grossa", "China", "sojicultura", "Sojicultura", 900),
		flowRecord("Toledo", "Arábia Saudita", "avicultura", "Avicultura", 400),
		flowRecord("Curitiba", "Alemanha", "cafeicultura", "Cafeicultura", 100),
	}
	g := BuildFlowGraph(records, DefaultFlowOptions())

	nodes := make(map[string]bool)
	for _, n := range g.Nodes {
		nodes[n.ID] = true
	}
	for _, e := range append(append([]models.FlowEdge{}, g.Edges...), g.EdgesByChain...) {
		if !nodes[e.Source] {
			t.Errorf("edge source %s missing from nodes", e.Source)
		}
		if !nodes[e.Target] {
			t.Errorf("edge target %s missing from nodes", e.Target)
		}
	}
	for _, n := range g.Nodes {
		if n.Type != models.NodeMunicipality && n.Type != models.NodeCountry {
			t.Errorf("node %s has type %q", n.ID, n.Type)
		}
		if n.Name == "" {
			t.Errorf("node %s has empty name", n.ID)
		}
	}
	if len(g.Chains) != 3 {
		t.Errorf("chains = %v, want 3 entries", g.Chains)
	}
}

func TestBuildFlowGraphSmallChainsSurvive(t *testing.T) {
	// One dominant chain fills the total edge budget; a tiny chain must
	// still appear in the per-chain set.
	var records []models.EnrichedRecord
	for i := 0; i < 15; i++ {
		records = append(records, flowRecord(fmt.Sprintf("Soja%02d", i), "China", "sojicultura", "Sojicultura", float64(10000-i)))
	}
	records = append(records, flowRecord("Mandaguari", "Alemanha", "apicultura", "Apicultura", 2))

	g := BuildFlowGraph(records, FlowOptions{TopEndpoints: 12, TopEdges: 12, ChainEndpoints: 5, ChainEdges: 10})

	honey := false
	for _, e := range g.EdgesByChain {
		if e.Chain == "Apicultura" {
			honey = true
		}
	}
	if !honey {
		t.Error("per-chain edge set lost the small chain")
	}
}

func TestBuildFlowGraphSkipsZeroValueEdges(t *testing.T) {
	records := []models.EnrichedRecord{
		flowRecord("Ponta Grossa", "China", "sojicultura", "Sojicultura", 0),
	}
	g := BuildFlowGraph(records, DefaultFlowOptions())
	if len(g.Edges) != 0 || len(g.EdgesByChain) != 0 {
		t.Errorf("zero-value flow emitted edges: %+v", g)
	}
}

package pipeline

import (
	"sort"

	"github.com/avnergomes/comexstat-parana/internal/domain/models"
)

// FlowOptions controls the two pruning passes of the flow-graph builder.
type FlowOptions struct {
	// TopEndpoints and TopEdges prune the total (chain-blind) edge set.
	TopEndpoints int
	TopEdges     int
	// ChainEndpoints and ChainEdges prune each chain's edge set
	// independently, so small chains keep representation the total
	// pruning would have cost them.
	ChainEndpoints int
	ChainEdges     int
}

// DefaultFlowOptions are the pruning limits the dashboard renders well
// with.
func DefaultFlowOptions() FlowOptions {
	return FlowOptions{
		TopEndpoints:   12,
		TopEdges:       80,
		ChainEndpoints: 5,
		ChainEdges:     10,
	}
}

// BuildFlowGraph turns enriched records into the origin→destination graph.
// The total edge set keeps only flows between the top origins and top
// destinations by value, capped at TopEdges; the per-chain edge set applies
// the same pruning within each chain. The node list is the union of every
// endpoint a retained edge references, so no edge ever dangles. Zero-value
// flows are never emitted.
func BuildFlowGraph(records []models.EnrichedRecord, opts FlowOptions) models.FlowGraph {
	total := pruneEdges(ByPair(records), opts.TopEndpoints, opts.TopEdges, false)

	chainPairs := ByPairChain(records)
	perChain := make(map[string][]models.PairRow)
	var chainOrder []string
	for _, p := range chainPairs {
		if _, ok := perChain[p.Chain]; !ok {
			chainOrder = append(chainOrder, p.Chain)
		}
		perChain[p.Chain] = append(perChain[p.Chain], p)
	}
	sort.Strings(chainOrder)

	var byChain []models.FlowEdge
	for _, chain := range chainOrder {
		byChain = append(byChain, pruneEdges(perChain[chain], opts.ChainEndpoints, opts.ChainEdges, true)...)
	}

	graph := models.FlowGraph{
		Edges:        total,
		EdgesByChain: byChain,
		Chains:       chainOrder,
	}
	graph.Nodes = collectNodes(total, byChain)
	return graph
}

// pruneEdges keeps the flows between the top origins and top destinations,
// then the top edges by value. topEndpoints or topEdges <= 0 disables that
// pass.
func pruneEdges(pairs []models.PairRow, topEndpoints, topEdges int, withChain bool) []models.FlowEdge {
	originTotal := make(map[string]float64)
	destTotal := make(map[string]float64)
	for _, p := range pairs {
		originTotal[p.Origin] += p.Value
		destTotal[p.Destination] += p.Value
	}
	keepOrigin := topKeys(originTotal, topEndpoints)
	keepDest := topKeys(destTotal, topEndpoints)

	var edges []models.FlowEdge
	for _, p := range pairs {
		if p.Value <= 0 {
			continue
		}
		if !keepOrigin[p.Origin] || !keepDest[p.Destination] {
			continue
		}
		e := models.FlowEdge{
			Source: nodeID(models.NodeMunicipality, p.Origin),
			Target: nodeID(models.NodeCountry, p.Destination),
			Value:  p.Value,
		}
		if withChain {
			e.Chain = p.Chain
		}
		edges = append(edges, e)
	}
	sort.SliceStable(edges, func(i, j int) bool { return edges[i].Value > edges[j].Value })
	if topEdges > 0 && len(edges) > topEdges {
		edges = edges[:topEdges]
	}
	return edges
}

// topKeys returns the n highest-valued keys as a set; n <= 0 keeps all.
func topKeys(totals map[string]float64, n int) map[string]bool {
	keys := make([]string, 0, len(totals))
	for k := range totals {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if totals[keys[i]] != totals[keys[j]] {
			return totals[keys[i]] > totals[keys[j]]
		}
		return keys[i] < keys[j]
	})
	if n > 0 && len(keys) > n {
		keys = keys[:n]
	}
	keep := make(map[string]bool, len(keys))
	for _, k := range keys {
		keep[k] = true
	}
	return keep
}

func collectNodes(edgeSets ...[]models.FlowEdge) []models.FlowNode {
	seen := make(map[string]bool)
	var nodes []models.FlowNode
	add := func(id string) {
		if seen[id] {
			return
		}
		seen[id] = true
		typ, name := splitNodeID(id)
		nodes = append(nodes, models.FlowNode{ID: id, Name: name, Type: typ})
	}
	for _, set := range edgeSets {
		for _, e := range set {
			add(e.Source)
			add(e.Target)
		}
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i].ID < nodes[j].ID })
	return nodes
}

func nodeID(typ, name string) string { return typ + ":" + name }

func splitNodeID(id string) (typ, name string) {
	for i := 0; i < len(id); i++ {
		if id[i] == ':' {
			return id[:i], id[i+1:]
		}
	}
	return "", id
}

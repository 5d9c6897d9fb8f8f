package models

// Node types of the bipartite flow graph.
const (
	NodeMunicipality = "municipio"
	NodeCountry      = "pais"
)

// FlowNode is one endpoint of the flow graph. Nodes are derived from the
// retained edges, never persisted on their own.
type FlowNode struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

// FlowEdge is one origin→destination flow. Chain is set only on the
// per-chain edge set. Value is always positive; zero-value flows are not
// emitted.
type FlowEdge struct {
	Source string  `json:"source"`
	Target string  `json:"target"`
	Value  float64 `json:"value"`
	Chain  string  `json:"cadeia,omitempty"`
}

// FlowGraph bundles the globally pruned edge set, the per-chain edge set
// that guarantees every chain some representation, and the union of all
// referenced nodes.
type FlowGraph struct {
	Nodes        []FlowNode `json:"nodes"`
	Edges        []FlowEdge `json:"links"`
	EdgesByChain []FlowEdge `json:"linksByCadeia"`
	Chains       []string   `json:"cadeias"`
}

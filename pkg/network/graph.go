package network

// Edge is a directed connection between two elements. Weight is a path
// length hint for external consumers: the fiber length in km on ingress
// segments, a near-zero sentinel on egress segments and patches.
type Edge struct {
	From   string
	To     string
	Weight float64
}

// ZeroLengthWeight is the traversal weight of zero-length segments and
// patch connections; near-zero so shortest-path consumers still prefer
// fewer hops.
const ZeroLengthWeight = 0.01

// Graph is a directed graph of network elements. The node table is keyed
// by UID and adjacency is indexed by UID; insertion order is retained so
// iteration (and therefore serialization) is deterministic.
type Graph struct {
	elements map[string]Element
	order    []string

	outgoing map[string][]int // UID -> indices into edges
	incoming map[string][]int
	edges    []Edge
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{
		elements: make(map[string]Element),
		outgoing: make(map[string][]int),
		incoming: make(map[string][]int),
	}
}

// AddElement inserts an element. UIDs are unique across the graph.
func (g *Graph) AddElement(el Element) error {
	uid := el.UID()
	if _, exists := g.elements[uid]; exists {
		return &GraphError{Op: "AddElement", UID: uid, Cause: ErrDuplicateElement}
	}
	g.elements[uid] = el
	g.order = append(g.order, uid)
	return nil
}

// Connect adds a directed edge between two existing elements. Connecting
// the same ordered pair again replaces the previous weight.
func (g *Graph) Connect(from, to string, weight float64) error {
	if _, ok := g.elements[from]; !ok {
		return &GraphError{Op: "Connect", UID: from, Cause: ErrElementNotFound}
	}
	if _, ok := g.elements[to]; !ok {
		return &GraphError{Op: "Connect", UID: to, Cause: ErrElementNotFound}
	}

	for _, i := range g.outgoing[from] {
		if g.edges[i].To == to {
			g.edges[i].Weight = weight
			return nil
		}
	}

	g.edges = append(g.edges, Edge{From: from, To: to, Weight: weight})
	idx := len(g.edges) - 1
	g.outgoing[from] = append(g.outgoing[from], idx)
	g.incoming[to] = append(g.incoming[to], idx)
	return nil
}

// Element returns the element with the given UID.
func (g *Graph) Element(uid string) (Element, bool) {
	el, ok := g.elements[uid]
	return el, ok
}

// Elements returns all elements in insertion order.
func (g *Graph) Elements() []Element {
	out := make([]Element, 0, len(g.order))
	for _, uid := range g.order {
		out = append(out, g.elements[uid])
	}
	return out
}

// Edges returns all edges in insertion order.
func (g *Graph) Edges() []Edge {
	return append([]Edge(nil), g.edges...)
}

// Successors returns the elements reachable over one outgoing edge, in
// edge insertion order.
func (g *Graph) Successors(uid string) []Element {
	out := make([]Element, 0, len(g.outgoing[uid]))
	for _, i := range g.outgoing[uid] {
		out = append(out, g.elements[g.edges[i].To])
	}
	return out
}

// Predecessors returns the elements with an edge into uid, in edge
// insertion order.
func (g *Graph) Predecessors(uid string) []Element {
	out := make([]Element, 0, len(g.incoming[uid]))
	for _, i := range g.incoming[uid] {
		out = append(out, g.elements[g.edges[i].From])
	}
	return out
}

// NumElements returns the node count.
func (g *Graph) NumElements() int {
	return len(g.elements)
}

// NumEdges returns the edge count.
func (g *Graph) NumEdges() int {
	return len(g.edges)
}

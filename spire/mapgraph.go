package spire

// MapNode is one node of the act map. Symbol is the bridge's room glyph
// (M monster, ? event, $ shop, R rest, T treasure, E elite, B boss).
type MapNode struct {
	X      int
	Y      int
	Symbol string
	// Children holds the coordinates of reachable next-floor nodes.
	Children []MapCoord
}

type MapCoord struct {
	X int
	Y int
}

// MapGraph indexes the act map by floor then column.
type MapGraph struct {
	Nodes map[int]map[int]MapNode
}

func NewMapGraph() *MapGraph {
	return &MapGraph{Nodes: make(map[int]map[int]MapNode)}
}

func (g *MapGraph) Add(node MapNode) {
	row, ok := g.Nodes[node.Y]
	if !ok {
		row = make(map[int]MapNode)
		g.Nodes[node.Y] = row
	}
	row[node.X] = node
}

func (g *MapGraph) Get(x, y int) (MapNode, bool) {
	row, ok := g.Nodes[y]
	if !ok {
		return MapNode{}, false
	}
	node, ok := row[x]
	return node, ok
}

// Height returns the highest floor index present, or -1 for an empty map.
func (g *MapGraph) Height() int {
	if g == nil {
		return -1
	}
	max := -1
	for y := range g.Nodes {
		if y > max {
			max = y
		}
	}
	return max
}

// Clone returns an independent copy of the graph.
func (g *MapGraph) Clone() *MapGraph {
	if g == nil {
		return nil
	}
	out := NewMapGraph()
	for y, row := range g.Nodes {
		dst := make(map[int]MapNode, len(row))
		for x, node := range row {
			node.Children = append([]MapCoord{}, node.Children...)
			dst[x] = node
		}
		out.Nodes[y] = dst
	}
	return out
}

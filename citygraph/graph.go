package citygraph

import (
	"fmt"
	"math"
	"sort"
)

// Graph is an undirected weighted graph of locations keyed by id.
//
// Edges are kept symmetric at all times: a successful Connect writes both
// directions with the same weight, and a failed one writes neither. The
// graph is not safe for concurrent use; callers that share one across
// goroutines must serialize access externally.
type Graph struct {
	locations map[string]*Location
	adjacency map[string]map[string]float64

	// order fixes the iteration order of locations to insertion order,
	// which also decides shortest-path tie-breaks. seq maps an id to its
	// position in order.
	order []string
	seq   map[string]int

	// edgeOrder lists each node's neighbors in the order the edges were
	// first created, so equal-weight neighbor listings stay stable.
	edgeOrder map[string][]string
}

// Neighbor pairs a directly connected location with its edge weight.
type Neighbor struct {
	Location *Location
	Distance float64
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{
		locations: make(map[string]*Location),
		adjacency: make(map[string]map[string]float64),
		seq:       make(map[string]int),
		edgeOrder: make(map[string][]string),
	}
}

// InsertLocation adds a location to the graph and initializes its empty
// adjacency entry. Ids are unique: a second insert with the same id fails
// with ErrDuplicate rather than merging.
func (g *Graph) InsertLocation(loc *Location) error {
	if loc == nil {
		return fmt.Errorf("%w: location cannot be nil", ErrValidation)
	}
	if _, ok := g.locations[loc.ID]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicate, loc.ID)
	}
	g.locations[loc.ID] = loc
	g.adjacency[loc.ID] = make(map[string]float64)
	g.seq[loc.ID] = len(g.order)
	g.order = append(g.order, loc.ID)
	return nil
}

// Connect creates (or overwrites) the undirected edge between two
// locations with an explicit weight in kilometers. The weight must be
// strictly positive.
func (g *Graph) Connect(id1, id2 string, weight float64) error {
	if err := g.checkEndpoints(id1, id2); err != nil {
		return err
	}
	if math.IsNaN(weight) || weight <= 0 {
		return fmt.Errorf("%w: connection weight must be greater than 0, got %v", ErrValidation, weight)
	}
	g.writeEdge(id1, id2, weight)
	return nil
}

// ConnectByDistance creates the edge between two locations weighted by
// their great-circle distance. Two locations at identical coordinates
// cannot be connected this way, since a zero-length edge is rejected.
func (g *Graph) ConnectByDistance(id1, id2 string) error {
	if err := g.checkEndpoints(id1, id2); err != nil {
		return err
	}
	weight, err := g.locations[id1].DistanceTo(g.locations[id2])
	if err != nil {
		return err
	}
	if weight <= 0 {
		return fmt.Errorf("%w: computed distance between %q and %q is not positive", ErrValidation, id1, id2)
	}
	g.writeEdge(id1, id2, weight)
	return nil
}

func (g *Graph) checkEndpoints(id1, id2 string) error {
	if _, ok := g.locations[id1]; !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, id1)
	}
	if _, ok := g.locations[id2]; !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, id2)
	}
	if id1 == id2 {
		return fmt.Errorf("%w: %q", ErrSelfLoop, id1)
	}
	return nil
}

func (g *Graph) writeEdge(id1, id2 string, weight float64) {
	if _, exists := g.adjacency[id1][id2]; !exists {
		g.edgeOrder[id1] = append(g.edgeOrder[id1], id2)
		g.edgeOrder[id2] = append(g.edgeOrder[id2], id1)
	}
	g.adjacency[id1][id2] = weight
	g.adjacency[id2][id1] = weight
}

// Neighbors returns the directly connected locations of id sorted by
// ascending edge weight. Equal weights keep the order the edges were
// created in.
func (g *Graph) Neighbors(id string) ([]Neighbor, error) {
	if _, ok := g.locations[id]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	neighbors := make([]Neighbor, 0, len(g.adjacency[id]))
	for _, nid := range g.edgeOrder[id] {
		neighbors = append(neighbors, Neighbor{
			Location: g.locations[nid],
			Distance: g.adjacency[id][nid],
		})
	}
	sort.SliceStable(neighbors, func(i, j int) bool {
		return neighbors[i].Distance < neighbors[j].Distance
	})
	return neighbors, nil
}

// NeighborsWithinRadius returns the neighbors of id whose edge weight is
// at most maxDistance (inclusive), in the same ascending order as
// Neighbors.
func (g *Graph) NeighborsWithinRadius(id string, maxDistance float64) ([]Neighbor, error) {
	if math.IsNaN(maxDistance) || maxDistance <= 0 {
		return nil, fmt.Errorf("%w: radius must be a positive number, got %v", ErrValidation, maxDistance)
	}
	all, err := g.Neighbors(id)
	if err != nil {
		return nil, err
	}
	within := make([]Neighbor, 0, len(all))
	for _, n := range all {
		if n.Distance <= maxDistance {
			within = append(within, n)
		}
	}
	return within, nil
}

// GetLocation returns the stored location for id. The graph keeps the
// canonical instance; callers must treat it as read-only.
func (g *Graph) GetLocation(id string) (*Location, error) {
	loc, ok := g.locations[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	return loc, nil
}

// Locations returns every location in insertion order.
func (g *Graph) Locations() []*Location {
	locs := make([]*Location, 0, len(g.order))
	for _, id := range g.order {
		locs = append(locs, g.locations[id])
	}
	return locs
}

// HasConnection reports whether an edge exists between id1 and id2. It
// never fails: unknown ids simply report false.
func (g *Graph) HasConnection(id1, id2 string) bool {
	_, ok := g.adjacency[id1][id2]
	return ok
}

// DistanceBetween returns the weight of the edge between id1 and id2.
// Unknown ids fail with ErrNotFound; known ids without an edge fail with
// ErrNoConnection.
func (g *Graph) DistanceBetween(id1, id2 string) (float64, error) {
	if _, ok := g.locations[id1]; !ok {
		return 0, fmt.Errorf("%w: %q", ErrNotFound, id1)
	}
	if _, ok := g.locations[id2]; !ok {
		return 0, fmt.Errorf("%w: %q", ErrNotFound, id2)
	}
	weight, ok := g.adjacency[id1][id2]
	if !ok {
		return 0, fmt.Errorf("%w: %q and %q", ErrNoConnection, id1, id2)
	}
	return weight, nil
}

// LocationCount returns the number of locations in the graph.
func (g *Graph) LocationCount() int {
	return len(g.locations)
}

// ConnectionCount returns the number of undirected edges. Each edge is
// stored in both directions, so this is half the adjacency total.
func (g *Graph) ConnectionCount() int {
	total := 0
	for _, edges := range g.adjacency {
		total += len(edges)
	}
	return total / 2
}

// Clear resets the graph to its initial empty state.
func (g *Graph) Clear() {
	g.locations = make(map[string]*Location)
	g.adjacency = make(map[string]map[string]float64)
	g.order = nil
	g.seq = make(map[string]int)
	g.edgeOrder = make(map[string][]string)
}

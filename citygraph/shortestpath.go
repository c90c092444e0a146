package citygraph

import (
	"container/heap"
	"fmt"
)

// Route is the result of a successful shortest-path search: the ordered
// locations from origin to destination and the total weight in
// kilometers, rounded to two decimals.
type Route struct {
	Path     []*Location
	Distance float64
}

// ShortestPath runs Dijkstra's algorithm between two location ids.
//
// A same-id query returns the trivial single-location route with distance
// 0 without traversing the graph. An unreachable destination is a normal
// outcome, reported as a nil route with a nil error; only unknown ids
// fail. When several frontier nodes share the smallest tentative
// distance, the one inserted into the graph earliest is settled first,
// so results are deterministic for equal-cost alternatives.
func (g *Graph) ShortestPath(fromID, toID string) (*Route, error) {
	from, ok := g.locations[fromID]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, fromID)
	}
	if _, ok := g.locations[toID]; !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, toID)
	}

	if fromID == toID {
		return &Route{Path: []*Location{from}, Distance: 0}, nil
	}

	dist := map[string]float64{fromID: 0}
	prev := make(map[string]string)
	visited := make(map[string]bool)

	pq := &frontier{}
	heap.Init(pq)
	heap.Push(pq, &frontierItem{id: fromID, distance: 0, seq: g.seq[fromID]})

	for pq.Len() > 0 {
		item := heap.Pop(pq).(*frontierItem)
		current := item.id
		if visited[current] {
			continue
		}
		if current == toID {
			return g.buildRoute(prev, fromID, toID, item.distance), nil
		}
		visited[current] = true

		for _, nid := range g.edgeOrder[current] {
			if visited[nid] {
				continue
			}
			tentative := dist[current] + g.adjacency[current][nid]
			if old, ok := dist[nid]; !ok || tentative < old {
				dist[nid] = tentative
				prev[nid] = current
				heap.Push(pq, &frontierItem{id: nid, distance: tentative, seq: g.seq[nid]})
			}
		}
	}

	// Frontier exhausted without reaching the destination: no path.
	return nil, nil
}

func (g *Graph) buildRoute(prev map[string]string, fromID, toID string, total float64) *Route {
	var ids []string
	for current := toID; ; {
		ids = append([]string{current}, ids...)
		if current == fromID {
			break
		}
		current = prev[current]
	}
	path := make([]*Location, len(ids))
	for i, id := range ids {
		path[i] = g.locations[id]
	}
	return &Route{Path: path, Distance: roundKm(total)}
}

type frontierItem struct {
	id       string
	distance float64
	seq      int
}

// frontier orders items by tentative distance, then by graph insertion
// sequence so that ties resolve the same way on every run.
type frontier []*frontierItem

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	if f[i].distance != f[j].distance {
		return f[i].distance < f[j].distance
	}
	return f[i].seq < f[j].seq
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

func (f *frontier) Push(x interface{}) {
	*f = append(*f, x.(*frontierItem))
}

func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	*f = old[:n-1]
	return item
}

package citygraph

import (
	"encoding/json"
	"fmt"
)

// NetworkRecord is the wire format of a whole graph. Connections list
// each undirected edge exactly once.
type NetworkRecord struct {
	Locations   []LocationRecord   `json:"locations"`
	Connections []ConnectionRecord `json:"connections"`
}

// ConnectionRecord describes one undirected edge.
type ConnectionRecord struct {
	From     string  `json:"from"`
	To       string  `json:"to"`
	Distance float64 `json:"distance"`
}

// Export serializes the graph. Locations appear in insertion order;
// each edge appears once, deduplicated by its unordered id pair.
func (g *Graph) Export() NetworkRecord {
	rec := NetworkRecord{
		Locations:   make([]LocationRecord, 0, len(g.order)),
		Connections: make([]ConnectionRecord, 0, g.ConnectionCount()),
	}
	for _, id := range g.order {
		rec.Locations = append(rec.Locations, g.locations[id].Record())
	}
	seen := make(map[string]bool)
	for _, id := range g.order {
		for _, nid := range g.edgeOrder[id] {
			key := pairKey(id, nid)
			if seen[key] {
				continue
			}
			seen[key] = true
			rec.Connections = append(rec.Connections, ConnectionRecord{
				From:     id,
				To:       nid,
				Distance: g.adjacency[id][nid],
			})
		}
	}
	return rec
}

// Import replaces the graph's contents with the given record. Every
// location is validated and inserted, then every connection is written
// with its recorded weight (never recomputed); inconsistent data
// surfaces the same errors as InsertLocation and Connect. The rebuild
// happens on a fresh graph that is swapped in only on success, so a
// failed import leaves the receiver untouched.
func (g *Graph) Import(rec NetworkRecord) error {
	fresh := NewGraph()
	for _, lr := range rec.Locations {
		loc, err := LocationFromRecord(lr)
		if err != nil {
			return err
		}
		if err := fresh.InsertLocation(loc); err != nil {
			return err
		}
	}
	for _, cr := range rec.Connections {
		if err := fresh.Connect(cr.From, cr.To, cr.Distance); err != nil {
			return err
		}
	}
	*g = *fresh
	return nil
}

// ParseNetwork decodes a JSON network record.
func ParseNetwork(data []byte) (NetworkRecord, error) {
	var rec NetworkRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return NetworkRecord{}, fmt.Errorf("%w: could not parse network record: %v", ErrValidation, err)
	}
	return rec, nil
}

func pairKey(a, b string) string {
	if a > b {
		a, b = b, a
	}
	return a + "\x00" + b
}

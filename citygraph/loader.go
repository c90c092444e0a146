package citygraph

import (
	"encoding/json"
	"fmt"
	"os"
)

// LoadNetworkFromFile reads a JSON network record and builds a graph
// from it.
func LoadNetworkFromFile(path string) (*Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read network file: %w", err)
	}
	rec, err := ParseNetwork(data)
	if err != nil {
		return nil, err
	}
	g := NewGraph()
	if err := g.Import(rec); err != nil {
		return nil, fmt.Errorf("error loading network from %s: %w", path, err)
	}
	return g, nil
}

// SaveNetworkToFile writes the graph's export record as indented JSON.
func SaveNetworkToFile(g *Graph, path string) error {
	data, err := json.MarshalIndent(g.Export(), "", "  ")
	if err != nil {
		return fmt.Errorf("could not encode network record: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("could not write network file: %w", err)
	}
	return nil
}

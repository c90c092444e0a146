package citygraph

import (
	"errors"
	"testing"
)

// testNetwork builds the Mexican city network used across the graph
// tests: cdmx-pue=130, cdmx-gdl=540, pue-mty=850, gdl-mty=740, plus an
// isolated city with no connections.
func testNetwork(t *testing.T) *Graph {
	t.Helper()
	g := NewGraph()
	cities := []struct {
		id, name string
		lat, lon float64
	}{
		{"cdmx", "Mexico City", 19.4326, -99.1332},
		{"pue", "Puebla", 19.0414, -98.2063},
		{"gdl", "Guadalajara", 20.6597, -103.3496},
		{"mty", "Monterrey", 25.6866, -100.3161},
		{"isolated", "Isolated", 0, 0},
	}
	for _, c := range cities {
		loc, err := NewLocation(c.id, c.name, c.lat, c.lon, "")
		if err != nil {
			t.Fatalf("could not build %s: %v", c.id, err)
		}
		if err := g.InsertLocation(loc); err != nil {
			t.Fatalf("could not insert %s: %v", c.id, err)
		}
	}
	edges := []struct {
		from, to string
		weight   float64
	}{
		{"cdmx", "pue", 130},
		{"cdmx", "gdl", 540},
		{"pue", "mty", 850},
		{"gdl", "mty", 740},
	}
	for _, e := range edges {
		if err := g.Connect(e.from, e.to, e.weight); err != nil {
			t.Fatalf("could not connect %s-%s: %v", e.from, e.to, err)
		}
	}
	return g
}

func TestInsertLocationDuplicate(t *testing.T) {
	g := NewGraph()
	loc := mustLocation(t, "cdmx", "Mexico City", 19.4326, -99.1332)
	if err := g.InsertLocation(loc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	other := mustLocation(t, "cdmx", "Another Mexico City", 0, 0)
	if err := g.InsertLocation(other); !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
	if g.LocationCount() != 1 {
		t.Errorf("expected 1 location after rejected duplicate, got %d", g.LocationCount())
	}
}

func TestConnectErrors(t *testing.T) {
	g := testNetwork(t)

	if err := g.Connect("cdmx", "nowhere", 100); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown endpoint, got %v", err)
	}
	if err := g.Connect("nowhere", "cdmx", 100); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown endpoint, got %v", err)
	}
	if err := g.Connect("cdmx", "cdmx", 100); !errors.Is(err, ErrSelfLoop) {
		t.Errorf("expected ErrSelfLoop, got %v", err)
	}
	if err := g.Connect("cdmx", "mty", 0); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation for zero weight, got %v", err)
	}
	if err := g.Connect("cdmx", "mty", -5); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation for negative weight, got %v", err)
	}
	// A failed connect must not have written either direction.
	if g.HasConnection("cdmx", "mty") || g.HasConnection("mty", "cdmx") {
		t.Error("failed connect left a partial edge behind")
	}
}

func TestConnectSymmetryAndOverwrite(t *testing.T) {
	g := testNetwork(t)

	if !g.HasConnection("cdmx", "pue") || !g.HasConnection("pue", "cdmx") {
		t.Fatal("expected symmetric connection cdmx-pue")
	}
	ab, err := g.DistanceBetween("cdmx", "pue")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ba, err := g.DistanceBetween("pue", "cdmx")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ab != 130 || ba != 130 {
		t.Errorf("expected weight 130 both ways, got %v and %v", ab, ba)
	}

	// Reconnecting overwrites both directions and adds no new edge.
	if err := g.Connect("pue", "cdmx", 128.5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ab, _ = g.DistanceBetween("cdmx", "pue")
	if ab != 128.5 {
		t.Errorf("expected overwritten weight 128.5, got %v", ab)
	}
	if g.ConnectionCount() != 4 {
		t.Errorf("expected 4 connections after overwrite, got %d", g.ConnectionCount())
	}
}

func TestConnectByDistance(t *testing.T) {
	g := testNetwork(t)
	if err := g.ConnectByDistance("cdmx", "mty"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	weight, err := g.DistanceBetween("cdmx", "mty")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cdmx, _ := g.GetLocation("cdmx")
	mty, _ := g.GetLocation("mty")
	want, _ := cdmx.DistanceTo(mty)
	if weight != want {
		t.Errorf("expected auto-computed weight %v, got %v", want, weight)
	}

	// Two cities at identical coordinates cannot be auto-connected.
	twin := mustLocation(t, "twin", "Isolated Twin", 0, 0)
	if err := g.InsertLocation(twin); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := g.ConnectByDistance("isolated", "twin"); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation for zero-distance edge, got %v", err)
	}
}

func TestNeighborsOrdering(t *testing.T) {
	g := testNetwork(t)

	neighbors, err := g.Neighbors("cdmx")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(neighbors) != 2 {
		t.Fatalf("expected 2 neighbors of cdmx, got %d", len(neighbors))
	}
	if neighbors[0].Location.ID != "pue" || neighbors[0].Distance != 130 {
		t.Errorf("expected pue at 130 first, got %s at %v", neighbors[0].Location.ID, neighbors[0].Distance)
	}
	if neighbors[1].Location.ID != "gdl" || neighbors[1].Distance != 540 {
		t.Errorf("expected gdl at 540 second, got %s at %v", neighbors[1].Location.ID, neighbors[1].Distance)
	}

	if _, err := g.Neighbors("nowhere"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestNeighborsEqualWeightsKeepEdgeOrder(t *testing.T) {
	g := NewGraph()
	for _, id := range []string{"hub", "b", "a", "c"} {
		if err := g.InsertLocation(mustLocation(t, id, id, 0, float64(len(id)))); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	// Same weight everywhere; listing order must follow edge creation.
	for _, id := range []string{"b", "a", "c"} {
		if err := g.Connect("hub", id, 50); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	neighbors, err := g.Neighbors("hub")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := []string{neighbors[0].Location.ID, neighbors[1].Location.ID, neighbors[2].Location.ID}
	want := []string{"b", "a", "c"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected edge-order ties %v, got %v", want, got)
		}
	}
}

func TestNeighborsWithinRadius(t *testing.T) {
	g := testNetwork(t)

	within, err := g.NeighborsWithinRadius("cdmx", 200)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(within) != 1 || within[0].Location.ID != "pue" {
		t.Fatalf("expected only pue within 200 km of cdmx, got %v", within)
	}

	// The boundary is inclusive.
	within, err = g.NeighborsWithinRadius("cdmx", 130)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(within) != 1 {
		t.Errorf("expected pue at exactly 130 km to be included, got %v", within)
	}

	if _, err := g.NeighborsWithinRadius("cdmx", 0); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation for zero radius, got %v", err)
	}
	if _, err := g.NeighborsWithinRadius("cdmx", -10); !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation for negative radius, got %v", err)
	}
	if _, err := g.NeighborsWithinRadius("nowhere", 100); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestDistanceBetweenErrors(t *testing.T) {
	g := testNetwork(t)

	if _, err := g.DistanceBetween("nowhere", "cdmx"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown city, got %v", err)
	}
	_, err := g.DistanceBetween("cdmx", "mty")
	if !errors.Is(err, ErrNoConnection) {
		t.Fatalf("expected ErrNoConnection for missing edge, got %v", err)
	}
}

func TestCountsAndClear(t *testing.T) {
	g := testNetwork(t)

	if g.LocationCount() != 5 {
		t.Errorf("expected 5 locations, got %d", g.LocationCount())
	}
	if g.ConnectionCount() != 4 {
		t.Errorf("expected 4 connections, got %d", g.ConnectionCount())
	}

	g.Clear()
	if g.LocationCount() != 0 || g.ConnectionCount() != 0 {
		t.Errorf("expected empty graph after clear, got %d locations and %d connections",
			g.LocationCount(), g.ConnectionCount())
	}
	// A cleared graph accepts fresh inserts.
	if err := g.InsertLocation(mustLocation(t, "cdmx", "Mexico City", 19.4326, -99.1332)); err != nil {
		t.Fatalf("unexpected error after clear: %v", err)
	}
}

func TestLocationsInsertionOrder(t *testing.T) {
	g := testNetwork(t)
	locs := g.Locations()
	want := []string{"cdmx", "pue", "gdl", "mty", "isolated"}
	if len(locs) != len(want) {
		t.Fatalf("expected %d locations, got %d", len(want), len(locs))
	}
	for i, id := range want {
		if locs[i].ID != id {
			t.Errorf("position %d: expected %s, got %s", i, id, locs[i].ID)
		}
	}
}

func TestHasConnectionUnknownIDs(t *testing.T) {
	g := testNetwork(t)
	if g.HasConnection("nowhere", "cdmx") {
		t.Error("unknown id should report no connection, not fail")
	}
	if g.HasConnection("cdmx", "isolated") {
		t.Error("isolated city should have no connections")
	}
}

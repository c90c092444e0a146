package services

import (
	"errors"
	"testing"

	"github.com/bookingmx/cityconnect/citygraph"
)

// displayNetwork builds the city network the display tests run against:
// cdmx-pue=130, cdmx-gdl=540, pue-mty=850, gdl-mty=740 and one isolated
// city.
func displayNetwork(t *testing.T) *citygraph.Graph {
	t.Helper()
	g := citygraph.NewGraph()
	cities := []struct {
		id, name, region string
		lat, lon         float64
	}{
		{"cdmx", "Mexico City", "CDMX", 19.4326, -99.1332},
		{"pue", "Puebla", "Puebla", 19.0414, -98.2063},
		{"gdl", "Guadalajara", "Jalisco", 20.6597, -103.3496},
		{"mty", "Monterrey", "Nuevo Leon", 25.6866, -100.3161},
		{"isolated", "Isolated", "", 0, 0},
	}
	for _, c := range cities {
		loc, err := citygraph.NewLocation(c.id, c.name, c.lat, c.lon, c.region)
		if err != nil {
			t.Fatalf("could not build %s: %v", c.id, err)
		}
		if err := g.InsertLocation(loc); err != nil {
			t.Fatalf("could not insert %s: %v", c.id, err)
		}
	}
	for _, e := range []struct {
		from, to string
		weight   float64
	}{
		{"cdmx", "pue", 130},
		{"cdmx", "gdl", 540},
		{"pue", "mty", 850},
		{"gdl", "mty", 740},
	} {
		if err := g.Connect(e.from, e.to, e.weight); err != nil {
			t.Fatalf("could not connect %s-%s: %v", e.from, e.to, err)
		}
	}
	return g
}

func TestNearby(t *testing.T) {
	ds := NewDisplayService(displayNetwork(t))

	listings, err := ds.Nearby("cdmx", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(listings) != 2 {
		t.Fatalf("expected 2 listings, got %d", len(listings))
	}
	if listings[0].ID != "pue" || listings[0].DistanceKm != 130 {
		t.Errorf("expected pue at 130 first, got %+v", listings[0])
	}

	// A positive limit caps the listing; non-positive means no limit.
	capped, err := ds.Nearby("cdmx", 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(capped) != 1 || capped[0].ID != "pue" {
		t.Errorf("expected only pue with limit 1, got %+v", capped)
	}
	uncapped, err := ds.Nearby("cdmx", -1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(uncapped) != 2 {
		t.Errorf("expected no cap for negative limit, got %d listings", len(uncapped))
	}

	if _, err := ds.Nearby("nowhere", 0); !errors.Is(err, citygraph.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestNearbyWithinRadius(t *testing.T) {
	ds := NewDisplayService(displayNetwork(t))

	listings, err := ds.NearbyWithinRadius("cdmx", 200, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(listings) != 1 || listings[0].ID != "pue" {
		t.Fatalf("expected only pue within 200 km, got %+v", listings)
	}

	if _, err := ds.NearbyWithinRadius("cdmx", -1, 0); !errors.Is(err, citygraph.ErrValidation) {
		t.Errorf("expected ErrValidation for bad radius, got %v", err)
	}
}

func TestRouteSummary(t *testing.T) {
	ds := NewDisplayService(displayNetwork(t))

	summary, err := ds.RouteSummary("cdmx", "mty")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !summary.Found {
		t.Fatal("expected a route")
	}
	if summary.Origin != "Mexico City" || summary.Destination != "Monterrey" {
		t.Errorf("unexpected endpoints: %s -> %s", summary.Origin, summary.Destination)
	}
	if summary.TotalDistanceKm != 980 {
		t.Errorf("expected 980 km, got %v", summary.TotalDistanceKm)
	}
	if summary.IntermediateStops != 1 {
		t.Errorf("expected 1 intermediate stop, got %d", summary.IntermediateStops)
	}
	want := []string{"Mexico City", "Puebla", "Monterrey"}
	if len(summary.Waypoints) != len(want) {
		t.Fatalf("expected %d waypoints, got %v", len(want), summary.Waypoints)
	}
	for i := range want {
		if summary.Waypoints[i] != want[i] {
			t.Errorf("waypoint %d: expected %s, got %s", i, want[i], summary.Waypoints[i])
		}
	}
}

func TestRouteSummaryNoRoute(t *testing.T) {
	ds := NewDisplayService(displayNetwork(t))

	summary, err := ds.RouteSummary("cdmx", "isolated")
	if err != nil {
		t.Fatalf("no route must not be an error, got %v", err)
	}
	if summary.Found {
		t.Error("expected Found to be false")
	}
	if summary.Origin != "Mexico City" || summary.Destination != "Isolated" {
		t.Errorf("endpoints should still be reported: %s -> %s", summary.Origin, summary.Destination)
	}

	if _, err := ds.RouteSummary("cdmx", "nowhere"); !errors.Is(err, citygraph.ErrNotFound) {
		t.Errorf("expected ErrNotFound for unknown city, got %v", err)
	}
}

func TestConnectivityRanking(t *testing.T) {
	ds := NewDisplayService(displayNetwork(t))

	ranking, err := ds.ConnectivityRanking()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ranking) != 5 {
		t.Fatalf("expected 5 entries, got %d", len(ranking))
	}
	// Every connected city has degree 2; insertion order breaks the tie,
	// and the isolated city comes last with 0.
	if ranking[0].ID != "cdmx" {
		t.Errorf("expected cdmx first, got %s", ranking[0].ID)
	}
	if ranking[len(ranking)-1].ID != "isolated" || ranking[len(ranking)-1].Connections != 0 {
		t.Errorf("expected isolated last with 0, got %+v", ranking[len(ranking)-1])
	}
	for i := 1; i < len(ranking); i++ {
		if ranking[i].Connections > ranking[i-1].Connections {
			t.Errorf("ranking not descending at %d: %+v", i, ranking)
		}
	}
}

func TestNetworkStats(t *testing.T) {
	ds := NewDisplayService(displayNetwork(t))

	stats, err := ds.NetworkStats()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Locations != 5 || stats.Connections != 4 {
		t.Errorf("expected 5 locations and 4 connections, got %d/%d", stats.Locations, stats.Connections)
	}
	if stats.MaxDegree != 2 || stats.MinDegree != 0 {
		t.Errorf("expected degree range 0..2, got %d..%d", stats.MinDegree, stats.MaxDegree)
	}
	// 8 directed entries over 5 cities.
	if stats.AverageDegree != 1.6 {
		t.Errorf("expected average degree 1.6, got %v", stats.AverageDegree)
	}
	if stats.MostConnected != "Mexico City" {
		t.Errorf("expected Mexico City most connected, got %s", stats.MostConnected)
	}

	empty, err := NewDisplayService(citygraph.NewGraph()).NetworkStats()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if empty.Locations != 0 || empty.MostConnected != "" {
		t.Errorf("expected zeroed stats for empty network, got %+v", empty)
	}
}

func TestValidateNetwork(t *testing.T) {
	ds := NewDisplayService(displayNetwork(t))

	report, err := ds.ValidateNetwork()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !report.Valid {
		t.Errorf("expected valid network, errors: %v", report.Errors)
	}
	if len(report.Warnings) != 1 {
		t.Fatalf("expected one isolation warning, got %v", report.Warnings)
	}
}

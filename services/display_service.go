package services

import (
	"fmt"
	"sort"

	"github.com/bookingmx/cityconnect/citygraph"
	"github.com/bookingmx/cityconnect/models"
)

// DisplayService turns city network queries into display-ready
// structures. It only uses the graph's read operations and adds no
// routing logic of its own.
type DisplayService struct {
	network *citygraph.Graph
}

func NewDisplayService(network *citygraph.Graph) *DisplayService {
	return &DisplayService{network: network}
}

// Nearby lists the cities directly connected to id, closest first. A
// non-positive limit means no limit.
func (ds *DisplayService) Nearby(id string, limit int) ([]models.NearbyListing, error) {
	neighbors, err := ds.network.Neighbors(id)
	if err != nil {
		return nil, err
	}
	return toListings(neighbors, limit), nil
}

// NearbyWithinRadius lists the cities connected to id within radius
// kilometers, closest first, optionally capped by limit.
func (ds *DisplayService) NearbyWithinRadius(id string, radius float64, limit int) ([]models.NearbyListing, error) {
	neighbors, err := ds.network.NeighborsWithinRadius(id, radius)
	if err != nil {
		return nil, err
	}
	return toListings(neighbors, limit), nil
}

func toListings(neighbors []citygraph.Neighbor, limit int) []models.NearbyListing {
	if limit > 0 && len(neighbors) > limit {
		neighbors = neighbors[:limit]
	}
	listings := make([]models.NearbyListing, len(neighbors))
	for i, n := range neighbors {
		listings[i] = models.NearbyListing{
			ID:         n.Location.ID,
			Name:       n.Location.Name,
			Region:     n.Location.Region,
			DistanceKm: n.Distance,
		}
	}
	return listings
}

// RouteSummary describes the shortest route between two cities. A
// missing route is not an error: the summary comes back with Found
// false and the endpoint names filled in.
func (ds *DisplayService) RouteSummary(fromID, toID string) (models.RouteSummary, error) {
	route, err := ds.network.ShortestPath(fromID, toID)
	if err != nil {
		return models.RouteSummary{}, err
	}

	origin, err := ds.network.GetLocation(fromID)
	if err != nil {
		return models.RouteSummary{}, err
	}
	destination, err := ds.network.GetLocation(toID)
	if err != nil {
		return models.RouteSummary{}, err
	}

	summary := models.RouteSummary{
		Origin:      origin.Name,
		Destination: destination.Name,
	}
	if route == nil {
		return summary, nil
	}

	summary.Found = true
	summary.TotalDistanceKm = route.Distance
	summary.Waypoints = make([]string, len(route.Path))
	for i, loc := range route.Path {
		summary.Waypoints[i] = loc.Name
	}
	if len(route.Path) > 2 {
		summary.IntermediateStops = len(route.Path) - 2
	}
	return summary, nil
}

// ConnectivityRanking ranks every city by its number of direct
// connections, most connected first. Ties keep insertion order.
func (ds *DisplayService) ConnectivityRanking() ([]models.ConnectivityEntry, error) {
	entries := make([]models.ConnectivityEntry, 0, ds.network.LocationCount())
	for _, loc := range ds.network.Locations() {
		neighbors, err := ds.network.Neighbors(loc.ID)
		if err != nil {
			return nil, err
		}
		entries = append(entries, models.ConnectivityEntry{
			ID:          loc.ID,
			Name:        loc.Name,
			Connections: len(neighbors),
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Connections > entries[j].Connections
	})
	return entries, nil
}

// NetworkStats aggregates the shape of the network. An empty network
// reports zeros.
func (ds *DisplayService) NetworkStats() (models.NetworkStats, error) {
	stats := models.NetworkStats{
		Locations:   ds.network.LocationCount(),
		Connections: ds.network.ConnectionCount(),
	}
	if stats.Locations == 0 {
		return stats, nil
	}

	ranking, err := ds.ConnectivityRanking()
	if err != nil {
		return models.NetworkStats{}, err
	}
	totalDegree := 0
	stats.MinDegree = ranking[0].Connections
	for _, entry := range ranking {
		totalDegree += entry.Connections
		if entry.Connections > stats.MaxDegree {
			stats.MaxDegree = entry.Connections
		}
		if entry.Connections < stats.MinDegree {
			stats.MinDegree = entry.Connections
		}
	}
	stats.AverageDegree = float64(totalDegree) / float64(stats.Locations)
	stats.MostConnected = ranking[0].Name
	return stats, nil
}

// ValidateNetwork runs a structural pass over the network: cities with
// no connections are reported as warnings, and any asymmetric or
// weight-mismatched edge pair as an error.
func (ds *DisplayService) ValidateNetwork() (models.ValidationReport, error) {
	report := models.ValidationReport{}
	for _, loc := range ds.network.Locations() {
		neighbors, err := ds.network.Neighbors(loc.ID)
		if err != nil {
			return models.ValidationReport{}, err
		}
		if len(neighbors) == 0 {
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("city %q has no connections", loc.ID))
			continue
		}
		for _, n := range neighbors {
			if !ds.network.HasConnection(n.Location.ID, loc.ID) {
				report.Errors = append(report.Errors,
					fmt.Sprintf("asymmetric connection: %s -> %s exists but %s -> %s does not",
						loc.ID, n.Location.ID, n.Location.ID, loc.ID))
				continue
			}
			back, err := ds.network.DistanceBetween(n.Location.ID, loc.ID)
			if err != nil {
				return models.ValidationReport{}, err
			}
			if back != n.Distance {
				report.Errors = append(report.Errors,
					fmt.Sprintf("connection weight mismatch between %s and %s: %v vs %v",
						loc.ID, n.Location.ID, n.Distance, back))
			}
		}
	}
	report.Valid = len(report.Errors) == 0
	return report, nil
}

package models

// Display-ready structures produced by the display service from the
// city network's query operations.

// NearbyListing is one row of a nearby-cities listing.
type NearbyListing struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Region     string  `json:"region,omitempty"`
	DistanceKm float64 `json:"distance_km"`
}

// RouteSummary describes a shortest route between two cities. Found is
// false when the network offers no route; the other fields are only
// meaningful when it is true.
type RouteSummary struct {
	Found             bool     `json:"found"`
	Origin            string   `json:"origin"`
	Destination       string   `json:"destination"`
	Waypoints         []string `json:"waypoints,omitempty"`
	TotalDistanceKm   float64  `json:"total_distance_km"`
	IntermediateStops int      `json:"intermediate_stops"`
}

// ConnectivityEntry ranks one city by its number of direct connections.
type ConnectivityEntry struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Connections int    `json:"connections"`
}

// NetworkStats aggregates the network's shape.
type NetworkStats struct {
	Locations     int     `json:"locations"`
	Connections   int     `json:"connections"`
	AverageDegree float64 `json:"average_degree"`
	MaxDegree     int     `json:"max_degree"`
	MinDegree     int     `json:"min_degree"`
	MostConnected string  `json:"most_connected,omitempty"`
}

// ValidationReport is the outcome of a structural pass over the
// network: isolated cities are warnings, broken symmetry is an error.
type ValidationReport struct {
	Valid    bool     `json:"valid"`
	Warnings []string `json:"warnings,omitempty"`
	Errors   []string `json:"errors,omitempty"`
}

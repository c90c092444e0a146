package citygraph

import (
	"fmt"
	"math"
	"strings"
)

const earthRadiusKm = 6371.0

// Location represents a city in the network. Coordinates and id are fixed
// at construction; the graph holds the canonical instance once inserted
// and callers must not mutate it.
type Location struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Region    string  `json:"region"`
}

// LocationRecord is the flat serialized form of a Location.
type LocationRecord struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Region    string  `json:"region"`
}

// NewLocation validates and builds a Location. Name and region are trimmed
// of surrounding whitespace; a missing region is stored as "".
func NewLocation(id, name string, latitude, longitude float64, region string) (*Location, error) {
	if id == "" {
		return nil, fmt.Errorf("%w: location id cannot be empty", ErrValidation)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: location name cannot be empty", ErrValidation)
	}
	if math.IsNaN(latitude) || latitude < -90 || latitude > 90 {
		return nil, fmt.Errorf("%w: latitude %v out of range [-90, 90]", ErrValidation, latitude)
	}
	if math.IsNaN(longitude) || longitude < -180 || longitude > 180 {
		return nil, fmt.Errorf("%w: longitude %v out of range [-180, 180]", ErrValidation, longitude)
	}
	return &Location{
		ID:        id,
		Name:      name,
		Latitude:  latitude,
		Longitude: longitude,
		Region:    strings.TrimSpace(region),
	}, nil
}

// LocationFromRecord rebuilds a Location from its serialized form,
// applying the same validation as NewLocation.
func LocationFromRecord(rec LocationRecord) (*Location, error) {
	return NewLocation(rec.ID, rec.Name, rec.Latitude, rec.Longitude, rec.Region)
}

// Record returns the serialized form of the location.
func (l *Location) Record() LocationRecord {
	return LocationRecord{
		ID:        l.ID,
		Name:      l.Name,
		Latitude:  l.Latitude,
		Longitude: l.Longitude,
		Region:    l.Region,
	}
}

// DistanceTo computes the great-circle distance to another location in
// kilometers using the haversine formula, rounded to two decimals.
// Symmetric for any pair; exactly 0 between a location and itself.
func (l *Location) DistanceTo(other *Location) (float64, error) {
	if other == nil {
		return 0, fmt.Errorf("%w: distance target cannot be nil", ErrValidation)
	}

	phi1 := toRadians(l.Latitude)
	phi2 := toRadians(other.Latitude)
	deltaPhi := toRadians(other.Latitude - l.Latitude)
	deltaLambda := toRadians(other.Longitude - l.Longitude)

	a := math.Sin(deltaPhi/2)*math.Sin(deltaPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*
			math.Sin(deltaLambda/2)*math.Sin(deltaLambda/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return roundKm(earthRadiusKm * c), nil
}

// Equal reports whether two locations refer to the same city. Identity is
// the id alone; names and coordinates do not participate.
func (l *Location) Equal(other *Location) bool {
	if other == nil {
		return false
	}
	return l.ID == other.ID
}

func (l *Location) String() string {
	if l.Region != "" {
		return fmt.Sprintf("%s (%s)", l.Name, l.Region)
	}
	return l.Name
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// roundKm rounds half-up to two decimal places.
func roundKm(km float64) float64 {
	return math.Floor(km*100+0.5) / 100
}

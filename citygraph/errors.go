package citygraph

import "errors"

// Sentinel errors for graph operations. Callers should match with errors.Is.
var (
	// ErrValidation is returned for malformed input: bad coordinates,
	// empty names, non-positive weights or radii, malformed import records.
	ErrValidation = errors.New("invalid input")

	// ErrNotFound is returned when a referenced location id does not exist.
	ErrNotFound = errors.New("location not found")

	// ErrDuplicate is returned when inserting a location whose id is
	// already present in the graph.
	ErrDuplicate = errors.New("duplicate location id")

	// ErrSelfLoop is returned when connecting a location to itself.
	ErrSelfLoop = errors.New("cannot connect a location to itself")

	// ErrNoConnection is returned when querying the distance of an edge
	// that does not exist between two known locations.
	ErrNoConnection = errors.New("no connection between locations")
)

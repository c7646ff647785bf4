package entity

// ExternalCandidate is one result of an external map-data lookup. It is never
// persisted directly; the coordinate resolver decides whether its footprint
// becomes authoritative.
type ExternalCandidate struct {
	Footprint      Footprint // Candidate geometry, point or polygon.
	SourceID       string    // Map-catalog object reference, empty when unavailable.
	DisplayAddress string    // Service-composed address text, empty when unavailable.
}

// MapLocation is the remembered map viewport anchor: the most recently
// resolved point and a zoom level. Overwritten on every successful
// resolution, read once at map initialization.
type MapLocation struct {
	Point GeoPoint `json:"point"`
	Zoom  int      `json:"zoom"`
}

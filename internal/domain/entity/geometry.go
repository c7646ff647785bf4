// Package entity contains the core business objects of the project.
package entity

import (
	"github.com/paulmach/orb"
)

// FootprintType discriminates the two footprint shapes.
type FootprintType string

const (
	// FootprintPoint marks a footprint anchored by a single coordinate.
	FootprintPoint FootprintType = "Point"
	// FootprintPolygon marks a footprint anchored by an ordered boundary ring.
	FootprintPolygon FootprintType = "Polygon"
)

// GeoPoint is a single geographic coordinate. Immutable value.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Footprint is the geographic shape anchoring a house on the map: either a
// single point or an ordered polygon ring with at least one vertex.
type Footprint struct {
	Type   FootprintType `json:"type"`
	Points []GeoPoint    `json:"points"`
}

// PointFootprint builds a point-shaped footprint.
func PointFootprint(p GeoPoint) Footprint {
	return Footprint{Type: FootprintPoint, Points: []GeoPoint{p}}
}

// PolygonFootprint builds a polygon-shaped footprint from an ordered ring.
func PolygonFootprint(ring []GeoPoint) Footprint {
	return Footprint{Type: FootprintPolygon, Points: ring}
}

// Valid reports whether the footprint can anchor a house. A polygon with zero
// vertices is invalid and must be treated as "no footprint found", never as an
// empty polygon.
func (f Footprint) Valid() bool {
	switch f.Type {
	case FootprintPoint:
		return len(f.Points) >= 1
	case FootprintPolygon:
		return len(f.Points) >= 1
	default:
		return false
	}
}

// FirstPoint returns the anchoring coordinate of the footprint: the point
// itself, or the first vertex of the ring.
func (f Footprint) FirstPoint() (GeoPoint, bool) {
	if !f.Valid() {
		return GeoPoint{}, false
	}

	return f.Points[0], true
}

// FromOrbGeometry converts a Nominatim geojson geometry into a footprint.
// A MultiPolygon reduces to the outer ring of its first polygon; later rings
// are discarded. Geometries without usable points return ok=false.
func FromOrbGeometry(geom orb.Geometry) (Footprint, bool) {
	switch g := geom.(type) {
	case orb.Point:
		return PointFootprint(GeoPoint{Lat: g.Lat(), Lng: g.Lon()}), true
	case orb.Polygon:
		return ringFootprint(outerRing(g))
	case orb.MultiPolygon:
		if len(g) == 0 {
			return Footprint{}, false
		}

		return ringFootprint(outerRing(g[0]))
	default:
		return Footprint{}, false
	}
}

func outerRing(p orb.Polygon) orb.Ring {
	if len(p) == 0 {
		return nil
	}

	return p[0]
}

func ringFootprint(ring orb.Ring) (Footprint, bool) {
	if len(ring) == 0 {
		return Footprint{}, false
	}

	points := make([]GeoPoint, 0, len(ring))
	for _, p := range ring {
		points = append(points, GeoPoint{Lat: p.Lat(), Lng: p.Lon()})
	}

	return PolygonFootprint(points), true
}

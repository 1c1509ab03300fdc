package geometry

import "festa-server/mapwidget"

// Polygon is a closed ring of geographic points.
type Polygon []mapwidget.GeoPoint

// Geometry defines the surface consumed from the geometry collaborator.
// Used once per merchant group to build influence zones, not per
// interaction.
type Geometry interface {
	BufferAndUnion(points []mapwidget.GeoPoint, radiusKm float64) (Polygon, error)
}

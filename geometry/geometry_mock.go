package geometry

import (
	"errors"

	"festa-server/mapwidget"
)

// Rough degrees-per-kilometer at mid latitudes, good enough for a mock.
const degreesPerKm = 1.0 / 111.0

// GeometryMock approximates BufferAndUnion with the expanded bounding box of
// the input points. Real buffering/union is the collaborator's job.
type GeometryMock struct {
}

// NewGeometryMock creates a new instance of GeometryMock.
func NewGeometryMock() *GeometryMock {
	return &GeometryMock{}
}

func (g *GeometryMock) BufferAndUnion(points []mapwidget.GeoPoint, radiusKm float64) (Polygon, error) {
	if len(points) == 0 {
		return nil, errors.New("no points to buffer")
	}

	latMin, latMax := points[0].Lat, points[0].Lat
	lonMin, lonMax := points[0].Lon, points[0].Lon
	for _, p := range points[1:] {
		if p.Lat < latMin {
			latMin = p.Lat
		}
		if p.Lat > latMax {
			latMax = p.Lat
		}
		if p.Lon < lonMin {
			lonMin = p.Lon
		}
		if p.Lon > lonMax {
			lonMax = p.Lon
		}
	}

	pad := radiusKm * degreesPerKm
	latMin, latMax = latMin-pad, latMax+pad
	lonMin, lonMax = lonMin-pad, lonMax+pad

	return Polygon{
		{Lat: latMin, Lon: lonMin},
		{Lat: latMax, Lon: lonMin},
		{Lat: latMax, Lon: lonMax},
		{Lat: latMin, Lon: lonMax},
		{Lat: latMin, Lon: lonMin}, // Close the ring.
	}, nil
}

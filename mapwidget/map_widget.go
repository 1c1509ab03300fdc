package mapwidget

// GeoPoint is a geographic coordinate pair.
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lng"`
}

// PixelPoint is a container-local pixel coordinate.
type PixelPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// MarkerHandle identifies a marker created on the widget.
type MarkerHandle string

// EventType enumerates the marker events the widget delivers.
type EventType string

const (
	EventHoverEnter EventType = "hover-enter"
	EventHoverLeave EventType = "hover-leave"
	EventClick      EventType = "click"
)

// MapWidget defines the surface consumed from the map widget collaborator.
// Tile rendering, clustering and pan/zoom animation live behind it.
type MapWidget interface {
	CreateMarkerAt(point GeoPoint) MarkerHandle
	ProjectToContainerPoint(point GeoPoint) PixelPoint
	OnMarkerEvent(handle MarkerHandle, eventType EventType, callback func())
	FlyTo(point GeoPoint, zoomLevel int)
}

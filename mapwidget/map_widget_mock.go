package mapwidget

import (
	"fmt"
	"sync"
)

// MapWidgetMock is a headless map widget. It projects coordinates with a
// plain equirectangular mapping onto a fixed viewport and lets tests (and
// the wiring layer) fire marker events by hand.
type MapWidgetMock struct {
	ContainerWidth  float64
	ContainerHeight float64

	// Viewport bounds used for projection.
	LatMin, LatMax float64
	LonMin, LonMax float64

	mu        sync.Mutex
	nextID    int
	markers   map[MarkerHandle]GeoPoint
	callbacks map[MarkerHandle]map[EventType]func()

	FlownTo []GeoPoint
}

// NewMapWidgetMock creates a headless widget with the given viewport.
func NewMapWidgetMock(width, height float64, latMin, latMax, lonMin, lonMax float64) *MapWidgetMock {
	return &MapWidgetMock{
		ContainerWidth:  width,
		ContainerHeight: height,
		LatMin:          latMin,
		LatMax:          latMax,
		LonMin:          lonMin,
		LonMax:          lonMax,
		markers:         make(map[MarkerHandle]GeoPoint),
		callbacks:       make(map[MarkerHandle]map[EventType]func()),
	}
}

func (w *MapWidgetMock) CreateMarkerAt(point GeoPoint) MarkerHandle {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.nextID++
	handle := MarkerHandle(fmt.Sprintf("marker-%d", w.nextID))
	w.markers[handle] = point
	return handle
}

func (w *MapWidgetMock) ProjectToContainerPoint(point GeoPoint) PixelPoint {
	x := (point.Lon - w.LonMin) / (w.LonMax - w.LonMin) * w.ContainerWidth
	// Screen y grows downward while latitude grows upward.
	y := (w.LatMax - point.Lat) / (w.LatMax - w.LatMin) * w.ContainerHeight
	return PixelPoint{X: x, Y: y}
}

func (w *MapWidgetMock) OnMarkerEvent(handle MarkerHandle, eventType EventType, callback func()) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, ok := w.callbacks[handle]; !ok {
		w.callbacks[handle] = make(map[EventType]func())
	}
	w.callbacks[handle][eventType] = callback
}

func (w *MapWidgetMock) FlyTo(point GeoPoint, zoomLevel int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.FlownTo = append(w.FlownTo, point)
}

// FireEvent delivers a marker event, if a callback is registered.
func (w *MapWidgetMock) FireEvent(handle MarkerHandle, eventType EventType) {
	w.mu.Lock()
	callback := w.callbacks[handle][eventType]
	w.mu.Unlock()
	if callback != nil {
		callback()
	}
}

// MarkerCount reports how many markers were created.
func (w *MapWidgetMock) MarkerCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.markers)
}

package interaction

import (
	"sync"
	"time"

	"festa-server/mapwidget"
	"festa-server/models/merchant"
	"festa-server/status"
)

// Debounce delays for the floating card, to avoid flicker on fast pointer
// sweeps across dense marker clusters.
const SHOW_CARD_DELAY = 200 * time.Millisecond
const HIDE_CARD_DELAY = 200 * time.Millisecond

const SELECT_ZOOM_LEVEL = 17

// State is the single shared interaction state. At most one of hover
// preview / active selection drives the card at any instant.
type State struct {
	ActiveID  string
	HoveredID string
}

// EntityVisual is the per-entity snapshot views diff onto markers and list
// items.
type EntityVisual struct {
	StatusClass  string `json:"status_class"`
	PulseClass   string `json:"pulse_class"`
	IsActive     bool   `json:"is_active"`
	IsOutOfFocus bool   `json:"is_out_of_focus"`
	IsHovered    bool   `json:"is_hovered"`
}

// CardContent is what the floating card renders. Recomputed from the status
// engine at show time, never reused from an earlier render.
type CardContent struct {
	MerchantID   string                `json:"merchant_id"`
	MerchantName string                `json:"merchant_name"`
	Status       merchant.StatusResult `json:"status"`
	Visual       merchant.VisualState  `json:"visual"`
}

// CardView receives show/hide commands for the floating card.
type CardView interface {
	ShowCard(content CardContent, position CardPosition)
	HideCard()
}

// Controller owns the interaction state machine across map markers, list
// items and the floating card. All mutation goes through its event methods;
// render paths only read snapshots.
type Controller struct {
	engine    *status.Engine
	widget    mapwidget.MapWidget
	scheduler Scheduler
	view      CardView
	clock     func() time.Time

	containerWidth  float64
	containerHeight float64
	cardWidth       float64
	cardHeight      float64

	mu          sync.Mutex
	state       State
	shownCardID string
	merchants   map[string]*merchant.Merchant
	listeners   []func()
}

// NewController wires a controller with its collaborators. A nil clock
// defaults to time.Now.
func NewController(
	engine *status.Engine,
	widget mapwidget.MapWidget,
	scheduler Scheduler,
	view CardView,
	clock func() time.Time) *Controller {

	if clock == nil {
		clock = time.Now
	}
	return &Controller{
		engine:     engine,
		widget:     widget,
		scheduler:  scheduler,
		view:       view,
		clock:      clock,
		cardWidth:  260,
		cardHeight: CARD_FALLBACK_HEIGHT_PX,
		merchants:  make(map[string]*merchant.Merchant),
	}
}

// SetViewport updates the container bounds used for card placement.
func (c *Controller) SetViewport(width, height float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.containerWidth = width
	c.containerHeight = height
}

// SetCardSize records the measured card size once the view knows it.
func (c *Controller) SetCardSize(width, height float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cardWidth = width
	c.cardHeight = height
}

// OnTransition registers a callback invoked after every settled transition.
func (c *Controller) OnTransition(callback func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = append(c.listeners, callback)
}

// RegisterMerchant creates the merchant's marker and binds its events to the
// state machine.
func (c *Controller) RegisterMerchant(m *merchant.Merchant) {
	point := mapwidget.GeoPoint{Lat: m.MerchantLat, Lon: m.MerchantLon}
	handle := c.widget.CreateMarkerAt(point)

	id := m.MerchantID
	c.widget.OnMarkerEvent(handle, mapwidget.EventHoverEnter, func() { c.HoverEnter(id) })
	c.widget.OnMarkerEvent(handle, mapwidget.EventHoverLeave, func() { c.HoverLeave(id) })
	c.widget.OnMarkerEvent(handle, mapwidget.EventClick, func() { c.Select(id) })

	c.mu.Lock()
	c.merchants[id] = m
	c.mu.Unlock()
}

// HoverEnter handles the pointer entering a marker or list item. While a
// selection is active it only applies the peer highlight; otherwise it
// debounces the card show and cancels any in-flight hide.
func (c *Controller) HoverEnter(id string) {
	c.mu.Lock()
	if _, ok := c.merchants[id]; !ok {
		c.mu.Unlock()
		return
	}
	c.state.HoveredID = id
	selectionActive := c.state.ActiveID != ""
	c.mu.Unlock()

	if !selectionActive {
		c.scheduler.CancelClass(TIMER_HIDE_CARD)
		// A newer hover cancels a still-pending show for another entity.
		c.scheduler.CancelClass(TIMER_SHOW_CARD)
		c.scheduler.Schedule(TimerKey{Class: TIMER_SHOW_CARD, EntityID: id}, SHOW_CARD_DELAY, func() {
			c.showCard(id)
		})
	}
	c.notify()
}

// HoverLeave handles the pointer leaving a marker or list item. The hide is
// debounced on its own timer so moving between a marker and its card within
// the delay window cancels the hide.
func (c *Controller) HoverLeave(id string) {
	c.mu.Lock()
	if _, ok := c.merchants[id]; !ok {
		c.mu.Unlock()
		return
	}
	if c.state.HoveredID == id {
		c.state.HoveredID = ""
	}
	c.mu.Unlock()

	c.scheduler.Cancel(TimerKey{Class: TIMER_SHOW_CARD, EntityID: id})
	c.scheduler.Schedule(TimerKey{Class: TIMER_HIDE_CARD, EntityID: id}, HIDE_CARD_DELAY, func() {
		c.hideCard()
	})
	c.notify()
}

// Select makes one merchant the active entity, synchronously. Selection
// hides the floating card (the detail view takes over), cancels all hover
// timers and dims every other entity.
func (c *Controller) Select(id string) {
	c.mu.Lock()
	m, ok := c.merchants[id]
	if !ok {
		c.mu.Unlock()
		return
	}
	c.state.ActiveID = id
	c.state.HoveredID = ""
	c.shownCardID = ""
	c.mu.Unlock()

	c.scheduler.CancelAll()
	c.view.HideCard()
	c.widget.FlyTo(mapwidget.GeoPoint{Lat: m.MerchantLat, Lon: m.MerchantLon}, SELECT_ZOOM_LEVEL)
	c.notify()
}

// DeselectAll resets the whole interaction state. Triggered by clicking the
// map background or closing the detail view.
func (c *Controller) DeselectAll() {
	c.mu.Lock()
	c.state.ActiveID = ""
	c.state.HoveredID = ""
	c.shownCardID = ""
	c.mu.Unlock()

	c.scheduler.CancelAll()
	c.view.HideCard()
	c.notify()
}

// VisualFor returns the visual snapshot for one entity, classification
// recomputed at call time.
func (c *Controller) VisualFor(id string) EntityVisual {
	c.mu.Lock()
	m, ok := c.merchants[id]
	state := c.state
	c.mu.Unlock()
	if !ok {
		return EntityVisual{}
	}

	visual := c.engine.VisualState(m, c.clock())
	return EntityVisual{
		StatusClass:  visual.StatusClass,
		PulseClass:   visual.PulseClass,
		IsActive:     state.ActiveID == id,
		IsOutOfFocus: state.ActiveID != "" && state.ActiveID != id,
		IsHovered:    state.HoveredID == id,
	}
}

// Snapshot returns a copy of the current state for render paths.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// RefreshCard recomputes and re-shows the card content if one is visible.
// Called by the periodic status refresher so labels track wall-clock time.
func (c *Controller) RefreshCard() {
	c.mu.Lock()
	id := c.shownCardID
	c.mu.Unlock()
	if id != "" {
		c.showCard(id)
	}
}

// showCard fires from the show timer (or a refresh). Suppressed while a
// selection is active.
func (c *Controller) showCard(id string) {
	c.mu.Lock()
	m, ok := c.merchants[id]
	if !ok || c.state.ActiveID != "" {
		c.mu.Unlock()
		return
	}
	c.shownCardID = id
	containerWidth, containerHeight := c.containerWidth, c.containerHeight
	cardWidth, cardHeight := c.cardWidth, c.cardHeight
	c.mu.Unlock()

	now := c.clock()
	content := CardContent{
		MerchantID:   m.MerchantID,
		MerchantName: m.MerchantName,
		Status:       c.engine.Classify(m, now),
		Visual:       c.engine.VisualState(m, now),
	}
	anchor := c.widget.ProjectToContainerPoint(mapwidget.GeoPoint{Lat: m.MerchantLat, Lon: m.MerchantLon})
	position := PlaceCard(anchor, containerWidth, containerHeight, cardWidth, cardHeight)

	c.view.ShowCard(content, position)
}

// hideCard fires from the hide timer.
func (c *Controller) hideCard() {
	c.mu.Lock()
	c.shownCardID = ""
	c.mu.Unlock()
	c.view.HideCard()
}

func (c *Controller) notify() {
	c.mu.Lock()
	listeners := make([]func(), len(c.listeners))
	copy(listeners, c.listeners)
	c.mu.Unlock()
	for _, listener := range listeners {
		listener()
	}
}

package interaction

import (
	"testing"

	"festa-server/mapwidget"
)

func TestPlaceCard_CentersAboveAnchor(t *testing.T) {
	anchor := mapwidget.PixelPoint{X: 400, Y: 300}
	pos := PlaceCard(anchor, 800, 600, 200, 150)

	if pos.Left != 300 {
		t.Errorf("Expected left 300, got %f", pos.Left)
	}
	if pos.Top != 300-CARD_GAP_PX-150 {
		t.Errorf("Expected top %f, got %f", 300-CARD_GAP_PX-150, pos.Top)
	}
}

func TestPlaceCard_ClampsLeftInset(t *testing.T) {
	anchor := mapwidget.PixelPoint{X: 20, Y: 300}
	pos := PlaceCard(anchor, 800, 600, 200, 150)

	if pos.Left != CONTAINER_INSET_PX {
		t.Errorf("Expected left clamped to %f, got %f", CONTAINER_INSET_PX, pos.Left)
	}
}

func TestPlaceCard_ClampsRightEdge(t *testing.T) {
	anchor := mapwidget.PixelPoint{X: 780, Y: 300}
	pos := PlaceCard(anchor, 800, 600, 200, 150)

	expected := 800 - CONTAINER_INSET_PX - 200.0
	if pos.Left != expected {
		t.Errorf("Expected left %f, got %f", expected, pos.Left)
	}
}

func TestPlaceCard_FlipsBelowAnchorNearTop(t *testing.T) {
	// Oversized card near the top-left corner: left clamps to the inset and
	// placement flips below the anchor instead of clamping vertically.
	anchor := mapwidget.PixelPoint{X: 5, Y: 5}
	pos := PlaceCard(anchor, 300, 300, 300, 280)

	if pos.Left != 8 {
		t.Errorf("Expected left 8, got %f", pos.Left)
	}
	if pos.Top != 5+CARD_GAP_PX {
		t.Errorf("Expected top %f (below anchor), got %f", 5+CARD_GAP_PX, pos.Top)
	}
}

func TestPlaceCard_FallbackHeightWhenUnmeasured(t *testing.T) {
	anchor := mapwidget.PixelPoint{X: 400, Y: 500}
	pos := PlaceCard(anchor, 800, 600, 200, 0)

	expected := 500 - CARD_GAP_PX - CARD_FALLBACK_HEIGHT_PX
	if pos.Top != expected {
		t.Errorf("Expected top %f with fallback height, got %f", expected, pos.Top)
	}
}

package interaction

import "festa-server/mapwidget"

// Card placement geometry.
const CARD_GAP_PX = 28.0
const CONTAINER_INSET_PX = 8.0

// CARD_FALLBACK_HEIGHT_PX is used before the card has been measured.
const CARD_FALLBACK_HEIGHT_PX = 180.0

// CardPosition is the top-left corner of the card in container pixels.
type CardPosition struct {
	Left float64 `json:"left"`
	Top  float64 `json:"top"`
}

// PlaceCard converts a marker anchor point into a clamped card position.
// The card is centered above the anchor with a fixed gap. The left edge is
// clamped inside the container insets, the left inset winning when the card
// is wider than the container. When the card would overflow the top, it
// flips below the anchor instead of being clamped vertically, so it never
// disconnects visually from its marker.
func PlaceCard(anchor mapwidget.PixelPoint, containerWidth, containerHeight, cardWidth, cardHeight float64) CardPosition {
	if cardHeight <= 0 {
		cardHeight = CARD_FALLBACK_HEIGHT_PX
	}

	left := anchor.X - cardWidth/2
	if left+cardWidth > containerWidth-CONTAINER_INSET_PX {
		left = containerWidth - CONTAINER_INSET_PX - cardWidth
	}
	if left < CONTAINER_INSET_PX {
		left = CONTAINER_INSET_PX
	}

	top := anchor.Y - CARD_GAP_PX - cardHeight
	if top < CONTAINER_INSET_PX {
		top = anchor.Y + CARD_GAP_PX
	}

	return CardPosition{Left: left, Top: top}
}

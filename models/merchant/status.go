package merchant

// Status classifies a merchant relative to its schedule at a point in time.
type Status string

const (
	StatusOpen        Status = "open"
	StatusClosingSoon Status = "closing-soon"
	StatusOpeningSoon Status = "opening-soon"
	StatusClosed      Status = "closed"
)

// StatusResult pairs a status with its display label. It is computed fresh
// on every query and must not be cached across render passes.
type StatusResult struct {
	Status Status `json:"status"`
	Label  string `json:"label"`
}

// Tier is the popularity tier derived from a merchant's visit counter.
type Tier string

const (
	TierNormal      Tier = "normal"
	TierPopular     Tier = "popular"
	TierVeryPopular Tier = "very-popular"
)

// VisualState is the declarative visual value the rendering layer diffs onto
// markers and list items.
type VisualState struct {
	StatusClass string `json:"status_class"`
	PulseClass  string `json:"pulse_class"`
}

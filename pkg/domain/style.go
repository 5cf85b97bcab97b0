package domain

// Defaults for division marker rendering.
const (
	// DefaultMarkerColor is the division blue used for guide markers.
	DefaultMarkerColor = "#2d6cdf"

	// DefaultMarkerSize is the marker diameter in drawing units.
	DefaultMarkerSize = 6.0
)

// MarkerStyle describes how division markers are painted. Zero-value
// fields fall back to the package defaults at draw time.
type MarkerStyle struct {
	Color string
	Size  float64
}

// Resolved returns the style with zero-value fields replaced by the
// package defaults.
func (m MarkerStyle) Resolved() MarkerStyle {
	if m.Color == "" {
		m.Color = DefaultMarkerColor
	}
	if m.Size <= 0 {
		m.Size = DefaultMarkerSize
	}
	return m
}

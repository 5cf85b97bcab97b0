package svgsheet_test

import (
	"strings"
	"testing"

	"github.com/jbeda/geom"
	"github.com/pppp606/kamon/pkg/adapters/svgsheet"
	"github.com/pppp606/kamon/pkg/domain"
	"github.com/pppp606/kamon/pkg/ports"
	"github.com/pppp606/kamon/pkg/ports/portstest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanvas_Contract(t *testing.T) {
	portstest.RunRendererContract(t, func() ports.Renderer {
		return svgsheet.New(&strings.Builder{})
	})
}

func TestExport(t *testing.T) {
	snap := domain.Snapshot{
		Lines: []*domain.Line{domain.LineBetween(domain.Pt(0, 0), domain.Pt(10, 0))},
		Arcs:  []*domain.CompassArc{domain.ArcAround(domain.Pt(5, 5), domain.Pt(9, 5))},
	}
	points := []domain.Point{domain.Pt(5, 0)}

	var out strings.Builder
	err := svgsheet.Export(&out, snap, points, domain.MarkerStyle{}, geom.Rect{})
	require.NoError(t, err)

	svg := out.String()
	assert.Contains(t, svg, "<svg")
	assert.Contains(t, svg, "</svg>")
	assert.Contains(t, svg, "<line x1='0.000000' y1='0.000000' x2='10.000000'")
	assert.Contains(t, svg, "r='4.000000'", "arc renders with its radius")
	assert.Contains(t, svg, domain.DefaultMarkerColor, "markers default to division blue")

	// Markers live in their own state-scoping group.
	assert.Contains(t, svg, "<g>")
	assert.Contains(t, svg, "</g>")
}

func TestExport_SkipsMarkersWhenEmpty(t *testing.T) {
	var out strings.Builder
	err := svgsheet.Export(&out, domain.EmptySnapshot(), nil, domain.MarkerStyle{}, geom.Rect{})
	require.NoError(t, err)

	assert.NotContains(t, out.String(), "<g>")
}

func TestExport_ExplicitBounds(t *testing.T) {
	var out strings.Builder
	bounds := geom.Rect{Min: domain.Pt(0, 0), Max: domain.Pt(200, 100)}
	err := svgsheet.Export(&out, domain.EmptySnapshot(), nil, domain.MarkerStyle{}, bounds)
	require.NoError(t, err)

	assert.Contains(t, out.String(), `viewBox="0.000000 0.000000 200.000000 100.000000"`)
}

func TestExport_IncompleteElementsAreSkipped(t *testing.T) {
	half := domain.NewLine()
	half.SetFirstPoint(1, 1)

	snap := domain.Snapshot{Lines: []*domain.Line{half}}

	var out strings.Builder
	err := svgsheet.Export(&out, snap, nil, domain.MarkerStyle{}, geom.Rect{})
	require.NoError(t, err)

	assert.NotContains(t, out.String(), "<line")
}

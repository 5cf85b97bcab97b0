package pdfsheet_test

import (
	"bytes"
	"testing"

	"github.com/jbeda/geom"
	"github.com/pppp606/kamon/pkg/adapters/pdfsheet"
	"github.com/pppp606/kamon/pkg/domain"
	"github.com/pppp606/kamon/pkg/ports"
	"github.com/pppp606/kamon/pkg/ports/portstest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func a4ish() geom.Rect {
	return geom.Rect{Min: domain.Pt(0, 0), Max: domain.Pt(100, 100)}
}

func TestSheet_Contract(t *testing.T) {
	portstest.RunRendererContract(t, func() ports.Renderer {
		return pdfsheet.NewSheet(a4ish())
	})
}

func TestExport(t *testing.T) {
	snap := domain.Snapshot{
		Lines: []*domain.Line{domain.LineBetween(domain.Pt(0, 0), domain.Pt(50, 50))},
		Arcs:  []*domain.CompassArc{domain.ArcAround(domain.Pt(25, 25), domain.Pt(45, 25))},
	}
	points := []domain.Point{domain.Pt(25, 25), domain.Pt(10, 40)}

	var out bytes.Buffer
	err := pdfsheet.Export(&out, snap, points, domain.MarkerStyle{}, geom.Rect{})
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(out.Bytes(), []byte("%PDF")), "output must be a PDF document")
	assert.Greater(t, out.Len(), 500)
}

func TestExport_EmptyDrawing(t *testing.T) {
	var out bytes.Buffer
	err := pdfsheet.Export(&out, domain.EmptySnapshot(), nil, domain.MarkerStyle{}, geom.Rect{})
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out.Bytes(), []byte("%PDF")))
}

func TestSheet_Output(t *testing.T) {
	sheet := pdfsheet.NewSheet(a4ish())
	sheet.DrawLine(domain.Pt(0, 0), domain.Pt(100, 100))

	var out bytes.Buffer
	require.NoError(t, sheet.Output(&out))
	assert.NotZero(t, out.Len())
}

// Package portstest provides reusable conformance suites for ports
// implementations, in the manner of net/http/httptest.
package portstest

import (
	"testing"

	"github.com/pppp606/kamon/pkg/domain"
	"github.com/pppp606/kamon/pkg/ports"
)

// RunSurfaceContract is a reusable test suite that verifies an adapter
// complies with ports.Surface. The factory must return a fresh surface
// per invocation.
func RunSurfaceContract(t *testing.T, factory func() ports.Surface) {
	t.Helper()

	// 1. An empty bracket must be legal. The core never issues one for
	// zero markers, but adapters must tolerate it.
	t.Run("EmptyBracket", func(t *testing.T) {
		s := factory()
		s.Begin()
		s.End()
	})

	// 2. Markers inside a bracket, including degenerate values.
	t.Run("Markers", func(t *testing.T) {
		s := factory()
		s.Begin()
		s.DrawMarker(domain.Pt(0, 0), domain.DefaultMarkerColor, domain.DefaultMarkerSize)
		s.DrawMarker(domain.Pt(-3.5, 7.25), "#ff0000", 1)
		s.DrawMarker(domain.Pt(1e6, -1e6), "", 0)
		s.End()
	})

	// 3. Sequential brackets must be independent.
	t.Run("SequentialBrackets", func(t *testing.T) {
		s := factory()
		for i := 0; i < 3; i++ {
			s.Begin()
			s.DrawMarker(domain.Pt(float64(i), float64(i)), domain.DefaultMarkerColor, 2)
			s.End()
		}
	})
}

// RunRendererContract extends RunSurfaceContract with full-element
// drawing, including degenerate geometry.
func RunRendererContract(t *testing.T, factory func() ports.Renderer) {
	t.Helper()

	RunSurfaceContract(t, func() ports.Surface { return factory() })

	t.Run("Elements", func(t *testing.T) {
		r := factory()
		r.DrawLine(domain.Pt(0, 0), domain.Pt(10, 10))
		r.DrawLine(domain.Pt(5, 5), domain.Pt(5, 5)) // zero-length
		r.DrawCircle(domain.Pt(3, 3), 4)
		r.DrawCircle(domain.Pt(3, 3), 0) // degenerate arc
	})
}

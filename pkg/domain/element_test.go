package domain_test

import (
	"testing"

	"github.com/pppp606/kamon/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLine_ConstructionLifecycle(t *testing.T) {
	line := domain.NewLine()
	assert.False(t, line.IsComplete())

	_, ok := line.FirstPoint()
	assert.False(t, ok)

	line.SetFirstPoint(1, 2)
	assert.False(t, line.IsComplete(), "one endpoint is not enough")

	line.SetSecondPoint(3, 4)
	assert.True(t, line.IsComplete())

	first, ok := line.FirstPoint()
	require.True(t, ok)
	assert.Equal(t, domain.Pt(1, 2), first)

	second, ok := line.SecondPoint()
	require.True(t, ok)
	assert.Equal(t, domain.Pt(3, 4), second)

	// Setters overwrite unconditionally.
	line.SetFirstPoint(10, 20)
	first, _ = line.FirstPoint()
	assert.Equal(t, domain.Pt(10, 20), first)
}

func TestLine_OriginIsNotAbsent(t *testing.T) {
	line := domain.NewLine()
	line.SetFirstPoint(0, 0)
	line.SetSecondPoint(0, 0)

	assert.True(t, line.IsComplete(), "a point at the origin is a placed point")

	length, ok := line.Length()
	require.True(t, ok)
	assert.Zero(t, length)
}

func TestLine_Clone(t *testing.T) {
	line := domain.LineBetween(domain.Pt(1, 1), domain.Pt(2, 2))
	clone := line.Clone()

	line.SetFirstPoint(99, 99)

	first, _ := clone.FirstPoint()
	assert.Equal(t, domain.Pt(1, 1), first, "clone must not track the original")
}

func TestCompassArc_ConstructionLifecycle(t *testing.T) {
	arc := domain.NewCompassArc()
	assert.False(t, arc.IsComplete())

	arc.SetCenter(0, 0)
	_, ok := arc.Radius()
	assert.False(t, ok, "radius is undefined while incomplete")

	arc.SetRadiusPoint(3, 4)
	assert.True(t, arc.IsComplete())

	radius, ok := arc.Radius()
	require.True(t, ok)
	assert.InDelta(t, 5.0, radius, 1e-12)
}

func TestCompassArc_ZeroRadiusIsComplete(t *testing.T) {
	arc := domain.ArcAround(domain.Pt(2, 2), domain.Pt(2, 2))
	assert.True(t, arc.IsComplete())

	radius, ok := arc.Radius()
	require.True(t, ok)
	assert.Zero(t, radius)
}

func TestElement_Divide(t *testing.T) {
	t.Run("line", func(t *testing.T) {
		el := domain.LineElement(domain.LineBetween(domain.Pt(0, 0), domain.Pt(4, 0)))
		points, err := el.Divide(2)
		require.NoError(t, err)
		assert.Equal(t, []domain.Point{domain.Pt(2, 0)}, points)
	})

	t.Run("arc", func(t *testing.T) {
		el := domain.ArcElement(domain.ArcAround(domain.Pt(0, 0), domain.Pt(0, 4)))
		points, err := el.Divide(2)
		require.NoError(t, err)
		assert.Equal(t, []domain.Point{domain.Pt(0, 2)}, points)
	})

	t.Run("unknown kind", func(t *testing.T) {
		el := domain.Element{Kind: "triangle"}
		_, err := el.Divide(2)
		assert.ErrorIs(t, err, domain.ErrUnsupportedElement)
		assert.False(t, el.IsComplete())
	})
}

func TestSnapshot_CloneIsolation(t *testing.T) {
	snap := domain.Snapshot{
		Lines: []*domain.Line{domain.LineBetween(domain.Pt(0, 0), domain.Pt(1, 1))},
		Arcs:  []*domain.CompassArc{domain.ArcAround(domain.Pt(0, 0), domain.Pt(1, 0))},
	}
	clone := snap.Clone()

	snap.Lines[0].SetFirstPoint(50, 50)
	snap.Arcs[0].SetCenter(50, 50)

	first, _ := clone.Lines[0].FirstPoint()
	assert.Equal(t, domain.Pt(0, 0), first)

	center, _ := clone.Arcs[0].Center()
	assert.Equal(t, domain.Pt(0, 0), center)
}

func TestEmptySnapshot(t *testing.T) {
	snap := domain.EmptySnapshot()
	assert.True(t, snap.IsEmpty())
	assert.NotNil(t, snap.Lines)
	assert.NotNil(t, snap.Arcs)
}

func TestMarkerStyle_Resolved(t *testing.T) {
	resolved := domain.MarkerStyle{}.Resolved()
	assert.Equal(t, domain.DefaultMarkerColor, resolved.Color)
	assert.Equal(t, domain.DefaultMarkerSize, resolved.Size)

	custom := domain.MarkerStyle{Color: "#ff0000", Size: 3}.Resolved()
	assert.Equal(t, "#ff0000", custom.Color)
	assert.Equal(t, 3.0, custom.Size)
}

package domain_test

import (
	"testing"

	"github.com/pppp606/kamon/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDividePoints_Halving(t *testing.T) {
	points, err := domain.DividePoints(domain.Pt(0, 0), domain.Pt(4, 4), 2)
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, domain.Pt(2, 2), points[0])
}

func TestDividePoints_Thirds(t *testing.T) {
	points, err := domain.DividePoints(domain.Pt(0, 0), domain.Pt(6, 3), 3)
	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.Equal(t, domain.Pt(2, 1), points[0])
	assert.Equal(t, domain.Pt(4, 2), points[1])
}

func TestDividePoints_Count(t *testing.T) {
	// n equal parts always yield n-1 interior points.
	for n := 1; n <= 12; n++ {
		points, err := domain.DividePoints(domain.Pt(-3, 7), domain.Pt(11, -2), n)
		require.NoError(t, err)
		assert.Len(t, points, n-1, "n=%d", n)
	}
}

func TestDividePoints_OnePartIsEmpty(t *testing.T) {
	points, err := domain.DividePoints(domain.Pt(1, 1), domain.Pt(9, 9), 1)
	require.NoError(t, err)
	assert.Empty(t, points)
}

func TestDividePoints_NonPositive(t *testing.T) {
	for _, n := range []int{0, -1, -100} {
		_, err := domain.DividePoints(domain.Pt(0, 0), domain.Pt(1, 1), n)
		assert.ErrorIs(t, err, domain.ErrInvalidDivisions, "n=%d", n)
	}
}

func TestDividePoints_CoincidentEndpoints(t *testing.T) {
	// Degenerate segment: every interior point collapses onto a.
	a := domain.Pt(5, -3)
	points, err := domain.DividePoints(a, a, 4)
	require.NoError(t, err)
	require.Len(t, points, 3)
	for _, p := range points {
		assert.Equal(t, a, p)
	}
}

func TestDivideLine_MatchesDividePoints(t *testing.T) {
	line := domain.LineBetween(domain.Pt(1, 2), domain.Pt(7, 8))

	fromLine, err := domain.DivideLine(line, 5)
	require.NoError(t, err)

	a, _ := line.FirstPoint()
	b, _ := line.SecondPoint()
	fromPoints, err := domain.DividePoints(a, b, 5)
	require.NoError(t, err)

	assert.Equal(t, fromPoints, fromLine)
}

func TestDivideLine_Incomplete(t *testing.T) {
	line := domain.NewLine()
	line.SetFirstPoint(0, 0)

	_, err := domain.DivideLine(line, 2)
	assert.ErrorIs(t, err, domain.ErrIncompleteElement)

	_, err = domain.DivideLine(nil, 2)
	assert.ErrorIs(t, err, domain.ErrIncompleteElement)
}

func TestDivideLine_NonPositive(t *testing.T) {
	line := domain.LineBetween(domain.Pt(0, 0), domain.Pt(1, 0))
	_, err := domain.DivideLine(line, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidDivisions)
}

func TestDivideArcRadius(t *testing.T) {
	arc := domain.ArcAround(domain.Pt(0, 0), domain.Pt(9, 0))

	points, err := domain.DivideArcRadius(arc, 3)
	require.NoError(t, err)
	assert.Equal(t, []domain.Point{domain.Pt(3, 0), domain.Pt(6, 0)}, points)
}

func TestDivideArcRadius_ZeroRadius(t *testing.T) {
	// A zero-length radius is a valid degenerate arc, not an error.
	center := domain.Pt(4, 4)
	arc := domain.ArcAround(center, center)

	points, err := domain.DivideArcRadius(arc, 2)
	require.NoError(t, err)
	require.Len(t, points, 1)
	assert.Equal(t, center, points[0])
}

func TestDivideArcRadius_Incomplete(t *testing.T) {
	arc := domain.NewCompassArc()
	arc.SetCenter(1, 1)

	_, err := domain.DivideArcRadius(arc, 2)
	assert.ErrorIs(t, err, domain.ErrIncompleteElement)
}

func TestDivideArcRadius_NonPositive(t *testing.T) {
	arc := domain.ArcAround(domain.Pt(0, 0), domain.Pt(1, 0))
	_, err := domain.DivideArcRadius(arc, -2)
	assert.ErrorIs(t, err, domain.ErrInvalidDivisions)
}

package ports

import "github.com/pppp606/kamon/pkg/domain"

// Surface is the rendering collaborator contract for marker drawing.
// The core only issues calls; it never reads surface state back.
// Begin/End bracket a scoped state save/restore: every Begin issued by
// the core is matched by exactly one End within the same call.
type Surface interface {
	Begin()
	End()
	DrawMarker(p domain.Point, color string, size float64)
}

// Renderer extends Surface with full-element drawing, used by the
// export adapters to paint whole snapshots.
type Renderer interface {
	Surface
	DrawLine(a, b domain.Point)
	DrawCircle(center domain.Point, radius float64)
}

package kamon

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/pppp606/kamon/internal/logging"
	"github.com/pppp606/kamon/pkg/division"
	"github.com/pppp606/kamon/pkg/domain"
	"github.com/pppp606/kamon/pkg/history"
	"github.com/pppp606/kamon/pkg/ports"
)

// DefaultHitThreshold is the pointer hit-test radius in drawing units.
const DefaultHitThreshold = 10.0

// Workbench is the high-level entry point for the Kamon library. It
// wraps one division controller and one history log around the live
// element set, and provides the convenience surface the host interacts
// with. Construct one per drawing; independent instances never share
// state.
type Workbench struct {
	mode *division.Mode
	log  *history.Log

	lines []*domain.Line
	arcs  []*domain.CompassArc

	presets   []int
	threshold float64
	style     domain.MarkerStyle
	hooks     domain.LifecycleHooks
	logger    *slog.Logger
}

// Option defines a functional option for configuring the Workbench.
type Option func(*Workbench)

// WithLifecycleHooks registers observability hooks.
func WithLifecycleHooks(hooks domain.LifecycleHooks) Option {
	return func(w *Workbench) {
		w.hooks = hooks
	}
}

// WithLogger sets a custom structured logger for the workbench.
func WithLogger(logger *slog.Logger) Option {
	return func(w *Workbench) {
		if logger != nil {
			w.logger = logger
		}
	}
}

// WithHitThreshold overrides the pointer hit-test radius.
func WithHitThreshold(threshold float64) Option {
	return func(w *Workbench) {
		if threshold > 0 {
			w.threshold = threshold
		}
	}
}

// WithDivisionPresets overrides the preset ring cycled by CycleDivisions.
func WithDivisionPresets(presets []int) Option {
	return func(w *Workbench) {
		if len(presets) > 0 {
			w.presets = append([]int(nil), presets...)
		}
	}
}

// WithMarkerStyle overrides the marker style used when drawing division
// points.
func WithMarkerStyle(style domain.MarkerStyle) Option {
	return func(w *Workbench) {
		w.style = style
	}
}

// New initializes a new Workbench.
func New(opts ...Option) *Workbench {
	w := &Workbench{
		mode:      division.NewMode(),
		log:       history.NewLog(),
		presets:   []int{2, 3, 4, 5},
		threshold: DefaultHitThreshold,
		logger:    logging.NewNop(),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// CommitLine appends a completed line to the drawing and pushes a new
// history snapshot. The line is copied; the caller keeps ownership of
// its instance.
func (w *Workbench) CommitLine(l *domain.Line) error {
	if l == nil || !l.IsComplete() {
		return fmt.Errorf("commit line: %w", domain.ErrIncompleteElement)
	}
	w.lines = append(w.lines, l.Clone())
	w.pushSnapshot(domain.KindLine)
	return nil
}

// CommitArc appends a completed arc to the drawing and pushes a new
// history snapshot. The arc is copied; the caller keeps ownership.
func (w *Workbench) CommitArc(a *domain.CompassArc) error {
	if a == nil || !a.IsComplete() {
		return fmt.Errorf("commit arc: %w", domain.ErrIncompleteElement)
	}
	w.arcs = append(w.arcs, a.Clone())
	w.pushSnapshot(domain.KindArc)
	return nil
}

func (w *Workbench) pushSnapshot(kind domain.ElementKind) {
	w.log.Push(domain.Snapshot{Lines: w.lines, Arcs: w.arcs})
	w.logger.Debug("element committed",
		"kind", kind,
		"history_index", w.log.Index(),
	)
	if w.hooks.OnCommit != nil {
		w.hooks.OnCommit(&domain.CommitEvent{
			EventBase:    eventBase(domain.EventCommit),
			Kind:         kind,
			HistoryIndex: w.log.Index(),
			Elements:     len(w.lines) + len(w.arcs),
		})
	}
}

// Undo steps the history back and restores the live element set from
// the returned snapshot. At the boundary it returns nil and the live
// set is untouched.
func (w *Workbench) Undo() *domain.Snapshot {
	return w.step(domain.OpUndo, w.log.Undo)
}

// Redo steps the history forward and restores the live element set. At
// the boundary it returns nil and the live set is untouched.
func (w *Workbench) Redo() *domain.Snapshot {
	return w.step(domain.OpRedo, w.log.Redo)
}

func (w *Workbench) step(op domain.HistoryOp, move func() *domain.Snapshot) *domain.Snapshot {
	snap := move()
	if snap != nil {
		restored := snap.Clone()
		w.lines = restored.Lines
		w.arcs = restored.Arcs
	}
	w.logger.Debug("history step",
		"op", op,
		"applied", snap != nil,
		"history_index", w.log.Index(),
	)
	if w.hooks.OnHistory != nil {
		w.hooks.OnHistory(&domain.HistoryEvent{
			EventBase: eventBase(domain.EventHistory),
			Op:        op,
			Index:     w.log.Index(),
			Applied:   snap != nil,
		})
	}
	return snap
}

// CanUndo reports whether an undo step is available.
func (w *Workbench) CanUndo() bool { return w.log.CanUndo() }

// CanRedo reports whether a redo step is available.
func (w *Workbench) CanRedo() bool { return w.log.CanRedo() }

// HistoryIndex returns the history cursor, exposed for diagnostics.
func (w *Workbench) HistoryIndex() int { return w.log.Index() }

// Snapshot returns a copy of the live element set.
func (w *Workbench) Snapshot() domain.Snapshot {
	return domain.Snapshot{Lines: w.lines, Arcs: w.arcs}.Clone()
}

// DivisionOutcome reports the result of a QuickDivide call. A missing
// selection is a recoverable interaction state, not an error: it comes
// back as Success=false with a Reason.
type DivisionOutcome struct {
	Success bool   `json:"success"`
	Reason  string `json:"reason,omitempty"`
}

// QuickDivide activates division mode on the given element. A nil
// element soft-fails; validation failures from activation (unsupported
// kind, bad count, incomplete element) propagate as errors.
func (w *Workbench) QuickDivide(el *domain.Element, divisions int) (DivisionOutcome, error) {
	if el == nil {
		return DivisionOutcome{Success: false, Reason: "no element selected"}, nil
	}
	if err := w.mode.Activate(*el, divisions); err != nil {
		return DivisionOutcome{}, err
	}
	w.fireDivision()
	return DivisionOutcome{Success: true}, nil
}

// DivisionStatus is a read-only projection of the division-mode state.
// PointCount is always defined; Kind and Divisions carry zero values
// while inactive.
type DivisionStatus struct {
	Active     bool               `json:"active"`
	Kind       domain.ElementKind `json:"kind,omitempty"`
	Divisions  int                `json:"divisions,omitempty"`
	PointCount int                `json:"point_count"`
}

// DivisionStatus reports the current division-mode state.
func (w *Workbench) DivisionStatus() DivisionStatus {
	status := DivisionStatus{
		Active:     w.mode.Active(),
		PointCount: len(w.mode.Points()),
	}
	if el, ok := w.mode.SelectedElement(); ok {
		status.Kind = el.Kind
		status.Divisions = w.mode.Divisions()
	}
	return status
}

// DivisionPoints returns a copy of the live division points.
func (w *Workbench) DivisionPoints() []domain.Point {
	return w.mode.Points()
}

// HandlePointer hit-tests the pointer position against the live
// division points using the configured threshold. On a hit it invokes
// onSelect with the snapped point and returns true. While inactive it
// returns false immediately without hit-testing.
func (w *Workbench) HandlePointer(query domain.Point, onSelect func(domain.Point)) bool {
	if !w.mode.Active() {
		return false
	}
	p, ok := w.mode.ClosestPoint(query, w.threshold)
	if !ok {
		return false
	}
	if onSelect != nil {
		onSelect(p)
	}
	return true
}

// CycleDivisions advances the division count through the preset ring
// (default 2→3→4→5→2; a count outside the ring resets to the first
// preset) and recomputes the points. While inactive it is a no-op
// returning the current count.
func (w *Workbench) CycleDivisions() int {
	if !w.mode.Active() {
		return w.mode.Divisions()
	}
	current := w.mode.Divisions()
	next := w.presets[0]
	for i, v := range w.presets {
		if v == current {
			next = w.presets[(i+1)%len(w.presets)]
			break
		}
	}
	if err := w.mode.SetDivisions(next); err != nil {
		// Unreachable with positive presets and a live selection.
		w.logger.Warn("cycle divisions failed", "err", err)
		return current
	}
	w.fireDivision()
	return next
}

// DeactivateDivision clears the division selection. Idempotent.
func (w *Workbench) DeactivateDivision() {
	w.mode.Deactivate()
}

// DrawDivision paints the live division points onto the surface with
// the configured marker style. No surface calls are made while
// inactive or without points.
func (w *Workbench) DrawDivision(s ports.Surface) {
	w.mode.Draw(s, w.style)
}

// MarkerStyle returns the configured marker style with defaults applied.
func (w *Workbench) MarkerStyle() domain.MarkerStyle {
	return w.style.Resolved()
}

// Mode returns the underlying division controller.
func (w *Workbench) Mode() *division.Mode { return w.mode }

// History returns the underlying history log.
func (w *Workbench) History() *history.Log { return w.log }

func (w *Workbench) fireDivision() {
	if w.hooks.OnDivision == nil {
		return
	}
	el, _ := w.mode.SelectedElement()
	w.hooks.OnDivision(&domain.DivisionEvent{
		EventBase: eventBase(domain.EventDivision),
		Kind:      el.Kind,
		Divisions: w.mode.Divisions(),
		Points:    len(w.mode.Points()),
	})
}

func eventBase(t domain.EventType) domain.EventBase {
	return domain.EventBase{Timestamp: time.Now(), Type: t}
}

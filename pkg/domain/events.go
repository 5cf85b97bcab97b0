package domain

import "time"

// EventType defines the category of the event.
type EventType string

const (
	EventCommit   EventType = "commit"
	EventHistory  EventType = "history"
	EventDivision EventType = "division"
)

// EventBase contains common fields for all events.
type EventBase struct {
	Timestamp time.Time `json:"timestamp"`
	Type      EventType `json:"type"`
}

// CommitEvent fires when a completed element is committed to the drawing.
type CommitEvent struct {
	EventBase
	Kind         ElementKind `json:"kind"`
	HistoryIndex int         `json:"history_index"`
	Elements     int         `json:"elements"`
}

// HistoryOp names an undo/redo direction.
type HistoryOp string

const (
	OpUndo HistoryOp = "undo"
	OpRedo HistoryOp = "redo"
)

// HistoryEvent fires on every undo/redo attempt. Applied is false when
// the call was a boundary no-op.
type HistoryEvent struct {
	EventBase
	Op      HistoryOp `json:"op"`
	Index   int       `json:"index"`
	Applied bool      `json:"applied"`
}

// DivisionEvent fires when division mode is activated or its count changes.
type DivisionEvent struct {
	EventBase
	Kind      ElementKind `json:"kind"`
	Divisions int         `json:"divisions"`
	Points    int         `json:"points"`
}

// LifecycleHooks defines callbacks for engine observability. All hooks
// run synchronously on the calling goroutine; the core defines no
// cancellation semantics.
type LifecycleHooks struct {
	OnCommit   func(*CommitEvent)
	OnHistory  func(*HistoryEvent)
	OnDivision func(*DivisionEvent)
}

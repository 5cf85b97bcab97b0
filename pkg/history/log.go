// Package history implements the linear undo/redo log over drawing
// snapshots: an append-only sequence with a cursor and truncation on
// write.
package history

import "github.com/pppp606/kamon/pkg/domain"

// Log is an index-addressed undo/redo stack of snapshots. The cursor
// ranges over [-1, len(states)-1]; -1 addresses the synthetic empty
// state that precedes the first push and is never stored.
//
// Snapshots are cloned on the way in and on the way out, so callers may
// keep mutating their elements without corrupting the log.
type Log struct {
	states []domain.Snapshot
	index  int
}

// NewLog creates an empty log with the cursor on the synthetic empty state.
func NewLog() *Log {
	return &Log{index: -1}
}

// Push discards the redo branch beyond the cursor, appends a clone of
// s, and points the cursor at it. This is the only operation that grows
// the log.
func (l *Log) Push(s domain.Snapshot) {
	// Reslice rather than remove element-by-element; O(states discarded).
	l.states = l.states[:l.index+1]
	l.states = append(l.states, s.Clone())
	l.index = len(l.states) - 1
}

// CanUndo reports whether the cursor can move back.
func (l *Log) CanUndo() bool {
	return l.index >= 0
}

// CanRedo reports whether the cursor can move forward.
func (l *Log) CanRedo() bool {
	return l.index < len(l.states)-1
}

// Undo moves the cursor back one step and returns the snapshot now
// pointed at, or the synthetic empty state when the cursor lands on -1.
// At the boundary it returns nil and changes nothing, indefinitely.
func (l *Log) Undo() *domain.Snapshot {
	if !l.CanUndo() {
		return nil
	}
	l.index--
	if l.index < 0 {
		s := domain.EmptySnapshot()
		return &s
	}
	s := l.states[l.index].Clone()
	return &s
}

// Redo moves the cursor forward one step and returns the snapshot now
// pointed at. At the boundary it returns nil and changes nothing.
func (l *Log) Redo() *domain.Snapshot {
	if !l.CanRedo() {
		return nil
	}
	l.index++
	s := l.states[l.index].Clone()
	return &s
}

// Index returns the cursor position, exposed for diagnostics and tests.
func (l *Log) Index() int {
	return l.index
}

// Len returns the number of stored snapshots.
func (l *Log) Len() int {
	return len(l.states)
}

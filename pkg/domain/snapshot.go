package domain

// Snapshot is a full copy of the drawable content at one edit step.
// Snapshots are stored and handed out by value; mutating one never
// affects another.
type Snapshot struct {
	Lines []*Line
	Arcs  []*CompassArc
}

// EmptySnapshot builds the synthetic empty state: no lines, no arcs.
func EmptySnapshot() Snapshot {
	return Snapshot{Lines: []*Line{}, Arcs: []*CompassArc{}}
}

// Clone returns a deep copy with every element cloned.
func (s Snapshot) Clone() Snapshot {
	c := Snapshot{
		Lines: make([]*Line, 0, len(s.Lines)),
		Arcs:  make([]*CompassArc, 0, len(s.Arcs)),
	}
	for _, l := range s.Lines {
		c.Lines = append(c.Lines, l.Clone())
	}
	for _, a := range s.Arcs {
		c.Arcs = append(c.Arcs, a.Clone())
	}
	return c
}

// IsEmpty reports whether the snapshot holds no elements.
func (s Snapshot) IsEmpty() bool {
	return len(s.Lines) == 0 && len(s.Arcs) == 0
}

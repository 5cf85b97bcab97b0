/*
Package domain contains the core domain models and geometry for the Kamon engine.

It defines the drawable primitives and the pure construction algorithms, free of
I/O, rendering, and persistence concerns, following Hexagonal Architecture
principles.

# Key Entities

  - Point: The shared 2D coordinate currency (an alias of geom.Coord).
  - Line: A two-endpoint segment with partial-construction state.
  - CompassArc: A center + radius-point arc with partial-construction state.
  - Element: The closed tagged union over the two primitive kinds.
  - Snapshot: A full copy of the drawable content at one edit step.
*/
package domain

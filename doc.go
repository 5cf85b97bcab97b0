/*
Package kamon is a compass-and-straightedge construction engine: line segments
and compass arcs placed on a drawing surface, equal-division guide points over
a selected element, and a linear undo/redo history of the drawing.

The engine is the algorithmic core of an interactive construction tool. The
host application ("Host") owns input capture and pixel painting; Kamon owns
completion semantics, the division algebra, and the history cursor. This
Hexagonal Architecture lets the same core drive a CLI, an HTTP server, or an
embedded canvas.

# Key Features

  - Partial-construction primitives: a Line or CompassArc is only "complete"
    once all of its points are placed, and incompleteness is structural.
  - Equal division: a segment (or an arc's radius segment) split into n
    equal parts, with stable nearest-point hit-testing over the result.
  - Linear history: snapshot push with truncation-on-write, undo into the
    synthetic empty state, boundary calls as silent no-ops.
  - Rendering ports: the core issues marker/element draw calls against the
    ports.Surface contract and never reads surface state back.

# Usage

The Workbench facade wires one division controller and one history log over a
live element set:

	package main

	import (
		"fmt"
		"log"

		"github.com/pppp606/kamon"
		"github.com/pppp606/kamon/pkg/domain"
	)

	func main() {
		bench := kamon.New()

		// Place a segment and commit it to history.
		line := domain.NewLine()
		line.SetFirstPoint(0, 0)
		line.SetSecondPoint(9, 0)
		if err := bench.CommitLine(line); err != nil {
			log.Fatal(err)
		}

		// Divide it into three equal parts.
		el := domain.LineElement(line)
		if _, err := bench.QuickDivide(&el, 3); err != nil {
			log.Fatal(err)
		}

		// Snap the pointer to the nearest guide point.
		bench.HandlePointer(domain.Pt(2.8, 0.1), func(p domain.Point) {
			fmt.Printf("snapped to (%g, %g)\n", p.X, p.Y)
		})

		// Step back, then forward again.
		bench.Undo()
		bench.Redo()
	}
*/
package kamon

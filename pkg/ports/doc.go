/*
Package ports defines the driven ports (interfaces) for the Kamon engine.

These interfaces decouple the core construction logic from external
implementations, allowing the engine to draw onto various back ends
(SVG, PDF, terminal cells) without knowing any of them.

# Key Interfaces

  - Surface: Receives marker-draw requests inside a Begin/End state bracket.
  - Renderer: A Surface that can additionally paint whole lines and circles.
*/
package ports

package kamon

// Version is the current release of the Kamon engine.
const Version = "0.3.0"

/*
Package session provides multi-session hosting for the Kamon engine.

Each session owns one Workbench identified by a UUID. The Manager
serializes access to a session behind a per-session mutex, so the
single-threaded construction core can be driven from concurrent hosts
(HTTP handlers, background exporters) without races.
*/
package session

// Package core provides a small, stable facade over compose's internal
// engine for external integrations. It deliberately re-exports a narrow
// API surface so other tools can depend on a stable import path without
// reaching into internal packages.
//
// Example:
//
//	cfg := core.Config{InPath: "private", OutPath: "public"}
//	stats, err := core.Run(cfg)
//	if err != nil { /* handle */ }
//	_ = stats
package core

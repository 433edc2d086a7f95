package core

import (
	"github.com/skeletool/compose/internal/engine"
	"github.com/skeletool/compose/internal/redact"
)

// Re-export selected internal types as a stable public API surface.
// These are type aliases so external consumers can depend on a stable path.
type Config = engine.Config
type Stats = engine.Stats

// Run composes the output tree per the input tree's .compose.yml.
func Run(cfg Config) (Stats, error) {
	return engine.Run(cfg)
}

// ProcessSource redacts the content of a single source file.
func ProcessSource(src string) (string, error) {
	return redact.ProcessSource(src)
}

package engine

import (
	"fmt"
	"time"

	"github.com/skeletool/compose/internal/config"
	"github.com/skeletool/compose/internal/manifest"
)

// Config controls one composition run.
type Config struct {
	// InPath is the root of the private tree; its .compose.yml declares
	// what to mirror.
	InPath string
	// OutPath is the root of the public tree.
	OutPath string
	// NoProcess skips the copy/redaction phase; pruning and the manifest
	// still run.
	NoProcess bool
	// Spare names additional output entries exempt from pruning.
	Spare []string
	// AddTools lists extra tool paths for the manifest's tools partition.
	AddTools []string
}

// Stats summarizes what a run did.
type Stats struct {
	FilesRedacted int
	FilesCopied   int
	EntriesPruned int
	Duration      time.Duration
}

// Run executes a full composition: process declared entries, prune the
// output root, write the workspace manifest. The run is strictly
// sequential and aborts on the first failure; a partially written output
// tree is overwritten or pruned by the next run.
func Run(cfg Config) (Stats, error) {
	var stats Stats
	start := time.Now()

	file, err := config.Load(cfg.InPath)
	if err != nil {
		return stats, fmt.Errorf("failed to read config: %w", err)
	}

	if !cfg.NoProcess {
		if err := processEntries(cfg, file, &stats); err != nil {
			return stats, fmt.Errorf("failed to process entries: %w", err)
		}
	}

	if err := pruneEntries(cfg, file, &stats); err != nil {
		return stats, fmt.Errorf("failed to prune entries: %w", err)
	}

	tools := append(append([]string{}, file.WorkspaceTools...), cfg.AddTools...)
	if err := manifest.Write(cfg.OutPath, file.Entries, tools); err != nil {
		return stats, fmt.Errorf("failed to write root Cargo.toml: %w", err)
	}

	stats.Duration = time.Since(start)
	return stats, nil
}

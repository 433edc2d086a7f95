package engine

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/skeletool/compose/internal/config"
)

// pruneEntries removes every top-level output entry whose name is not
// spared: declared entries, the configured no_remove list and caller
// supplied spares survive. Pruning never descends into kept entries.
func pruneEntries(cfg Config, file config.File, stats *Stats) error {
	spare := make(map[string]bool)
	for _, list := range [][]string{file.Entries, file.NoRemove, cfg.Spare} {
		for _, name := range list {
			spare[name] = true
		}
	}

	entries, err := os.ReadDir(cfg.OutPath)
	if err != nil {
		return fmt.Errorf("failed to read dir %s: %w", cfg.OutPath, err)
	}
	for _, e := range entries {
		if spare[e.Name()] {
			continue
		}
		p := filepath.Join(cfg.OutPath, e.Name())
		if err := os.RemoveAll(p); err != nil {
			return fmt.Errorf("failed to remove %s: %w", p, err)
		}
		stats.EntriesPruned++
	}
	return nil
}

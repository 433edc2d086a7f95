// Package report renders the optional run summary.
package report

import (
	"fmt"
	"io"
	"time"
)

// Options carries the run counters to print.
type Options struct {
	FilesRedacted int
	FilesCopied   int
	EntriesPruned int
	Duration      time.Duration
}

// Print writes a short textual run summary. Callers pass stderr so stdout
// stays clean.
func Print(w io.Writer, opts Options) {
	fmt.Fprintf(w, "Files redacted: %d\n", opts.FilesRedacted)
	fmt.Fprintf(w, "Files copied: %d\n", opts.FilesCopied)
	fmt.Fprintf(w, "Entries pruned: %d\n", opts.EntriesPruned)
	if opts.Duration > 0 {
		fmt.Fprintf(w, "Run duration: %.2fs\n", opts.Duration.Seconds())
	}
}

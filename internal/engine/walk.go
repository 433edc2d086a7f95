package engine

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	doublestar "github.com/bmatcuk/doublestar/v4"
	"github.com/skeletool/compose/internal/config"
	"github.com/skeletool/compose/internal/redact"
)

// defaultSourceSuffix selects the files that pass through the redaction
// engine; everything else is copied byte-for-byte.
const defaultSourceSuffix = ".rs"

// walker carries the per-run traversal state. Exclusion is matched by bare
// entry name at every depth; ExcludeGlobs additionally match the path
// relative to the input root.
type walker struct {
	inRoot   string
	outRoot  string
	excluded map[string]bool
	globs    []string
	suffix   string
	stats    *Stats
}

// processEntries mirrors each declared entry from the input root into the
// output root, depth first.
func processEntries(cfg Config, file config.File, stats *Stats) error {
	w := &walker{
		inRoot:   cfg.InPath,
		outRoot:  cfg.OutPath,
		excluded: make(map[string]bool, len(file.NoCopy)),
		globs:    file.ExcludeGlobs,
		suffix:   file.SourceSuffix,
		stats:    stats,
	}
	for _, name := range file.NoCopy {
		w.excluded[name] = true
	}
	if w.suffix == "" {
		w.suffix = defaultSourceSuffix
	}

	for _, entry := range file.Entries {
		in := filepath.Join(cfg.InPath, entry)
		out := filepath.Join(cfg.OutPath, entry)
		info, err := os.Stat(in)
		if err != nil {
			return fmt.Errorf("failed to stat %s: %w", in, err)
		}
		if info.IsDir() {
			err = w.dir(in, out)
		} else {
			err = w.file(in, out)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (w *walker) dir(in, out string) error {
	entries, err := os.ReadDir(in)
	if err != nil {
		return fmt.Errorf("failed to read dir %s: %w", in, err)
	}

	for _, e := range entries {
		name := e.Name()
		if w.excluded[name] {
			continue
		}
		nextIn := filepath.Join(in, name)
		nextOut := filepath.Join(out, name)
		if w.skipByGlob(nextIn) {
			continue
		}
		if e.IsDir() {
			err = w.dir(nextIn, nextOut)
		} else {
			err = w.file(nextIn, nextOut)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// file writes one output file, creating its parent directory lazily. An
// empty source directory therefore produces no output directory.
func (w *walker) file(in, out string) error {
	outDir := filepath.Dir(out)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("failed to create dir %s: %w", outDir, err)
	}

	if strings.HasSuffix(in, w.suffix) {
		b, err := os.ReadFile(in)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", in, err)
		}
		content, err := redact.ProcessSource(string(b))
		if err != nil {
			return fmt.Errorf("failed to process file %s: %w", in, err)
		}
		if err := os.WriteFile(out, []byte(content), 0o644); err != nil {
			return fmt.Errorf("failed to write file %s: %w", out, err)
		}
		w.stats.FilesRedacted++
		return nil
	}

	if err := copyFile(in, out); err != nil {
		return fmt.Errorf("failed to copy %s to %s: %w", in, out, err)
	}
	w.stats.FilesCopied++
	return nil
}

func (w *walker) skipByGlob(path string) bool {
	if len(w.globs) == 0 {
		return false
	}
	rel, err := filepath.Rel(w.inRoot, path)
	if err != nil {
		return false
	}
	rel = filepath.ToSlash(rel)
	for _, g := range w.globs {
		if ok, _ := doublestar.Match(g, rel); ok {
			return true
		}
	}
	return false
}

// copyFile copies in to out byte-for-byte, preserving the source's
// permission bits.
func copyFile(in, out string) error {
	src, err := os.Open(in)
	if err != nil {
		return err
	}
	defer src.Close()

	info, err := src.Stat()
	if err != nil {
		return err
	}
	dst, err := os.OpenFile(out, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		return err
	}
	return dst.Close()
}

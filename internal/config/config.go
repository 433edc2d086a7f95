// Package config loads the declarative .compose.yml file found at the root
// of the private tree.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file expected at the input root.
const FileName = ".compose.yml"

// File is the on-disk YAML configuration shape for compose.
type File struct {
	// Entries are the top-level files and directories to mirror, in order.
	Entries []string `yaml:"entries"`
	// NoCopy lists entry names skipped at every depth during copying.
	NoCopy []string `yaml:"no_copy"`
	// NoRemove lists output entries exempt from pruning.
	NoRemove []string `yaml:"no_remove"`
	// WorkspaceTools are registered under the manifest's tools partition.
	WorkspaceTools []string `yaml:"workspace_tools"`
	// ExcludeGlobs optionally skips input-relative paths by pattern, in
	// addition to the name-based NoCopy set.
	ExcludeGlobs []string `yaml:"exclude_globs"`
	// SourceSuffix overrides the suffix of files passed through the
	// redaction engine. Defaults to ".rs".
	SourceSuffix string `yaml:"source_suffix"`
}

// Load reads the config from the given tree root.
func Load(root string) (File, error) {
	return LoadFile(filepath.Join(root, FileName))
}

// LoadFile reads a YAML config file from the provided path.
func LoadFile(path string) (File, error) {
	var cfg File
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

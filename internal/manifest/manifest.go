// Package manifest emits the workspace Cargo.toml at the root of the
// output tree.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const workspaceTemplate = `[workspace]
members = [
    # Tasks
    "%s",

    # Tools
    "%s",
]
`

// Write lists, under the tasks partition, every declared entry whose copied
// tree contains a package descriptor (Cargo.toml), and the given tool paths
// under the tools partition.
func Write(outPath string, entries, tools []string) error {
	var tasks []string
	for _, e := range entries {
		if _, err := os.Stat(filepath.Join(outPath, e, "Cargo.toml")); err == nil {
			tasks = append(tasks, filepath.ToSlash(e))
		}
	}

	content := fmt.Sprintf(workspaceTemplate,
		strings.Join(tasks, "\",\n    \""),
		strings.Join(tools, "\",\n    \""))

	path := filepath.Join(outPath, "Cargo.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write Cargo.toml: %w", err)
	}
	return nil
}

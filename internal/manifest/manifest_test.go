package manifest

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWrite_PartitionsEntriesWithDescriptors(t *testing.T) {
	out := t.TempDir()
	if err := os.MkdirAll(filepath.Join(out, "task1"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(out, "task1", "Cargo.toml"), []byte("[package]\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	// plain has no package descriptor and must not be listed
	if err := os.MkdirAll(filepath.Join(out, "plain"), 0o755); err != nil {
		t.Fatal(err)
	}

	if err := Write(out, []string{"task1", "plain"}, []string{"tools/compose", "tools/lint"}); err != nil {
		t.Fatalf("Write: %v", err)
	}

	b, err := os.ReadFile(filepath.Join(out, "Cargo.toml"))
	if err != nil {
		t.Fatal(err)
	}
	want := `[workspace]
members = [
    # Tasks
    "task1",

    # Tools
    "tools/compose",
    "tools/lint",
]
`
	if string(b) != want {
		t.Fatalf("got %q, want %q", string(b), want)
	}
}

func TestWrite_EmptyPartitions(t *testing.T) {
	out := t.TempDir()
	if err := Write(out, nil, nil); err != nil {
		t.Fatalf("Write: %v", err)
	}
	b, err := os.ReadFile(filepath.Join(out, "Cargo.toml"))
	if err != nil {
		t.Fatal(err)
	}
	want := `[workspace]
members = [
    # Tasks
    "",

    # Tools
    "",
]
`
	if string(b) != want {
		t.Fatalf("got %q, want %q", string(b), want)
	}
}

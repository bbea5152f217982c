// Package testutil provides shared test helpers for golden file testing.
package testutil

import (
	"flag"
	"os"
	"testing"
)

// Update is a flag that, when set, regenerates golden files from current output.
// Usage: go test ./... -update
var Update = flag.Bool("update", false, "update golden files")

// CompareGolden compares actual against the golden file at path. With the
// -update flag it rewrites the golden file from actual instead.
func CompareGolden(t *testing.T, path string, actual []byte) {
	t.Helper()

	if *Update {
		if err := os.WriteFile(path, actual, 0o644); err != nil {
			t.Fatalf("failed to update golden file %s: %v", path, err)
		}
		t.Logf("updated golden file: %s", path)
		return
	}

	expected, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}

	if string(actual) != string(expected) {
		t.Errorf("output mismatch for %s:\n--- expected\n%s\n--- actual\n%s", path, expected, actual)
	}
}

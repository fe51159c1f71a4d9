package testsupport

import (
	"encoding/json"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// MockDBFile is the bundled database fixture with three pessoas, three planos and
// four contracts, one per status.
const MockDBFile = "mock_db.json"

// LoadFixture loads test data from a fixture file.
// The path is relative to the test package directory.
func LoadFixture(t testing.TB, path string) []byte {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to load fixture from %s: %v", path, err)
	}

	return data
}

// LoadFixtureJSON loads JSON test data from a fixture file and unmarshals it.
func LoadFixtureJSON(t testing.TB, path string, dest any) {
	t.Helper()

	data := LoadFixture(t, path)
	if err := json.Unmarshal(data, dest); err != nil {
		t.Fatalf("failed to unmarshal JSON fixture from %s: %v", path, err)
	}
}

// TempFile writes content to a file named name inside a per-test temporary
// directory and returns its path. The directory is removed when the test ends.
func TempFile(t testing.TB, name string, content []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatalf("failed to write temp file %s: %v", path, err)
	}
	return path
}

// FixturePath constructs a path to a fixture file relative to the testdata directory.
func FixturePath(filename string) string {
	return filepath.Join("testdata", filename)
}

// SharedFixturePath returns the absolute path of a fixture bundled with this
// package, so tests in any package can read it.
func SharedFixturePath(filename string) string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "testdata", filename)
}

// MockDB copies the bundled database fixture into a temporary directory and returns
// the copy's path. Tests may mutate the copy freely.
func MockDB(t testing.TB) string {
	t.Helper()
	return TempFile(t, MockDBFile, LoadFixture(t, SharedFixturePath(MockDBFile)))
}

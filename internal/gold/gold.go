// Package gold implements golden files.
package gold

import (
	"bytes"
	"flag"
	"os"
	"path"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const defaultDir = "_golden"

// Update reports whether golden files update is requested.
//
// Call Init() in TestMain to propagate.
var Update bool

// Init should be called in TestMain.
func Init() {
	flag.BoolVar(&Update, "update", false, "update golden files")
}

// Path returns path to golden file.
func Path(elems ...string) string {
	return filepath.Join(
		append([]string{defaultDir}, elems...)...,
	)
}

// ReadFile reads golden file.
func ReadFile(t testing.TB, elems ...string) []byte {
	t.Helper()

	p := Path(elems...)
	data, err := os.ReadFile(p)
	if err != nil {
		t.Fatalf("golden file %s: %+v", path.Join(elems...), err)
	}

	return data
}

// filename returns default golden file name for test.
func filename(t testing.TB) string {
	return strings.ReplaceAll(t.Name(), "/", "_")
}

func writeFile(t testing.TB, data []byte, elems ...string) {
	t.Helper()

	p := Path(elems...)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, data, 0o644))
}

// Bytes checks that golden file with provided name (test name by
// default) is equal to data, updating the file if requested.
func Bytes(t testing.TB, data []byte, name ...string) {
	t.Helper()

	if len(name) == 0 {
		name = []string{filename(t)}
	}
	name[len(name)-1] += ".raw"

	if Update {
		writeFile(t, data, name...)
	}

	expected := ReadFile(t, name...)
	if !bytes.Equal(expected, data) {
		require.Equal(t, expected, data, "golden file %s mismatch", path.Join(name...))
	}
}

// Str checks that golden file with provided name (test name by
// default) is equal to s, updating the file if requested.
func Str(t testing.TB, s string, name ...string) {
	t.Helper()

	if len(name) == 0 {
		name = []string{filename(t) + ".txt"}
	}

	if Update {
		writeFile(t, []byte(s), name...)
	}

	expected := string(ReadFile(t, name...))
	require.Equal(t, expected, s, "golden file %s mismatch", path.Join(name...))
}

// Package gold implements golden files.
package gold

import (
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

// writeFile writes golden file, creating directories as needed.
func writeFile(t testing.TB, data []byte, elems ...string) {
	t.Helper()

	p := Path(elems...)
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o700))
	require.NoError(t, os.WriteFile(p, data, 0o600))
}

// Str checks text golden file.
func Str(t testing.TB, s string, name ...string) {
	t.Helper()

	if Update {
		writeFile(t, []byte(s), name...)
		return
	}

	require.Equal(t, string(ReadFile(t, name...)), s, "golden file text mismatch")
}

// Bytes checks binary golden file.
//
// File name defaults to test name, ".raw" extension is appended.
func Bytes(t testing.TB, data []byte, name ...string) {
	t.Helper()

	if len(name) == 0 {
		name = strings.Split(t.Name(), "/")
	}
	name = append([]string{}, name...)
	name[len(name)-1] += ".raw"

	if Update {
		writeFile(t, data, name...)
		return
	}

	require.Equal(t, ReadFile(t, name...), data, "golden file binary mismatch")
}

package testcommon

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kpfaulkner/coordplot/util"
)

const FloatTolerance = 1e-9

// WriteCoordinateFile writes lines to a file in a fresh temp dir and returns
// its path.
func WriteCoordinateFile(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "coords.txt")
	err := os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0666)
	require.NoError(t, err, "error writing test coordinate file")
	return path
}

// AssertPointsInDelta compares two point sets element by element within
// FloatTolerance.
func AssertPointsInDelta(t *testing.T, expected []util.FloatPoint, actual []util.FloatPoint) {
	t.Helper()
	require.Len(t, actual, len(expected))
	for i := range expected {
		assert.InDelta(t, expected[i].X, actual[i].X, FloatTolerance, "X of point %d", i)
		assert.InDelta(t, expected[i].Y, actual[i].Y, FloatTolerance, "Y of point %d", i)
	}
}

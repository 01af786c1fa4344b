package main

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kpfaulkner/coordplot/coordio"
	"github.com/kpfaulkner/coordplot/options"
)

func TestRunMissingInput(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "missing.txt")

	err := run(missing, filepath.Join(dir, "result"), options.RotatedDefaults(), false)
	assert.ErrorIs(t, err, coordio.ErrNotFound)

	var out bytes.Buffer
	assert.Equal(t, 1, report(&out, err))
	assert.Equal(t, "An error occurred: file "+missing+": coordinate file not found\n", out.String())
}

func TestReport(t *testing.T) {
	var out bytes.Buffer
	assert.Equal(t, 0, report(&out, nil))
	assert.Empty(t, out.String())

	assert.Equal(t, 1, report(&out, errors.New("boom")))
	assert.Equal(t, "An error occurred: boom\n", out.String())
}

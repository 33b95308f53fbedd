package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/Unbantucniak/FTMS/internal/service/seeding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveDBPath_EmptyAnswerUsesDefault(t *testing.T) {
	def := filepath.Join(t.TempDir(), "ftms.db")
	var out bytes.Buffer

	path, err := resolveDBPath(def, false, strings.NewReader("\n"), &out)

	require.NoError(t, err)
	assert.Equal(t, def, path)
	assert.Contains(t, out.String(), "default database path: "+def)
	assert.Contains(t, out.String(), "enter for default")
}

func TestResolveDBPath_TypedAnswer(t *testing.T) {
	var out bytes.Buffer

	path, err := resolveDBPath("/srv/ftms.db", false, strings.NewReader("  /data/other.db \n"), &out)

	require.NoError(t, err)
	assert.Equal(t, "/data/other.db", path)
}

func TestResolveDBPath_EOFUsesDefault(t *testing.T) {
	path, err := resolveDBPath("/srv/ftms.db", false, strings.NewReader(""), &bytes.Buffer{})

	require.NoError(t, err)
	assert.Equal(t, "/srv/ftms.db", path)
}

func TestResolveDBPath_NonInteractiveSkipsPrompt(t *testing.T) {
	var out bytes.Buffer

	path, err := resolveDBPath("/srv/ftms.db", true, iotest.ErrReader(errors.New("must not read")), &out)

	require.NoError(t, err)
	assert.Equal(t, "/srv/ftms.db", path)
	assert.NotContains(t, out.String(), "enter for default")
}

func TestResolveDBPath_ReadError(t *testing.T) {
	_, err := resolveDBPath("/srv/ftms.db", false, iotest.ErrReader(errors.New("tty gone")), &bytes.Buffer{})
	assert.ErrorContains(t, err, "read database path")
}

func TestDefaultDBPath(t *testing.T) {
	assert.Equal(t, "/srv/ftms.db", defaultDBPath("/srv/ftms.db"))

	computed := defaultDBPath("")
	assert.Equal(t, "ftms.db", filepath.Base(computed))
	assert.Equal(t, "build", filepath.Base(filepath.Dir(computed)))
}

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "ftms.db")
	require.NoError(t, os.WriteFile(file, nil, 0o600))

	assert.True(t, fileExists(file))
	assert.False(t, fileExists(dir))
	assert.False(t, fileExists(filepath.Join(dir, "absent.db")))
}

func TestPrintSummary(t *testing.T) {
	var out bytes.Buffer
	printSummary(&out, &seeding.SeedSummary{Generated: 100, Inserted: 97, Skipped: 3, TotalFlights: 97, DepartureCities: 45})

	assert.Contains(t, out.String(), "total flights:     97")
	assert.Contains(t, out.String(), "cities covered:    45")
	assert.Contains(t, out.String(), "duplicates skipped: 3")
}

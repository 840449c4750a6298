package fetcher

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestReadCSV(t *testing.T) {
	path := writeTemp(t, "cities.csv", "City\nHouston, TX\nPhoenix\n")

	rows, err := ReadCSV(path)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"City"}, rows[0])
	assert.Equal(t, []string{"Houston", "TX"}, rows[1])
	assert.Equal(t, []string{"Phoenix"}, rows[2])
}

func TestReadCSV_MissingFile(t *testing.T) {
	_, err := ReadCSV(filepath.Join(t.TempDir(), "absent.csv"))
	assert.Error(t, err)
}

func TestReadRows_UnsupportedExtension(t *testing.T) {
	path := writeTemp(t, "cities.txt", "Houston\n")
	_, err := ReadRows(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported file extension")
}

func TestFirstColumn(t *testing.T) {
	rows := [][]string{
		{"City"},
		{"Houston, TX"},
		{"  "},
		{},
		{"Phoenix", "ignored"},
	}

	got := FirstColumn(rows, 1)
	assert.Equal(t, []string{"Houston, TX", "Phoenix"}, got)
}

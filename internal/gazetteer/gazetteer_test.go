package gazetteer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEntries() []Entry {
	return []Entry{
		{PlaceName: "Springfield", StateCode: "IL", PostalCode: "62701"},
		{PlaceName: "Springfield", StateCode: "IL", PostalCode: "62702"},
		{PlaceName: "Springfield", StateCode: "MA", PostalCode: "01101"},
		{PlaceName: "Houston", StateCode: "TX", PostalCode: "77001"},
		{PlaceName: "Houston", StateCode: "TX", PostalCode: "77001"},
		{PlaceName: "Houston", StateCode: "TX", PostalCode: "77002"},
	}
}

func TestStateFor_MajorityVote(t *testing.T) {
	g := New(testEntries())

	state, ok := g.StateFor("Springfield")
	require.True(t, ok)
	assert.Equal(t, "IL", state)

	state, ok = g.StateFor("houston")
	require.True(t, ok)
	assert.Equal(t, "TX", state)
}

func TestStateFor_UnknownCity(t *testing.T) {
	g := New(testEntries())

	_, ok := g.StateFor("Atlantis")
	assert.False(t, ok)

	_, ok = Empty().StateFor("Houston")
	assert.False(t, ok)
}

func TestZIPs_DedupedAndSorted(t *testing.T) {
	g := New(testEntries())

	assert.Equal(t, []string{"77001", "77002"}, g.ZIPs("Houston", "tx"))
	assert.Equal(t, []string{"62701", "62702"}, g.ZIPs("SPRINGFIELD", "IL"))
	assert.Empty(t, g.ZIPs("Springfield", "TX"))
}

func TestLoad_CSVWithHeader(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "reference.csv")
	content := "postal_code,place_name,state_code\n62701,Springfield,IL\n62702,Springfield,IL\n01101,Springfield,MA\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	g, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, g.Len())

	state, ok := g.StateFor("springfield")
	require.True(t, ok)
	assert.Equal(t, "IL", state)
	assert.Equal(t, []string{"62701", "62702"}, g.ZIPs("Springfield", "IL"))
}

func TestLoad_TSVPositionalColumns(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "reference.tsv")
	content := "name\tstate\tzip\nHouston\tTX\t77001\nHouston\tTX\t77002\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	g, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"77001", "77002"}, g.ZIPs("Houston", "TX"))
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.csv"))
	assert.Error(t, err)
}

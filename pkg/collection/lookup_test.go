package collection

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func writeTable(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	assert.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	idPath := writeTable(t, "ids.json", `{"M1": 42, "M2": 7}`)
	rankPath := writeTable(t, "ranks.json", `{"M1": 7, "M2": 1234}`)

	l, err := Load(idPath, rankPath)
	assert.NoError(t, err)
	assert.Equal(t, 2, l.Len())

	id, ok := l.DisplayID("M1")
	assert.True(t, ok)
	assert.Equal(t, 42, id)

	rank, ok := l.Rank("M2")
	assert.True(t, ok)
	assert.Equal(t, 1234, rank)
}

func TestLoad_Errors(t *testing.T) {
	rankPath := writeTable(t, "ranks.json", `{}`)

	// Missing file
	_, err := Load("does_not_exist.json", rankPath)
	assert.Error(t, err)

	// Invalid JSON
	badPath := writeTable(t, "bad.json", `{"M1": `)
	_, err = Load(badPath, rankPath)
	assert.Error(t, err)
}

func TestLookupMiss(t *testing.T) {
	l := New(map[string]int{"M1": 1}, map[string]int{"M1": 2})

	_, ok := l.DisplayID("unknown")
	assert.False(t, ok)
	_, ok = l.Rank("unknown")
	assert.False(t, ok)
}

func TestMints_Sorted(t *testing.T) {
	l := New(map[string]int{"C": 3, "A": 1, "B": 2}, nil)
	assert.Equal(t, []string{"A", "B", "C"}, l.Mints())
}

package util

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGatherAllScorePaths(t *testing.T) {
	dir := t.TempDir()
	os.WriteFile(filepath.Join(dir, "a.musicxml"), []byte("x"), 0666)
	os.WriteFile(filepath.Join(dir, "b.XML"), []byte("x"), 0666)
	os.WriteFile(filepath.Join(dir, "c.mxl"), []byte("x"), 0666)
	os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0666)

	assert := assert.New(t)
	assert.Len(GatherAllScorePaths(dir, 0), 3)
	assert.Len(GatherAllScorePaths(dir, 2), 2)
}

func TestGetKeys(t *testing.T) {
	m := map[string]int{"a": 1, "b": 2}
	keys := GetKeys(m)

	assert := assert.New(t)
	assert.Len(keys, 2)
	assert.Contains(keys, "a")
	assert.Contains(keys, "b")
}

func TestMin(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(Min(3, 7), 3)
	assert.Equal(Min(7, 3), 3)
}

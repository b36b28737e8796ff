package storage

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	log := logrus.New()
	log.SetOutput(io.Discard)
	store, err := NewStore(dir, log)
	require.NoError(t, err)
	return store, dir
}

type testDoc struct {
	Items []string `json:"items"`
}

func TestLoadMissingFileYieldsEmpty(t *testing.T) {
	store, _ := newTestStore(t)
	var doc testDoc
	require.NoError(t, store.Load("missing.json", &doc), "load of a missing file must not fail")
	assert.Nil(t, doc.Items, "destination keeps its zero value")
}

func TestLoadCorruptFileYieldsEmpty(t *testing.T) {
	store, dir := newTestStore(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.json"), []byte("{not json"), 0o644))

	var doc testDoc
	require.NoError(t, store.Load("bad.json", &doc), "load of a corrupt file must not fail")
	assert.Nil(t, doc.Items, "destination keeps its zero value")
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store, _ := newTestStore(t)
	require.NoError(t, store.Save("doc.json", testDoc{Items: []string{"a", "b"}}))

	var doc testDoc
	require.NoError(t, store.Load("doc.json", &doc))
	assert.Equal(t, []string{"a", "b"}, doc.Items)
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	store, dir := newTestStore(t)
	require.NoError(t, store.Save("doc.json", testDoc{Items: []string{"a"}}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, entry := range entries {
		assert.False(t, strings.HasSuffix(entry.Name(), ".tmp"), "temp file left behind: %s", entry.Name())
	}
}

func TestSaveOverwritesWholeFile(t *testing.T) {
	store, dir := newTestStore(t)
	require.NoError(t, store.Save("doc.json", testDoc{Items: []string{"a", "b", "c"}}))
	require.NoError(t, store.Save("doc.json", testDoc{Items: []string{"z"}}))

	data, err := os.ReadFile(filepath.Join(dir, "doc.json"))
	require.NoError(t, err)
	assert.Equal(t, `{"items":["z"]}`, string(data))
}

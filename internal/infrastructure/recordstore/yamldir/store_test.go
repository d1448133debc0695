package yamldir

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weft-dev/weft/internal/domain/entities"
	"github.com/weft-dev/weft/internal/domain/mocks"
	"github.com/weft-dev/weft/internal/domain/ports"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestNewStoreLoadsAllFormats(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "people.yaml", "- name: James Minahan\n  type: person\n")
	writeFile(t, dir, "places.json", `{"name": "Rivermouth", "type": "place"}`)
	writeFile(t, dir, "ships.csv", "name,type\nThe Petrel,ship\n")
	writeFile(t, dir, "notes.txt", "not a record file")

	store, err := NewStore(dir, &mocks.Reporter{})
	require.NoError(t, err)

	assert.Equal(t, 3, store.Len())

	records, err := store.List(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 3)
	// List is sorted by name.
	assert.Equal(t, "James Minahan", records[0].Name)
	assert.Equal(t, "Rivermouth", records[1].Name)
	assert.Equal(t, "The Petrel", records[2].Name)
}

func TestFindByName(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "people.yaml", "name: James Minahan\ntype: person\n")

	store, err := NewStore(dir, &mocks.Reporter{})
	require.NoError(t, err)

	rec, err := store.FindByName(context.Background(), "James Minahan")
	require.NoError(t, err)
	assert.Equal(t, "person", rec.Type)

	_, err = store.FindByName(context.Background(), "Nobody")
	assert.ErrorIs(t, err, ports.ErrRecordNotFound)
}

func TestDuplicateRecordFirstWins(t *testing.T) {
	dir := t.TempDir()
	// Files load in name order, so a.yaml wins.
	writeFile(t, dir, "a.yaml", "name: Rivermouth\ntype: place\n")
	writeFile(t, dir, "b.yaml", "name: Rivermouth\ntype: person\n")

	reporter := &mocks.Reporter{}
	store, err := NewStore(dir, reporter)
	require.NoError(t, err)

	rec, err := store.FindByName(context.Background(), "Rivermouth")
	require.NoError(t, err)
	assert.Equal(t, "place", rec.Type)

	advisories := reporter.ByKind(entities.AdvisoryDuplicateRecord)
	require.Len(t, advisories, 1)
	assert.Equal(t, "Rivermouth", advisories[0].Subject)
	assert.Contains(t, advisories[0].Detail, "b.yaml")
}

func TestNewStoreMissingDirectory(t *testing.T) {
	_, err := NewStore(filepath.Join(t.TempDir(), "absent"), &mocks.Reporter{})

	assert.Error(t, err)
}

func TestNewStoreBadRecordFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bad.yaml", "type: person\n")

	_, err := NewStore(dir, &mocks.Reporter{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.yaml")
}

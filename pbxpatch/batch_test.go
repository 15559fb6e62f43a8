package pbxpatch

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeBatchFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "files.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadBatch(t *testing.T) {
	path := writeBatchFile(t, `files:
  - path: OralableApp/Views/HealthKitPermissionView.swift
    group: Views
  - path: OralableApp/Models/HeartRate.swift
`)
	entries, err := LoadBatch(path)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, BatchEntry{Path: "OralableApp/Views/HealthKitPermissionView.swift", Group: "Views"}, entries[0])
	assert.Equal(t, BatchEntry{Path: "OralableApp/Models/HeartRate.swift"}, entries[1])
}

func TestLoadBatchMissingFile(t *testing.T) {
	_, err := LoadBatch(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadBatchInvalidYaml(t *testing.T) {
	path := writeBatchFile(t, "files: [unclosed")
	_, err := LoadBatch(path)
	assert.Error(t, err)
}

func TestLoadBatchEmpty(t *testing.T) {
	path := writeBatchFile(t, "files: []\n")
	_, err := LoadBatch(path)
	assert.ErrorContains(t, err, "lists no files")
}

func TestLoadBatchEntryWithoutPath(t *testing.T) {
	path := writeBatchFile(t, `files:
  - group: Views
`)
	_, err := LoadBatch(path)
	assert.ErrorContains(t, err, "no path")
}

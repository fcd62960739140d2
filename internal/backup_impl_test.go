package internal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBackupWritesEveryRowWithTerminator(t *testing.T) {
	dir := t.TempDir()
	doc := docFromLines("abc", "de")
	doc.FileName = filepath.Join(dir, "name")
	s, _ := testSession(newFakeTerminal(80, 10), doc)
	s.sinceBackup = 7

	s.Backup()

	contents, err := os.ReadFile(doc.FileName + ".tmp")
	require.NoError(t, err)
	assert.Equal(t, "abc\nde\n", string(contents))
	assert.Equal(t, 0, s.sinceBackup)
	assert.Contains(t, s.status.Text, doc.FileName+".tmp")
}

func TestBackupUsesFallbackPathForUnnamedDocument(t *testing.T) {
	dir := t.TempDir()
	doc := docFromLines("only line")
	s, _ := testSession(newFakeTerminal(80, 10), doc)
	s.cfg.BackupFallbackPath = filepath.Join(dir, "fallback.tmp")

	s.Backup()

	contents, err := os.ReadFile(s.cfg.BackupFallbackPath)
	require.NoError(t, err)
	assert.Equal(t, "only line\n", string(contents))
}

func TestBackupFailureKeepsCounterAndReportsIt(t *testing.T) {
	dir := t.TempDir()
	doc := docFromLines("abc")
	doc.FileName = filepath.Join(dir, "missing", "deeper", "name")
	s, _ := testSession(newFakeTerminal(80, 10), doc)
	s.sinceBackup = 7

	s.Backup()

	assert.Equal(t, 7, s.sinceBackup, "failed backup must not reset the counter")
	assert.Contains(t, s.status.Text, "backup failed")
}

func TestBackupSnapshotIgnoresSaveTarget(t *testing.T) {
	// The snapshot sits next to the document; the document itself is
	// untouched.
	dir := t.TempDir()
	doc := docFromLines("draft")
	doc.FileName = filepath.Join(dir, "real.txt")
	doc.dirty = true
	s, _ := testSession(newFakeTerminal(80, 10), doc)

	s.Backup()

	_, err := os.Stat(doc.FileName)
	assert.True(t, os.IsNotExist(err))
	assert.True(t, s.doc.Dirty())
}

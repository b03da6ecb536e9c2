package journal_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/hoist/internal/adapters/journal"
	"go.trai.ch/hoist/internal/core/domain"
)

func sampleRecord() domain.RunRecord {
	started := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	return domain.RunRecord{
		Version:    "0.5.2",
		DryRun:     false,
		Succeeded:  false,
		StartedAt:  started,
		FinishedAt: started.Add(3 * time.Minute),
		Missing:    []string{"chamber-ui"},
		Packages: []domain.PackageRecord{
			{Name: "chamber-password-gen", Group: 1, State: domain.PackageSucceeded},
			{Name: "chamber-vault", Group: 1, State: domain.PackageFailed, FailedStep: domain.OpPackage},
		},
	}
}

func TestStore_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), domain.HoistDirName, domain.JournalFileName)
	store := journal.NewStore()

	require.NoError(t, store.Save(path, sampleRecord()))

	got, err := store.Load(path)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, sampleRecord(), *got)
	assert.NoFileExists(t, path+".tmp")
}

func TestStore_SaveReplaces(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.json")
	store := journal.NewStore()

	require.NoError(t, store.Save(path, sampleRecord()))

	next := sampleRecord()
	next.Succeeded = true
	next.DryRun = true
	require.NoError(t, store.Save(path, next))

	got, err := store.Load(path)
	require.NoError(t, err)
	assert.True(t, got.Succeeded)
	assert.True(t, got.DryRun)
}

func TestStore_LoadMissing(t *testing.T) {
	got, err := journal.NewStore().Load(filepath.Join(t.TempDir(), "journal.json"))
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_LoadEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.json")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	got, err := journal.NewStore().Load(path)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_LoadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	_, err := journal.NewStore().Load(path)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrJournalReadFailed.Error())
}

func TestStore_FileFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "journal.json")
	require.NoError(t, journal.NewStore().Save(path, sampleRecord()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"failedStep": "package"`)
	assert.Contains(t, string(data), `"version": "0.5.2"`)
}

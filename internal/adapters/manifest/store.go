// Package manifest snapshots, rewrites and inspects package manifests.
package manifest

import (
	"errors"
	"io/fs"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/hoist/internal/core/domain"
	"go.trai.ch/hoist/internal/core/ports"
	"go.trai.ch/zerr"
)

// Store implements ports.ManifestStore with a sibling backup file per manifest.
type Store struct {
	logger ports.Logger
}

// NewStore creates a new Store.
func NewStore(logger ports.Logger) *Store {
	return &Store{logger: logger}
}

var _ ports.ManifestStore = (*Store)(nil)

// Backup copies the manifest of pkg to its backup path.
//
// A backup artifact left behind by an interrupted run is adopted as the
// snapshot instead of being overwritten, since the manifest next to it may
// already carry rewritten declarations.
func (s *Store) Backup(pkg domain.Package) (domain.Snapshot, bool, error) {
	info, err := os.Stat(pkg.ManifestPath)
	if errors.Is(err, fs.ErrNotExist) {
		return domain.Snapshot{}, false, nil
	}
	if err != nil {
		return domain.Snapshot{}, false, wrapPath(err, domain.ErrManifestReadFailed, pkg.ManifestPath)
	}

	existing, err := os.ReadFile(pkg.BackupPath)
	switch {
	case err == nil:
		if s.logger != nil {
			s.logger.Warn("adopting existing manifest backup " + pkg.BackupPath)
		}
		return domain.Snapshot{Package: pkg, Digest: xxhash.Sum64(existing), Adopted: true}, true, nil
	case !errors.Is(err, fs.ErrNotExist):
		return domain.Snapshot{}, false, wrapPath(err, domain.ErrBackupReadFailed, pkg.BackupPath)
	}

	data, err := os.ReadFile(pkg.ManifestPath)
	if err != nil {
		return domain.Snapshot{}, false, wrapPath(err, domain.ErrManifestReadFailed, pkg.ManifestPath)
	}

	if err := os.WriteFile(pkg.BackupPath, data, info.Mode().Perm()); err != nil {
		return domain.Snapshot{}, false, wrapPath(err, domain.ErrBackupWriteFailed, pkg.BackupPath)
	}

	return domain.Snapshot{Package: pkg, Digest: xxhash.Sum64(data)}, true, nil
}

// Restore writes the backup back over the manifest and removes the backup.
// The backup is kept when the restored manifest does not match it.
func (s *Store) Restore(pkg domain.Package) (bool, error) {
	data, err := os.ReadFile(pkg.BackupPath)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, wrapPath(err, domain.ErrBackupReadFailed, pkg.BackupPath)
	}

	if err := os.WriteFile(pkg.ManifestPath, data, domain.FilePerm); err != nil {
		return false, wrapPath(err, domain.ErrManifestWriteFailed, pkg.ManifestPath)
	}

	snapshot := domain.Snapshot{Package: pkg, Digest: xxhash.Sum64(data)}
	if err := s.Verify(snapshot); err != nil {
		return false, err
	}

	if err := os.Remove(pkg.BackupPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return true, wrapPath(err, domain.ErrBackupRemoveFailed, pkg.BackupPath)
	}
	return true, nil
}

// Verify checks the manifest on disk against the snapshot digest.
func (s *Store) Verify(snapshot domain.Snapshot) error {
	path := snapshot.Package.ManifestPath
	data, err := os.ReadFile(path)
	if err != nil {
		return wrapPath(err, domain.ErrManifestReadFailed, path)
	}
	if got := xxhash.Sum64(data); got != snapshot.Digest {
		err := zerr.With(domain.ErrRestoreMismatch, "path", path)
		err = zerr.With(err, "want_digest", snapshot.Digest)
		return zerr.With(err, "got_digest", got)
	}
	return nil
}

// PendingBackup reports whether a backup artifact exists for pkg.
func (s *Store) PendingBackup(pkg domain.Package) (bool, error) {
	_, err := os.Stat(pkg.BackupPath)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, wrapPath(err, domain.ErrBackupReadFailed, pkg.BackupPath)
}

func wrapPath(err, sentinel error, path string) error {
	return zerr.With(zerr.Wrap(err, sentinel.Error()), "path", path)
}

// PackageExists reports whether the package folder exists.
func (s *Store) PackageExists(pkg domain.Package) (bool, error) {
	info, err := os.Stat(pkg.Dir)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, wrapPath(err, domain.ErrManifestReadFailed, pkg.Dir)
	}
	return info.IsDir(), nil
}

package ports

import "go.trai.ch/hoist/internal/core/domain"

// ManifestStore snapshots and restores package manifests.
//
//go:generate go run go.uber.org/mock/mockgen -source=manifest.go -destination=mocks/mock_manifest.go -package=mocks
type ManifestStore interface {
	// Backup copies the manifest to its backup artifact.
	// It returns false, without error, when the manifest does not exist.
	// An existing backup artifact is never overwritten.
	Backup(pkg domain.Package) (domain.Snapshot, bool, error)

	// Restore overwrites the manifest with its backup and deletes the backup.
	// It returns false, without error, when no backup exists.
	Restore(pkg domain.Package) (bool, error)

	// Verify checks that the manifest on disk matches the snapshot digest.
	Verify(snapshot domain.Snapshot) error

	// PendingBackup reports whether a backup artifact exists for pkg.
	PendingBackup(pkg domain.Package) (bool, error)

	// PackageExists reports whether the package folder exists.
	PackageExists(pkg domain.Package) (bool, error)
}

// DependencyRewriter pins workspace references to published versions.
type DependencyRewriter interface {
	// Rewrite replaces workspace references to every name in published with
	// a declaration pinned to version and writes the manifest back.
	// It returns the names that were actually rewritten.
	Rewrite(pkg domain.Package, published domain.PublishedSet, version string) ([]string, error)
}

// ManifestInspector reads manifests as structured documents.
type ManifestInspector interface {
	// Inspect parses the package manifest and lists its dependency declarations.
	Inspect(pkg domain.Package) (domain.Manifest, error)

	// WorkspaceVersion returns [workspace.package].version of the workspace
	// root manifest, or an empty string when it is not declared.
	WorkspaceVersion(layout domain.Layout) (string, error)
}

package domain

import (
	"path/filepath"
	"strings"
)

const (
	// HoistDirName is the name of the internal workspace directory.
	HoistDirName = ".hoist"

	// JournalFileName is the name of the run journal file.
	JournalFileName = "journal.json"

	// StepLogFileName is the name of the registry step transcript.
	StepLogFileName = "steps.log"

	// ConfigFileName is the name of the release configuration file.
	ConfigFileName = "hoist.yaml"

	// DefaultPackagesDir is the directory holding one folder per package.
	DefaultPackagesDir = "crates"

	// DefaultManifestName is the manifest file name inside a package folder.
	DefaultManifestName = "Cargo.toml"

	// DefaultBackupSuffix is appended to the manifest name to derive the backup path.
	DefaultBackupSuffix = ".backup"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// Layout describes where packages and their manifests live inside a workspace.
type Layout struct {
	// Root is the workspace root directory.
	Root string
	// PackagesDir is the directory, relative to Root, that holds the package folders.
	PackagesDir string
	// StripPrefix is removed from a package name to derive its folder, when present.
	StripPrefix string
	// ManifestName is the manifest file name inside each package folder.
	ManifestName string
	// BackupSuffix is appended to ManifestName for the backup artifact.
	BackupSuffix string
}

// DefaultLayout returns the conventional Cargo workspace layout rooted at root.
func DefaultLayout(root string) Layout {
	return Layout{
		Root:         root,
		PackagesDir:  DefaultPackagesDir,
		ManifestName: DefaultManifestName,
		BackupSuffix: DefaultBackupSuffix,
	}
}

// FolderFor derives the folder name of a package from its identifier.
func (l Layout) FolderFor(name string) string {
	if l.StripPrefix != "" && strings.HasPrefix(name, l.StripPrefix) && len(name) > len(l.StripPrefix) {
		return name[len(l.StripPrefix):]
	}
	return name
}

// DirFor returns <root>/<packagesDir>/<folder> for the named package.
func (l Layout) DirFor(name string) string {
	return filepath.Join(l.Root, l.PackagesDir, l.FolderFor(name))
}

// Package builds the Package value for name, without touching the filesystem.
func (l Layout) Package(name string) Package {
	dir := l.DirFor(name)
	manifest := filepath.Join(dir, l.ManifestName)
	return Package{
		Name:         name,
		Dir:          dir,
		ManifestPath: manifest,
		BackupPath:   manifest + l.BackupSuffix,
	}
}

// WorkspaceManifestPath returns the path of the workspace root manifest.
func (l Layout) WorkspaceManifestPath() string {
	return filepath.Join(l.Root, l.ManifestName)
}

// JournalPath returns the path of the run journal for the workspace.
func (l Layout) JournalPath() string {
	return filepath.Join(l.Root, HoistDirName, JournalFileName)
}

// StepLogPath returns the path of the registry step transcript for the workspace.
func (l Layout) StepLogPath() string {
	return filepath.Join(l.Root, HoistDirName, StepLogFileName)
}

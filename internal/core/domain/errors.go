package domain

import "go.trai.ch/zerr"

var (
	// ErrConfigReadFailed is returned when the release configuration file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the release configuration file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrEmptyPlan is returned when the configuration does not list any group.
	ErrEmptyPlan = zerr.New("ordering plan has no groups")

	// ErrEmptyGroup is returned when a group lists no packages.
	ErrEmptyGroup = zerr.New("ordering plan contains an empty group")

	// ErrEmptyPackageName is returned when a group lists a blank package name.
	ErrEmptyPackageName = zerr.New("package name must not be empty")

	// ErrDuplicatePackage is returned when a package appears in more than one slot of the plan.
	ErrDuplicatePackage = zerr.New("package listed more than once in the ordering plan")

	// ErrInvalidDelay is returned when the inter-group delay is malformed or negative.
	ErrInvalidDelay = zerr.New("invalid index delay")

	// ErrVersionUnresolved is returned when no target version is configured or declared by the workspace.
	ErrVersionUnresolved = zerr.New("could not resolve the version to publish")

	// ErrWorkspaceManifestReadFailed is returned when the workspace root manifest cannot be read.
	ErrWorkspaceManifestReadFailed = zerr.New("failed to read workspace manifest")

	// ErrManifestReadFailed is returned when a package manifest cannot be read.
	ErrManifestReadFailed = zerr.New("failed to read manifest")

	// ErrManifestWriteFailed is returned when a package manifest cannot be written.
	ErrManifestWriteFailed = zerr.New("failed to write manifest")

	// ErrManifestParseFailed is returned when a manifest is not valid TOML.
	ErrManifestParseFailed = zerr.New("failed to parse manifest")

	// ErrBackupWriteFailed is returned when the manifest backup artifact cannot be created.
	ErrBackupWriteFailed = zerr.New("failed to write manifest backup")

	// ErrBackupReadFailed is returned when the manifest backup artifact cannot be read.
	ErrBackupReadFailed = zerr.New("failed to read manifest backup")

	// ErrBackupRemoveFailed is returned when the manifest backup artifact cannot be deleted.
	ErrBackupRemoveFailed = zerr.New("failed to remove manifest backup")

	// ErrRestoreMismatch is returned when a restored manifest does not match its snapshot.
	ErrRestoreMismatch = zerr.New("restored manifest does not match its snapshot")

	// ErrStepFailed is returned when a registry step exits with a non-zero status.
	ErrStepFailed = zerr.New("registry step failed")

	// ErrRegistryStartFailed is returned when the registry CLI cannot be started.
	ErrRegistryStartFailed = zerr.New("failed to start registry command")

	// ErrReleaseFailed is returned when the ordered plan did not complete.
	ErrReleaseFailed = zerr.New("release failed")

	// ErrRestoreIncomplete is returned when a standalone restoration left manifests behind.
	ErrRestoreIncomplete = zerr.New("some manifests could not be restored")
	// ErrJournalReadFailed is returned when the run journal cannot be read.
	ErrJournalReadFailed = zerr.New("failed to read run journal")

	// ErrJournalWriteFailed is returned when the run journal cannot be written.
	ErrJournalWriteFailed = zerr.New("failed to write run journal")

	// ErrNoRunRecorded is returned when the journal holds no previous run.
	ErrNoRunRecorded = zerr.New("no release run recorded yet")
)

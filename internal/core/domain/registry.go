package domain

// Operation is one registry CLI invocation kind.
type Operation string

const (
	// OpCheck verifies that the package builds.
	OpCheck Operation = "check"
	// OpPackage assembles the distributable archive.
	OpPackage Operation = "package"
	// OpPublishDryRun runs the full publish validation without uploading.
	OpPublishDryRun Operation = "publish-dry-run"
	// OpPublish uploads the package to the registry.
	OpPublish Operation = "publish"
	// OpPrepare is the manifest backup and rewrite ahead of the registry steps.
	// It never reaches the registry CLI.
	OpPrepare Operation = "prepare"
)

// Steps returns the registry operations run for a package, in order.
func Steps(dryRun bool) []Operation {
	if dryRun {
		return []Operation{OpCheck, OpPackage, OpPublishDryRun}
	}
	return []Operation{OpCheck, OpPackage, OpPublish}
}

// Invocation is the outcome of a registry CLI call.
type Invocation struct {
	Op       Operation
	ExitCode int
	// Stderr is the captured standard error, verbatim.
	Stderr string
}

// Succeeded reports whether the invocation exited with status zero.
func (i Invocation) Succeeded() bool {
	return i.ExitCode == 0
}

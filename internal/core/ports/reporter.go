package ports

import (
	"time"

	"go.trai.ch/hoist/internal/core/domain"
)

// Reporter renders the human-readable progress report of a release run.
//
//go:generate go run go.uber.org/mock/mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks
type Reporter interface {
	// RunStarted is called once before the first group.
	RunStarted(opts domain.RunOptions, groups int)
	// GroupStarted is called when a group begins; index is zero-based.
	GroupStarted(index int, group domain.Group)
	// PackageMissing is called when a package folder does not exist.
	PackageMissing(name, dir string)
	// ManifestPrepared is called after a manifest was backed up and rewritten.
	ManifestPrepared(pkg domain.Package, rewritten []string)
	// UnrewrittenReferences is called when published names are still declared
	// as workspace references after rewriting.
	UnrewrittenReferences(pkg domain.Package, names []string)
	// PackageStarted is called before the first step of a package.
	PackageStarted(pkg domain.Package)
	// StepFailed is called with the captured diagnostic of a failed step.
	StepFailed(pkg domain.Package, op domain.Operation, diagnostic string)
	// PackageSucceeded is called when every step of a package succeeded.
	PackageSucceeded(pkg domain.Package, dryRun bool)
	// GroupFailed is called when a group aborts.
	GroupFailed(index int)
	// Waiting is called before the inter-group delay.
	Waiting(delay time.Duration)
	// RestoreStarted is called when finalization begins.
	RestoreStarted()
	// ManifestRestored is called for every manifest restored from its backup.
	ManifestRestored(pkg domain.Package)
	// RestoreFailed is called when a manifest could not be restored.
	RestoreFailed(pkg domain.Package, err error)
	// RunFinished is called once with the final report.
	RunFinished(report domain.RunReport, installHint string)
}

// Presenter renders the read-only views of the CLI.
type Presenter interface {
	// RenderPlan prints what a release run would do.
	RenderPlan(preview domain.PlanPreview)
	// RenderStatus prints the last recorded run.
	RenderStatus(record domain.RunRecord)
	// RenderRestore prints the outcome of a standalone restoration.
	RenderRestore(results []domain.RestoreResult)
}

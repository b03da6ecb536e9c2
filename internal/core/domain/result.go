package domain

import "time"

// RunOptions carries the run-mode toggles threaded through a release run.
type RunOptions struct {
	// DryRun validates every package without uploading anything.
	DryRun bool
	// Version is the pinned version written into rewritten declarations.
	Version string
	// IndexDelay is the pause between successful groups in live mode.
	IndexDelay time.Duration
	// Registry is the registry CLI used for every step.
	Registry RegistryConfig
}

// PackageState is the terminal state of a package within a run.
type PackageState string

const (
	// PackageSucceeded means every step completed.
	PackageSucceeded PackageState = "succeeded"
	// PackageFailed means a step failed or could not run.
	PackageFailed PackageState = "failed"
)

// PackageResult is the outcome of the publish steps for one package.
type PackageResult struct {
	Name  string
	State PackageState
	// FailedStep is the operation that failed, empty on success.
	FailedStep Operation
	// Diagnostic is the captured output of the failed step, verbatim.
	Diagnostic string
}

// Succeeded reports whether the package reached the success state.
func (r PackageResult) Succeeded() bool {
	return r.State == PackageSucceeded
}

// GroupResult is the outcome of one group of the plan.
type GroupResult struct {
	// Index is zero-based.
	Index int
	// Missing lists packages whose folder did not exist.
	Missing []string
	// Packages lists the attempted packages in publish order.
	Packages  []PackageResult
	Succeeded bool
}

// RestoreResult is the outcome of restoring one manifest during finalization.
type RestoreResult struct {
	Package  string
	Restored bool
	Err      error
}

// RunReport summarizes a whole release run.
type RunReport struct {
	DryRun        bool
	Version       string
	GroupsPlanned int
	Groups        []GroupResult
	Restorations  []RestoreResult
	// Err holds a run-level error such as cancellation.
	Err        error
	StartedAt  time.Time
	FinishedAt time.Time
}

// Succeeded reports whether every planned group completed successfully.
func (r RunReport) Succeeded() bool {
	if r.Err != nil || len(r.Groups) != r.GroupsPlanned {
		return false
	}
	for _, g := range r.Groups {
		if !g.Succeeded {
			return false
		}
	}
	return true
}

// Published returns the names of packages whose steps all succeeded.
func (r RunReport) Published() []string {
	var names []string
	for _, g := range r.Groups {
		for _, p := range g.Packages {
			if p.Succeeded() {
				names = append(names, p.Name)
			}
		}
	}
	return names
}

// RestoreFailures returns the restorations that reported an error.
func (r RunReport) RestoreFailures() []RestoreResult {
	var failed []RestoreResult
	for _, res := range r.Restorations {
		if res.Err != nil {
			failed = append(failed, res)
		}
	}
	return failed
}

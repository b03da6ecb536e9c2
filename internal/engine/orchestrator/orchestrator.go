// Package orchestrator runs an ordering plan group by group.
//
// Manifests are backed up and rewritten before a group publishes, and every
// backed-up manifest is restored once the run ends, whatever the outcome.
package orchestrator

import (
	"context"
	"fmt"

	"github.com/jonboulle/clockwork"
	"go.trai.ch/hoist/internal/core/domain"
	"go.trai.ch/hoist/internal/core/ports"
	"go.trai.ch/zerr"
)

// PackagePublisher runs the registry steps of a single package.
type PackagePublisher interface {
	Publish(ctx context.Context, pkg domain.Package, opts domain.RunOptions) domain.PackageResult
}

// Deps groups the collaborators of an Orchestrator.
type Deps struct {
	Store     ports.ManifestStore
	Rewriter  ports.DependencyRewriter
	Inspector ports.ManifestInspector
	Publisher PackagePublisher
	Reporter  ports.Reporter
	Logger    ports.Logger
	// Clock defaults to the real clock.
	Clock clockwork.Clock
}

// Orchestrator executes the release of a workspace layout.
type Orchestrator struct {
	layout      domain.Layout
	installHint string
	deps        Deps
}

// New creates an Orchestrator for layout.
func New(layout domain.Layout, installHint string, deps Deps) *Orchestrator {
	if deps.Clock == nil {
		deps.Clock = clockwork.NewRealClock()
	}
	return &Orchestrator{layout: layout, installHint: installHint, deps: deps}
}

// run holds the state of a single Run call.
type run struct {
	*Orchestrator
	opts   domain.RunOptions
	ledger []domain.Snapshot
}

// Run publishes the plan and always restores the manifests it touched.
func (o *Orchestrator) Run(ctx context.Context, plan domain.Plan, opts domain.RunOptions) (report domain.RunReport) {
	r := &run{Orchestrator: o, opts: opts}
	report = domain.RunReport{
		DryRun:        opts.DryRun,
		Version:       opts.Version,
		GroupsPlanned: len(plan.Groups),
		StartedAt:     o.deps.Clock.Now(),
	}
	o.deps.Reporter.RunStarted(opts, len(plan.Groups))

	defer func() {
		report.Restorations = r.finalize()
		report.FinishedAt = o.deps.Clock.Now()
		o.deps.Reporter.RunFinished(report, o.installHint)
	}()

	published := domain.NewPublishedSet()
	for i, group := range plan.Groups {
		if err := ctx.Err(); err != nil {
			report.Err = err
			return report
		}

		var result domain.GroupResult
		published, result = r.processGroup(ctx, i, group, published)
		report.Groups = append(report.Groups, result)

		if !result.Succeeded {
			o.deps.Reporter.GroupFailed(i)
			report.Err = ctx.Err()
			return report
		}

		if opts.DryRun || plan.IsLast(i) || opts.IndexDelay <= 0 || len(result.Packages) == 0 {
			continue
		}
		if err := r.wait(ctx); err != nil {
			report.Err = err
			return report
		}
	}
	return report
}

// processGroup prepares and publishes one group. The returned set is grown by
// the group's names only when the whole group succeeded.
func (r *run) processGroup(
	ctx context.Context,
	index int,
	group domain.Group,
	published domain.PublishedSet,
) (domain.PublishedSet, domain.GroupResult) {
	result := domain.GroupResult{Index: index}
	r.deps.Reporter.GroupStarted(index, group)

	ready := make([]domain.Package, 0, len(group))
	for _, name := range group {
		pkg := r.layout.Package(name)

		exists, err := r.deps.Store.PackageExists(pkg)
		if err == nil && !exists {
			r.deps.Reporter.PackageMissing(name, pkg.Dir)
			result.Missing = append(result.Missing, name)
			continue
		}
		if err == nil {
			err = r.prepare(pkg, published)
		}
		if err != nil {
			r.deps.Reporter.StepFailed(pkg, domain.OpPrepare, err.Error())
			result.Packages = append(result.Packages, domain.PackageResult{
				Name:       name,
				State:      domain.PackageFailed,
				FailedStep: domain.OpPrepare,
				Diagnostic: err.Error(),
			})
			return published, result
		}
		ready = append(ready, pkg)
	}

	for _, pkg := range ready {
		res := r.deps.Publisher.Publish(ctx, pkg, r.opts)
		result.Packages = append(result.Packages, res)
		if !res.Succeeded() {
			return published, result
		}
	}

	result.Succeeded = true
	return published.With(group...), result
}

// prepare backs up the manifest and pins references to published packages.
func (r *run) prepare(pkg domain.Package, published domain.PublishedSet) error {
	snapshot, ok, err := r.deps.Store.Backup(pkg)
	if err != nil {
		return err
	}
	if !ok {
		r.deps.Logger.Warn(fmt.Sprintf("%s has no manifest, nothing to rewrite", pkg.Name))
		return nil
	}
	r.ledger = append(r.ledger, snapshot)

	rewritten, err := r.deps.Rewriter.Rewrite(pkg, published, r.opts.Version)
	if err != nil {
		return err
	}
	r.deps.Reporter.ManifestPrepared(pkg, rewritten)

	if published.Len() == 0 {
		return nil
	}
	manifest, err := r.deps.Inspector.Inspect(pkg)
	if err != nil {
		r.deps.Logger.Warn(fmt.Sprintf("could not inspect %s after rewrite: %v", pkg.Name, err))
		return nil
	}
	if leftover := manifest.WorkspaceReferences(published.Names()); len(leftover) > 0 {
		r.deps.Reporter.UnrewrittenReferences(pkg, leftover)
	}
	return nil
}

// wait pauses for the index delay unless ctx ends first.
func (r *run) wait(ctx context.Context) error {
	r.deps.Reporter.Waiting(r.opts.IndexDelay)
	select {
	case <-r.deps.Clock.After(r.opts.IndexDelay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// finalize restores every snapshot in the ledger. A failure never stops the
// remaining restorations.
func (r *run) finalize() []domain.RestoreResult {
	r.deps.Reporter.RestoreStarted()

	results := make([]domain.RestoreResult, 0, len(r.ledger))
	for _, snapshot := range r.ledger {
		pkg := snapshot.Package
		res := domain.RestoreResult{Package: pkg.Name}

		restored, err := r.deps.Store.Restore(pkg)
		if err == nil {
			err = r.deps.Store.Verify(snapshot)
		}
		if err != nil {
			res.Err = zerr.With(err, "package", pkg.Name)
			r.deps.Reporter.RestoreFailed(pkg, err)
		} else if restored {
			res.Restored = true
			r.deps.Reporter.ManifestRestored(pkg)
		}
		results = append(results, res)
	}
	return results
}

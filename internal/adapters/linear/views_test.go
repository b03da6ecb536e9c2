package linear_test

import (
	"errors"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/hoist/internal/core/domain"
)

func TestReporter_RenderPlan(t *testing.T) {
	r, buf := newReporter(t)

	r.RenderPlan(domain.PlanPreview{
		Root:       "/ws",
		Version:    "0.5.2",
		IndexDelay: time.Minute,
		Groups: []domain.GroupPreview{
			{Index: 0, Packages: []domain.PackagePreview{
				{Name: "chamber-password-gen", Dir: "/ws/crates/password-gen", Present: true},
				{
					Name: "chamber-vault", Dir: "/ws/crates/vault", Present: true, PendingBackup: true,
					Internal: []domain.Dependency{{Name: "chamber-password-gen", Kind: domain.DependencyWorkspace}},
					Issues:   []domain.OrderIssue{{Kind: domain.IssueSameGroup, Dependency: "chamber-password-gen"}},
				},
			}},
			{Index: 1, Packages: []domain.PackagePreview{
				{Name: "chamber-ghost", Dir: "/ws/crates/ghost"},
				{
					Name: "chamber-api", Dir: "/ws/crates/api", Present: true,
					Internal: []domain.Dependency{{Name: "chamber", Kind: domain.DependencyPath}},
					Issues: []domain.OrderIssue{
						{Kind: domain.IssueLaterGroup, Dependency: "chamber", Group: 2},
						{Kind: domain.IssuePathDependency, Dependency: "chamber", Group: 2},
					},
				},
			}},
		},
	})

	g := goldie.New(t)
	g.Assert(t, "plan", buf.Bytes())
}

func TestReporter_RenderPlanClean(t *testing.T) {
	r, buf := newReporter(t)

	r.RenderPlan(domain.PlanPreview{
		Root:       "/ws",
		Version:    "1.0.0",
		IndexDelay: 0,
		Groups: []domain.GroupPreview{
			{Index: 0, Packages: []domain.PackagePreview{{Name: "core", Dir: "/ws/crates/core", Present: true}}},
		},
	})

	want := "Release plan for version 1.0.0\n" +
		"Inter-group delay 0s (live mode only)\n" +
		"\n" +
		"Group 1\n" +
		"  ● core crates/core\n" +
		"\n" +
		"✓ no ordering issues found\n"
	assert.Equal(t, want, buf.String())
}

func TestReporter_RenderStatus(t *testing.T) {
	r, buf := newReporter(t)
	started := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	r.RenderStatus(domain.RunRecord{
		Version:    "0.5.2",
		StartedAt:  started,
		FinishedAt: started.Add(3*time.Minute + 400*time.Millisecond),
		Missing:    []string{"chamber-ui"},
		Packages: []domain.PackageRecord{
			{Name: "chamber-password-gen", Group: 1, State: domain.PackageSucceeded},
			{Name: "chamber-vault", Group: 1, State: domain.PackageFailed, FailedStep: domain.OpPublish},
		},
	})

	want := "Last release run\n" +
		"Version 0.5.2, live, failed\n" +
		"Started 2026-03-01T12:00:00Z, took 3m0s\n" +
		"\n" +
		"  ✓ chamber-password-gen (group 1)\n" +
		"  ✗ chamber-vault (group 1) failed at publish\n" +
		"  ! chamber-ui missing\n"
	assert.Equal(t, want, buf.String())
}

func TestReporter_RenderRestore(t *testing.T) {
	r, buf := newReporter(t)

	r.RenderRestore([]domain.RestoreResult{
		{Package: "chamber-vault", Restored: true},
		{Package: "chamber-api"},
		{Package: "chamber-ui", Err: errors.New("read-only file system")},
	})

	assert.Equal(t, "  ✓ restored chamber-vault\n  ✗ could not restore chamber-ui: read-only file system\n", buf.String())
}

func TestReporter_RenderRestoreNothing(t *testing.T) {
	r, buf := newReporter(t)

	r.RenderRestore([]domain.RestoreResult{{Package: "chamber-vault"}})

	assert.Equal(t, "nothing to restore\n", buf.String())
}

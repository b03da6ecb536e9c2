package linear_test

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"go.trai.ch/hoist/internal/adapters/linear"
	"go.trai.ch/hoist/internal/core/domain"
)

func newReporter(t *testing.T) (*linear.Reporter, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")
	buf := &bytes.Buffer{}
	return linear.NewReporter(buf), buf
}

func workspace() domain.Layout {
	layout := domain.DefaultLayout("/ws")
	layout.StripPrefix = "chamber-"
	return layout
}

func TestReporter_FailedLiveRun(t *testing.T) {
	r, buf := newReporter(t)
	layout := workspace()
	pwgen := layout.Package("chamber-password-gen")
	api := layout.Package("chamber-api")

	r.RunStarted(domain.RunOptions{Version: "0.5.2"}, 2)
	r.GroupStarted(0, domain.Group{"chamber-password-gen", "chamber-vault"})
	r.PackageMissing("chamber-vault", "/ws/crates/vault")
	r.ManifestPrepared(pwgen, nil)
	r.PackageStarted(pwgen)
	r.PackageSucceeded(pwgen, false)
	r.Waiting(60 * time.Second)
	r.GroupStarted(1, domain.Group{"chamber-api"})
	r.ManifestPrepared(api, []string{"chamber-password-gen"})
	r.UnrewrittenReferences(api, []string{"chamber-vault"})
	r.PackageStarted(api)
	r.StepFailed(api, domain.OpPackage, "error: failed to verify package tarball\n  caused by: missing license\n")
	r.GroupFailed(1)
	r.RestoreStarted()
	r.ManifestRestored(pwgen)
	r.RestoreFailed(api, errors.New("permission denied"))
	r.RunFinished(domain.RunReport{
		GroupsPlanned: 2,
		Groups: []domain.GroupResult{
			{Index: 0, Succeeded: true},
			{Index: 1},
		},
		Restorations: []domain.RestoreResult{
			{Package: "chamber-password-gen", Restored: true},
			{Package: "chamber-api", Err: errors.New("permission denied")},
		},
	}, "cargo install chamber")

	g := goldie.New(t)
	g.Assert(t, "report_failed_live", buf.Bytes())
}

func TestReporter_DryRunSucceeded(t *testing.T) {
	r, buf := newReporter(t)
	pkg := workspace().Package("chamber")

	r.RunStarted(domain.RunOptions{DryRun: true, Version: "0.5.2"}, 1)
	r.PackageSucceeded(pkg, true)
	r.RunFinished(domain.RunReport{
		DryRun:        true,
		GroupsPlanned: 1,
		Groups:        []domain.GroupResult{{Index: 0, Succeeded: true}},
	}, "cargo install chamber")

	want := "Dry run, nothing will be uploaded\n" +
		"Version 0.5.2, 1 group(s)\n" +
		"  ✓ dry run successful for chamber\n" +
		"\n" +
		"✓ Dry run complete\n" +
		"  Run without --dry-run to publish\n"
	assert.Equal(t, want, buf.String())
}

func TestReporter_LiveSucceededWithHint(t *testing.T) {
	r, buf := newReporter(t)

	r.RunFinished(domain.RunReport{
		GroupsPlanned: 1,
		Groups:        []domain.GroupResult{{Index: 0, Succeeded: true}},
	}, "cargo install chamber")

	assert.Equal(t, "\n✓ Publishing complete\n  Users can now install with: cargo install chamber\n", buf.String())
}

func TestReporter_SucceededWithUnrestoredManifest(t *testing.T) {
	r, buf := newReporter(t)
	vault := workspace().Package("chamber-vault")

	r.RestoreStarted()
	r.RestoreFailed(vault, errors.New("permission denied"))
	r.RunFinished(domain.RunReport{
		GroupsPlanned: 1,
		Groups:        []domain.GroupResult{{Index: 0, Succeeded: true}},
		Restorations:  []domain.RestoreResult{{Package: "chamber-vault", Err: errors.New("permission denied")}},
	}, "cargo install chamber")

	g := goldie.New(t)
	g.Assert(t, "report_succeeded_unrestored", buf.Bytes())
}

func TestReporter_CancelledRun(t *testing.T) {
	r, buf := newReporter(t)

	r.RunFinished(domain.RunReport{GroupsPlanned: 3, Err: errors.New("context canceled")}, "")

	assert.Equal(t, "\n✗ Release failed\n  context canceled\n", buf.String())
}

func TestReporter_StepFailedWithoutDiagnostic(t *testing.T) {
	r, buf := newReporter(t)

	r.StepFailed(workspace().Package("chamber-ui"), domain.OpCheck, "")

	assert.Equal(t, "  ✗ check failed for chamber-ui\n", buf.String())
}

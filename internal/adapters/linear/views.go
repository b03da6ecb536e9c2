package linear

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/hoist/internal/core/domain"
	"go.trai.ch/hoist/internal/ui/style"
)

// RenderPlan prints the planned groups with their dependency findings.
func (r *Reporter) RenderPlan(preview domain.PlanPreview) {
	heading := style.Heading(r.renderer)

	r.println(heading.Render("Release plan for version " + preview.Version))
	r.println(r.muted(fmt.Sprintf("Inter-group delay %s (live mode only)", preview.IndexDelay)))

	for _, g := range preview.Groups {
		r.println("")
		r.println(heading.Render(fmt.Sprintf("Group %d", g.Index+1)))
		for _, pkg := range g.Packages {
			r.renderPackagePreview(preview.Root, pkg)
		}
	}

	r.println("")
	switch n := preview.IssueCount(); n {
	case 0:
		r.println(fmt.Sprintf("%s no ordering issues found", r.ok(style.Check)))
	default:
		r.println(fmt.Sprintf("%s %d ordering issue(s) found", r.warn(style.Warning), n))
	}
}

func (r *Reporter) renderPackagePreview(root string, pkg domain.PackagePreview) {
	dir := relativeTo(root, pkg.Dir)
	if !pkg.Present {
		r.println(fmt.Sprintf("  %s %s %s", r.muted(style.Circle), pkg.Name, r.muted(dir+" (missing, will be skipped)")))
		return
	}

	r.println(fmt.Sprintf("  %s %s %s", style.Dot, pkg.Name, r.muted(dir)))
	for _, dep := range pkg.Internal {
		r.println(fmt.Sprintf("      depends on %s %s", dep.Name, r.muted("("+string(dep.Kind)+")")))
	}
	for _, issue := range pkg.Issues {
		r.println(fmt.Sprintf("      %s %s", r.warn(style.Warning), describeIssue(issue)))
	}
	if pkg.PendingBackup {
		r.println(fmt.Sprintf("      %s backup left by an interrupted run, run `hoist restore`", r.warn(style.Warning)))
	}
}

func describeIssue(issue domain.OrderIssue) string {
	switch issue.Kind {
	case domain.IssueSameGroup:
		return fmt.Sprintf("depends on %s in the same group", issue.Dependency)
	case domain.IssueLaterGroup:
		return fmt.Sprintf("depends on %s, published later in group %d", issue.Dependency, issue.Group+1)
	case domain.IssuePathDependency:
		return fmt.Sprintf("declares %s by path, it will not be pinned", issue.Dependency)
	default:
		return string(issue.Kind) + " " + issue.Dependency
	}
}

// RenderStatus prints the last recorded run.
func (r *Reporter) RenderStatus(record domain.RunRecord) {
	mode := "live"
	if record.DryRun {
		mode = "dry run"
	}
	outcome := r.ok("succeeded")
	if !record.Succeeded {
		outcome = r.fail("failed")
	}

	r.println(style.Heading(r.renderer).Render("Last release run"))
	r.println(fmt.Sprintf("Version %s, %s, %s", record.Version, mode, outcome))
	r.println(r.muted(fmt.Sprintf("Started %s, took %s",
		record.StartedAt.UTC().Format(time.RFC3339),
		record.FinishedAt.Sub(record.StartedAt).Round(time.Second))))

	if len(record.Packages) > 0 || len(record.Missing) > 0 {
		r.println("")
	}
	for _, p := range record.Packages {
		if p.State == domain.PackageSucceeded {
			r.println(fmt.Sprintf("  %s %s %s", r.ok(style.Check), p.Name, r.muted(fmt.Sprintf("(group %d)", p.Group))))
			continue
		}
		r.println(fmt.Sprintf("  %s %s %s failed at %s", r.fail(style.Cross), p.Name,
			r.muted(fmt.Sprintf("(group %d)", p.Group)), p.FailedStep))
	}
	for _, name := range record.Missing {
		r.println(fmt.Sprintf("  %s %s missing", r.warn(style.Warning), name))
	}
}

// RenderRestore prints the outcome of a standalone restoration.
func (r *Reporter) RenderRestore(results []domain.RestoreResult) {
	restored := 0
	for _, res := range results {
		if res.Err != nil {
			r.println(fmt.Sprintf("  %s could not restore %s: %v", r.fail(style.Cross), res.Package, res.Err))
			continue
		}
		if res.Restored {
			restored++
			r.println(fmt.Sprintf("  %s restored %s", r.ok(style.Check), res.Package))
		}
	}
	if restored == 0 && len(domain.RunReport{Restorations: results}.RestoreFailures()) == 0 {
		r.println(r.muted("nothing to restore"))
	}
}

func relativeTo(root, dir string) string {
	if root == "" {
		return dir
	}
	rel, err := filepath.Rel(root, dir)
	if err != nil || strings.HasPrefix(rel, "..") {
		return dir
	}
	return filepath.ToSlash(rel)
}

// Package linear provides a synchronous, line-oriented release report for
// terminals and CI logs.
package linear

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/hoist/internal/core/domain"
	"go.trai.ch/hoist/internal/core/ports"
	"go.trai.ch/hoist/internal/ui/output"
	"go.trai.ch/hoist/internal/ui/style"
)

// Reporter implements ports.Reporter by printing one line per event.
type Reporter struct {
	w        io.Writer
	out      *termenv.Output
	renderer *lipgloss.Renderer

	mu sync.Mutex
}

// NewReporter creates a Reporter writing to w, or to stdout when w is nil.
func NewReporter(w io.Writer) *Reporter {
	if w == nil {
		w = os.Stdout
	}
	renderer := lipgloss.NewRenderer(w)
	renderer.SetColorProfile(output.ColorProfile())
	return &Reporter{
		w:        w,
		out:      output.New(w),
		renderer: renderer,
	}
}

var _ ports.Reporter = (*Reporter)(nil)

// RunStarted prints the run mode and target version.
func (r *Reporter) RunStarted(opts domain.RunOptions, groups int) {
	mode := "Publishing to the registry"
	if opts.DryRun {
		mode = "Dry run, nothing will be uploaded"
	}
	r.println(style.Heading(r.renderer).Render(mode))
	r.println(fmt.Sprintf("Version %s, %d group(s)", opts.Version, groups))
}

// GroupStarted prints the group header.
func (r *Reporter) GroupStarted(index int, group domain.Group) {
	r.println("")
	r.println(style.Heading(r.renderer).Render(fmt.Sprintf("Group %d: %s", index+1, strings.Join(group, ", "))))
}

// PackageMissing prints a warning for a package without a folder.
func (r *Reporter) PackageMissing(name, dir string) {
	r.println(fmt.Sprintf("  %s package directory not found: %s (%s skipped)", r.warn(style.Warning), dir, name))
}

// ManifestPrepared prints the manifest that was backed up and the pinned names.
func (r *Reporter) ManifestPrepared(pkg domain.Package, rewritten []string) {
	line := fmt.Sprintf("  %s prepared %s", r.ok(style.Check), manifestLabel(pkg))
	if len(rewritten) > 0 {
		line += r.muted(" (pinned " + strings.Join(rewritten, ", ") + ")")
	}
	r.println(line)
}

// UnrewrittenReferences prints published names that kept a workspace reference.
func (r *Reporter) UnrewrittenReferences(pkg domain.Package, names []string) {
	r.println(fmt.Sprintf("  %s %s still declares %s as workspace dependencies (unrecognized declaration spelling)",
		r.warn(style.Warning), manifestLabel(pkg), strings.Join(names, ", ")))
}

// PackageStarted prints the package header.
func (r *Reporter) PackageStarted(pkg domain.Package) {
	r.println(fmt.Sprintf("%s Publishing %s", style.Arrow, pkg.Name))
}

// StepFailed prints the failed step and its diagnostic verbatim, indented.
func (r *Reporter) StepFailed(pkg domain.Package, op domain.Operation, diagnostic string) {
	r.println(fmt.Sprintf("  %s %s failed for %s", r.fail(style.Cross), op, pkg.Name))
	diagnostic = strings.TrimRight(diagnostic, "\n")
	if diagnostic == "" {
		return
	}
	for _, line := range strings.Split(diagnostic, "\n") {
		r.println("    " + line)
	}
}

// PackageSucceeded prints the success line of a package.
func (r *Reporter) PackageSucceeded(pkg domain.Package, dryRun bool) {
	if dryRun {
		r.println(fmt.Sprintf("  %s dry run successful for %s", r.ok(style.Check), pkg.Name))
		return
	}
	r.println(fmt.Sprintf("  %s published %s", r.ok(style.Check), pkg.Name))
}

// GroupFailed prints the group failure line.
func (r *Reporter) GroupFailed(index int) {
	r.println(fmt.Sprintf("%s publishing failed for group %d", r.fail(style.Cross), index+1))
}

// Waiting prints the inter-group delay notice.
func (r *Reporter) Waiting(delay time.Duration) {
	r.println(fmt.Sprintf("%s waiting %s for registry indexing", r.muted(style.Pause), delay))
}

// RestoreStarted prints the finalization header.
func (r *Reporter) RestoreStarted() {
	r.println("")
	r.println(style.Heading(r.renderer).Render("Restoring original manifests"))
}

// ManifestRestored prints a restored manifest.
func (r *Reporter) ManifestRestored(pkg domain.Package) {
	r.println(fmt.Sprintf("  %s restored %s", r.ok(style.Check), manifestLabel(pkg)))
}

// RestoreFailed prints a manifest that could not be restored.
func (r *Reporter) RestoreFailed(pkg domain.Package, err error) {
	r.println(fmt.Sprintf("  %s could not restore %s: %v", r.fail(style.Cross), manifestLabel(pkg), err))
}

// RunFinished prints the final status, followed by a recovery hint when a
// manifest could not be restored.
func (r *Reporter) RunFinished(report domain.RunReport, installHint string) {
	r.println("")
	switch {
	case !report.Succeeded():
		r.println(fmt.Sprintf("%s Release failed", r.fail(style.Cross)))
		if report.Err != nil {
			r.println("  " + r.muted(report.Err.Error()))
		}
	case report.DryRun:
		r.println(fmt.Sprintf("%s Dry run complete", r.ok(style.Check)))
		r.println("  " + r.muted("Run without --dry-run to publish"))
	default:
		r.println(fmt.Sprintf("%s Publishing complete", r.ok(style.Check)))
		if installHint != "" {
			r.println("  Users can now install with: " + installHint)
		}
	}

	if n := len(report.RestoreFailures()); n > 0 {
		r.println(fmt.Sprintf("  %s %d manifest(s) were not restored, run `hoist restore`", r.warn(style.Warning), n))
	}
}

func (r *Reporter) println(line string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, _ = fmt.Fprintln(r.w, line)
}

func (r *Reporter) ok(s string) string {
	return r.colored(s, style.Green)
}

func (r *Reporter) fail(s string) string {
	return r.colored(s, style.Red)
}

func (r *Reporter) warn(s string) string {
	return r.colored(s, style.Yellow)
}

func (r *Reporter) muted(s string) string {
	return style.Muted(r.renderer).Render(s)
}

func (r *Reporter) colored(s string, c lipgloss.Color) string {
	return r.out.String(s).Foreground(r.out.Color(string(c))).String()
}

// manifestLabel renders a manifest as <folder>/<file>.
func manifestLabel(pkg domain.Package) string {
	return filepath.Base(pkg.Dir) + "/" + filepath.Base(pkg.ManifestPath)
}

// Package app implements the application layer for hoist.
package app

import (
	"context"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/jonboulle/clockwork"
	"go.trai.ch/hoist/internal/core/domain"
	"go.trai.ch/hoist/internal/core/ports"
	"go.trai.ch/hoist/internal/engine/orchestrator"
	"go.trai.ch/hoist/internal/engine/publisher"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Deps lists the ports the application is assembled from.
type Deps struct {
	ConfigLoader ports.ConfigLoader
	Logger       ports.Logger
	Registry     ports.Registry
	Reporter     ports.Reporter
	Presenter    ports.Presenter
	Store        ports.ManifestStore
	Rewriter     ports.DependencyRewriter
	Inspector    ports.ManifestInspector
	Journal      ports.Journal
	Telemetry    ports.TelemetryFactory
}

// App represents the main application logic.
type App struct {
	deps  Deps
	clock clockwork.Clock
}

// New creates a new App instance.
func New(deps Deps) *App {
	return &App{
		deps:  deps,
		clock: clockwork.NewRealClock(),
	}
}

// WithClock replaces the clock used for the inter-group delay.
func (a *App) WithClock(clock clockwork.Clock) *App {
	a.clock = clock
	return a
}

// Options selects the workspace and its configuration file.
type Options struct {
	// Root is the workspace root; empty means the current directory.
	Root string
	// ConfigPath is the configuration file; empty means hoist.yaml at Root.
	ConfigPath string
}

// PublishOptions holds the run-time overrides of a release run.
type PublishOptions struct {
	Options
	DryRun bool
	// Version overrides the configured version when set.
	Version string
	// IndexDelay overrides the configured delay when set.
	IndexDelay string
}

// Publish runs the release of the configured plan.
// It returns domain.ErrReleaseFailed when the run did not complete; the report
// already carries the details. A completed run that left a manifest unrestored
// returns domain.ErrRestoreIncomplete.
func (a *App) Publish(ctx context.Context, opts PublishOptions) error {
	cfg, err := a.load(opts.Options)
	if err != nil {
		return err
	}

	version, err := a.resolveVersion(cfg, opts.Version)
	if err != nil {
		return err
	}

	delay := cfg.IndexDelay
	if opts.IndexDelay != "" {
		if delay, err = domain.ParseDelay(opts.IndexDelay); err != nil {
			return err
		}
	}

	tel, err := a.deps.Telemetry.Open(cfg.Layout.StepLogPath())
	if err != nil {
		return zerr.Wrap(err, "failed to open step transcript")
	}
	defer func() {
		if cerr := tel.Close(); cerr != nil {
			a.deps.Logger.Warn(fmt.Sprintf("step transcript incomplete: %v", cerr))
		}
	}()

	orch := orchestrator.New(cfg.Layout, cfg.InstallHint, orchestrator.Deps{
		Store:     a.deps.Store,
		Rewriter:  a.deps.Rewriter,
		Inspector: a.deps.Inspector,
		Publisher: publisher.New(a.deps.Registry, a.deps.Reporter, tel),
		Reporter:  a.deps.Reporter,
		Logger:    a.deps.Logger,
		Clock:     a.clock,
	})

	report := orch.Run(ctx, cfg.Plan, domain.RunOptions{
		DryRun:     opts.DryRun,
		Version:    version,
		IndexDelay: delay,
		Registry:   resolveRegistry(cfg.Layout.Root, cfg.Registry),
	})

	if err := a.deps.Journal.Save(cfg.Layout.JournalPath(), domain.NewRunRecord(report)); err != nil {
		a.deps.Logger.Warn(fmt.Sprintf("run not recorded: %v", err))
	}

	if !report.Succeeded() {
		return domain.ErrReleaseFailed
	}
	if n := len(report.RestoreFailures()); n > 0 {
		return zerr.With(domain.ErrRestoreIncomplete, "failed", n)
	}
	return nil
}

// Plan renders what a release run would do without touching any manifest.
func (a *App) Plan(_ context.Context, opts Options) error {
	cfg, err := a.load(opts)
	if err != nil {
		return err
	}

	version, err := a.resolveVersion(cfg, "")
	if err != nil {
		return err
	}

	preview := domain.PlanPreview{
		Root:       cfg.Layout.Root,
		Version:    version,
		IndexDelay: cfg.IndexDelay,
		Groups:     make([]domain.GroupPreview, len(cfg.Plan.Groups)),
	}

	var g errgroup.Group
	g.SetLimit(runtime.NumCPU())
	for i, group := range cfg.Plan.Groups {
		preview.Groups[i] = domain.GroupPreview{
			Index:    i,
			Packages: make([]domain.PackagePreview, len(group)),
		}
		for j, name := range group {
			slot := &preview.Groups[i].Packages[j]
			g.Go(func() error {
				p, err := a.previewPackage(cfg, name)
				if err != nil {
					return err
				}
				*slot = p
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return err
	}

	a.deps.Presenter.RenderPlan(preview)
	return nil
}

func (a *App) previewPackage(cfg *domain.ReleaseConfig, name string) (domain.PackagePreview, error) {
	pkg := cfg.Layout.Package(name)
	preview := domain.PackagePreview{Name: name, Dir: pkg.Dir}

	exists, err := a.deps.Store.PackageExists(pkg)
	if err != nil || !exists {
		return preview, err
	}
	preview.Present = true

	if preview.PendingBackup, err = a.deps.Store.PendingBackup(pkg); err != nil {
		return preview, err
	}

	manifest, err := a.deps.Inspector.Inspect(pkg)
	if err != nil {
		return preview, zerr.With(err, "package", name)
	}
	preview.Internal, preview.Issues = cfg.Plan.CheckOrder(name, manifest)
	return preview, nil
}

// Restore puts back every manifest backup left behind by an interrupted run.
func (a *App) Restore(_ context.Context, opts Options) error {
	cfg, err := a.load(opts)
	if err != nil {
		return err
	}

	var (
		results []domain.RestoreResult
		failed  int
	)
	for _, name := range cfg.Plan.Names() {
		pkg := cfg.Layout.Package(name)
		restored, err := a.deps.Store.Restore(pkg)
		if err != nil {
			failed++
		}
		if restored || err != nil {
			results = append(results, domain.RestoreResult{Package: name, Restored: restored, Err: err})
		}
	}

	a.deps.Presenter.RenderRestore(results)
	if failed > 0 {
		return zerr.With(domain.ErrRestoreIncomplete, "failed", failed)
	}
	return nil
}

// Status renders the last recorded release run.
func (a *App) Status(_ context.Context, opts Options) error {
	root, err := resolveRoot(opts.Root)
	if err != nil {
		return err
	}

	record, err := a.deps.Journal.Load(domain.DefaultLayout(root).JournalPath())
	if err != nil {
		return err
	}
	if record == nil {
		return domain.ErrNoRunRecorded
	}

	a.deps.Presenter.RenderStatus(*record)
	return nil
}

func (a *App) load(opts Options) (*domain.ReleaseConfig, error) {
	root, err := resolveRoot(opts.Root)
	if err != nil {
		return nil, err
	}
	return a.deps.ConfigLoader.Load(root, opts.ConfigPath)
}

// resolveVersion picks the override, then the configured version, then the
// version declared by the workspace manifest.
func (a *App) resolveVersion(cfg *domain.ReleaseConfig, override string) (string, error) {
	if v := strings.TrimSpace(override); v != "" {
		return v, nil
	}
	if cfg.Version != "" {
		return cfg.Version, nil
	}

	version, err := a.deps.Inspector.WorkspaceVersion(cfg.Layout)
	if err != nil {
		return "", err
	}
	if version == "" {
		return "", domain.ErrVersionUnresolved
	}
	return version, nil
}

func resolveRoot(root string) (string, error) {
	if root == "" {
		root = "."
	}
	abs, err := filepath.Abs(root)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to resolve workspace root"), "root", root)
	}
	return abs, nil
}

// resolveRegistry anchors a relative registry command path at the workspace root.
// Bare command names are left for PATH lookup.
func resolveRegistry(root string, cfg domain.RegistryConfig) domain.RegistryConfig {
	if strings.ContainsAny(cfg.Command, `/\`) && !filepath.IsAbs(cfg.Command) {
		cfg.Command = filepath.Join(root, cfg.Command)
	}
	return cfg
}

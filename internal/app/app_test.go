package app_test

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/hoist/internal/adapters/journal"
	"go.trai.ch/hoist/internal/adapters/linear"
	"go.trai.ch/hoist/internal/adapters/logger"
	"go.trai.ch/hoist/internal/adapters/manifest"
	"go.trai.ch/hoist/internal/adapters/telemetry"
	"go.trai.ch/hoist/internal/app"
	"go.trai.ch/hoist/internal/core/domain"
	"go.trai.ch/hoist/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	root      string
	cfg       *domain.ReleaseConfig
	loader    *mocks.MockConfigLoader
	registry  *mocks.MockRegistry
	presenter *mocks.MockPresenter
	journal   *journal.Store
	app       *app.App
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func newFixture(t *testing.T, groups ...[]string) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	root := t.TempDir()

	plan, err := domain.NewPlan(groups)
	require.NoError(t, err)
	layout := domain.DefaultLayout(root)
	layout.StripPrefix = "chamber-"

	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	f := &fixture{
		root: root,
		cfg: &domain.ReleaseConfig{
			Layout:      layout,
			Plan:        plan,
			Version:     "0.5.2",
			IndexDelay:  domain.DefaultIndexDelay,
			InstallHint: "cargo install chamber",
			Registry:    domain.RegistryConfig{Command: "cargo"},
		},
		loader:    mocks.NewMockConfigLoader(ctrl),
		registry:  mocks.NewMockRegistry(ctrl),
		presenter: mocks.NewMockPresenter(ctrl),
		journal:   journal.NewStore(),
	}
	f.loader.EXPECT().Load(root, "").DoAndReturn(func(string, string) (*domain.ReleaseConfig, error) {
		return f.cfg, nil
	}).AnyTimes()

	f.app = app.New(app.Deps{
		ConfigLoader: f.loader,
		Logger:       log,
		Registry:     f.registry,
		Reporter:     linear.NewReporter(io.Discard),
		Presenter:    f.presenter,
		Store:        manifest.NewStore(log),
		Rewriter:     manifest.NewRewriter(),
		Inspector:    manifest.NewInspector(),
		Journal:      f.journal,
		Telemetry:    telemetry.NewFactory(),
	}).WithClock(clockwork.NewFakeClock())
	return f
}

func (f *fixture) crate(t *testing.T, folder, content string) string {
	t.Helper()
	path := filepath.Join(f.root, "crates", folder, "Cargo.toml")
	writeFile(t, path, content)
	return path
}

func (f *fixture) opts() app.Options {
	return app.Options{Root: f.root}
}

func TestApp_Publish_DryRun(t *testing.T) {
	f := newFixture(t, []string{"chamber-vault"}, []string{"chamber-api"})
	f.crate(t, "vault", "[package]\nname = \"chamber-vault\"\n")
	api := f.crate(t, "api", "[dependencies]\nchamber-vault = { workspace = true }\n")

	var seen string
	f.registry.EXPECT().Invoke(gomock.Any(), f.cfg.Registry, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.RegistryConfig, pkg domain.Package, op domain.Operation) (domain.Invocation, error) {
			if pkg.Name == "chamber-api" && op == domain.OpCheck {
				data, err := os.ReadFile(pkg.ManifestPath)
				require.NoError(t, err)
				seen = string(data)
			}
			return domain.Invocation{Op: op}, nil
		}).Times(6)

	err := f.app.Publish(context.Background(), app.PublishOptions{Options: f.opts(), DryRun: true})
	require.NoError(t, err)

	assert.Equal(t, "[dependencies]\nchamber-vault = \"0.5.2\"\n", seen)
	restored, err := os.ReadFile(api)
	require.NoError(t, err)
	assert.Equal(t, "[dependencies]\nchamber-vault = { workspace = true }\n", string(restored))

	record, err := f.journal.Load(f.cfg.Layout.JournalPath())
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.True(t, record.Succeeded)
	assert.True(t, record.DryRun)
	assert.Len(t, record.Packages, 2)

	transcript, err := os.ReadFile(f.cfg.Layout.StepLogPath())
	require.NoError(t, err)
	assert.Contains(t, string(transcript), "[publish-dry-run chamber-api] done")
}

func TestApp_Publish_FailedRun(t *testing.T) {
	f := newFixture(t, []string{"chamber-vault"})
	f.crate(t, "vault", "[package]\nname = \"chamber-vault\"\n")

	f.registry.EXPECT().Invoke(gomock.Any(), gomock.Any(), gomock.Any(), domain.OpCheck).
		Return(domain.Invocation{Op: domain.OpCheck, ExitCode: 101, Stderr: "error[E0432]"}, nil)

	err := f.app.Publish(context.Background(), app.PublishOptions{Options: f.opts()})
	require.ErrorIs(t, err, domain.ErrReleaseFailed)

	record, err := f.journal.Load(f.cfg.Layout.JournalPath())
	require.NoError(t, err)
	require.NotNil(t, record)
	assert.False(t, record.Succeeded)
	assert.Equal(t, domain.OpCheck, record.Packages[0].FailedStep)
}

func TestApp_Publish_UnrestoredManifest(t *testing.T) {
	f := newFixture(t, []string{"chamber-vault"})
	vault := f.crate(t, "vault", "[package]\nname = \"chamber-vault\"\n")

	f.registry.EXPECT().Invoke(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ domain.RegistryConfig, _ domain.Package, op domain.Operation) (domain.Invocation, error) {
			if op == domain.OpPublish {
				writeFile(t, vault+".backup", "[package]\nname = \"tampered\"\n")
			}
			return domain.Invocation{Op: op}, nil
		}).Times(3)

	err := f.app.Publish(context.Background(), app.PublishOptions{Options: f.opts()})
	require.ErrorContains(t, err, domain.ErrRestoreIncomplete.Error())
	require.NotErrorIs(t, err, domain.ErrReleaseFailed)

	record, err := f.journal.Load(f.cfg.Layout.JournalPath())
	require.NoError(t, err)
	assert.True(t, record.Succeeded)
}

func TestApp_Publish_Overrides(t *testing.T) {
	f := newFixture(t, []string{"chamber-vault"})
	f.crate(t, "vault", "[package]\nname = \"chamber-vault\"\n")
	f.cfg.Registry.Command = "./tools/fake-cargo"

	want := domain.RegistryConfig{Command: filepath.Join(f.root, "tools", "fake-cargo")}
	f.registry.EXPECT().Invoke(gomock.Any(), want, gomock.Any(), gomock.Any()).
		Return(domain.Invocation{}, nil).Times(3)

	err := f.app.Publish(context.Background(), app.PublishOptions{
		Options:    f.opts(),
		Version:    "1.0.0",
		IndexDelay: "0",
	})
	require.NoError(t, err)

	record, err := f.journal.Load(f.cfg.Layout.JournalPath())
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", record.Version)
}

func TestApp_Publish_InvalidDelay(t *testing.T) {
	f := newFixture(t, []string{"chamber-vault"})

	err := f.app.Publish(context.Background(), app.PublishOptions{Options: f.opts(), IndexDelay: "soon"})
	require.ErrorContains(t, err, domain.ErrInvalidDelay.Error())
}

func TestApp_Publish_VersionFromWorkspace(t *testing.T) {
	f := newFixture(t, []string{"chamber-vault"})
	f.cfg.Version = ""
	f.crate(t, "vault", "[package]\nname = \"chamber-vault\"\n")
	writeFile(t, filepath.Join(f.root, "Cargo.toml"), "[workspace.package]\nversion = \"0.6.0\"\n")

	f.registry.EXPECT().Invoke(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(domain.Invocation{}, nil).Times(3)

	require.NoError(t, f.app.Publish(context.Background(), app.PublishOptions{Options: f.opts(), DryRun: true}))

	record, err := f.journal.Load(f.cfg.Layout.JournalPath())
	require.NoError(t, err)
	assert.Equal(t, "0.6.0", record.Version)
}

func TestApp_Publish_VersionUnresolved(t *testing.T) {
	f := newFixture(t, []string{"chamber-vault"})
	f.cfg.Version = ""

	err := f.app.Publish(context.Background(), app.PublishOptions{Options: f.opts()})
	require.ErrorIs(t, err, domain.ErrVersionUnresolved)
}

func TestApp_Plan(t *testing.T) {
	f := newFixture(t, []string{"chamber-vault", "chamber-api"}, []string{"chamber-cli"})
	f.crate(t, "vault", "[package]\nname = \"chamber-vault\"\n")
	f.crate(t, "api", "[dependencies]\nchamber-vault = { workspace = true }\nchamber-cli = { path = \"../cli\" }\n")
	writeFile(t, filepath.Join(f.root, "crates", "api", "Cargo.toml.backup"), "[package]\n")

	var preview domain.PlanPreview
	f.presenter.EXPECT().RenderPlan(gomock.Any()).Do(func(p domain.PlanPreview) { preview = p })

	require.NoError(t, f.app.Plan(context.Background(), f.opts()))

	assert.Equal(t, "0.5.2", preview.Version)
	assert.Equal(t, time.Minute, preview.IndexDelay)
	require.Len(t, preview.Groups, 2)

	vault := preview.Groups[0].Packages[0]
	assert.True(t, vault.Present)
	assert.Empty(t, vault.Issues)

	api := preview.Groups[0].Packages[1]
	assert.True(t, api.PendingBackup)
	assert.Len(t, api.Internal, 2)
	assert.NotEmpty(t, api.Issues)

	cli := preview.Groups[1].Packages[0]
	assert.False(t, cli.Present)
	assert.Positive(t, preview.IssueCount())
}

func TestApp_Restore(t *testing.T) {
	f := newFixture(t, []string{"chamber-vault", "chamber-api"})
	vault := f.crate(t, "vault", "name = \"rewritten\"\n")
	writeFile(t, vault+".backup", "name = \"original\"\n")
	f.crate(t, "api", "name = \"untouched\"\n")

	f.presenter.EXPECT().RenderRestore([]domain.RestoreResult{{Package: "chamber-vault", Restored: true}})

	require.NoError(t, f.app.Restore(context.Background(), f.opts()))

	data, err := os.ReadFile(vault)
	require.NoError(t, err)
	assert.Equal(t, "name = \"original\"\n", string(data))
	assert.NoFileExists(t, vault+".backup")
}

func TestApp_Status(t *testing.T) {
	f := newFixture(t, []string{"chamber-vault"})

	err := f.app.Status(context.Background(), f.opts())
	require.ErrorIs(t, err, domain.ErrNoRunRecorded)

	record := domain.RunRecord{Version: "0.5.2", Succeeded: true, Packages: []domain.PackageRecord{}}
	require.NoError(t, f.journal.Save(f.cfg.Layout.JournalPath(), record))

	f.presenter.EXPECT().RenderStatus(gomock.Any()).Do(func(r domain.RunRecord) {
		assert.Equal(t, "0.5.2", r.Version)
	})
	require.NoError(t, f.app.Status(context.Background(), f.opts()))
}

func TestComponents_SetJSONLogs(t *testing.T) {
	var buf bytes.Buffer
	c := app.NewComponents(nil, logger.NewWithWriter(&buf))

	c.SetJSONLogs(true)
	c.Logger.Info("hello")

	assert.Contains(t, buf.String(), `"msg":"hello"`)
}

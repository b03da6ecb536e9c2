// Package config provides the release configuration loader for hoist.
package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/hoist/internal/core/domain"
	"go.trai.ch/hoist/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// FileConfigLoader implements ports.ConfigLoader using a YAML file.
type FileConfigLoader struct {
	Logger ports.Logger
}

// NewLoader creates a new FileConfigLoader.
func NewLoader(logger ports.Logger) *FileConfigLoader {
	return &FileConfigLoader{Logger: logger}
}

var _ ports.ConfigLoader = (*FileConfigLoader)(nil)

// Load reads the release configuration of the workspace at root.
// An empty path selects hoist.yaml at the root; relative paths resolve against root.
func (l *FileConfigLoader) Load(root, path string) (*domain.ReleaseConfig, error) {
	if path == "" {
		path = domain.ConfigFileName
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(root, path)
	}

	cfg, err := Load(root, path)
	if err != nil {
		return nil, err
	}
	if l.Logger != nil && cfg.Registry.Command != domain.DefaultRegistryCommand {
		l.Logger.Info("using registry command " + cfg.Registry.Command)
	}
	return cfg, nil
}

// Load parses the configuration file at path for the workspace rooted at root.
func Load(root, path string) (*domain.ReleaseConfig, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var file Hoistfile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	cfg, err := file.toDomain(root)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}
	return cfg, nil
}

func (f *Hoistfile) toDomain(root string) (*domain.ReleaseConfig, error) {
	plan, err := domain.NewPlan(f.Groups)
	if err != nil {
		return nil, err
	}

	delay, err := domain.ParseDelay(f.IndexDelay)
	if err != nil {
		return nil, err
	}

	layout := domain.DefaultLayout(root)
	layout.StripPrefix = f.StripPrefix
	if f.PackagesDir != "" {
		layout.PackagesDir = filepath.FromSlash(f.PackagesDir)
	}
	if f.Manifest != "" {
		layout.ManifestName = f.Manifest
	}
	if f.BackupSuffix != "" {
		layout.BackupSuffix = f.BackupSuffix
	}

	registry := domain.RegistryConfig{
		Command: strings.TrimSpace(f.Registry.Command),
		Env:     f.Registry.Env,
	}
	if registry.Command == "" {
		registry.Command = domain.DefaultRegistryCommand
	}

	return &domain.ReleaseConfig{
		Layout:      layout,
		Plan:        plan,
		Version:     strings.TrimSpace(f.Version),
		IndexDelay:  delay,
		InstallHint: strings.TrimSpace(f.InstallHint),
		Registry:    registry,
	}, nil
}

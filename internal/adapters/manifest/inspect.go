package manifest

import (
	"errors"
	"io/fs"
	"maps"
	"os"
	"slices"

	"github.com/pelletier/go-toml/v2"
	"go.trai.ch/hoist/internal/core/domain"
	"go.trai.ch/hoist/internal/core/ports"
	"go.trai.ch/zerr"
)

// dependencyTables lists the dependency tables in precedence order.
var dependencyTables = []string{"dependencies", "build-dependencies", "dev-dependencies"}

// Inspector implements ports.ManifestInspector with go-toml.
type Inspector struct{}

// NewInspector creates a new Inspector.
func NewInspector() *Inspector {
	return &Inspector{}
}

var _ ports.ManifestInspector = (*Inspector)(nil)

// Inspect parses the manifest of pkg and lists its dependency declarations,
// including platform-specific [target.<cfg>.*] tables.
func (i *Inspector) Inspect(pkg domain.Package) (domain.Manifest, error) {
	data, err := os.ReadFile(pkg.ManifestPath)
	if err != nil {
		return domain.Manifest{}, wrapPath(err, domain.ErrManifestReadFailed, pkg.ManifestPath)
	}
	m, err := ParseManifest(data)
	if err != nil {
		return domain.Manifest{}, zerr.With(err, "path", pkg.ManifestPath)
	}
	return m, nil
}

// ParseManifest parses raw manifest text.
func ParseManifest(data []byte) (domain.Manifest, error) {
	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return domain.Manifest{}, zerr.Wrap(err, domain.ErrManifestParseFailed.Error())
	}

	m := domain.Manifest{Dependencies: make(map[string]domain.Dependency)}
	if pkg, ok := doc["package"].(map[string]any); ok {
		m.PackageName, _ = pkg["name"].(string)
	}

	collect(&m, doc, "")

	if targets, ok := doc["target"].(map[string]any); ok {
		for _, cfg := range sortedKeys(targets) {
			if table, ok := targets[cfg].(map[string]any); ok {
				collect(&m, table, "target."+cfg+".")
			}
		}
	}
	return m, nil
}

// collect records every declaration of doc's dependency tables. The first
// declaration of a name also becomes its entry in m.Dependencies.
func collect(m *domain.Manifest, doc map[string]any, prefix string) {
	for _, table := range dependencyTables {
		deps, ok := doc[table].(map[string]any)
		if !ok {
			continue
		}
		for _, name := range sortedKeys(deps) {
			dep := classify(deps[name])
			dep.Name = name
			dep.Table = prefix + table
			m.Declarations = append(m.Declarations, dep)
			if _, seen := m.Dependencies[name]; !seen {
				m.Dependencies[name] = dep
			}
		}
	}
}

func classify(value any) domain.Dependency {
	switch v := value.(type) {
	case string:
		return domain.Dependency{Kind: domain.DependencyPinned, Version: v}
	case map[string]any:
		version, _ := v["version"].(string)
		if ws, ok := v["workspace"].(bool); ok && ws {
			return domain.Dependency{Kind: domain.DependencyWorkspace}
		}
		if _, ok := v["path"]; ok {
			return domain.Dependency{Kind: domain.DependencyPath, Version: version}
		}
		if _, ok := v["git"]; ok {
			return domain.Dependency{Kind: domain.DependencyOther}
		}
		if version != "" {
			return domain.Dependency{Kind: domain.DependencyPinned, Version: version}
		}
	}
	return domain.Dependency{Kind: domain.DependencyOther}
}

func sortedKeys(m map[string]any) []string {
	return slices.Sorted(maps.Keys(m))
}

type workspaceManifest struct {
	Workspace struct {
		Package struct {
			Version string `toml:"version"`
		} `toml:"package"`
	} `toml:"workspace"`
}

// WorkspaceVersion returns [workspace.package].version of the workspace root
// manifest. A missing manifest or table yields an empty version.
func (i *Inspector) WorkspaceVersion(layout domain.Layout) (string, error) {
	path := layout.WorkspaceManifestPath()
	data, err := os.ReadFile(path) //nolint:gosec // path derived from the workspace root
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", wrapPath(err, domain.ErrWorkspaceManifestReadFailed, path)
	}

	var ws workspaceManifest
	if err := toml.Unmarshal(data, &ws); err != nil {
		return "", wrapPath(err, domain.ErrManifestParseFailed, path)
	}
	return ws.Workspace.Package.Version, nil
}

package domain

// Package is a unit of publishable code with its own manifest.
type Package struct {
	// Name is the registry identifier of the package.
	Name string
	// Dir is the package folder.
	Dir string
	// ManifestPath is the manifest file inside Dir.
	ManifestPath string
	// BackupPath is the sibling backup artifact of the manifest.
	BackupPath string
}

// DependencyKind classifies how a manifest declares a dependency.
type DependencyKind string

const (
	// DependencyWorkspace resolves to the sibling package through the workspace.
	DependencyWorkspace DependencyKind = "workspace"
	// DependencyPinned names an exact published version.
	DependencyPinned DependencyKind = "pinned"
	// DependencyPath points at a local path.
	DependencyPath DependencyKind = "path"
	// DependencyOther covers git sources and anything else.
	DependencyOther DependencyKind = "other"
)

// Dependency is a single dependency declaration found in a manifest.
type Dependency struct {
	Name    string
	Kind    DependencyKind
	Version string
	// Table is the manifest table that declared it, e.g. "dependencies".
	Table string
}

// Manifest is the parsed view of a package manifest.
type Manifest struct {
	// PackageName is [package].name, empty if absent.
	PackageName string
	// Dependencies maps a dependency name to its declaration. When the same
	// name is declared in several tables, the first table in
	// dependencies, build-dependencies, dev-dependencies order wins.
	Dependencies map[string]Dependency
	// Declarations lists every declaration in table order, including names
	// declared again in a later table.
	Declarations []Dependency
}

// WorkspaceReferences returns the subset of names that any table still declares
// as a workspace reference.
func (m Manifest) WorkspaceReferences(names []string) []string {
	var refs []string
	for _, name := range names {
		if m.declaresWorkspace(name) {
			refs = append(refs, name)
		}
	}
	return refs
}

func (m Manifest) declaresWorkspace(name string) bool {
	for _, dep := range m.Declarations {
		if dep.Name == name && dep.Kind == DependencyWorkspace {
			return true
		}
	}
	return false
}

package domain

import "time"

// IssueKind classifies an ordering problem found while previewing a plan.
type IssueKind string

const (
	// IssueSameGroup means a package depends on a member of its own group.
	IssueSameGroup IssueKind = "same-group"
	// IssueLaterGroup means a package depends on a package published after it.
	IssueLaterGroup IssueKind = "later-group"
	// IssuePathDependency means an internal dependency is declared by path and
	// will not be pinned before publishing.
	IssuePathDependency IssueKind = "path-dependency"
)

// OrderIssue is a dependency declaration that conflicts with the plan.
type OrderIssue struct {
	Kind       IssueKind
	Dependency string
	// Group is the zero-based group of the dependency.
	Group int
}

// PackagePreview is the planned treatment of one package.
type PackagePreview struct {
	Name    string
	Dir     string
	Present bool
	// PendingBackup is set when a backup artifact from an earlier run exists.
	PendingBackup bool
	// Internal lists declarations of other packages of the plan.
	Internal []Dependency
	Issues   []OrderIssue
}

// GroupPreview is the planned treatment of one group.
type GroupPreview struct {
	Index    int
	Packages []PackagePreview
}

// PlanPreview describes what a release run would do, without doing it.
type PlanPreview struct {
	// Root is the workspace root the package folders are relative to.
	Root       string
	Version    string
	IndexDelay time.Duration
	Groups     []GroupPreview
}

// IssueCount returns the number of ordering issues across the plan.
func (p PlanPreview) IssueCount() int {
	n := 0
	for _, g := range p.Groups {
		for _, pkg := range g.Packages {
			n += len(pkg.Issues)
		}
	}
	return n
}

// CheckOrder lists the declarations of m that refer to packages of the plan,
// and the ones that conflict with the group of name.
func (p Plan) CheckOrder(name string, m Manifest) ([]Dependency, []OrderIssue) {
	own := p.GroupOf(name)

	var internal []Dependency
	var issues []OrderIssue
	for _, dep := range p.Names() {
		decl, ok := m.Dependencies[dep]
		if !ok || dep == name {
			continue
		}
		internal = append(internal, decl)

		group := p.GroupOf(dep)
		switch {
		case group == own:
			issues = append(issues, OrderIssue{Kind: IssueSameGroup, Dependency: dep, Group: group})
		case group > own:
			issues = append(issues, OrderIssue{Kind: IssueLaterGroup, Dependency: dep, Group: group})
		}
		if decl.Kind == DependencyPath {
			issues = append(issues, OrderIssue{Kind: IssuePathDependency, Dependency: dep, Group: group})
		}
	}
	return internal, issues
}

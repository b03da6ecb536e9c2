package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// Group is a set of packages publishable in any relative order among themselves.
type Group []string

// Plan is the caller-supplied ordered sequence of groups.
//
// Every dependency of a package in group i is expected to live in a group with
// a lower index. The plan is trusted and is not checked against manifests at
// run time.
type Plan struct {
	Groups []Group
}

// NewPlan validates the groups and returns a Plan.
func NewPlan(groups [][]string) (Plan, error) {
	if len(groups) == 0 {
		return Plan{}, ErrEmptyPlan
	}

	seen := make(map[string]int, len(groups))
	plan := Plan{Groups: make([]Group, 0, len(groups))}
	for i, names := range groups {
		if len(names) == 0 {
			return Plan{}, zerr.With(ErrEmptyGroup, "group", i+1)
		}
		group := make(Group, 0, len(names))
		for _, name := range names {
			name = strings.TrimSpace(name)
			if name == "" {
				return Plan{}, zerr.With(ErrEmptyPackageName, "group", i+1)
			}
			if prev, ok := seen[name]; ok {
				err := zerr.With(ErrDuplicatePackage, "package", name)
				err = zerr.With(err, "first_group", prev)
				return Plan{}, zerr.With(err, "second_group", i+1)
			}
			seen[name] = i + 1
			group = append(group, name)
		}
		plan.Groups = append(plan.Groups, group)
	}
	return plan, nil
}

// Names returns every package name in plan order.
func (p Plan) Names() []string {
	var names []string
	for _, g := range p.Groups {
		names = append(names, g...)
	}
	return names
}

// GroupOf returns the zero-based group index of name, or -1.
func (p Plan) GroupOf(name string) int {
	for i, g := range p.Groups {
		for _, n := range g {
			if n == name {
				return i
			}
		}
	}
	return -1
}

// IsLast reports whether index is the final group.
func (p Plan) IsLast(index int) bool {
	return index == len(p.Groups)-1
}

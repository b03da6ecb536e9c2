package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/hoist/internal/core/domain"
)

func TestPlan_CheckOrder(t *testing.T) {
	plan, err := domain.NewPlan([][]string{
		{"chamber-password-gen", "chamber-vault"},
		{"chamber-api"},
		{"chamber"},
	})
	require.NoError(t, err)

	m := domain.Manifest{Dependencies: map[string]domain.Dependency{
		"chamber-password-gen": {Name: "chamber-password-gen", Kind: domain.DependencyWorkspace},
		"chamber-api":          {Name: "chamber-api", Kind: domain.DependencyWorkspace},
		"chamber":              {Name: "chamber", Kind: domain.DependencyPath},
		"serde":                {Name: "serde", Kind: domain.DependencyPinned, Version: "1"},
	}}

	internal, issues := plan.CheckOrder("chamber-api", m)

	names := make([]string, 0, len(internal))
	for _, d := range internal {
		names = append(names, d.Name)
	}
	assert.Equal(t, []string{"chamber-password-gen", "chamber"}, names)

	assert.Equal(t, []domain.OrderIssue{
		{Kind: domain.IssueLaterGroup, Dependency: "chamber", Group: 2},
		{Kind: domain.IssuePathDependency, Dependency: "chamber", Group: 2},
	}, issues)
}

func TestPlan_CheckOrder_SameGroup(t *testing.T) {
	plan, err := domain.NewPlan([][]string{{"a", "b"}})
	require.NoError(t, err)

	m := domain.Manifest{Dependencies: map[string]domain.Dependency{
		"a": {Name: "a", Kind: domain.DependencyWorkspace},
	}}

	_, issues := plan.CheckOrder("b", m)
	assert.Equal(t, []domain.OrderIssue{{Kind: domain.IssueSameGroup, Dependency: "a", Group: 0}}, issues)
}

func TestPlanPreview_IssueCount(t *testing.T) {
	preview := domain.PlanPreview{Groups: []domain.GroupPreview{
		{Packages: []domain.PackagePreview{{Issues: make([]domain.OrderIssue, 2)}}},
		{Packages: []domain.PackagePreview{{}, {Issues: make([]domain.OrderIssue, 1)}}},
	}}
	assert.Equal(t, 3, preview.IssueCount())
}

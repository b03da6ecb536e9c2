package manifest_test

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/hoist/internal/adapters/manifest"
	"go.trai.ch/hoist/internal/core/domain"
)

func TestRewriteContent(t *testing.T) {
	tests := []struct {
		name      string
		content   string
		names     []string
		want      string
		rewritten []string
	}{
		{
			name:      "compact spelling",
			content:   "pkg-a = {workspace = true}\n",
			names:     []string{"pkg-a"},
			want:      "pkg-a = \"1.2.3\"\n",
			rewritten: []string{"pkg-a"},
		},
		{
			name:      "spaced spelling",
			content:   "pkg-a = { workspace = true }\n",
			names:     []string{"pkg-a"},
			want:      "pkg-a = \"1.2.3\"\n",
			rewritten: []string{"pkg-a"},
		},
		{
			name:      "indented declaration",
			content:   "[dependencies]\n  pkg-a = {workspace = true}\n",
			names:     []string{"pkg-a"},
			want:      "[dependencies]\n  pkg-a = \"1.2.3\"\n",
			rewritten: []string{"pkg-a"},
		},
		{
			name:      "every table",
			content:   "[dependencies]\npkg-a = {workspace = true}\n[dev-dependencies]\npkg-a = { workspace = true }\n",
			names:     []string{"pkg-a"},
			want:      "[dependencies]\npkg-a = \"1.2.3\"\n[dev-dependencies]\npkg-a = \"1.2.3\"\n",
			rewritten: []string{"pkg-a"},
		},
		{
			name:      "suffix of another name is not matched",
			content:   "my-pkg-a = {workspace = true}\npkg-a-extra = {workspace = true}\n",
			names:     []string{"pkg-a"},
			want:      "my-pkg-a = {workspace = true}\npkg-a-extra = {workspace = true}\n",
			rewritten: nil,
		},
		{
			name:      "unrecognized spelling is left alone",
			content:   "pkg-a = { workspace = true, features = [\"x\"] }\npkg-a.workspace = true\n",
			names:     []string{"pkg-a"},
			want:      "pkg-a = { workspace = true, features = [\"x\"] }\npkg-a.workspace = true\n",
			rewritten: nil,
		},
		{
			name:      "unmatched names are ignored",
			content:   "pkg-a = {workspace = true}\nserde = \"1\"\n",
			names:     []string{"pkg-b", "pkg-a"},
			want:      "pkg-a = \"1.2.3\"\nserde = \"1\"\n",
			rewritten: []string{"pkg-a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, rewritten := manifest.RewriteContent(tt.content, tt.names, "1.2.3")
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.rewritten, rewritten)
		})
	}
}

func TestRewriter_Rewrite(t *testing.T) {
	pkg := newPackage(t, "chamber-vault", vaultManifest)

	rewritten, err := manifest.NewRewriter().Rewrite(pkg, domain.NewPublishedSet("chamber-password-gen"), "0.5.2")
	require.NoError(t, err)
	assert.Equal(t, []string{"chamber-password-gen"}, rewritten)

	content := readFile(t, pkg.ManifestPath)
	assert.Contains(t, content, `chamber-password-gen = "0.5.2"`)
	assert.NotContains(t, content, "chamber-password-gen = {workspace = true}")
	assert.Contains(t, content, "version.workspace = true", "package table untouched")
}

func TestRewriter_NoMatchDoesNotWrite(t *testing.T) {
	pkg := newPackage(t, "chamber-vault", vaultManifest)
	past := time.Now().Add(-time.Hour).Truncate(time.Second)
	require.NoError(t, os.Chtimes(pkg.ManifestPath, past, past))

	rewritten, err := manifest.NewRewriter().Rewrite(pkg, domain.NewPublishedSet("chamber-api"), "0.5.2")
	require.NoError(t, err)
	assert.Empty(t, rewritten)

	info, err := os.Stat(pkg.ManifestPath)
	require.NoError(t, err)
	assert.True(t, info.ModTime().Equal(past))
}

func TestRewriter_MissingManifest(t *testing.T) {
	pkg := newPackage(t, "chamber-vault", "")

	_, err := manifest.NewRewriter().Rewrite(pkg, domain.NewPublishedSet("chamber-api"), "0.5.2")
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrManifestReadFailed.Error())
}

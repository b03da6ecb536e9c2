package manifest

import (
	"os"
	"regexp"
	"strings"

	"go.trai.ch/hoist/internal/core/domain"
	"go.trai.ch/hoist/internal/core/ports"
)

// workspaceReference matches the two recognized spellings of a workspace
// dependency. Any other spelling is left untouched.
const workspaceReference = `(\{workspace = true\}|\{ workspace = true \})`

// Rewriter implements ports.DependencyRewriter with textual substitution.
type Rewriter struct{}

// NewRewriter creates a new Rewriter.
func NewRewriter() *Rewriter {
	return &Rewriter{}
}

var _ ports.DependencyRewriter = (*Rewriter)(nil)

// Rewrite pins every workspace reference to a published name to version.
// The manifest is written only when at least one declaration changed.
func (r *Rewriter) Rewrite(pkg domain.Package, published domain.PublishedSet, version string) ([]string, error) {
	data, err := os.ReadFile(pkg.ManifestPath)
	if err != nil {
		return nil, wrapPath(err, domain.ErrManifestReadFailed, pkg.ManifestPath)
	}

	content, rewritten := RewriteContent(string(data), published.Names(), version)
	if len(rewritten) == 0 {
		return nil, nil
	}

	if err := os.WriteFile(pkg.ManifestPath, []byte(content), domain.FilePerm); err != nil {
		return nil, wrapPath(err, domain.ErrManifestWriteFailed, pkg.ManifestPath)
	}
	return rewritten, nil
}

// RewriteContent applies the substitution to manifest text and returns the
// new text together with the names that matched, in the order given.
func RewriteContent(content string, names []string, version string) (string, []string) {
	var rewritten []string
	for _, name := range names {
		re := declaration(name)
		if !re.MatchString(content) {
			continue
		}
		content = re.ReplaceAllString(content, `${1}`+escapeReplacement(name)+` = "`+escapeReplacement(version)+`"`)
		rewritten = append(rewritten, name)
	}
	return content, rewritten
}

// declaration matches `<name> = <reference>` where name starts a line or
// follows whitespace, so that `my-chamber` never matches `chamber`.
func declaration(name string) *regexp.Regexp {
	return regexp.MustCompile(`(?m)(^|[ \t])` + regexp.QuoteMeta(name) + ` = ` + workspaceReference)
}

func escapeReplacement(s string) string {
	return strings.ReplaceAll(s, "$", "$$")
}

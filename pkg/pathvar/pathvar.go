// Package pathvar rewrites absolute file paths into portable,
// project-variable-relative form. A path under the project root becomes
// "$VAR/rel/to/file" with forward slashes; everything else passes through
// unchanged.
package pathvar

import (
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// DefaultVar is the conventional project-root variable name.
const DefaultVar = "HIP"

// Normalizer rewrites absolute paths against a single project root.
// The zero value performs no rewriting.
type Normalizer struct {
	Root            string // absolute project root; empty disables rewriting
	Var             string // variable name without the dollar sign
	CaseInsensitive bool   // compare the root prefix case-insensitively
}

// New returns a Normalizer for the given root using DefaultVar.
func New(root string) *Normalizer {
	return &Normalizer{Root: root, Var: DefaultVar}
}

// prefix returns the "$VAR/" prefix this normalizer emits.
func (n *Normalizer) prefix() string {
	v := n.Var
	if v == "" {
		v = DefaultVar
	}
	return "$" + v + "/"
}

// Normalize rewrites p to "$VAR/rel" when p is a descendant of Root,
// and returns p unchanged otherwise. Idempotent: a path already carrying
// the variable prefix is returned as-is. Output uses forward slashes.
func (n *Normalizer) Normalize(p string) string {
	if n == nil || n.Root == "" || p == "" {
		return p
	}
	if strings.HasPrefix(p, n.prefix()) {
		return p
	}

	root := filepath.ToSlash(filepath.Clean(n.Root))
	clean := filepath.ToSlash(filepath.Clean(p))

	rel, ok := trimRoot(clean, root, n.CaseInsensitive)
	if !ok {
		return p
	}
	return n.prefix() + rel
}

// trimRoot strips root from p at a path-component boundary, returning the
// remainder and whether p was a strict descendant of root.
func trimRoot(p, root string, fold bool) (string, bool) {
	if len(p) <= len(root) {
		return "", false
	}
	head, tail := p[:len(root)], p[len(root):]
	if fold {
		if !strings.EqualFold(head, root) {
			return "", false
		}
	} else if head != root {
		return "", false
	}
	if !strings.HasPrefix(tail, "/") {
		return "", false
	}
	return strings.TrimPrefix(tail, "/"), true
}

// seqPattern matches a trailing frame number immediately before the final
// extension, e.g. "beauty.0042.exr" or "smoke_010.vdb".
var seqPattern = regexp.MustCompile(`^(.*?)(\d+)(\.[^.]+)$`)

// SubstituteSequence replaces the frame digits of a sequence-style path
// with a padded frame expression: "beauty.0042.exr" -> "beauty.$F4.exr".
// Paths without a trailing frame number are returned unchanged.
func SubstituteSequence(p string) string {
	m := seqPattern.FindStringSubmatch(p)
	if m == nil {
		return p
	}
	width := len(m[2])
	return m[1] + "$F" + strconv.Itoa(width) + m[3]
}

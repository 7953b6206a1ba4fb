// Package prompt handles the one interactive step of drop resolution:
// choosing between candidate node-creation plans when the graph context
// alone cannot decide. The prompt is synchronous and blocking; dismissing
// it cancels the drop entirely rather than picking a default.
package prompt

import (
	"errors"
	"strings"

	"github.com/chazu/nodedrop/pkg/host"
	"github.com/chazu/nodedrop/pkg/plan"
)

// ErrCancelled is returned when the user dismisses the prompt.
var ErrCancelled = errors.New("disambiguation cancelled")

// Chooser presents candidate plans and returns the chosen one.
type Chooser interface {
	Choose(candidates []plan.Template) (plan.Template, error)
}

// Fixed always picks the candidate with the given template ID. Used by
// embedding hosts with a stored preference and by tests.
type Fixed struct {
	ID string
}

func (f Fixed) Choose(candidates []plan.Template) (plan.Template, error) {
	for _, c := range candidates {
		if c.ID == f.ID {
			return c, nil
		}
	}
	return plan.Template{}, ErrCancelled
}

// Cancel dismisses every prompt.
type Cancel struct{}

func (Cancel) Choose([]plan.Template) (plan.Template, error) {
	return plan.Template{}, ErrCancelled
}

// DetectModel inspects a material network's existing children for a
// committed shading model. Returns "mtlx", "principled", "arnold", or ""
// when the network carries no hint. A non-empty result lets the pipeline
// skip the prompt: the network is not genuinely ambiguous anymore.
// MaterialX wins over the other models when a network mixes them.
func DetectModel(c host.Container) string {
	if c == nil {
		return ""
	}
	types := c.ChildTypeNames()
	markers := []struct {
		model string
		tags  []string
	}{
		{"mtlx", []string{"mtlx"}},
		{"principled", []string{"principled", "texture::2.0"}},
		{"arnold", []string{"arnold::"}},
	}
	for _, m := range markers {
		for _, typeID := range types {
			for _, tag := range m.tags {
				if strings.Contains(typeID, tag) {
					return m.model
				}
			}
		}
	}
	return ""
}

// MatchModel returns the candidate whose ID carries the detected shading
// model tag, if exactly one does.
func MatchModel(candidates []plan.Template, model string) (plan.Template, bool) {
	if model == "" {
		return plan.Template{}, false
	}
	var found plan.Template
	n := 0
	for _, c := range candidates {
		if strings.Contains(c.ID, model) {
			found = c
			n++
		}
	}
	return found, n == 1
}

package prompt

import (
	"errors"

	"github.com/charmbracelet/huh"

	"github.com/chazu/nodedrop/pkg/plan"
)

// Terminal is a huh-backed Chooser for terminal hosts. Esc or ctrl-c
// maps to ErrCancelled.
type Terminal struct {
	Title string
}

func (t Terminal) Choose(candidates []plan.Template) (plan.Template, error) {
	title := t.Title
	if title == "" {
		title = "Choose render engine"
	}

	options := make([]huh.Option[string], 0, len(candidates))
	for _, c := range candidates {
		options = append(options, huh.NewOption(c.Label, c.ID))
	}

	var picked string
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title(title).
			Options(options...).
			Value(&picked),
	))
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return plan.Template{}, ErrCancelled
		}
		return plan.Template{}, err
	}

	for _, c := range candidates {
		if c.ID == picked {
			return c, nil
		}
	}
	return plan.Template{}, ErrCancelled
}

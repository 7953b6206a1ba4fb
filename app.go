// Package nodedrop resolves files dragged from outside the application
// into nodes in the host's network editor. The host registers its drop
// callback to call App.HandleDrop with the extracted file paths and the
// current network context; the pipeline does the rest.
package nodedrop

import (
	"log/slog"

	"github.com/chazu/nodedrop/pkg/config"
	"github.com/chazu/nodedrop/pkg/drop"
	"github.com/chazu/nodedrop/pkg/host"
	"github.com/chazu/nodedrop/pkg/prompt"
)

// App is the host-facing binding around the drop pipeline.
type App struct {
	cfg      config.Config
	pipeline *drop.Pipeline
}

// FileResultData is the JSON-serializable per-file outcome returned to
// the host UI.
type FileResultData struct {
	Path   string   `json:"path"`
	Bound  string   `json:"bound"`
	Status string   `json:"status"`
	Plan   string   `json:"plan,omitempty"`
	Nodes  []string `json:"nodes,omitempty"`
	Reason string   `json:"reason,omitempty"`
}

// DropResult is the full result of one drop event.
type DropResult struct {
	Files []FileResultData `json:"files"`
	// Accepted is false when no file produced nodes, letting the host
	// decline the gesture outright.
	Accepted bool `json:"accepted"`
}

// NewApp creates an App with the given configuration and chooser. The
// chooser is the host's disambiguation dialog; tests and headless hosts
// pass a fixed or cancelling one.
func NewApp(cfg config.Config, chooser prompt.Chooser, log *slog.Logger) (*App, error) {
	p, err := drop.New(cfg, chooser, log)
	if err != nil {
		return nil, err
	}
	return &App{cfg: cfg, pipeline: p}, nil
}

// HandleDrop resolves one drop event. It is synchronous: the event is
// fully resolved (or rejected) before it returns, and the graph is never
// left half-mutated.
func (a *App) HandleDrop(paths []string, ctx host.GraphContext) DropResult {
	results := a.pipeline.HandleDrop(drop.Event{Paths: paths, Context: ctx})

	out := DropResult{Files: make([]FileResultData, 0, len(results))}
	for _, r := range results {
		out.Files = append(out.Files, FileResultData{
			Path:   r.Path,
			Bound:  r.Bound,
			Status: r.Status.String(),
			Plan:   r.Plan,
			Nodes:  r.Nodes,
			Reason: r.Reason,
		})
		if r.Status == drop.Created {
			out.Accepted = true
		}
	}
	return out
}

// Command nodedrop simulates external drag-and-drop resolution against
// an in-memory scene graph. It exercises the same pipeline an embedding
// editor runs, including the interactive disambiguation prompt.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/chazu/nodedrop/pkg/config"
	"github.com/chazu/nodedrop/pkg/drop"
	"github.com/chazu/nodedrop/pkg/host"
	"github.com/chazu/nodedrop/pkg/plan"
	"github.com/chazu/nodedrop/pkg/prompt"
)

var (
	createdStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	rejectedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	cancelledStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	failedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	pathStyle      = lipgloss.NewStyle().Bold(true)
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "nodedrop",
		Short:         "Resolve dragged files into node-graph nodes",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newDropCmd())
	return root
}

func newDropCmd() *cobra.Command {
	var (
		cfgPath string
		context string
		posFlag string
		choose  string
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "drop [files...]",
		Short: "Simulate dropping files into a network context",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(cfgPath)
			if err != nil {
				return err
			}

			pos, err := parsePos(posFlag)
			if err != nil {
				return err
			}

			scene := buildScene()
			container, err := pickContainer(scene, context)
			if err != nil {
				return err
			}

			var chooser prompt.Chooser = prompt.Terminal{}
			if choose != "" {
				chooser = prompt.Fixed{ID: choose}
			}

			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			log := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			pipeline, err := drop.New(cfg, chooser, log)
			if err != nil {
				return err
			}

			results := pipeline.HandleDrop(drop.Event{
				Paths:   args,
				Context: host.Context(container, pos),
			})
			printResults(cmd, results)

			for _, r := range results {
				if r.Status == drop.Failed {
					return fmt.Errorf("%d file(s) failed", countStatus(results, drop.Failed))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&cfgPath, "config", "", "config file (default nodedrop.yaml if present)")
	cmd.Flags().StringVarP(&context, "context", "c", "geometry", "drop context: object|geometry|composite|material|lighting|other")
	cmd.Flags().StringVar(&posFlag, "pos", "0,0", "drop position as x,y")
	cmd.Flags().StringVar(&choose, "choose", "", "preselect a disambiguation plan id instead of prompting")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log every pipeline stage")
	return cmd
}

// buildScene assembles the simulated scene: one network of each kind
// under the object root, with the full operator set registered.
func buildScene() *host.MemScene {
	s := host.NewMemScene()
	for _, kind := range []host.NetworkKind{
		host.Object, host.Geometry, host.Composite, host.Material, host.Lighting,
	} {
		s.RegisterTypes(kind, plan.KnownTypeIDs(kind)...)
	}
	s.RegisterContainerType(plan.GeoContainerType, host.Geometry)
	s.RegisterContainerType("sopcreate", host.Geometry)

	s.AddNetwork(s.Root(), "geo1", host.Geometry, false)
	s.AddNetwork(s.Root(), "mat1", host.Material, false)
	s.AddNetwork(s.Root(), "comp1", host.Composite, false)
	s.AddNetwork(s.Root(), "stage", host.Lighting, false)
	s.AddNetwork(s.Root(), "chops", host.Other, false)
	return s
}

func pickContainer(s *host.MemScene, context string) (host.Container, error) {
	switch strings.ToLower(context) {
	case "object", "obj":
		return s.Root(), nil
	case "geometry", "geo":
		return s.Network("geo1"), nil
	case "material", "mat":
		return s.Network("mat1"), nil
	case "composite", "comp":
		return s.Network("comp1"), nil
	case "lighting", "stage":
		return s.Network("stage"), nil
	case "other":
		return s.Network("chops"), nil
	}
	return nil, fmt.Errorf("unknown context %q", context)
}

func parsePos(flag string) (host.Vec2, error) {
	parts := strings.SplitN(flag, ",", 2)
	if len(parts) != 2 {
		return host.Vec2{}, fmt.Errorf("position %q is not x,y", flag)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return host.Vec2{}, fmt.Errorf("position %q is not x,y", flag)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return host.Vec2{}, fmt.Errorf("position %q is not x,y", flag)
	}
	return host.Vec2{X: x, Y: y}, nil
}

func printResults(cmd *cobra.Command, results []drop.FileResult) {
	out := cmd.OutOrStdout()
	for _, r := range results {
		switch r.Status {
		case drop.Created:
			fmt.Fprintf(out, "%s %s  %s -> %s\n",
				createdStyle.Render("created"),
				pathStyle.Render(r.Path),
				r.Bound,
				strings.Join(r.Nodes, ", "))
		case drop.Rejected:
			fmt.Fprintf(out, "%s %s  %s\n",
				rejectedStyle.Render("rejected"),
				pathStyle.Render(r.Path),
				r.Reason)
		case drop.Cancelled:
			fmt.Fprintf(out, "%s %s\n",
				cancelledStyle.Render("cancelled"),
				pathStyle.Render(r.Path))
		case drop.Failed:
			fmt.Fprintf(out, "%s %s  %s\n",
				failedStyle.Render("failed"),
				pathStyle.Render(r.Path),
				r.Reason)
		}
	}
}

func countStatus(results []drop.FileResult, s drop.Status) int {
	n := 0
	for _, r := range results {
		if r.Status == s {
			n++
		}
	}
	return n
}

package nodedrop

import (
	"io"
	"log/slog"
	"testing"

	"github.com/chazu/nodedrop/pkg/config"
	"github.com/chazu/nodedrop/pkg/host"
	"github.com/chazu/nodedrop/pkg/plan"
	"github.com/chazu/nodedrop/pkg/prompt"
)

// buildApp wires an App against a fully registered in-memory scene, the
// same path an embedding editor takes but without a real UI.
func buildApp(t *testing.T, chooser prompt.Chooser) (*App, *host.MemScene) {
	t.Helper()

	s := host.NewMemScene()
	for _, kind := range []host.NetworkKind{
		host.Object, host.Geometry, host.Composite, host.Material, host.Lighting,
	} {
		s.RegisterTypes(kind, plan.KnownTypeIDs(kind)...)
	}
	s.RegisterContainerType(plan.GeoContainerType, host.Geometry)
	s.RegisterContainerType("sopcreate", host.Geometry)

	cfg := config.Default()
	cfg.ProjectRoot = "/jobs/showA"

	app, err := NewApp(cfg, chooser, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("NewApp: %v", err)
	}
	return app, s
}

func TestE2EGeometryDrop(t *testing.T) {
	app, s := buildApp(t, prompt.Cancel{})
	geo := s.AddNetwork(s.Root(), "geo1", host.Geometry, false)

	res := app.HandleDrop(
		[]string{"/jobs/showA/geo/scene.abc"},
		host.Context(geo, host.Vec2{X: 3, Y: -2}),
	)

	if !res.Accepted {
		t.Fatalf("drop not accepted: %+v", res)
	}
	f := res.Files[0]
	if f.Status != "created" {
		t.Fatalf("status = %s", f.Status)
	}
	if f.Bound != "$HIP/geo/scene.abc" {
		t.Errorf("bound = %q", f.Bound)
	}
	node := geo.FindNode("scene")
	if node == nil {
		t.Fatal("no node created")
	}
	if node.Parm("fileName") != "$HIP/geo/scene.abc" {
		t.Errorf("fileName = %q", node.Parm("fileName"))
	}
	if node.Position() != (host.Vec2{X: 3, Y: -2}) {
		t.Errorf("position = %v", node.Position())
	}
}

func TestE2EMaterialDisambiguation(t *testing.T) {
	app, s := buildApp(t, prompt.Fixed{ID: "mat-tex-mtlx"})
	mat := s.AddNetwork(s.Root(), "mat1", host.Material, false)

	res := app.HandleDrop(
		[]string{"/jobs/showA/tex/wood.exr"},
		host.Context(mat, host.Vec2{}),
	)

	if !res.Accepted {
		t.Fatalf("drop not accepted: %+v", res)
	}
	if got := len(res.Files[0].Nodes); got != 3 {
		t.Fatalf("created %d nodes, want the 3-node mtlx chain", got)
	}
	surface := mat.FindNode("wood_surface")
	if surface == nil || surface.Input("base_color") == nil {
		t.Error("mtlx chain not wired")
	}
}

func TestE2ECancelledDropLeavesNoTrace(t *testing.T) {
	app, s := buildApp(t, prompt.Cancel{})
	mat := s.AddNetwork(s.Root(), "mat1", host.Material, false)

	res := app.HandleDrop(
		[]string{"/jobs/showA/tex/wood.exr"},
		host.Context(mat, host.Vec2{}),
	)

	if res.Accepted {
		t.Fatal("cancelled drop must not be accepted")
	}
	if res.Files[0].Status != "cancelled" {
		t.Errorf("status = %s", res.Files[0].Status)
	}
	if mat.NodeCount() != 0 {
		t.Errorf("material network has %d nodes after cancel", mat.NodeCount())
	}
}

func TestE2EMixedEvent(t *testing.T) {
	app, s := buildApp(t, prompt.Cancel{})
	geo := s.AddNetwork(s.Root(), "geo1", host.Geometry, false)

	res := app.HandleDrop(
		[]string{
			"/jobs/showA/geo/a.abc",
			"/jobs/showA/notes/readme.pdf", // generic: still lands as a file node
			"/jobs/showA/geo/b.abc",
		},
		host.Context(geo, host.Vec2{}),
	)

	if len(res.Files) != 3 {
		t.Fatalf("results = %d", len(res.Files))
	}
	for i, f := range res.Files {
		if f.Status != "created" {
			t.Errorf("file %d status = %s", i, f.Status)
		}
	}
	if geo.NodeCount() != 3 {
		t.Errorf("node count = %d", geo.NodeCount())
	}
}

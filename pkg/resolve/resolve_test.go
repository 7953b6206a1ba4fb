package resolve

import (
	"testing"

	"github.com/chazu/nodedrop/pkg/category"
	"github.com/chazu/nodedrop/pkg/host"
)

// buildScene creates a scene with one network of each kind under the
// Object root: obj/geo1, obj/mat1, obj/stage1, obj/comp1, obj/chops.
func buildScene() (*host.MemScene, map[string]*host.MemContainer) {
	s := host.NewMemScene()
	nets := map[string]*host.MemContainer{
		"obj":   s.Root(),
		"geo1":  s.AddNetwork(s.Root(), "geo1", host.Geometry, false),
		"mat1":  s.AddNetwork(s.Root(), "mat1", host.Material, false),
		"stage": s.AddNetwork(s.Root(), "stage", host.Lighting, false),
		"comp1": s.AddNetwork(s.Root(), "comp1", host.Composite, false),
		"chops": s.AddNetwork(s.Root(), "chops", host.Other, false),
	}
	return s, nets
}

func ctxFor(c *host.MemContainer) host.GraphContext {
	return host.Context(c, host.Vec2{})
}

func TestResolveDirectGeometry(t *testing.T) {
	_, nets := buildScene()

	cases := []struct {
		cat  category.Category
		ext  string
		want string
	}{
		{category.GeometryCache, ".abc", "geo-alembic"},
		{category.GeometryCache, ".bgeo.sc", "geo-file"},
		{category.SceneStage, ".usda", "geo-usdimport"},
		{category.RenderProxy, ".rs", "geo-rsproxy"},
		{category.VolumeGrid, ".vdb", "geo-file"},
		{category.GenericFile, ".dat", "geo-file"},
	}
	for _, tc := range cases {
		a := Resolve(tc.cat, tc.ext, ctxFor(nets["geo1"]), DefaultOptions)
		if a.Kind != Direct {
			t.Errorf("%v %s: kind = %v, want direct", tc.cat, tc.ext, a.Kind)
			continue
		}
		if a.Template.ID != tc.want {
			t.Errorf("%v %s: template = %s, want %s", tc.cat, tc.ext, a.Template.ID, tc.want)
		}
		if a.Target != nets["geo1"] {
			t.Errorf("%v %s: target is not the drop container", tc.cat, tc.ext)
		}
	}
}

func TestResolveMaterialNeedsChoice(t *testing.T) {
	_, nets := buildScene()

	for _, cat := range []category.Category{category.Texture, category.SceneStage} {
		a := Resolve(cat, ".x", ctxFor(nets["mat1"]), DefaultOptions)
		if a.Kind != NeedsChoice {
			t.Errorf("material + %v: kind = %v, want needs-choice", cat, a.Kind)
			continue
		}
		if len(a.Candidates) < 2 {
			t.Errorf("material + %v: %d candidates, want >= 2", cat, len(a.Candidates))
		}
	}
}

func TestResolveObjectWrapsGeometry(t *testing.T) {
	_, nets := buildScene()

	a := Resolve(category.GeometryCache, ".abc", ctxFor(nets["obj"]), DefaultOptions)
	if a.Kind != Adapted {
		t.Fatalf("kind = %v, want adapted", a.Kind)
	}
	if a.Template.Specs[0].TypeID != "geo" {
		t.Errorf("wrap root = %s, want geo", a.Template.Specs[0].TypeID)
	}
	if a.Target != nets["obj"] {
		t.Error("wrap should target the object container itself")
	}
}

func TestResolveHopsToParent(t *testing.T) {
	_, nets := buildScene()

	// A generic file in a channel network has no local handler; its
	// parent Object context can wrap it in a geometry container.
	a := Resolve(category.GenericFile, ".dat", ctxFor(nets["chops"]), DefaultOptions)
	if a.Kind != Adapted {
		t.Fatalf("kind = %v, want adapted", a.Kind)
	}
	if a.Target != nets["obj"] {
		t.Error("adapted target should be the parent object network")
	}
}

func TestResolveHopLimitZeroRejects(t *testing.T) {
	_, nets := buildScene()

	a := Resolve(category.GenericFile, ".dat", ctxFor(nets["chops"]), Options{MaxHops: 0})
	if a.Kind != Rejected {
		t.Errorf("kind = %v, want rejected with adaptation disabled", a.Kind)
	}
}

func TestResolveRejectsUnsupported(t *testing.T) {
	s := host.NewMemScene()
	misc := s.AddNetwork(s.Root(), "misc", host.Other, false)

	// A texture in a channel-style network: no local handler, and the
	// one-hop parent is an Object context that cannot wrap an image
	// (there is no geometry handler for textures).
	a := Resolve(category.Texture, ".exr", ctxFor(misc), DefaultOptions)
	if a.Kind != Rejected {
		t.Fatalf("kind = %v, want rejected", a.Kind)
	}
	if a.Reason == "" {
		t.Error("rejection must carry a reason")
	}
}

func TestResolveUnwrapsSubnets(t *testing.T) {
	s, _ := buildScene()
	geo := s.AddNetwork(s.Root(), "geo2", host.Geometry, false)
	sub := s.AddNetwork(geo, "subnet1", host.Other, true)
	inner := s.AddNetwork(sub, "subnet2", host.Other, true)

	// Two nested subnets unwrap to the geometry network without
	// consuming the hop budget.
	a := Resolve(category.GeometryCache, ".abc", ctxFor(inner), Options{MaxHops: 1})
	if a.Kind != Direct {
		t.Fatalf("kind = %v, want direct after subnet unwrap", a.Kind)
	}
	if a.Template.ID != "geo-alembic" {
		t.Errorf("template = %s, want geo-alembic", a.Template.ID)
	}
	if a.Target != geo {
		t.Error("target should be the unwrapped geometry network")
	}
}

func TestResolveNilContainer(t *testing.T) {
	a := Resolve(category.GeometryCache, ".abc", host.GraphContext{}, DefaultOptions)
	if a.Kind != Rejected {
		t.Errorf("kind = %v, want rejected for nil container", a.Kind)
	}
}

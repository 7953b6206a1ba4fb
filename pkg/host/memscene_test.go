package host

import "testing"

func TestMemSceneCreateNode(t *testing.T) {
	s := NewMemScene()
	s.RegisterTypes(Geometry, "file")
	geo := s.AddNetwork(s.Root(), "geo1", Geometry, false)

	n, err := geo.CreateNode("file", "reader")
	if err != nil {
		t.Fatalf("CreateNode: %v", err)
	}
	if n.Name() != "reader" || n.TypeID() != "file" {
		t.Errorf("node = %s/%s", n.Name(), n.TypeID())
	}
	if geo.NodeCount() != 1 {
		t.Errorf("NodeCount = %d", geo.NodeCount())
	}
}

func TestMemSceneRejectsUnknownType(t *testing.T) {
	s := NewMemScene()
	geo := s.AddNetwork(s.Root(), "geo1", Geometry, false)
	if _, err := geo.CreateNode("alembic", "x"); err == nil {
		t.Fatal("expected error for unregistered type")
	}
}

func TestMemSceneRejectsDuplicateName(t *testing.T) {
	s := NewMemScene()
	s.RegisterTypes(Geometry, "file")
	geo := s.AddNetwork(s.Root(), "geo1", Geometry, false)

	if _, err := geo.CreateNode("file", "reader"); err != nil {
		t.Fatal(err)
	}
	if _, err := geo.CreateNode("file", "reader"); err == nil {
		t.Fatal("expected duplicate-name error")
	}
}

func TestMemSceneContainerNode(t *testing.T) {
	s := NewMemScene()
	s.RegisterTypes(Object, "geo")
	s.RegisterTypes(Geometry, "file")
	s.RegisterContainerType("geo", Geometry)

	wrap, err := s.Root().CreateNode("geo", "GEO_x")
	if err != nil {
		t.Fatal(err)
	}
	inner := wrap.Container()
	if inner == nil {
		t.Fatal("container node has no inner network")
	}
	if inner.Kind() != Geometry {
		t.Errorf("inner kind = %v", inner.Kind())
	}
	if _, err := inner.CreateNode("file", "x"); err != nil {
		t.Fatalf("create in inner: %v", err)
	}
}

func TestMemNodeDestroy(t *testing.T) {
	s := NewMemScene()
	s.RegisterTypes(Geometry, "file")
	geo := s.AddNetwork(s.Root(), "geo1", Geometry, false)

	n, err := geo.CreateNode("file", "reader")
	if err != nil {
		t.Fatal(err)
	}
	if err := n.Destroy(); err != nil {
		t.Fatalf("Destroy: %v", err)
	}
	if geo.NodeCount() != 0 {
		t.Errorf("NodeCount after destroy = %d", geo.NodeCount())
	}
	if err := n.Destroy(); err == nil {
		t.Error("second Destroy should fail")
	}
}

func TestMemNodeWiring(t *testing.T) {
	s := NewMemScene()
	s.RegisterTypes(Material, "a", "b")
	mat := s.AddNetwork(s.Root(), "mat1", Material, false)
	other := s.AddNetwork(s.Root(), "mat2", Material, false)

	src, _ := mat.CreateNode("a", "src")
	dst, _ := mat.CreateNode("b", "dst")
	if err := dst.ConnectInput("in", src); err != nil {
		t.Fatalf("ConnectInput: %v", err)
	}
	mn := mat.FindNode("dst")
	if mn.Input("in") == nil || mn.Input("in").Name() != "src" {
		t.Error("wire not recorded")
	}

	foreign, _ := other.CreateNode("a", "far")
	if err := dst.ConnectInput("in2", foreign); err == nil {
		t.Error("cross-container wire should fail")
	}
}

func TestContextSnapshot(t *testing.T) {
	s := NewMemScene()
	geo := s.AddNetwork(s.Root(), "geo1", Geometry, false)
	ctx := Context(geo, Vec2{X: 1, Y: 2})
	if ctx.Kind != Geometry || ctx.Container != geo {
		t.Errorf("ctx = %+v", ctx)
	}
	if ctx.DropPos != (Vec2{X: 1, Y: 2}) {
		t.Errorf("DropPos = %v", ctx.DropPos)
	}
}

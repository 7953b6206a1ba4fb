package plan

import (
	"github.com/chazu/nodedrop/pkg/category"
	"github.com/chazu/nodedrop/pkg/host"
)

// single builds a one-node template with a file parameter.
func single(id, label, typeID, fileParm string) Template {
	return Template{
		ID:    id,
		Label: label,
		Specs: []NodeSpec{{TypeID: typeID, FileParm: fileParm, Parent: -1}},
	}
}

// Built-in templates. The node type and parameter names follow the host
// operator set; the resolution core treats them as opaque strings.
var (
	geoAlembic = single("geo-alembic", "Alembic cache", "alembic", "fileName")
	geoFile    = single("geo-file", "File geometry", "file", "file")
	geoUSD     = single("geo-usdimport", "USD import", "usdimport", "filepath1")
	geoRSProxy = single("geo-rsproxy", "Redshift proxy", "redshift_packedProxySOP", "RS_proxy_file")

	copFile = single("cop-file", "File image", "file", "filename1")

	lopAssetRef = single("lop-assetref", "Asset reference", "assetreference", "filepath")
	lopVolume   = single("lop-volume", "Volume", "volume", "filepath")

	// FBX on the scene stage is wrapped in a sop-create network holding a
	// file node, so the stage sees imported geometry rather than a raw
	// file reference.
	lopSopCreate = Template{
		ID:    "lop-sopcreate-fbx",
		Label: "SOP create (FBX)",
		Specs: []NodeSpec{
			{TypeID: "sopcreate", NameFmt: "SOP_%s", Parent: -1},
			{TypeID: "file", FileParm: "file", Parent: 0},
		},
	}

	matTexMtlx = Template{
		ID:    "mat-tex-mtlx",
		Label: "MaterialX",
		Specs: []NodeSpec{
			{TypeID: "mtlximage", FileParm: "file", Parent: -1},
			{TypeID: "mtlxstandard_surface", NameFmt: "%s_surface", Parent: -1, Offset: host.Vec2{X: 1}},
			{TypeID: "surface_output", NameFmt: "%s_out", Parent: -1, Offset: host.Vec2{X: 2}},
		},
		Wires: []Wire{
			{From: 0, To: 1, Role: "base_color"},
			{From: 1, To: 2, Role: "surface"},
		},
	}
	matTexPrincipled = single("mat-tex-principled", "Principled Shader", "texture::2.0", "map")
	matTexArnold     = single("mat-tex-arnold", "Arnold", "arnold::image", "filename")

	matStagePrincipled = single("mat-stage-principled", "Principled Shader", "usdmaterialimport", "filepath")
	matStageMtlx       = Template{
		ID:    "mat-stage-mtlx",
		Label: "MaterialX",
		Specs: []NodeSpec{
			{TypeID: "mtlxmaterialreference", FileParm: "filepath", Parent: -1},
			{TypeID: "surface_output", NameFmt: "%s_out", Parent: -1, Offset: host.Vec2{X: 1}},
		},
		Wires: []Wire{{From: 0, To: 1, Role: "surface"}},
	}
)

// GeoContainerType is the container node type used when a drop in an
// Object context is wrapped in a fresh geometry network.
const GeoContainerType = "geo"

// Direct returns the single canonical template for a (kind, category)
// pair, or nil when the kind has no native support for the category.
// The extension refines category lookup where the original handler
// tables were extension-keyed.
func Direct(kind host.NetworkKind, cat category.Category, ext string) *Template {
	switch kind {
	case host.Geometry:
		return geoDirect(cat, ext)
	case host.Composite:
		switch cat {
		case category.Texture, category.GenericFile:
			return tmpl(copFile)
		}
	case host.Lighting:
		switch cat {
		case category.VolumeGrid:
			return tmpl(lopVolume)
		case category.GeometryCache:
			if ext == ".fbx" {
				return tmpl(lopSopCreate)
			}
			return tmpl(lopAssetRef)
		default:
			// The stage accepts any asset as a reference.
			return tmpl(lopAssetRef)
		}
	}
	return nil
}

func geoDirect(cat category.Category, ext string) *Template {
	switch cat {
	case category.GeometryCache:
		switch ext {
		case ".abc":
			return tmpl(geoAlembic)
		case ".bgeo.sc":
			return tmpl(geoFile)
		}
		// .fbx is not loadable here; only the stage wraps it.
		return nil
	case category.SceneStage:
		return tmpl(geoUSD)
	case category.RenderProxy:
		return tmpl(geoRSProxy)
	case category.VolumeGrid, category.GenericFile:
		return tmpl(geoFile)
	}
	return nil
}

// MaterialCandidates returns the valid shading-network shapes for a file
// dropped in a Material context. Empty when the category has no material
// construction at all.
func MaterialCandidates(cat category.Category) []Template {
	switch cat {
	case category.Texture:
		return []Template{matTexMtlx, matTexPrincipled, matTexArnold}
	case category.SceneStage:
		return []Template{matStagePrincipled, matStageMtlx}
	}
	return nil
}

// WrapInGeometry rebases a template so its nodes are created inside a
// fresh geometry container, which becomes the chain root at the drop
// point. Used when adapting an Object-context drop.
func WrapInGeometry(inner Template) Template {
	wrapped := Template{
		ID:    inner.ID + "-wrapped",
		Label: inner.Label,
		Specs: make([]NodeSpec, 0, len(inner.Specs)+1),
		Wires: make([]Wire, 0, len(inner.Wires)),
	}
	wrapped.Specs = append(wrapped.Specs, NodeSpec{
		TypeID:  GeoContainerType,
		NameFmt: "GEO_%s",
		Parent:  -1,
	})
	for _, s := range inner.Specs {
		if s.Parent == -1 {
			s.Parent = 0
		} else {
			s.Parent++
		}
		wrapped.Specs = append(wrapped.Specs, s)
	}
	for _, w := range inner.Wires {
		wrapped.Wires = append(wrapped.Wires, Wire{From: w.From + 1, To: w.To + 1, Role: w.Role})
	}
	return wrapped
}

// tmpl returns a copy so callers can never mutate the built-in tables.
func tmpl(t Template) *Template {
	c := t
	c.Specs = append([]NodeSpec(nil), t.Specs...)
	c.Wires = append([]Wire(nil), t.Wires...)
	return &c
}

// KnownTypeIDs lists every node type the built-in templates may create in
// networks of the given kind. Used to seed host type registries.
func KnownTypeIDs(kind host.NetworkKind) []string {
	switch kind {
	case host.Object:
		return []string{GeoContainerType}
	case host.Geometry:
		return []string{"alembic", "file", "usdimport", "redshift_packedProxySOP"}
	case host.Composite:
		return []string{"file"}
	case host.Material:
		return []string{
			"mtlximage", "mtlxstandard_surface", "surface_output",
			"texture::2.0", "arnold::image",
			"usdmaterialimport", "mtlxmaterialreference",
		}
	case host.Lighting:
		return []string{"assetreference", "volume", "sopcreate"}
	}
	return nil
}

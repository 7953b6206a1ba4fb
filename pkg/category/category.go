// Package category classifies dropped files by extension.
// Classification is a total function: extensions the table does not know
// degrade to GenericFile so a drop is never refused at this stage.
package category

import (
	"path/filepath"
	"strings"
)

// Category is the semantic kind of a dropped file.
type Category int

const (
	GenericFile   Category = iota // no specific handler, generic file reference
	GeometryCache                 // baked geometry (.abc, .bgeo.sc, .fbx)
	SceneStage                    // USD scene description
	RenderProxy                   // renderer proxy archive (.rs)
	Texture                       // image map
	VolumeGrid                    // sparse volume (.vdb)
)

func (c Category) String() string {
	switch c {
	case GenericFile:
		return "generic"
	case GeometryCache:
		return "geometry-cache"
	case SceneStage:
		return "scene-stage"
	case RenderProxy:
		return "render-proxy"
	case Texture:
		return "texture"
	case VolumeGrid:
		return "volume-grid"
	default:
		return "unknown"
	}
}

// imageExts are the texture formats the material handlers accept.
var imageExts = []string{
	".png", ".jpg", ".jpeg", ".bmp", ".tiff", ".tif", ".exr", ".hdr",
	".tga", ".pic", ".tx", ".tex", ".rat",
}

// usdExts are the USD scene description container formats.
var usdExts = []string{".usd", ".usda", ".usdc"}

// Table maps lowercased extensions (leading dot included) to categories.
// A Table is immutable after construction; overlays produce a new Table.
type Table struct {
	byExt map[string]Category
}

// DefaultTable returns the built-in extension table.
func DefaultTable() *Table {
	t := &Table{byExt: make(map[string]Category)}
	t.byExt[".abc"] = GeometryCache
	t.byExt[".bgeo.sc"] = GeometryCache
	t.byExt[".fbx"] = GeometryCache
	t.byExt[".rs"] = RenderProxy
	t.byExt[".vdb"] = VolumeGrid
	for _, ext := range usdExts {
		t.byExt[ext] = SceneStage
	}
	for _, ext := range imageExts {
		t.byExt[ext] = Texture
	}
	return t
}

// Classify returns the category for an extension. Case-insensitive, total:
// unknown or empty extensions yield GenericFile.
func (t *Table) Classify(ext string) Category {
	if t == nil || t.byExt == nil {
		return GenericFile
	}
	cat, ok := t.byExt[strings.ToLower(ext)]
	if !ok {
		return GenericFile
	}
	return cat
}

// FullExt extracts the extension of a path, lowercased with the leading
// dot. Compound cache extensions are kept whole: "sim.0042.bgeo.sc"
// yields ".bgeo.sc", not ".sc".
func FullExt(path string) string {
	base := filepath.Base(path)
	ext := strings.ToLower(filepath.Ext(base))
	if ext == "" {
		return ""
	}
	rest := base[:len(base)-len(ext)]
	if prev := strings.ToLower(filepath.Ext(rest)); prev == ".bgeo" {
		return prev + ext
	}
	return ext
}

// Stem returns the base filename without its (possibly compound) extension.
func Stem(path string) string {
	base := filepath.Base(path)
	return base[:len(base)-len(FullExt(base))]
}

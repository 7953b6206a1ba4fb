package category

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// categoryNames maps the override-file spelling to a Category.
var categoryNames = map[string]Category{
	"generic":        GenericFile,
	"geometry-cache": GeometryCache,
	"scene-stage":    SceneStage,
	"render-proxy":   RenderProxy,
	"texture":        Texture,
	"volume-grid":    VolumeGrid,
}

// WithOverrides returns a new Table with entries from a YAML mapping of
// extension to category name layered over the receiver. The file is read
// once at startup; the resulting table is immutable like any other.
//
// Example file:
//
//	".ptc": geometry-cache
//	".ies": generic
func (t *Table) WithOverrides(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read extension overrides: %w", err)
	}

	var raw map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse extension overrides: %w", err)
	}

	merged := &Table{byExt: make(map[string]Category, len(t.byExt)+len(raw))}
	for ext, cat := range t.byExt {
		merged.byExt[ext] = cat
	}
	for ext, name := range raw {
		cat, ok := categoryNames[strings.ToLower(name)]
		if !ok {
			return nil, fmt.Errorf("extension overrides: unknown category %q for %q", name, ext)
		}
		ext = strings.ToLower(ext)
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		merged.byExt[ext] = cat
	}
	return merged, nil
}

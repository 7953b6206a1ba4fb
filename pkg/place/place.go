// Package place computes collision-free node names and deterministic
// editor positions for created node chains.
package place

import (
	"regexp"
	"strconv"

	"github.com/chazu/nodedrop/pkg/host"
)

// DefaultFileSpacing is the horizontal gap between the root nodes of
// consecutive files in one drop event.
const DefaultFileSpacing = 3.0

// DefaultChainSpacing is the grid step between nodes of one chain.
const DefaultChainSpacing = 1.0

var nonWord = regexp.MustCompile(`\W+`)

// SafeName rewrites a filename stem into a legal node name: runs of
// non-word characters collapse to underscores.
func SafeName(stem string) string {
	name := nonWord.ReplaceAllString(stem, "_")
	if name == "" {
		name = "dropped"
	}
	return name
}

// Dedupe returns base if it is free among existing sibling names, or the
// first base_<n> that is. Deterministic; never overwrites an existing
// node.
func Dedupe(base string, existing []string) string {
	taken := make(map[string]bool, len(existing))
	for _, n := range existing {
		taken[n] = true
	}
	if !taken[base] {
		return base
	}
	for i := 1; ; i++ {
		candidate := base + "_" + strconv.Itoa(i)
		if !taken[candidate] {
			return candidate
		}
	}
}

// FileOrigin offsets the drop point for the i-th file of one event, so
// simultaneous drops never stack on each other. Drop order is preserved
// left to right.
func FileOrigin(drop host.Vec2, index int, spacing float64) host.Vec2 {
	return drop.Add(host.Vec2{X: float64(index) * spacing})
}

// NodePos places one chain node: the template offset is in grid units,
// scaled by the chain spacing, relative to the chain origin.
func NodePos(origin, offset host.Vec2, spacing float64) host.Vec2 {
	return origin.Add(host.Vec2{X: offset.X * spacing, Y: offset.Y * spacing})
}

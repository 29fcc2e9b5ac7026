// Package tree provides find/replace/remove operations over layer trees
// and the timeline grouping helper used by the reducer. All operations are
// non-mutating: edits rebuild the spine from the edited node to the root
// and share every untouched subtree with the input.
package tree

import (
	"sort"

	"github.com/oxblood/morph/pkg/domain"
)

// Find returns the layer with the given id anywhere in the given trees,
// or nil. Depth-first, first match wins.
func Find(trees []*domain.VectorLayer, id string) domain.Layer {
	for _, root := range trees {
		if l := findIn(root, id); l != nil {
			return l
		}
	}
	return nil
}

func findIn(node domain.Layer, id string) domain.Layer {
	if node.ID() == id {
		return node
	}
	for _, child := range node.Children() {
		if l := findIn(child, id); l != nil {
			return l
		}
	}
	return nil
}

// FindOwningVectorLayer returns the tree root that contains the given id,
// or nil.
func FindOwningVectorLayer(trees []*domain.VectorLayer, id string) *domain.VectorLayer {
	for _, root := range trees {
		if findIn(root, id) != nil {
			return root
		}
	}
	return nil
}

// ReplaceNode substitutes the node with node.ID() inside root and returns
// the rebuilt root. If the id is the root's own, node must itself be a
// vector layer and is returned directly. Returns nil when the id does not
// occur in the tree.
func ReplaceNode(root *domain.VectorLayer, node domain.Layer) *domain.VectorLayer {
	if root.ID() == node.ID() {
		if vl, ok := node.(*domain.VectorLayer); ok {
			return vl
		}
		return nil
	}
	replaced := replaceIn(root, node)
	if replaced == nil {
		return nil
	}
	return replaced.(*domain.VectorLayer)
}

// replaceIn returns a rebuilt copy of parent with the target substituted,
// or nil if the target is not in this subtree.
func replaceIn(parent domain.Layer, node domain.Layer) domain.Layer {
	children := parent.Children()
	for i, child := range children {
		var next domain.Layer
		if child.ID() == node.ID() {
			next = node
		} else {
			next = replaceIn(child, node)
		}
		if next == nil {
			continue
		}
		rebuilt := make([]domain.Layer, len(children))
		copy(rebuilt, children)
		rebuilt[i] = next
		return parent.WithChildren(rebuilt)
	}
	return nil
}

// RemoveNode deletes the node with the given id from root and returns the
// rebuilt root. Removing the root itself, or an id not present, returns
// nil.
func RemoveNode(root *domain.VectorLayer, id string) *domain.VectorLayer {
	if root.ID() == id {
		return nil
	}
	removed := removeIn(root, id)
	if removed == nil {
		return nil
	}
	return removed.(*domain.VectorLayer)
}

func removeIn(parent domain.Layer, id string) domain.Layer {
	children := parent.Children()
	for i, child := range children {
		if child.ID() == id {
			rebuilt := make([]domain.Layer, 0, len(children)-1)
			rebuilt = append(rebuilt, children[:i]...)
			rebuilt = append(rebuilt, children[i+1:]...)
			return parent.WithChildren(rebuilt)
		}
		if next := removeIn(child, id); next != nil {
			rebuilt := make([]domain.Layer, len(children))
			copy(rebuilt, children)
			rebuilt[i] = next
			return parent.WithChildren(rebuilt)
		}
	}
	return nil
}

// DescendantIDs returns the ids of every node strictly below the given
// layer, in depth-first order.
func DescendantIDs(node domain.Layer) []string {
	var out []string
	var walk func(domain.Layer)
	walk = func(l domain.Layer) {
		for _, child := range l.Children() {
			out = append(out, child.ID())
			walk(child)
		}
	}
	walk(node)
	return out
}

// GroupBlocksByLayerAndProperty indexes an animation's blocks by layer id
// and property name, each bucket ordered by start time.
func GroupBlocksByLayerAndProperty(a *domain.Animation) map[string]map[string][]domain.Block {
	out := make(map[string]map[string][]domain.Block)
	for _, b := range a.Blocks {
		base := b.Base()
		byProp, ok := out[base.LayerID]
		if !ok {
			byProp = make(map[string][]domain.Block)
			out[base.LayerID] = byProp
		}
		byProp[base.PropertyName] = append(byProp[base.PropertyName], b)
	}
	for _, byProp := range out {
		for _, blocks := range byProp {
			sort.SliceStable(blocks, func(i, j int) bool {
				return blocks[i].Base().StartTime < blocks[j].Base().StartTime
			})
		}
	}
	return out
}

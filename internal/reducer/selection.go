package reducer

import (
	"fmt"

	"github.com/oxblood/morph/pkg/domain"
	"github.com/oxblood/morph/pkg/tree"
)

// Selection is mutually exclusive across the three domains: selecting in
// one clears the other two. A select that leaves its own set unchanged is
// a no-op and does not clear anything.

func selectAnimationID(doc *domain.Document, id string, clear bool) (*domain.Document, error) {
	if doc.AnimationByID(id) == nil {
		return doc, fmt.Errorf("animation %q: %w", id, domain.ErrAnimationNotFound)
	}
	var next domain.IDSet
	if clear {
		next = domain.NewIDSet(id)
	} else {
		next = doc.Timeline.SelectedAnimationIDs.With(id)
	}
	if next.Equal(doc.Timeline.SelectedAnimationIDs) {
		return doc, nil
	}

	tl := doc.Timeline
	tl.SelectedAnimationIDs = next
	tl.SelectedBlockIDs = domain.NewIDSet()
	ls := doc.Layers
	ls.SelectedLayerIDs = domain.NewIDSet()
	return doc.WithTimeline(tl).WithLayers(ls), nil
}

func selectBlockID(doc *domain.Document, id string, clear bool) (*domain.Document, error) {
	if anim, _ := findBlock(doc, id); anim == nil {
		return doc, fmt.Errorf("block %q: %w", id, domain.ErrBlockNotFound)
	}
	var next domain.IDSet
	if clear {
		next = domain.NewIDSet(id)
	} else {
		next = doc.Timeline.SelectedBlockIDs.With(id)
	}
	if next.Equal(doc.Timeline.SelectedBlockIDs) {
		return doc, nil
	}

	tl := doc.Timeline
	tl.SelectedBlockIDs = next
	tl.SelectedAnimationIDs = domain.NewIDSet()
	ls := doc.Layers
	ls.SelectedLayerIDs = domain.NewIDSet()
	return doc.WithTimeline(tl).WithLayers(ls), nil
}

// selectLayerID keeps the layer selection confined to a single tree.
// Without clear, a layer owned by a non-active tree is not eligible: the
// action degrades to clearing the other two domains only. With clear (or
// when the owner is already active) the owner becomes the active tree and
// the layer is added or toggled.
func selectLayerID(doc *domain.Document, id string, toggle, clear bool) (*domain.Document, error) {
	owner := tree.FindOwningVectorLayer(doc.Layers.VectorLayers, id)
	if owner == nil {
		return doc, fmt.Errorf("layer %q: %w", id, domain.ErrLayerNotFound)
	}

	ls := doc.Layers
	eligible := clear || owner.ID() == ls.ActiveVectorLayerID

	next := ls.SelectedLayerIDs
	if clear {
		// Drop every other id first; toggle then decides this one's fate.
		if next.Has(id) {
			next = domain.NewIDSet(id)
		} else {
			next = domain.NewIDSet()
		}
	}
	if eligible {
		if toggle && next.Has(id) {
			next = next.Without(id)
		} else {
			next = next.With(id)
		}
	}

	nextActive := ls.ActiveVectorLayerID
	if eligible {
		nextActive = owner.ID()
	}

	tl := doc.Timeline
	if next.Equal(ls.SelectedLayerIDs) && nextActive == ls.ActiveVectorLayerID &&
		tl.SelectedAnimationIDs.Empty() && tl.SelectedBlockIDs.Empty() {
		return doc, nil
	}

	ls.SelectedLayerIDs = next
	ls.ActiveVectorLayerID = nextActive
	tl.SelectedAnimationIDs = domain.NewIDSet()
	tl.SelectedBlockIDs = domain.NewIDSet()
	return doc.WithLayers(ls).WithTimeline(tl), nil
}

// deleteSelectedAnimations removes every selected animation. Deleting the
// whole pool leaves a fresh default animation; a deleted active id moves to
// the first survivor.
func deleteSelectedAnimations(doc *domain.Document) *domain.Document {
	sel := doc.Timeline.SelectedAnimationIDs
	if sel.Empty() {
		return doc
	}

	tl := doc.Timeline
	kept := make([]*domain.Animation, 0, len(tl.Animations))
	for _, a := range tl.Animations {
		if !sel.Has(a.ID) {
			kept = append(kept, a)
		}
	}
	if len(kept) == 0 {
		kept = append(kept, domain.NewAnimation("anim"))
	}
	tl.Animations = kept
	if animationIndex(kept, tl.ActiveAnimationID) < 0 {
		tl.ActiveAnimationID = kept[0].ID
	}
	tl.SelectedAnimationIDs = domain.NewIDSet()
	return doc.WithTimeline(tl)
}

// deleteSelectedBlocks removes every selected block from its owning
// animation.
func deleteSelectedBlocks(doc *domain.Document) *domain.Document {
	sel := doc.Timeline.SelectedBlockIDs
	if sel.Empty() {
		return doc
	}

	tl := doc.Timeline
	pool := make([]*domain.Animation, len(tl.Animations))
	copy(pool, tl.Animations)
	for i, a := range pool {
		if !hasSelectedBlock(a, sel) {
			continue
		}
		clone := *a
		clone.Blocks = make([]domain.Block, 0, len(a.Blocks))
		for _, b := range a.Blocks {
			if !sel.Has(b.Base().ID) {
				clone.Blocks = append(clone.Blocks, b)
			}
		}
		pool[i] = &clone
	}
	tl.Animations = pool
	tl.SelectedBlockIDs = domain.NewIDSet()
	return doc.WithTimeline(tl)
}

func hasSelectedBlock(a *domain.Animation, sel domain.IDSet) bool {
	for _, b := range a.Blocks {
		if sel.Has(b.Base().ID) {
			return true
		}
	}
	return false
}

// deleteSelectedLayers removes every selected node, whether it is a tree
// root or an interior node. Emptying the root pool leaves a fresh default
// vector layer; a deleted active root moves to the first survivor.
func deleteSelectedLayers(doc *domain.Document) *domain.Document {
	sel := doc.Layers.SelectedLayerIDs
	if sel.Empty() {
		return doc
	}

	ls := doc.Layers
	pool := make([]*domain.VectorLayer, 0, len(ls.VectorLayers))
	pool = append(pool, ls.VectorLayers...)
	for _, id := range sel.Values() {
		if idx := vectorLayerIndex(pool, id); idx >= 0 {
			pool = append(pool[:idx], pool[idx+1:]...)
			continue
		}
		owner := tree.FindOwningVectorLayer(pool, id)
		if owner == nil {
			// Already gone with a deleted ancestor.
			continue
		}
		if rebuilt := tree.RemoveNode(owner, id); rebuilt != nil {
			pool[vectorLayerIndex(pool, owner.ID())] = rebuilt
		}
	}
	if len(pool) == 0 {
		pool = append(pool, domain.NewVectorLayer("vector"))
	}
	ls.VectorLayers = pool
	if vectorLayerIndex(pool, ls.ActiveVectorLayerID) < 0 {
		ls.ActiveVectorLayerID = pool[0].ID()
	}
	ls.SelectedLayerIDs = domain.NewIDSet()
	return doc.WithLayers(ls)
}

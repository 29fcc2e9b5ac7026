// Package reducer implements the single pure entry point of the editing
// core: Reduce. Every state transition of the document goes through it.
//
// Reduce is total: unknown or nil actions return the input document by
// reference. Actions whose preconditions are unmet (empty input lists,
// unchanged selections, duplicate activations) do the same; callers can
// detect designed no-ops by pointer equality. Actions that reference a
// missing entity fail fast with an error naming the id and its pool; the
// input document is returned untouched alongside the error.
package reducer

import (
	"fmt"

	"github.com/oxblood/morph/pkg/domain"
	"github.com/oxblood/morph/pkg/geometry"
	"github.com/oxblood/morph/pkg/tree"
)

// Reduce applies one action to the document and returns the resulting
// document. Subtrees the action did not touch are shared by reference with
// the input.
func Reduce(doc *domain.Document, action domain.Action) (*domain.Document, error) {
	if doc == nil || action == nil {
		return doc, nil
	}
	switch a := action.(type) {
	case domain.ResetWorkspace:
		return domain.New(), nil
	case domain.AddAnimations:
		return addAnimations(doc, a.Animations)
	case domain.SelectAnimation:
		return selectAnimationID(doc, a.AnimationID, a.Clear)
	case domain.ActivateAnimation:
		return activateAnimation(doc, a.AnimationID)
	case domain.ReplaceAnimations:
		return replaceAnimations(doc, a.Animations)
	case domain.AddBlock:
		return addBlock(doc, a)
	case domain.SelectBlock:
		return selectBlockID(doc, a.BlockID, a.Clear)
	case domain.ReplaceBlocks:
		return replaceBlocks(doc, a.Blocks)
	case domain.UpdatePathBlock:
		return updatePathBlock(doc, a)
	case domain.AddLayers:
		return addLayers(doc, a.Layers)
	case domain.SelectLayer:
		return selectLayerID(doc, a.LayerID, a.Toggle, a.Clear)
	case domain.ClearLayerSelections:
		return clearLayerSelections(doc)
	case domain.ToggleLayerExpansion:
		return toggleLayerExpansion(doc, a.LayerID, a.Recursive)
	case domain.ToggleLayerVisibility:
		return toggleLayerVisibility(doc, a.LayerID)
	case domain.ReplaceLayer:
		return replaceLayer(doc, a.Layer)
	case domain.DeleteSelectedModels:
		return deleteSelectedModels(doc)
	}
	return doc, nil
}

func addAnimations(doc *domain.Document, anims []*domain.Animation) (*domain.Document, error) {
	if len(anims) == 0 {
		return doc, nil
	}
	seen := make(map[string]bool, len(doc.Timeline.Animations)+len(anims))
	for _, a := range doc.Timeline.Animations {
		seen[a.ID] = true
	}
	for _, a := range anims {
		if seen[a.ID] {
			return doc, fmt.Errorf("animation %q: %w", a.ID, domain.ErrDuplicateID)
		}
		seen[a.ID] = true
	}

	tl := doc.Timeline
	pool := make([]*domain.Animation, 0, len(tl.Animations)+len(anims))
	pool = append(pool, tl.Animations...)
	pool = append(pool, anims...)
	tl.Animations = pool
	if tl.ActiveAnimationID == "" {
		tl.ActiveAnimationID = anims[0].ID
	}
	return doc.WithTimeline(tl), nil
}

func activateAnimation(doc *domain.Document, id string) (*domain.Document, error) {
	if doc.AnimationByID(id) == nil {
		return doc, fmt.Errorf("animation %q: %w", id, domain.ErrAnimationNotFound)
	}
	if doc.Timeline.ActiveAnimationID == id {
		return doc, nil
	}
	tl := doc.Timeline
	tl.ActiveAnimationID = id
	return doc.WithTimeline(tl), nil
}

func replaceAnimations(doc *domain.Document, anims []*domain.Animation) (*domain.Document, error) {
	if len(anims) == 0 {
		return doc, nil
	}
	replacements := make(map[string]*domain.Animation, len(anims))
	for _, a := range anims {
		if doc.AnimationByID(a.ID) == nil {
			return doc, fmt.Errorf("animation %q: %w", a.ID, domain.ErrAnimationNotFound)
		}
		replacements[a.ID] = a
	}

	tl := doc.Timeline
	pool := make([]*domain.Animation, len(tl.Animations))
	for i, old := range tl.Animations {
		if next, ok := replacements[old.ID]; ok {
			pool[i] = next
		} else {
			pool[i] = old
		}
	}
	tl.Animations = pool
	return doc.WithTimeline(tl), nil
}

func addBlock(doc *domain.Document, a domain.AddBlock) (*domain.Document, error) {
	if a.Layer == nil {
		return doc, fmt.Errorf("layer %q: %w", "", domain.ErrLayerNotFound)
	}
	layerID := a.Layer.ID()
	if tree.Find(doc.Layers.VectorLayers, layerID) == nil {
		return doc, fmt.Errorf("layer %q: %w", layerID, domain.ErrLayerNotFound)
	}
	propType, ok := a.Layer.AnimatableProperties()[a.PropertyName]
	if !ok {
		return doc, fmt.Errorf("property %q on layer %q: %w", a.PropertyName, layerID, domain.ErrNotAnimatable)
	}
	if domain.ValueType(a.FromValue) != propType || domain.ValueType(a.ToValue) != propType {
		return doc, fmt.Errorf("property %q on layer %q: value kind mismatch: %w", a.PropertyName, layerID, domain.ErrNotAnimatable)
	}
	anim := doc.ActiveAnimation()
	if anim == nil {
		return doc, fmt.Errorf("animation %q: %w", doc.Timeline.ActiveAnimationID, domain.ErrAnimationNotFound)
	}

	duration := a.Duration
	if duration <= 0 {
		duration = domain.DefaultBlockDuration
	}
	existing := tree.GroupBlocksByLayerAndProperty(anim)[layerID][a.PropertyName]
	start, end, err := findGap(existing, anim.Duration, duration, a.Cursor)
	if err != nil {
		return doc, fmt.Errorf("block for %q/%q: %w", layerID, a.PropertyName, err)
	}

	from, to := a.FromValue, a.ToValue
	if propType == domain.PropertyPath {
		// Path endpoints must be pairwise interpolatable from birth.
		f, t := makeInterpolatable(geometry.Path(from.(domain.PathValue)), geometry.Path(to.(domain.PathValue)))
		from, to = domain.PathValue(f), domain.PathValue(t)
	}
	block, err := domain.NewBlock(domain.BlockBase{
		LayerID:      layerID,
		AnimationID:  anim.ID,
		PropertyName: a.PropertyName,
		StartTime:    start,
		EndTime:      end,
	}, from, to)
	if err != nil {
		return doc, err
	}

	clone := anim.Clone()
	clone.Blocks = append(clone.Blocks, block)
	doc = substituteAnimation(doc, clone)

	// The new block becomes the sole selection across all three domains.
	tl := doc.Timeline
	tl.SelectedBlockIDs = domain.NewIDSet(block.Base().ID)
	tl.SelectedAnimationIDs = domain.NewIDSet()
	ls := doc.Layers
	ls.SelectedLayerIDs = domain.NewIDSet()
	return doc.WithTimeline(tl).WithLayers(ls), nil
}

func replaceBlocks(doc *domain.Document, blocks []domain.Block) (*domain.Document, error) {
	if len(blocks) == 0 {
		return doc, nil
	}
	byAnimation := make(map[string][]domain.Block)
	for _, b := range blocks {
		id := b.Base().AnimationID
		byAnimation[id] = append(byAnimation[id], b)
	}

	tl := doc.Timeline
	pool := make([]*domain.Animation, len(tl.Animations))
	copy(pool, tl.Animations)
	for animID, group := range byAnimation {
		idx := animationIndex(pool, animID)
		if idx < 0 {
			return doc, fmt.Errorf("animation %q: %w", animID, domain.ErrAnimationNotFound)
		}
		clone := pool[idx].Clone()
		for _, b := range group {
			blockIdx := clone.BlockIndex(b.Base().ID)
			if blockIdx < 0 {
				return doc, fmt.Errorf("block %q: %w", b.Base().ID, domain.ErrBlockNotFound)
			}
			clone.Blocks[blockIdx] = b
		}
		pool[idx] = clone
	}
	tl.Animations = pool
	return doc.WithTimeline(tl), nil
}

func updatePathBlock(doc *domain.Document, a domain.UpdatePathBlock) (*domain.Document, error) {
	anim, idx := findBlock(doc, a.BlockID)
	if anim == nil {
		return doc, fmt.Errorf("block %q: %w", a.BlockID, domain.ErrBlockNotFound)
	}
	pathBlock, ok := anim.Blocks[idx].(*domain.PathBlock)
	if !ok {
		return doc, fmt.Errorf("block %q: not a path block: %w", a.BlockID, domain.ErrBlockNotFound)
	}

	from, to := pathBlock.From, pathBlock.To
	if a.Source == domain.EndpointFrom {
		from = a.Path
	} else {
		to = a.Path
	}
	from, to = makeInterpolatable(from, to)

	// Both endpoints land in the same new block value; a half-updated
	// block is never observable.
	clone := anim.Clone()
	clone.Blocks[idx] = pathBlock.WithEndpoints(from, to)
	return substituteAnimation(doc, clone), nil
}

func addLayers(doc *domain.Document, layers []domain.Layer) (*domain.Document, error) {
	if len(layers) == 0 {
		return doc, nil
	}
	seen := make(map[string]bool)
	for _, root := range doc.Layers.VectorLayers {
		seen[root.ID()] = true
		for _, id := range tree.DescendantIDs(root) {
			seen[id] = true
		}
	}
	for _, l := range layers {
		// A whole subtree arrives at once; every node in it must be new.
		for _, id := range append([]string{l.ID()}, tree.DescendantIDs(l)...) {
			if seen[id] {
				return doc, fmt.Errorf("layer %q: %w", id, domain.ErrDuplicateID)
			}
			seen[id] = true
		}
	}

	ls := doc.Layers
	pool := make([]*domain.VectorLayer, len(ls.VectorLayers))
	copy(pool, ls.VectorLayers)

	var firstRoot *domain.VectorLayer
	var children []domain.Layer
	for _, l := range layers {
		if vl, ok := l.(*domain.VectorLayer); ok {
			pool = append(pool, vl)
			if firstRoot == nil {
				firstRoot = vl
			}
		} else {
			children = append(children, l)
		}
	}

	if len(children) > 0 {
		idx := vectorLayerIndex(pool, ls.ActiveVectorLayerID)
		if idx < 0 {
			return doc, fmt.Errorf("vector layer %q: %w", ls.ActiveVectorLayerID, domain.ErrLayerNotFound)
		}
		active := pool[idx]
		merged := make([]domain.Layer, 0, len(active.Children())+len(children))
		merged = append(merged, active.Children()...)
		merged = append(merged, children...)
		pool[idx] = active.WithChildren(merged).(*domain.VectorLayer)
	}

	ls.VectorLayers = pool
	if ls.ActiveVectorLayerID == "" && firstRoot != nil {
		ls.ActiveVectorLayerID = firstRoot.ID()
	}
	return doc.WithLayers(ls), nil
}

func clearLayerSelections(doc *domain.Document) (*domain.Document, error) {
	if doc.Layers.SelectedLayerIDs.Empty() {
		return doc, nil
	}
	ls := doc.Layers
	ls.SelectedLayerIDs = domain.NewIDSet()
	return doc.WithLayers(ls), nil
}

func toggleLayerExpansion(doc *domain.Document, id string, recursive bool) (*domain.Document, error) {
	layer := tree.Find(doc.Layers.VectorLayers, id)
	if layer == nil {
		return doc, fmt.Errorf("layer %q: %w", id, domain.ErrLayerNotFound)
	}
	ids := []string{id}
	if recursive {
		ids = append(ids, tree.DescendantIDs(layer)...)
	}

	set := doc.Layers.CollapsedLayerIDs
	if set.Has(id) {
		for _, toggled := range ids {
			set = set.Without(toggled)
		}
	} else {
		for _, toggled := range ids {
			set = set.With(toggled)
		}
	}
	ls := doc.Layers
	ls.CollapsedLayerIDs = set
	return doc.WithLayers(ls), nil
}

func toggleLayerVisibility(doc *domain.Document, id string) (*domain.Document, error) {
	if tree.Find(doc.Layers.VectorLayers, id) == nil {
		return doc, fmt.Errorf("layer %q: %w", id, domain.ErrLayerNotFound)
	}
	ls := doc.Layers
	if ls.HiddenLayerIDs.Has(id) {
		ls.HiddenLayerIDs = ls.HiddenLayerIDs.Without(id)
	} else {
		ls.HiddenLayerIDs = ls.HiddenLayerIDs.With(id)
	}
	return doc.WithLayers(ls), nil
}

func replaceLayer(doc *domain.Document, node domain.Layer) (*domain.Document, error) {
	if node == nil {
		return doc, fmt.Errorf("layer %q: %w", "", domain.ErrLayerNotFound)
	}
	ls := doc.Layers

	if vl, ok := node.(*domain.VectorLayer); ok {
		if idx := vectorLayerIndex(ls.VectorLayers, vl.ID()); idx >= 0 {
			pool := make([]*domain.VectorLayer, len(ls.VectorLayers))
			copy(pool, ls.VectorLayers)
			pool[idx] = vl
			ls.VectorLayers = pool
			return doc.WithLayers(ls), nil
		}
	}

	owner := tree.FindOwningVectorLayer(ls.VectorLayers, node.ID())
	if owner == nil {
		return doc, fmt.Errorf("layer %q: %w", node.ID(), domain.ErrLayerNotFound)
	}
	rebuilt := tree.ReplaceNode(owner, node)
	if rebuilt == nil {
		return doc, fmt.Errorf("layer %q: %w", node.ID(), domain.ErrLayerNotFound)
	}
	pool := make([]*domain.VectorLayer, len(ls.VectorLayers))
	copy(pool, ls.VectorLayers)
	pool[vectorLayerIndex(pool, owner.ID())] = rebuilt
	ls.VectorLayers = pool
	return doc.WithLayers(ls), nil
}

func deleteSelectedModels(doc *domain.Document) (*domain.Document, error) {
	doc = deleteSelectedAnimations(doc)
	doc = deleteSelectedBlocks(doc)
	doc = deleteSelectedLayers(doc)
	return doc, nil
}

// substituteAnimation swaps the animation with clone.ID into a copied
// pool. The animation must exist.
func substituteAnimation(doc *domain.Document, clone *domain.Animation) *domain.Document {
	tl := doc.Timeline
	pool := make([]*domain.Animation, len(tl.Animations))
	copy(pool, tl.Animations)
	pool[animationIndex(pool, clone.ID)] = clone
	tl.Animations = pool
	return doc.WithTimeline(tl)
}

func animationIndex(pool []*domain.Animation, id string) int {
	for i, a := range pool {
		if a.ID == id {
			return i
		}
	}
	return -1
}

func vectorLayerIndex(pool []*domain.VectorLayer, id string) int {
	for i, vl := range pool {
		if vl.ID() == id {
			return i
		}
	}
	return -1
}

// findBlock locates a block anywhere on the timeline, returning its owning
// animation and index.
func findBlock(doc *domain.Document, blockID string) (*domain.Animation, int) {
	for _, a := range doc.Timeline.Animations {
		if idx := a.BlockIndex(blockID); idx >= 0 {
			return a, idx
		}
	}
	return nil, -1
}

package domain

// DocumentDiff summarizes what changed between two documents. It is
// computed from pointer identity alone (the structural-sharing guarantee
// makes "same reference" mean "same value"), so it is cheap enough to run
// after every dispatch.
type DocumentDiff struct {
	// LayersChanged reports any change in the layers half.
	LayersChanged bool
	// TimelineChanged reports any change in the timeline half.
	TimelineChanged bool
	// ChangedVectorLayerIDs lists roots that were replaced, in pool order.
	ChangedVectorLayerIDs []string
	// ChangedAnimationIDs lists animations that were replaced, in pool order.
	ChangedAnimationIDs []string
	// SelectionChanged reports a change in any of the three selection sets.
	SelectionChanged bool
}

// IsEmpty reports whether the diff contains no changes.
func (d *DocumentDiff) IsEmpty() bool {
	return !d.LayersChanged && !d.TimelineChanged
}

// Diff compares two documents by identity. If old is nil, everything in
// new is reported as changed (initial load).
func Diff(old, new *Document) *DocumentDiff {
	diff := &DocumentDiff{}
	if new == nil {
		return diff
	}
	if old == new {
		return diff
	}

	if old == nil {
		diff.LayersChanged = true
		diff.TimelineChanged = true
		for _, vl := range new.Layers.VectorLayers {
			diff.ChangedVectorLayerIDs = append(diff.ChangedVectorLayerIDs, vl.LayerID)
		}
		for _, a := range new.Timeline.Animations {
			diff.ChangedAnimationIDs = append(diff.ChangedAnimationIDs, a.ID)
		}
		return diff
	}

	diff.ChangedVectorLayerIDs = changedVectorLayers(old.Layers.VectorLayers, new.Layers.VectorLayers)
	diff.ChangedAnimationIDs = changedAnimations(old.Timeline.Animations, new.Timeline.Animations)

	diff.LayersChanged = len(diff.ChangedVectorLayerIDs) > 0 ||
		len(old.Layers.VectorLayers) != len(new.Layers.VectorLayers) ||
		old.Layers.ActiveVectorLayerID != new.Layers.ActiveVectorLayerID ||
		!sameSet(old.Layers.SelectedLayerIDs, new.Layers.SelectedLayerIDs) ||
		!sameSet(old.Layers.CollapsedLayerIDs, new.Layers.CollapsedLayerIDs) ||
		!sameSet(old.Layers.HiddenLayerIDs, new.Layers.HiddenLayerIDs)

	diff.TimelineChanged = len(diff.ChangedAnimationIDs) > 0 ||
		len(old.Timeline.Animations) != len(new.Timeline.Animations) ||
		old.Timeline.ActiveAnimationID != new.Timeline.ActiveAnimationID ||
		!sameSet(old.Timeline.SelectedAnimationIDs, new.Timeline.SelectedAnimationIDs) ||
		!sameSet(old.Timeline.SelectedBlockIDs, new.Timeline.SelectedBlockIDs)

	diff.SelectionChanged = !sameSet(old.Layers.SelectedLayerIDs, new.Layers.SelectedLayerIDs) ||
		!sameSet(old.Timeline.SelectedAnimationIDs, new.Timeline.SelectedAnimationIDs) ||
		!sameSet(old.Timeline.SelectedBlockIDs, new.Timeline.SelectedBlockIDs)

	return diff
}

// changedVectorLayers reports roots present in both pools under the same
// id but with different identity.
func changedVectorLayers(old, new []*VectorLayer) []string {
	prev := make(map[string]*VectorLayer, len(old))
	for _, vl := range old {
		prev[vl.LayerID] = vl
	}
	var out []string
	for _, vl := range new {
		if p, ok := prev[vl.LayerID]; ok && p != vl {
			out = append(out, vl.LayerID)
		}
	}
	return out
}

func changedAnimations(old, new []*Animation) []string {
	prev := make(map[string]*Animation, len(old))
	for _, a := range old {
		prev[a.ID] = a
	}
	var out []string
	for _, a := range new {
		if p, ok := prev[a.ID]; ok && p != a {
			out = append(out, a.ID)
		}
	}
	return out
}

func sameSet(a, b IDSet) bool {
	return a.Equal(b)
}

package domain

// LayersState holds the drawable-layer half of the document.
type LayersState struct {
	// VectorLayers is the ordered pool of layer tree roots. Never empty.
	VectorLayers []*VectorLayer
	// ActiveVectorLayerID names the tree currently being edited. Always
	// set while the pool is non-empty.
	ActiveVectorLayerID string

	SelectedLayerIDs  IDSet
	CollapsedLayerIDs IDSet
	HiddenLayerIDs    IDSet
}

// TimelineState holds the animation half of the document.
type TimelineState struct {
	// Animations is the ordered animation pool. Never empty.
	Animations []*Animation
	// ActiveAnimationID names the animation new blocks are placed in.
	// Always set while the pool is non-empty.
	ActiveAnimationID string

	SelectedAnimationIDs IDSet
	SelectedBlockIDs     IDSet
}

// Document is the root state value of the editor. Every action produces a
// new Document; subtrees the action did not touch are shared by reference
// with the input.
type Document struct {
	Layers   LayersState
	Timeline TimelineState
}

// New creates the default document: one empty vector layer and one empty
// animation, both active, nothing selected.
func New() *Document {
	vl := NewVectorLayer("vector")
	anim := NewAnimation("anim")
	return &Document{
		Layers: LayersState{
			VectorLayers:        []*VectorLayer{vl},
			ActiveVectorLayerID: vl.LayerID,
			SelectedLayerIDs:    NewIDSet(),
			CollapsedLayerIDs:   NewIDSet(),
			HiddenLayerIDs:      NewIDSet(),
		},
		Timeline: TimelineState{
			Animations:           []*Animation{anim},
			ActiveAnimationID:    anim.ID,
			SelectedAnimationIDs: NewIDSet(),
			SelectedBlockIDs:     NewIDSet(),
		},
	}
}

// ActiveAnimation returns the active animation, or nil if the id is stale.
func (d *Document) ActiveAnimation() *Animation {
	return d.AnimationByID(d.Timeline.ActiveAnimationID)
}

// AnimationByID returns the animation with the given id, or nil.
func (d *Document) AnimationByID(id string) *Animation {
	for _, a := range d.Timeline.Animations {
		if a.ID == id {
			return a
		}
	}
	return nil
}

// ActiveVectorLayer returns the active layer tree root, or nil if the id
// is stale.
func (d *Document) ActiveVectorLayer() *VectorLayer {
	for _, vl := range d.Layers.VectorLayers {
		if vl.LayerID == d.Layers.ActiveVectorLayerID {
			return vl
		}
	}
	return nil
}

// WithLayers returns a copy of the document with the layers state
// replaced; the timeline is shared.
func (d *Document) WithLayers(layers LayersState) *Document {
	next := *d
	next.Layers = layers
	return &next
}

// WithTimeline returns a copy of the document with the timeline state
// replaced; the layers are shared.
func (d *Document) WithTimeline(timeline TimelineState) *Document {
	next := *d
	next.Timeline = timeline
	return &next
}

package domain

import "github.com/oxblood/morph/pkg/geometry"

// Action is the closed union of state transitions understood by the
// reducer. Kind returns a stable snake_case name used for logging, metrics
// labels, and scenario files.
type Action interface {
	Kind() string

	sealedAction()
}

// PathBlockEndpoint selects which end of a path morph an edit targets.
type PathBlockEndpoint int

const (
	EndpointFrom PathBlockEndpoint = iota
	EndpointTo
)

// String returns "from" or "to".
func (e PathBlockEndpoint) String() string {
	if e == EndpointTo {
		return "to"
	}
	return "from"
}

// ResetWorkspace discards the whole document and recreates the default one.
type ResetWorkspace struct{}

// AddAnimations appends animations to the timeline pool. If no animation
// is active, the first appended one becomes active.
type AddAnimations struct {
	Animations []*Animation
}

// SelectAnimation toggles an animation's membership in the animation
// selection, clearing the other two selection domains.
type SelectAnimation struct {
	AnimationID string
	// Clear replaces the existing animation selection instead of adding
	// to it.
	Clear bool
}

// ActivateAnimation marks an animation as the target for new blocks.
type ActivateAnimation struct {
	AnimationID string
}

// ReplaceAnimations substitutes animations by id, keeping pool order.
type ReplaceAnimations struct {
	Animations []*Animation
}

// AddBlock creates a new block for a layer property in the active
// animation, placed by the timeline gap finder as close to Cursor as
// space allows.
type AddBlock struct {
	Layer        Layer
	PropertyName string
	FromValue    Value
	ToValue      Value
	// Duration is the block length in timeline units; the default is
	// DefaultBlockDuration when zero.
	Duration int64
	// Cursor is the reference time the gap finder aims for.
	Cursor int64
}

// SelectBlock toggles a block's membership in the block selection,
// clearing the other two selection domains.
type SelectBlock struct {
	BlockID string
	Clear   bool
}

// ReplaceBlocks substitutes blocks by id inside their owning animations.
type ReplaceBlocks struct {
	Blocks []Block
}

// UpdatePathBlock replaces one endpoint of a path block and re-runs the
// morph compatibilizer so both endpoints stay pairwise interpolatable.
type UpdatePathBlock struct {
	BlockID string
	Source  PathBlockEndpoint
	Path    geometry.Path
}

// AddLayers appends layers to the document: vector-layer roots join the
// root pool, any other node becomes a child of the active vector layer.
type AddLayers struct {
	Layers []Layer
}

// SelectLayer selects a layer, clearing the other two selection domains.
// Multi-selection across different vector layer trees is rejected: without
// Clear, a layer outside the active tree is not added to the selection.
type SelectLayer struct {
	LayerID string
	// Toggle removes the layer from the selection if it is already there.
	Toggle bool
	Clear  bool
}

// ClearLayerSelections empties the layer selection.
type ClearLayerSelections struct{}

// ToggleLayerExpansion flips a layer's collapsed state in the tree view,
// optionally together with all of its descendants.
type ToggleLayerExpansion struct {
	LayerID   string
	Recursive bool
}

// ToggleLayerVisibility flips a layer's hidden state.
type ToggleLayerVisibility struct {
	LayerID string
}

// ReplaceLayer substitutes a single node (or a whole root) by id.
type ReplaceLayer struct {
	Layer Layer
}

// DeleteSelectedModels deletes the selected animations, then the selected
// blocks, then the selected layers. Emptied pools are refilled with a
// fresh default element.
type DeleteSelectedModels struct{}

func (ResetWorkspace) Kind() string        { return "reset_workspace" }
func (AddAnimations) Kind() string         { return "add_animations" }
func (SelectAnimation) Kind() string       { return "select_animation" }
func (ActivateAnimation) Kind() string     { return "activate_animation" }
func (ReplaceAnimations) Kind() string     { return "replace_animations" }
func (AddBlock) Kind() string              { return "add_block" }
func (SelectBlock) Kind() string           { return "select_block" }
func (ReplaceBlocks) Kind() string         { return "replace_blocks" }
func (UpdatePathBlock) Kind() string       { return "update_path_block" }
func (AddLayers) Kind() string             { return "add_layers" }
func (SelectLayer) Kind() string           { return "select_layer" }
func (ClearLayerSelections) Kind() string  { return "clear_layer_selections" }
func (ToggleLayerExpansion) Kind() string  { return "toggle_layer_expansion" }
func (ToggleLayerVisibility) Kind() string { return "toggle_layer_visibility" }
func (ReplaceLayer) Kind() string          { return "replace_layer" }
func (DeleteSelectedModels) Kind() string  { return "delete_selected_models" }

func (ResetWorkspace) sealedAction()        {}
func (AddAnimations) sealedAction()         {}
func (SelectAnimation) sealedAction()       {}
func (ActivateAnimation) sealedAction()     {}
func (ReplaceAnimations) sealedAction()     {}
func (AddBlock) sealedAction()              {}
func (SelectBlock) sealedAction()           {}
func (ReplaceBlocks) sealedAction()         {}
func (UpdatePathBlock) sealedAction()       {}
func (AddLayers) sealedAction()             {}
func (SelectLayer) sealedAction()           {}
func (ClearLayerSelections) sealedAction()  {}
func (ToggleLayerExpansion) sealedAction()  {}
func (ToggleLayerVisibility) sealedAction() {}
func (ReplaceLayer) sealedAction()          {}
func (DeleteSelectedModels) sealedAction()  {}

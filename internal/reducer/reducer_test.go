package reducer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxblood/morph/pkg/domain"
	"github.com/oxblood/morph/pkg/geometry"
)

func TestReduceNilInputs(t *testing.T) {
	doc := domain.New()
	got, err := Reduce(doc, nil)
	require.NoError(t, err)
	assert.Same(t, doc, got)

	got, err = Reduce(nil, domain.ResetWorkspace{})
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestResetWorkspace(t *testing.T) {
	doc := domain.New()
	doc, err := Reduce(doc, domain.AddAnimations{Animations: []*domain.Animation{domain.NewAnimation("extra")}})
	require.NoError(t, err)

	fresh, err := Reduce(doc, domain.ResetWorkspace{})
	require.NoError(t, err)
	assert.Len(t, fresh.Timeline.Animations, 1)
	assert.Len(t, fresh.Layers.VectorLayers, 1)
	assert.NotSame(t, doc, fresh)
}

func TestAddAnimations(t *testing.T) {
	doc := domain.New()

	t.Run("empty list is an identity no-op", func(t *testing.T) {
		got, err := Reduce(doc, domain.AddAnimations{})
		require.NoError(t, err)
		assert.Same(t, doc, got)
	})

	t.Run("appends keeping the existing active", func(t *testing.T) {
		extra := domain.NewAnimation("extra")
		got, err := Reduce(doc, domain.AddAnimations{Animations: []*domain.Animation{extra}})
		require.NoError(t, err)
		require.Len(t, got.Timeline.Animations, 2)
		assert.Equal(t, doc.Timeline.ActiveAnimationID, got.Timeline.ActiveAnimationID)
		// The layers half is untouched and shared.
		assert.Equal(t, doc.Layers, got.Layers)
	})

	t.Run("duplicate id fails", func(t *testing.T) {
		dup := &domain.Animation{ID: doc.Timeline.Animations[0].ID, Name: "dup"}
		_, err := Reduce(doc, domain.AddAnimations{Animations: []*domain.Animation{dup}})
		require.ErrorIs(t, err, domain.ErrDuplicateID)
	})
}

func TestActivateAnimation(t *testing.T) {
	doc, a, b := twoAnimationDoc(t)

	got, err := Reduce(doc, domain.ActivateAnimation{AnimationID: b.ID})
	require.NoError(t, err)
	assert.Equal(t, b.ID, got.Timeline.ActiveAnimationID)

	t.Run("activating the active id is an identity no-op", func(t *testing.T) {
		same, err := Reduce(doc, domain.ActivateAnimation{AnimationID: a.ID})
		require.NoError(t, err)
		assert.Same(t, doc, same)
	})

	t.Run("idempotence", func(t *testing.T) {
		once, err := Reduce(doc, domain.ActivateAnimation{AnimationID: b.ID})
		require.NoError(t, err)
		twice, err := Reduce(once, domain.ActivateAnimation{AnimationID: b.ID})
		require.NoError(t, err)
		assert.Same(t, once, twice)
	})

	t.Run("unknown id fails", func(t *testing.T) {
		_, err := Reduce(doc, domain.ActivateAnimation{AnimationID: "missing"})
		require.ErrorIs(t, err, domain.ErrAnimationNotFound)
	})
}

func TestReplaceAnimations(t *testing.T) {
	doc, a, b := twoAnimationDoc(t)

	renamed := *a
	renamed.Name = "renamed"
	got, err := Reduce(doc, domain.ReplaceAnimations{Animations: []*domain.Animation{&renamed}})
	require.NoError(t, err)

	assert.Equal(t, "renamed", got.Timeline.Animations[0].Name)
	// Pool order is preserved and untouched entries keep their identity.
	assert.Same(t, b, got.Timeline.Animations[1])

	t.Run("unknown id fails", func(t *testing.T) {
		ghost := domain.NewAnimation("ghost")
		_, err := Reduce(doc, domain.ReplaceAnimations{Animations: []*domain.Animation{ghost}})
		require.ErrorIs(t, err, domain.ErrAnimationNotFound)
	})
}

func TestAddBlock(t *testing.T) {
	doc := domain.New()
	layer := doc.Layers.VectorLayers[0]
	add := domain.AddBlock{
		Layer:        layer,
		PropertyName: domain.PropertyAlpha,
		FromValue:    domain.NumberValue(0),
		ToValue:      domain.NumberValue(1),
	}

	doc, err := Reduce(doc, add)
	require.NoError(t, err)
	anim := doc.ActiveAnimation()
	require.Len(t, anim.Blocks, 1)

	base := anim.Blocks[0].Base()
	assert.Equal(t, int64(0), base.StartTime)
	assert.Equal(t, int64(domain.DefaultBlockDuration), base.EndTime)
	assert.Equal(t, layer.ID(), base.LayerID)
	assert.Equal(t, anim.ID, base.AnimationID)

	// The new block is the sole selection.
	assert.Equal(t, []string{base.ID}, doc.Timeline.SelectedBlockIDs.Values())
	assert.True(t, doc.Timeline.SelectedAnimationIDs.Empty())
	assert.True(t, doc.Layers.SelectedLayerIDs.Empty())

	t.Run("second block lands after the first", func(t *testing.T) {
		next, err := Reduce(doc, add)
		require.NoError(t, err)
		second := next.ActiveAnimation().Blocks[1].Base()
		assert.Equal(t, int64(100), second.StartTime)
		assert.Equal(t, int64(200), second.EndTime)
	})

	t.Run("full lane rejects with a diagnostic", func(t *testing.T) {
		next, err := Reduce(doc, add)
		require.NoError(t, err)
		_, err = Reduce(next, add)
		require.ErrorIs(t, err, ErrNoGapAvailable)
	})

	t.Run("unknown property fails", func(t *testing.T) {
		bad := add
		bad.PropertyName = "bogus"
		_, err := Reduce(doc, bad)
		require.ErrorIs(t, err, domain.ErrNotAnimatable)
	})

	t.Run("value kind mismatch fails", func(t *testing.T) {
		bad := add
		bad.FromValue = domain.ColorValue("#ff0000")
		bad.ToValue = domain.ColorValue("#00ff00")
		_, err := Reduce(doc, bad)
		require.ErrorIs(t, err, domain.ErrNotAnimatable)
	})

	t.Run("layer outside the document fails", func(t *testing.T) {
		bad := add
		bad.Layer = domain.NewVectorLayer("stray")
		_, err := Reduce(domain.New(), bad)
		require.ErrorIs(t, err, domain.ErrLayerNotFound)
	})
}

func TestAddBlockCompatibilizesPathEndpoints(t *testing.T) {
	doc := domain.New()
	pathLayer := domain.NewPathLayer("shape", geometry.NewPath(triangle(0, 0, 10)))
	doc, err := Reduce(doc, domain.AddLayers{Layers: []domain.Layer{pathLayer}})
	require.NoError(t, err)

	doc, err = Reduce(doc, domain.AddBlock{
		Layer:        pathLayer,
		PropertyName: domain.PropertyPathData,
		FromValue:    domain.PathValue(geometry.NewPath(triangle(0, 0, 10))),
		ToValue:      domain.PathValue(geometry.NewPath(triangle(0, 0, 10), triangle(100, 100, 10))),
	})
	require.NoError(t, err)

	block := doc.ActiveAnimation().Blocks[0].(*domain.PathBlock)
	assert.Equal(t, block.From.CommandCounts(), block.To.CommandCounts())
	assert.Equal(t, 2, block.From.Len())
}

func TestReplaceBlocks(t *testing.T) {
	doc := domain.New()
	layer := doc.Layers.VectorLayers[0]
	doc, err := Reduce(doc, domain.AddBlock{
		Layer:        layer,
		PropertyName: domain.PropertyAlpha,
		FromValue:    domain.NumberValue(0),
		ToValue:      domain.NumberValue(1),
	})
	require.NoError(t, err)

	orig := doc.ActiveAnimation().Blocks[0]
	base := orig.Base()
	base.StartTime, base.EndTime = 150, 250
	moved := orig.WithBase(base)

	got, err := Reduce(doc, domain.ReplaceBlocks{Blocks: []domain.Block{moved}})
	require.NoError(t, err)
	assert.Equal(t, int64(150), got.ActiveAnimation().Blocks[0].Base().StartTime)
	// The prior document is untouched.
	assert.Equal(t, int64(0), doc.ActiveAnimation().Blocks[0].Base().StartTime)

	t.Run("unknown block fails", func(t *testing.T) {
		ghostBase := base
		ghostBase.ID = "missing"
		_, err := Reduce(doc, domain.ReplaceBlocks{Blocks: []domain.Block{orig.WithBase(ghostBase)}})
		require.ErrorIs(t, err, domain.ErrBlockNotFound)
	})
}

func TestUpdatePathBlock(t *testing.T) {
	doc := domain.New()
	pathLayer := domain.NewPathLayer("shape", geometry.NewPath(triangle(0, 0, 10)))
	doc, err := Reduce(doc, domain.AddLayers{Layers: []domain.Layer{pathLayer}})
	require.NoError(t, err)
	doc, err = Reduce(doc, domain.AddBlock{
		Layer:        pathLayer,
		PropertyName: domain.PropertyPathData,
		FromValue:    domain.PathValue(geometry.NewPath(triangle(0, 0, 10))),
		ToValue:      domain.PathValue(geometry.NewPath(triangle(0, 0, 10))),
	})
	require.NoError(t, err)
	blockID := doc.ActiveAnimation().Blocks[0].Base().ID

	got, err := Reduce(doc, domain.UpdatePathBlock{
		BlockID: blockID,
		Source:  domain.EndpointTo,
		Path:    geometry.NewPath(triangle(0, 0, 10), triangle(100, 100, 10)),
	})
	require.NoError(t, err)

	block := got.ActiveAnimation().Blocks[0].(*domain.PathBlock)
	assert.Equal(t, 2, block.From.Len())
	assert.Equal(t, 2, block.To.Len())
	assert.Equal(t, block.From.CommandCounts(), block.To.CommandCounts())
	assert.True(t, block.From.SubPath(1).Collapsing())

	t.Run("unknown block fails", func(t *testing.T) {
		_, err := Reduce(doc, domain.UpdatePathBlock{BlockID: "missing"})
		require.ErrorIs(t, err, domain.ErrBlockNotFound)
	})
}

func TestAddLayers(t *testing.T) {
	doc := domain.New()
	active := doc.Layers.VectorLayers[0]

	t.Run("roots join the pool, nodes join the active tree", func(t *testing.T) {
		root := domain.NewVectorLayer("second")
		group := domain.NewGroupLayer("group")
		got, err := Reduce(doc, domain.AddLayers{Layers: []domain.Layer{root, group}})
		require.NoError(t, err)

		require.Len(t, got.Layers.VectorLayers, 2)
		assert.Equal(t, active.ID(), got.Layers.ActiveVectorLayerID)
		children := got.Layers.VectorLayers[0].Children()
		require.Len(t, children, 1)
		assert.Equal(t, group.ID(), children[0].ID())
	})

	t.Run("duplicate id fails", func(t *testing.T) {
		dup := &domain.VectorLayer{LayerID: active.ID(), LayerName: "dup"}
		_, err := Reduce(doc, domain.AddLayers{Layers: []domain.Layer{dup}})
		require.ErrorIs(t, err, domain.ErrDuplicateID)
	})

	t.Run("duplicate id inside an added subtree fails", func(t *testing.T) {
		seeded, err := Reduce(doc, domain.AddLayers{Layers: []domain.Layer{domain.NewGroupLayer("group")}})
		require.NoError(t, err)
		existing := seeded.Layers.VectorLayers[0].Children()[0]

		smuggled := domain.NewGroupLayer("outer").
			WithChildren([]domain.Layer{existing})
		_, err = Reduce(seeded, domain.AddLayers{Layers: []domain.Layer{smuggled}})
		require.ErrorIs(t, err, domain.ErrDuplicateID)

		// The same node twice within one payload is caught too.
		leaf := domain.NewGroupLayer("leaf")
		twins := domain.NewGroupLayer("twins").
			WithChildren([]domain.Layer{leaf, leaf})
		_, err = Reduce(doc, domain.AddLayers{Layers: []domain.Layer{twins}})
		require.ErrorIs(t, err, domain.ErrDuplicateID)
	})

	t.Run("empty list is an identity no-op", func(t *testing.T) {
		got, err := Reduce(doc, domain.AddLayers{})
		require.NoError(t, err)
		assert.Same(t, doc, got)
	})
}

func TestToggleLayerExpansion(t *testing.T) {
	doc := domain.New()
	group := domain.NewGroupLayer("group")
	inner := domain.NewPathLayer("leaf", geometry.Path{})
	grouped := group.WithChildren([]domain.Layer{inner})
	doc, err := Reduce(doc, domain.AddLayers{Layers: []domain.Layer{grouped}})
	require.NoError(t, err)

	t.Run("single", func(t *testing.T) {
		got, err := Reduce(doc, domain.ToggleLayerExpansion{LayerID: group.ID()})
		require.NoError(t, err)
		assert.True(t, got.Layers.CollapsedLayerIDs.Has(group.ID()))
		assert.False(t, got.Layers.CollapsedLayerIDs.Has(inner.ID()))

		back, err := Reduce(got, domain.ToggleLayerExpansion{LayerID: group.ID()})
		require.NoError(t, err)
		assert.False(t, back.Layers.CollapsedLayerIDs.Has(group.ID()))
	})

	t.Run("recursive", func(t *testing.T) {
		got, err := Reduce(doc, domain.ToggleLayerExpansion{LayerID: group.ID(), Recursive: true})
		require.NoError(t, err)
		assert.True(t, got.Layers.CollapsedLayerIDs.Has(group.ID()))
		assert.True(t, got.Layers.CollapsedLayerIDs.Has(inner.ID()))
	})

	t.Run("unknown id fails", func(t *testing.T) {
		_, err := Reduce(doc, domain.ToggleLayerExpansion{LayerID: "missing"})
		require.ErrorIs(t, err, domain.ErrLayerNotFound)
	})
}

func TestToggleLayerVisibility(t *testing.T) {
	doc := domain.New()
	root := doc.Layers.VectorLayers[0]

	hidden, err := Reduce(doc, domain.ToggleLayerVisibility{LayerID: root.ID()})
	require.NoError(t, err)
	assert.True(t, hidden.Layers.HiddenLayerIDs.Has(root.ID()))

	shown, err := Reduce(hidden, domain.ToggleLayerVisibility{LayerID: root.ID()})
	require.NoError(t, err)
	assert.False(t, shown.Layers.HiddenLayerIDs.Has(root.ID()))
}

func TestReplaceLayer(t *testing.T) {
	doc := domain.New()
	group := domain.NewGroupLayer("group")
	doc, err := Reduce(doc, domain.AddLayers{Layers: []domain.Layer{group}})
	require.NoError(t, err)

	t.Run("interior node", func(t *testing.T) {
		moved := *group
		moved.TranslateX = 5
		got, err := Reduce(doc, domain.ReplaceLayer{Layer: &moved})
		require.NoError(t, err)
		child := got.Layers.VectorLayers[0].Children()[0].(*domain.GroupLayer)
		assert.Equal(t, 5.0, child.TranslateX)
		// Untouched siblings of the spine keep identity with the input.
		assert.Equal(t, doc.Timeline, got.Timeline)
	})

	t.Run("whole root", func(t *testing.T) {
		root := *doc.Layers.VectorLayers[0]
		root.LayerName = "renamed"
		got, err := Reduce(doc, domain.ReplaceLayer{Layer: &root})
		require.NoError(t, err)
		assert.Equal(t, "renamed", got.Layers.VectorLayers[0].LayerName)
	})

	t.Run("unknown node fails", func(t *testing.T) {
		_, err := Reduce(doc, domain.ReplaceLayer{Layer: domain.NewGroupLayer("stray")})
		require.ErrorIs(t, err, domain.ErrLayerNotFound)
	})
}

func TestStructuralSharing(t *testing.T) {
	doc, _, b := twoAnimationDoc(t)

	got, err := Reduce(doc, domain.ActivateAnimation{AnimationID: b.ID})
	require.NoError(t, err)

	// Only the timeline half changed; every animation keeps its identity.
	assert.Equal(t, doc.Layers, got.Layers)
	for i := range doc.Timeline.Animations {
		assert.Same(t, doc.Timeline.Animations[i], got.Timeline.Animations[i])
	}

	diff := domain.Diff(doc, got)
	assert.True(t, diff.TimelineChanged)
	assert.False(t, diff.LayersChanged)
	assert.Empty(t, diff.ChangedAnimationIDs)
}

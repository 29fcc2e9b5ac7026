package tree

import (
	"testing"

	"github.com/oxblood/morph/pkg/domain"
	"github.com/oxblood/morph/pkg/geometry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildTree assembles:
//
//	root (vector)
//	└── body (group)
//	    ├── arm (group)
//	    └── shape (path)
func buildTree() (root *domain.VectorLayer, body, arm *domain.GroupLayer, shape *domain.PathLayer) {
	data := geometry.NewPath(geometry.NewSubPath(
		geometry.Move(geometry.Point{}),
		geometry.Line(geometry.Point{X: 10, Y: 0}),
		geometry.Close(),
	))
	shape = domain.NewPathLayer("shape", data)
	arm = domain.NewGroupLayer("arm")
	body = domain.NewGroupLayer("body")
	body.Child = []domain.Layer{arm, shape}
	root = domain.NewVectorLayer("root")
	root.Child = []domain.Layer{body}
	return root, body, arm, shape
}

func TestFind(t *testing.T) {
	root, body, _, shape := buildTree()
	other := domain.NewVectorLayer("other")
	trees := []*domain.VectorLayer{other, root}

	assert.Same(t, domain.Layer(shape), Find(trees, shape.LayerID))
	assert.Same(t, domain.Layer(body), Find(trees, body.LayerID))
	assert.Same(t, domain.Layer(root), Find(trees, root.LayerID))
	assert.Nil(t, Find(trees, "ghost"))
}

func TestFindOwningVectorLayer(t *testing.T) {
	root, _, arm, _ := buildTree()
	other := domain.NewVectorLayer("other")
	trees := []*domain.VectorLayer{other, root}

	assert.Same(t, root, FindOwningVectorLayer(trees, arm.LayerID))
	assert.Same(t, root, FindOwningVectorLayer(trees, root.LayerID))
	assert.Nil(t, FindOwningVectorLayer(trees, "ghost"))
}

func TestReplaceNode(t *testing.T) {
	t.Run("interior node", func(t *testing.T) {
		root, body, arm, shape := buildTree()

		renamed := *arm
		renamed.LayerName = "leg"
		next := ReplaceNode(root, &renamed)

		require.NotNil(t, next)
		assert.NotSame(t, root, next, "the spine is rebuilt")
		assert.Equal(t, "leg", Find([]*domain.VectorLayer{next}, arm.LayerID).Name())
		// Siblings off the spine are shared.
		nextBody := next.Child[0].(*domain.GroupLayer)
		assert.NotSame(t, body, nextBody)
		assert.Same(t, domain.Layer(shape), nextBody.Child[1])

		// The input tree is untouched.
		assert.Equal(t, "arm", Find([]*domain.VectorLayer{root}, arm.LayerID).Name())
	})

	t.Run("root node must stay a vector layer", func(t *testing.T) {
		root, _, _, _ := buildTree()

		renamed := *root
		renamed.LayerName = "canvas"
		next := ReplaceNode(root, &renamed)
		require.NotNil(t, next)
		assert.Equal(t, "canvas", next.LayerName)

		impostor := domain.NewGroupLayer("impostor")
		impostor.LayerID = root.LayerID
		assert.Nil(t, ReplaceNode(root, impostor))
	})

	t.Run("missing id", func(t *testing.T) {
		root, _, _, _ := buildTree()
		assert.Nil(t, ReplaceNode(root, domain.NewGroupLayer("stray")))
	})
}

func TestRemoveNode(t *testing.T) {
	t.Run("leaf", func(t *testing.T) {
		root, _, arm, shape := buildTree()

		next := RemoveNode(root, shape.LayerID)
		require.NotNil(t, next)
		assert.Nil(t, Find([]*domain.VectorLayer{next}, shape.LayerID))
		assert.NotNil(t, Find([]*domain.VectorLayer{next}, arm.LayerID))
		// Input untouched.
		assert.NotNil(t, Find([]*domain.VectorLayer{root}, shape.LayerID))
	})

	t.Run("interior node removes its subtree", func(t *testing.T) {
		root, body, arm, _ := buildTree()

		next := RemoveNode(root, body.LayerID)
		require.NotNil(t, next)
		assert.Empty(t, next.Child)
		assert.Nil(t, Find([]*domain.VectorLayer{next}, arm.LayerID))
	})

	t.Run("root and missing ids return nil", func(t *testing.T) {
		root, _, _, _ := buildTree()
		assert.Nil(t, RemoveNode(root, root.LayerID))
		assert.Nil(t, RemoveNode(root, "ghost"))
	})
}

func TestDescendantIDs(t *testing.T) {
	root, body, arm, shape := buildTree()

	assert.Equal(t, []string{body.LayerID, arm.LayerID, shape.LayerID}, DescendantIDs(root))
	assert.Empty(t, DescendantIDs(shape))
}

func TestGroupBlocksByLayerAndProperty(t *testing.T) {
	anim := domain.NewAnimation("anim")
	mk := func(id, layerID, prop string, start int64) domain.Block {
		b, err := domain.NewBlock(domain.BlockBase{
			ID: id, LayerID: layerID, AnimationID: anim.ID,
			PropertyName: prop, StartTime: start, EndTime: start + 100,
		}, domain.NumberValue(0), domain.NumberValue(1))
		if err != nil {
			panic(err)
		}
		return b
	}
	anim.Blocks = []domain.Block{
		mk("b3", "layer-1", domain.PropertyAlpha, 200),
		mk("b1", "layer-1", domain.PropertyAlpha, 0),
		mk("b2", "layer-1", domain.PropertyRotation, 50),
		mk("b4", "layer-2", domain.PropertyAlpha, 10),
	}

	grouped := GroupBlocksByLayerAndProperty(anim)
	require.Len(t, grouped, 2)

	lane := grouped["layer-1"][domain.PropertyAlpha]
	require.Len(t, lane, 2)
	assert.Equal(t, "b1", lane[0].Base().ID, "lanes are ordered by start time")
	assert.Equal(t, "b3", lane[1].Base().ID)

	assert.Len(t, grouped["layer-1"][domain.PropertyRotation], 1)
	assert.Len(t, grouped["layer-2"][domain.PropertyAlpha], 1)
}

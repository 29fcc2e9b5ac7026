package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiffIdentity(t *testing.T) {
	doc := New()
	assert.True(t, Diff(doc, doc).IsEmpty())
	assert.True(t, Diff(doc, nil).IsEmpty())
}

func TestDiffInitialLoad(t *testing.T) {
	doc := New()
	diff := Diff(nil, doc)

	assert.True(t, diff.LayersChanged)
	assert.True(t, diff.TimelineChanged)
	assert.Equal(t, []string{doc.Layers.ActiveVectorLayerID}, diff.ChangedVectorLayerIDs)
	assert.Equal(t, []string{doc.Timeline.ActiveAnimationID}, diff.ChangedAnimationIDs)
}

func TestDiffReplacedAnimation(t *testing.T) {
	doc := New()
	edited := doc.Timeline.Animations[0].Clone()
	edited.Name = "renamed"

	tl := doc.Timeline
	tl.Animations = []*Animation{edited}
	next := doc.WithTimeline(tl)

	diff := Diff(doc, next)
	assert.True(t, diff.TimelineChanged)
	assert.False(t, diff.LayersChanged)
	assert.False(t, diff.SelectionChanged)
	assert.Equal(t, []string{edited.ID}, diff.ChangedAnimationIDs)
}

func TestDiffReplacedVectorLayer(t *testing.T) {
	doc := New()
	root := doc.Layers.VectorLayers[0]
	edited := root.WithChildren([]Layer{NewGroupLayer("g")}).(*VectorLayer)

	ls := doc.Layers
	ls.VectorLayers = []*VectorLayer{edited}
	next := doc.WithLayers(ls)

	diff := Diff(doc, next)
	assert.True(t, diff.LayersChanged)
	assert.False(t, diff.TimelineChanged)
	assert.Equal(t, []string{root.LayerID}, diff.ChangedVectorLayerIDs)
}

func TestDiffSelectionOnly(t *testing.T) {
	doc := New()
	id := doc.Layers.ActiveVectorLayerID

	ls := doc.Layers
	ls.SelectedLayerIDs = ls.SelectedLayerIDs.With(id)
	next := doc.WithLayers(ls)

	diff := Diff(doc, next)
	assert.True(t, diff.SelectionChanged)
	assert.True(t, diff.LayersChanged)
	assert.Empty(t, diff.ChangedVectorLayerIDs, "no tree was rebuilt")
}

func TestDiffPoolGrowth(t *testing.T) {
	doc := New()

	tl := doc.Timeline
	grown := make([]*Animation, len(tl.Animations)+1)
	copy(grown, tl.Animations)
	grown[len(grown)-1] = NewAnimation("second")
	tl.Animations = grown
	next := doc.WithTimeline(tl)

	diff := Diff(doc, next)
	require.True(t, diff.TimelineChanged)
	assert.Empty(t, diff.ChangedAnimationIDs, "additions are not replacements")
}

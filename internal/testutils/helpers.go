// Package testutils holds shared fixtures for tests across the module.
package testutils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oxblood/morph"
	"github.com/oxblood/morph/pkg/domain"
	"github.com/oxblood/morph/pkg/geometry"
)

// TrianglePath returns a single closed 4-command subpath, the smallest
// shape worth morphing.
func TrianglePath(x, y, size float64) geometry.Path {
	return geometry.NewPath(geometry.NewSubPath(
		geometry.Move(geometry.Point{X: x, Y: y}),
		geometry.Line(geometry.Point{X: x + size, Y: y}),
		geometry.Line(geometry.Point{X: x + size, Y: y + size}),
		geometry.Close(),
	))
}

// MustDispatch applies an action and fails the test on error.
func MustDispatch(t *testing.T, e *morph.Editor, action domain.Action) *domain.Document {
	t.Helper()
	doc, err := e.Dispatch(context.Background(), action)
	require.NoError(t, err, "dispatch %s", action.Kind())
	return doc
}

// SeedPathLayer adds a path layer carrying a triangle to the active vector
// layer and returns it.
func SeedPathLayer(t *testing.T, e *morph.Editor, name string) *domain.PathLayer {
	t.Helper()
	layer := domain.NewPathLayer(name, TrianglePath(0, 0, 10))
	MustDispatch(t, e, domain.AddLayers{Layers: []domain.Layer{layer}})
	return layer
}

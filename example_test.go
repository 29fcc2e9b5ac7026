package morph_test

import (
	"context"
	"fmt"
	"log"

	"github.com/oxblood/morph"
	"github.com/oxblood/morph/pkg/domain"
	"github.com/oxblood/morph/pkg/geometry"
)

// Example demonstrates building a small morph animation: a path layer, a
// path block whose endpoints disagree on subpath count, and the automatic
// reconciliation that keeps them interpolatable.
func Example() {
	editor := morph.New()
	ctx := context.Background()

	triangle := func(x, y, size float64) geometry.SubPath {
		return geometry.NewSubPath(
			geometry.Move(geometry.Point{X: x, Y: y}),
			geometry.Line(geometry.Point{X: x + size, Y: y}),
			geometry.Line(geometry.Point{X: x + size, Y: y + size}),
			geometry.Close(),
		)
	}

	shape := domain.NewPathLayer("shape", geometry.NewPath(triangle(0, 0, 10)))
	if _, err := editor.Dispatch(ctx, domain.AddLayers{Layers: []domain.Layer{shape}}); err != nil {
		log.Fatal(err)
	}

	// The to-endpoint has two subpaths, the from-endpoint only one.
	doc, err := editor.Dispatch(ctx, domain.AddBlock{
		Layer:        shape,
		PropertyName: domain.PropertyPathData,
		FromValue:    domain.PathValue(geometry.NewPath(triangle(0, 0, 10))),
		ToValue:      domain.PathValue(geometry.NewPath(triangle(0, 0, 10), triangle(100, 100, 10))),
	})
	if err != nil {
		log.Fatal(err)
	}

	block := doc.ActiveAnimation().Blocks[0].(*domain.PathBlock)
	base := block.Base()
	fmt.Printf("block spans [%d,%d)\n", base.StartTime, base.EndTime)
	fmt.Printf("from counts: %v\n", block.From.CommandCounts())
	fmt.Printf("to counts:   %v\n", block.To.CommandCounts())
	// Output:
	// block spans [0,100)
	// from counts: [4 4]
	// to counts:   [4 4]
}

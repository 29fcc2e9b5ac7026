package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oxblood/morph"
	"github.com/oxblood/morph/pkg/domain"
)

const demoScenario = `
name: morph-demo
steps:
  - action: add_layers
    layers:
      - name: shape
        type: path
        path:
          - [M, 0, 0]
          - [L, 10, 0]
          - [L, 10, 10]
          - [Z]
  - action: add_block
    layer: shape
    property: pathData
    duration: 150
    from:
      - [M, 0, 0]
      - [L, 10, 0]
      - [L, 10, 10]
      - [Z]
    to:
      - [M, 0, 0]
      - [L, 10, 0]
      - [L, 10, 10]
      - [Z]
      - [M, 100, 100]
      - [L, 110, 100]
      - [L, 110, 110]
      - [Z]
  - action: select_layer
    layer: shape
`

func TestLoadAndReplayScenario(t *testing.T) {
	scenario, err := Load(strings.NewReader(demoScenario))
	require.NoError(t, err)
	assert.Equal(t, "morph-demo", scenario.Name)
	require.Len(t, scenario.Steps, 3)

	editor := morph.New()
	ctx := context.Background()
	for _, step := range scenario.Steps {
		action, err := step.Action(editor.Document())
		require.NoError(t, err, "step %q", step.Kind)
		_, err = editor.Dispatch(ctx, action)
		require.NoError(t, err, "step %q", step.Kind)
	}

	doc := editor.Document()
	require.Len(t, doc.Layers.VectorLayers[0].Children(), 1)
	shape := doc.Layers.VectorLayers[0].Children()[0]
	assert.Equal(t, "shape", shape.Name())

	require.Len(t, doc.ActiveAnimation().Blocks, 1)
	block := doc.ActiveAnimation().Blocks[0].(*domain.PathBlock)
	assert.Equal(t, int64(150), block.EndTime-block.StartTime)
	// The two-subpath endpoint forces a collapsing pad on the other side.
	assert.Equal(t, 2, block.From.Len())
	assert.Equal(t, block.From.CommandCounts(), block.To.CommandCounts())

	assert.Equal(t, []string{shape.ID()}, doc.Layers.SelectedLayerIDs.Values())
}

func TestLoadRejectsMalformedSteps(t *testing.T) {
	t.Run("missing action kind", func(t *testing.T) {
		_, err := Load(strings.NewReader("steps:\n  - layer: x\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing action kind")
	})

	t.Run("unknown kind resolves to an error", func(t *testing.T) {
		scenario, err := Load(strings.NewReader("steps:\n  - action: explode\n"))
		require.NoError(t, err)
		_, err = scenario.Steps[0].Action(domain.New())
		require.Error(t, err)
	})

	t.Run("bad path tuple", func(t *testing.T) {
		scenario, err := Load(strings.NewReader(`
steps:
  - action: add_layers
    layers:
      - name: bad
        type: path
        path:
          - [L, 1]
`))
		require.NoError(t, err)
		_, err = scenario.Steps[0].Action(domain.New())
		require.Error(t, err)
	})

	t.Run("unknown layer reference", func(t *testing.T) {
		scenario, err := Load(strings.NewReader("steps:\n  - action: select_layer\n    layer: ghost\n"))
		require.NoError(t, err)
		_, err = scenario.Steps[0].Action(domain.New())
		require.ErrorIs(t, err, domain.ErrLayerNotFound)
	})
}

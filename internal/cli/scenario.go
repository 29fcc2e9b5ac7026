// Package cli holds the scenario file format and its decoding into domain
// actions. A scenario is a YAML document listing editing steps; the run
// command replays them against a fresh workspace.
//
// Steps reference layers and animations by name rather than by id, since
// ids are generated at replay time. References are resolved against the
// document as it stands when the step executes.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/oxblood/morph/pkg/domain"
	"github.com/oxblood/morph/pkg/geometry"
)

// Scenario is a named sequence of editing steps.
type Scenario struct {
	Name  string
	Steps []Step
}

// Step is one editing step, decoded lazily because layer and animation
// references can only be resolved against the live document.
type Step struct {
	Kind string
	raw  map[string]any
}

// Load parses a scenario from YAML.
func Load(r io.Reader) (*Scenario, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}

	var doc struct {
		Name  string           `yaml:"name"`
		Steps []map[string]any `yaml:"steps"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}

	s := &Scenario{Name: doc.Name}
	for i, raw := range doc.Steps {
		kind, _ := raw["action"].(string)
		if kind == "" {
			return nil, fmt.Errorf("step %d: missing action kind", i+1)
		}
		s.Steps = append(s.Steps, Step{Kind: kind, raw: raw})
	}
	return s, nil
}

// Action resolves the step into a dispatchable action against the given
// document.
func (st Step) Action(doc *domain.Document) (domain.Action, error) {
	switch st.Kind {
	case "reset_workspace":
		return domain.ResetWorkspace{}, nil
	case "add_animations":
		return st.addAnimations()
	case "select_animation":
		return st.selectAnimation(doc)
	case "activate_animation":
		return st.activateAnimation(doc)
	case "add_block":
		return st.addBlock(doc)
	case "select_block":
		return st.selectBlock(doc)
	case "update_path_block":
		return st.updatePathBlock(doc)
	case "add_layers":
		return st.addLayers()
	case "select_layer":
		return st.selectLayer(doc)
	case "clear_layer_selections":
		return domain.ClearLayerSelections{}, nil
	case "toggle_layer_expansion":
		return st.toggleExpansion(doc)
	case "toggle_layer_visibility":
		return st.toggleVisibility(doc)
	case "delete_selected_models":
		return domain.DeleteSelectedModels{}, nil
	}
	return nil, fmt.Errorf("unknown action kind %q", st.Kind)
}

func (st Step) decode(out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(st.raw); err != nil {
		return fmt.Errorf("step %q: %w", st.Kind, err)
	}
	return nil
}

func (st Step) addAnimations() (domain.Action, error) {
	var dto struct {
		Animations []struct {
			Name     string `mapstructure:"name"`
			Duration int64  `mapstructure:"duration"`
		} `mapstructure:"animations"`
	}
	if err := st.decode(&dto); err != nil {
		return nil, err
	}
	var anims []*domain.Animation
	for _, a := range dto.Animations {
		anim := domain.NewAnimation(a.Name)
		if a.Duration > 0 {
			anim.Duration = a.Duration
		}
		anims = append(anims, anim)
	}
	return domain.AddAnimations{Animations: anims}, nil
}

func (st Step) selectAnimation(doc *domain.Document) (domain.Action, error) {
	var dto struct {
		Animation string `mapstructure:"animation"`
		Clear     bool   `mapstructure:"clear"`
	}
	if err := st.decode(&dto); err != nil {
		return nil, err
	}
	anim, err := animationByName(doc, dto.Animation)
	if err != nil {
		return nil, err
	}
	return domain.SelectAnimation{AnimationID: anim.ID, Clear: dto.Clear}, nil
}

func (st Step) activateAnimation(doc *domain.Document) (domain.Action, error) {
	var dto struct {
		Animation string `mapstructure:"animation"`
	}
	if err := st.decode(&dto); err != nil {
		return nil, err
	}
	anim, err := animationByName(doc, dto.Animation)
	if err != nil {
		return nil, err
	}
	return domain.ActivateAnimation{AnimationID: anim.ID}, nil
}

func (st Step) addBlock(doc *domain.Document) (domain.Action, error) {
	var dto struct {
		Layer    string `mapstructure:"layer"`
		Property string `mapstructure:"property"`
		From     any    `mapstructure:"from"`
		To       any    `mapstructure:"to"`
		Duration int64  `mapstructure:"duration"`
		Cursor   int64  `mapstructure:"cursor"`
	}
	if err := st.decode(&dto); err != nil {
		return nil, err
	}
	layer, err := layerByName(doc, dto.Layer)
	if err != nil {
		return nil, err
	}
	propType, ok := layer.AnimatableProperties()[dto.Property]
	if !ok {
		return nil, fmt.Errorf("property %q is not animatable on layer %q", dto.Property, dto.Layer)
	}
	from, err := decodeValue(propType, dto.From)
	if err != nil {
		return nil, fmt.Errorf("from value: %w", err)
	}
	to, err := decodeValue(propType, dto.To)
	if err != nil {
		return nil, fmt.Errorf("to value: %w", err)
	}
	return domain.AddBlock{
		Layer:        layer,
		PropertyName: dto.Property,
		FromValue:    from,
		ToValue:      to,
		Duration:     dto.Duration,
		Cursor:       dto.Cursor,
	}, nil
}

func (st Step) selectBlock(doc *domain.Document) (domain.Action, error) {
	var dto struct {
		Index int  `mapstructure:"index"`
		Clear bool `mapstructure:"clear"`
	}
	if err := st.decode(&dto); err != nil {
		return nil, err
	}
	blk, err := blockByIndex(doc, dto.Index)
	if err != nil {
		return nil, err
	}
	return domain.SelectBlock{BlockID: blk.Base().ID, Clear: dto.Clear}, nil
}

func (st Step) updatePathBlock(doc *domain.Document) (domain.Action, error) {
	var dto struct {
		Index  int     `mapstructure:"index"`
		Source string  `mapstructure:"source"`
		Path   [][]any `mapstructure:"path"`
	}
	if err := st.decode(&dto); err != nil {
		return nil, err
	}
	blk, err := blockByIndex(doc, dto.Index)
	if err != nil {
		return nil, err
	}
	path, err := decodePath(dto.Path)
	if err != nil {
		return nil, err
	}
	source := domain.EndpointFrom
	if strings.EqualFold(dto.Source, "to") {
		source = domain.EndpointTo
	}
	return domain.UpdatePathBlock{BlockID: blk.Base().ID, Source: source, Path: path}, nil
}

type layerDTO struct {
	Name     string     `mapstructure:"name"`
	Type     string     `mapstructure:"type"`
	Path     [][]any    `mapstructure:"path"`
	Children []layerDTO `mapstructure:"children"`
}

func (st Step) addLayers() (domain.Action, error) {
	var dto struct {
		Layers []layerDTO `mapstructure:"layers"`
	}
	if err := st.decode(&dto); err != nil {
		return nil, err
	}
	var layers []domain.Layer
	for _, l := range dto.Layers {
		built, err := buildLayer(l)
		if err != nil {
			return nil, err
		}
		layers = append(layers, built)
	}
	return domain.AddLayers{Layers: layers}, nil
}

func buildLayer(dto layerDTO) (domain.Layer, error) {
	var children []domain.Layer
	for _, c := range dto.Children {
		built, err := buildLayer(c)
		if err != nil {
			return nil, err
		}
		children = append(children, built)
	}

	switch dto.Type {
	case "vector":
		l := domain.NewVectorLayer(dto.Name)
		return l.WithChildren(children), nil
	case "group", "":
		l := domain.NewGroupLayer(dto.Name)
		return l.WithChildren(children), nil
	case "path":
		if len(children) > 0 {
			return nil, fmt.Errorf("layer %q: path layers cannot have children", dto.Name)
		}
		path, err := decodePath(dto.Path)
		if err != nil {
			return nil, fmt.Errorf("layer %q: %w", dto.Name, err)
		}
		return domain.NewPathLayer(dto.Name, path), nil
	}
	return nil, fmt.Errorf("layer %q: unknown type %q", dto.Name, dto.Type)
}

func (st Step) selectLayer(doc *domain.Document) (domain.Action, error) {
	var dto struct {
		Layer  string `mapstructure:"layer"`
		Toggle bool   `mapstructure:"toggle"`
		Clear  bool   `mapstructure:"clear"`
	}
	if err := st.decode(&dto); err != nil {
		return nil, err
	}
	layer, err := layerByName(doc, dto.Layer)
	if err != nil {
		return nil, err
	}
	return domain.SelectLayer{LayerID: layer.ID(), Toggle: dto.Toggle, Clear: dto.Clear}, nil
}

func (st Step) toggleExpansion(doc *domain.Document) (domain.Action, error) {
	var dto struct {
		Layer     string `mapstructure:"layer"`
		Recursive bool   `mapstructure:"recursive"`
	}
	if err := st.decode(&dto); err != nil {
		return nil, err
	}
	layer, err := layerByName(doc, dto.Layer)
	if err != nil {
		return nil, err
	}
	return domain.ToggleLayerExpansion{LayerID: layer.ID(), Recursive: dto.Recursive}, nil
}

func (st Step) toggleVisibility(doc *domain.Document) (domain.Action, error) {
	var dto struct {
		Layer string `mapstructure:"layer"`
	}
	if err := st.decode(&dto); err != nil {
		return nil, err
	}
	layer, err := layerByName(doc, dto.Layer)
	if err != nil {
		return nil, err
	}
	return domain.ToggleLayerVisibility{LayerID: layer.ID()}, nil
}

// decodeValue interprets a YAML scalar (or command list, for paths) as a
// property value of the given kind.
func decodeValue(t domain.PropertyType, raw any) (domain.Value, error) {
	switch t {
	case domain.PropertyNumber:
		var n float64
		if err := mapstructure.WeakDecode(raw, &n); err != nil {
			return nil, fmt.Errorf("expected a number, got %T", raw)
		}
		return domain.NumberValue(n), nil
	case domain.PropertyColor:
		s, ok := raw.(string)
		if !ok {
			return nil, fmt.Errorf("expected a color string, got %T", raw)
		}
		return domain.ColorValue(s), nil
	case domain.PropertyPath:
		var cmds [][]any
		if err := mapstructure.Decode(raw, &cmds); err != nil {
			return nil, fmt.Errorf("expected a command list, got %T", raw)
		}
		path, err := decodePath(cmds)
		if err != nil {
			return nil, err
		}
		return domain.PathValue(path), nil
	}
	return nil, fmt.Errorf("unsupported property type %v", t)
}

// decodePath builds a path from command tuples like [M, 0, 0], [L, 10, 0],
// [Q, cx, cy, x, y], [C, c1x, c1y, c2x, c2y, x, y], [Z]. Every M starts a
// new subpath.
func decodePath(cmds [][]any) (geometry.Path, error) {
	var subPaths []geometry.SubPath
	var current []geometry.Command
	flush := func() {
		if len(current) > 0 {
			subPaths = append(subPaths, geometry.NewSubPath(current...))
			current = nil
		}
	}

	for i, tuple := range cmds {
		if len(tuple) == 0 {
			return geometry.Path{}, fmt.Errorf("command %d: empty tuple", i+1)
		}
		letter, ok := tuple[0].(string)
		if !ok {
			return geometry.Path{}, fmt.Errorf("command %d: first element must be a command letter", i+1)
		}
		pts, err := decodePoints(tuple[1:])
		if err != nil {
			return geometry.Path{}, fmt.Errorf("command %d: %w", i+1, err)
		}

		upper := strings.ToUpper(letter)
		if len(current) == 0 && upper != "M" {
			return geometry.Path{}, fmt.Errorf("command %d: subpath must start with M", i+1)
		}
		switch upper {
		case "M":
			if err := wantPoints(pts, 1); err != nil {
				return geometry.Path{}, fmt.Errorf("command %d (M): %w", i+1, err)
			}
			flush()
			current = append(current, geometry.Move(pts[0]))
		case "L":
			if err := wantPoints(pts, 1); err != nil {
				return geometry.Path{}, fmt.Errorf("command %d (L): %w", i+1, err)
			}
			current = append(current, geometry.Line(pts[0]))
		case "Q":
			if err := wantPoints(pts, 2); err != nil {
				return geometry.Path{}, fmt.Errorf("command %d (Q): %w", i+1, err)
			}
			current = append(current, geometry.Quad(pts[0], pts[1]))
		case "C":
			if err := wantPoints(pts, 3); err != nil {
				return geometry.Path{}, fmt.Errorf("command %d (C): %w", i+1, err)
			}
			current = append(current, geometry.Cubic(pts[0], pts[1], pts[2]))
		case "Z":
			if err := wantPoints(pts, 0); err != nil {
				return geometry.Path{}, fmt.Errorf("command %d (Z): %w", i+1, err)
			}
			current = append(current, geometry.Close())
		default:
			return geometry.Path{}, fmt.Errorf("command %d: unknown letter %q", i+1, letter)
		}
	}
	flush()
	return geometry.NewPath(subPaths...), nil
}

func decodePoints(raw []any) ([]geometry.Point, error) {
	if len(raw)%2 != 0 {
		return nil, fmt.Errorf("odd coordinate count %d", len(raw))
	}
	var coords []float64
	if err := mapstructure.WeakDecode(raw, &coords); err != nil {
		return nil, fmt.Errorf("coordinates must be numbers: %w", err)
	}
	pts := make([]geometry.Point, 0, len(coords)/2)
	for i := 0; i < len(coords); i += 2 {
		pts = append(pts, geometry.Point{X: coords[i], Y: coords[i+1]})
	}
	return pts, nil
}

func wantPoints(pts []geometry.Point, n int) error {
	if len(pts) != n {
		return fmt.Errorf("expected %d points, got %d", n, len(pts))
	}
	return nil
}

func animationByName(doc *domain.Document, name string) (*domain.Animation, error) {
	for _, a := range doc.Timeline.Animations {
		if a.Name == name {
			return a, nil
		}
	}
	return nil, fmt.Errorf("animation %q: %w", name, domain.ErrAnimationNotFound)
}

func layerByName(doc *domain.Document, name string) (domain.Layer, error) {
	var found domain.Layer
	for _, root := range doc.Layers.VectorLayers {
		if l := layerByNameIn(root, name); l != nil {
			found = l
			break
		}
	}
	if found == nil {
		return nil, fmt.Errorf("layer %q: %w", name, domain.ErrLayerNotFound)
	}
	return found, nil
}

func layerByNameIn(node domain.Layer, name string) domain.Layer {
	if node.Name() == name {
		return node
	}
	for _, child := range node.Children() {
		if l := layerByNameIn(child, name); l != nil {
			return l
		}
	}
	return nil
}

// blockByIndex addresses blocks within the active animation, in pool
// order.
func blockByIndex(doc *domain.Document, index int) (domain.Block, error) {
	anim := doc.ActiveAnimation()
	if anim == nil {
		return nil, domain.ErrAnimationNotFound
	}
	if index < 0 || index >= len(anim.Blocks) {
		return nil, fmt.Errorf("block index %d out of range (%d blocks): %w",
			index, len(anim.Blocks), domain.ErrBlockNotFound)
	}
	return anim.Blocks[index], nil
}

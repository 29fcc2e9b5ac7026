package domain

import "github.com/oxblood/morph/pkg/geometry"

// PropertyType is the value kind of an animatable layer property.
type PropertyType int

const (
	PropertyNumber PropertyType = iota
	PropertyColor
	PropertyPath
)

// String returns the property kind name.
func (t PropertyType) String() string {
	switch t {
	case PropertyNumber:
		return "number"
	case PropertyColor:
		return "color"
	case PropertyPath:
		return "path"
	}
	return "unknown"
}

// Animatable property names. Each layer variant declares the subset it
// supports via AnimatableProperties.
const (
	PropertyAlpha       = "alpha"
	PropertyRotation    = "rotation"
	PropertyScaleX      = "scaleX"
	PropertyScaleY      = "scaleY"
	PropertyPivotX      = "pivotX"
	PropertyPivotY      = "pivotY"
	PropertyTranslateX  = "translateX"
	PropertyTranslateY  = "translateY"
	PropertyPathData    = "pathData"
	PropertyFillColor   = "fillColor"
	PropertyStrokeColor = "strokeColor"
	PropertyFillAlpha   = "fillAlpha"
	PropertyStrokeAlpha = "strokeAlpha"
	PropertyStrokeWidth = "strokeWidth"
)

// Layer is a node in a drawable-layer tree. The union is closed: the only
// implementations are VectorLayer, GroupLayer, and PathLayer. Layers are
// immutable once embedded in a Document; WithChildren returns an edited
// copy sharing everything else.
type Layer interface {
	ID() string
	Name() string
	Children() []Layer
	WithChildren(children []Layer) Layer
	// AnimatableProperties maps each animatable property name of this
	// layer variant to its value kind.
	AnimatableProperties() map[string]PropertyType

	sealedLayer()
}

// VectorLayer is the root variant of a layer tree and carries the canvas
// dimensions. Only vector layers may appear in the document's root pool.
type VectorLayer struct {
	LayerID   string
	LayerName string
	Width     float64
	Height    float64
	Alpha     float64
	Child     []Layer
}

// NewVectorLayer creates an empty vector layer with a fresh id and a
// default 24x24 canvas.
func NewVectorLayer(name string) *VectorLayer {
	return &VectorLayer{
		LayerID:   NewID(),
		LayerName: name,
		Width:     24,
		Height:    24,
		Alpha:     1,
	}
}

func (l *VectorLayer) ID() string        { return l.LayerID }
func (l *VectorLayer) Name() string      { return l.LayerName }
func (l *VectorLayer) Children() []Layer { return l.Child }

func (l *VectorLayer) WithChildren(children []Layer) Layer {
	next := *l
	next.Child = children
	return &next
}

func (l *VectorLayer) AnimatableProperties() map[string]PropertyType {
	return map[string]PropertyType{
		PropertyAlpha: PropertyNumber,
	}
}

func (l *VectorLayer) sealedLayer() {}

// GroupLayer transforms its children as a unit.
type GroupLayer struct {
	LayerID    string
	LayerName  string
	Rotation   float64
	ScaleX     float64
	ScaleY     float64
	PivotX     float64
	PivotY     float64
	TranslateX float64
	TranslateY float64
	Child      []Layer
}

// NewGroupLayer creates an identity-transform group with a fresh id.
func NewGroupLayer(name string) *GroupLayer {
	return &GroupLayer{
		LayerID:   NewID(),
		LayerName: name,
		ScaleX:    1,
		ScaleY:    1,
	}
}

func (l *GroupLayer) ID() string        { return l.LayerID }
func (l *GroupLayer) Name() string      { return l.LayerName }
func (l *GroupLayer) Children() []Layer { return l.Child }

func (l *GroupLayer) WithChildren(children []Layer) Layer {
	next := *l
	next.Child = children
	return &next
}

func (l *GroupLayer) AnimatableProperties() map[string]PropertyType {
	return map[string]PropertyType{
		PropertyRotation:   PropertyNumber,
		PropertyScaleX:     PropertyNumber,
		PropertyScaleY:     PropertyNumber,
		PropertyPivotX:     PropertyNumber,
		PropertyPivotY:     PropertyNumber,
		PropertyTranslateX: PropertyNumber,
		PropertyTranslateY: PropertyNumber,
	}
}

func (l *GroupLayer) sealedLayer() {}

// PathLayer is a drawable leaf holding morphable path data.
type PathLayer struct {
	LayerID     string
	LayerName   string
	PathData    geometry.Path
	FillColor   string
	StrokeColor string
	FillAlpha   float64
	StrokeAlpha float64
	StrokeWidth float64
}

// NewPathLayer creates a path layer with a fresh id.
func NewPathLayer(name string, data geometry.Path) *PathLayer {
	return &PathLayer{
		LayerID:     NewID(),
		LayerName:   name,
		PathData:    data,
		FillAlpha:   1,
		StrokeAlpha: 1,
	}
}

func (l *PathLayer) ID() string        { return l.LayerID }
func (l *PathLayer) Name() string      { return l.LayerName }
func (l *PathLayer) Children() []Layer { return nil }

// WithChildren on a leaf returns the layer unchanged; path layers cannot
// hold children.
func (l *PathLayer) WithChildren(children []Layer) Layer { return l }

func (l *PathLayer) AnimatableProperties() map[string]PropertyType {
	return map[string]PropertyType{
		PropertyPathData:    PropertyPath,
		PropertyFillColor:   PropertyColor,
		PropertyStrokeColor: PropertyColor,
		PropertyFillAlpha:   PropertyNumber,
		PropertyStrokeAlpha: PropertyNumber,
		PropertyStrokeWidth: PropertyNumber,
	}
}

func (l *PathLayer) sealedLayer() {}

package domain

import (
	"fmt"

	"github.com/oxblood/morph/pkg/geometry"
)

// BlockBase carries the fields common to every block variant. Times are in
// timeline units (milliseconds by convention); a block spans
// [StartTime, EndTime).
type BlockBase struct {
	ID           string
	LayerID      string
	AnimationID  string
	PropertyName string
	StartTime    int64
	EndTime      int64
}

// Block is a timed edit of one property of one layer, interpolating
// between a from-value and a to-value. The union is closed: the only
// variants are NumberBlock, ColorBlock, and PathBlock.
type Block interface {
	Base() BlockBase
	// WithBase returns a copy of the block with the common fields
	// replaced; the variant payload is shared.
	WithBase(base BlockBase) Block

	sealedBlock()
}

// NumberBlock animates a numeric property.
type NumberBlock struct {
	BlockBase
	From, To float64
}

func (b *NumberBlock) Base() BlockBase { return b.BlockBase }

func (b *NumberBlock) WithBase(base BlockBase) Block {
	next := *b
	next.BlockBase = base
	return &next
}

func (b *NumberBlock) sealedBlock() {}

// ColorBlock animates a color property. Colors are opaque strings to the
// core ("#rrggbb" by convention); interpolation is the renderer's concern.
type ColorBlock struct {
	BlockBase
	From, To string
}

func (b *ColorBlock) Base() BlockBase { return b.BlockBase }

func (b *ColorBlock) WithBase(base BlockBase) Block {
	next := *b
	next.BlockBase = base
	return &next
}

func (b *ColorBlock) sealedBlock() {}

// PathBlock animates a morphable path property. The reducer keeps From and
// To structurally compatible: equal subpath counts and equal per-subpath
// command counts, always.
type PathBlock struct {
	BlockBase
	From, To geometry.Path
}

func (b *PathBlock) Base() BlockBase { return b.BlockBase }

func (b *PathBlock) WithBase(base BlockBase) Block {
	next := *b
	next.BlockBase = base
	return &next
}

func (b *PathBlock) sealedBlock() {}

// WithEndpoints returns a copy of the path block with both morph endpoints
// replaced at once.
func (b *PathBlock) WithEndpoints(from, to geometry.Path) *PathBlock {
	next := *b
	next.From = from
	next.To = to
	return &next
}

// Value is the closed union of animatable property values, used to carry
// variant-typed payloads in actions.
type Value interface{ sealedValue() }

// NumberValue wraps a numeric property value.
type NumberValue float64

// ColorValue wraps a color property value.
type ColorValue string

// PathValue wraps a path property value.
type PathValue geometry.Path

func (NumberValue) sealedValue() {}
func (ColorValue) sealedValue()  {}
func (PathValue) sealedValue()   {}

// NewBlock builds the block variant matching the value pair. Both values
// must be of the same kind, and that kind must match the property's
// declared type on the layer.
func NewBlock(base BlockBase, from, to Value) (Block, error) {
	if base.ID == "" {
		base.ID = NewID()
	}
	switch f := from.(type) {
	case NumberValue:
		t, ok := to.(NumberValue)
		if !ok {
			return nil, fmt.Errorf("block %q: from/to value kinds differ", base.PropertyName)
		}
		return &NumberBlock{BlockBase: base, From: float64(f), To: float64(t)}, nil
	case ColorValue:
		t, ok := to.(ColorValue)
		if !ok {
			return nil, fmt.Errorf("block %q: from/to value kinds differ", base.PropertyName)
		}
		return &ColorBlock{BlockBase: base, From: string(f), To: string(t)}, nil
	case PathValue:
		t, ok := to.(PathValue)
		if !ok {
			return nil, fmt.Errorf("block %q: from/to value kinds differ", base.PropertyName)
		}
		return &PathBlock{BlockBase: base, From: geometry.Path(f), To: geometry.Path(t)}, nil
	}
	return nil, fmt.Errorf("block %q: unsupported value kind %T", base.PropertyName, from)
}

// ValueType reports the property kind a value belongs to.
func ValueType(v Value) PropertyType {
	switch v.(type) {
	case ColorValue:
		return PropertyColor
	case PathValue:
		return PropertyPath
	default:
		return PropertyNumber
	}
}

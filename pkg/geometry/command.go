package geometry

import "fmt"

// Point is an absolute coordinate on the canvas.
type Point struct {
	X, Y float64
}

// Mid returns the midpoint between p and q.
func (p Point) Mid(q Point) Point {
	return Point{X: (p.X + q.X) / 2, Y: (p.Y + q.Y) / 2}
}

// Lerp returns the linear interpolation between p and q at t.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{X: p.X + (q.X-p.X)*t, Y: p.Y + (q.Y-p.Y)*t}
}

// CommandType identifies the kind of a draw command.
type CommandType int

const (
	MoveTo CommandType = iota
	LineTo
	QuadTo
	CubicTo
	ClosePath
)

// String returns the SVG-style mnemonic for the command type.
func (t CommandType) String() string {
	switch t {
	case MoveTo:
		return "M"
	case LineTo:
		return "L"
	case QuadTo:
		return "Q"
	case CubicTo:
		return "C"
	case ClosePath:
		return "Z"
	}
	return fmt.Sprintf("CommandType(%d)", int(t))
}

// pointCount is the number of points each command type carries.
// The start point is implied by the previous command.
func (t CommandType) pointCount() int {
	switch t {
	case MoveTo, LineTo:
		return 1
	case QuadTo:
		return 2
	case CubicTo:
		return 3
	}
	return 0
}

// rank orders drawable command types by expressiveness, for promotion.
func (t CommandType) rank() int {
	switch t {
	case LineTo:
		return 1
	case QuadTo:
		return 2
	case CubicTo:
		return 3
	}
	return 0
}

// Command is a single immutable draw instruction. Control points (if any)
// precede the end point. A command converted by AutoConvert remembers its
// original form so normalization can revert it.
type Command struct {
	typ        CommandType
	points     []Point
	converted  bool
	origType   CommandType
	origPoints []Point
}

func newCommand(t CommandType, points ...Point) Command {
	if len(points) != t.pointCount() {
		panic(fmt.Sprintf("geometry: %s command requires %d points, got %d", t, t.pointCount(), len(points)))
	}
	return Command{typ: t, points: points}
}

// Move returns a move-to command.
func Move(p Point) Command { return newCommand(MoveTo, p) }

// Line returns a line-to command.
func Line(p Point) Command { return newCommand(LineTo, p) }

// Quad returns a quadratic bezier command with one control point.
func Quad(c, p Point) Command { return newCommand(QuadTo, c, p) }

// Cubic returns a cubic bezier command with two control points.
func Cubic(c1, c2, p Point) Command { return newCommand(CubicTo, c1, c2, p) }

// Close returns a close-path command.
func Close() Command { return newCommand(ClosePath) }

// Type reports the command kind.
func (c Command) Type() CommandType { return c.typ }

// Points returns a copy of the command's points.
func (c Command) Points() []Point {
	out := make([]Point, len(c.points))
	copy(out, c.points)
	return out
}

// End returns the command's end point. Close commands have no point of
// their own; End reports the zero point and ok=false for them.
func (c Command) End() (Point, bool) {
	if len(c.points) == 0 {
		return Point{}, false
	}
	return c.points[len(c.points)-1], true
}

// IsConverted reports whether the command was promoted by AutoConvert.
func (c Command) IsConverted() bool { return c.converted }

// promote raises the command to a more expressive type, synthesizing
// control points that preserve the drawn shape. start is the end point of
// the previous command. Promoting to the same or a lower rank is a no-op.
func (c Command) promote(start Point, to CommandType) Command {
	if to.rank() <= c.typ.rank() || c.typ == MoveTo || c.typ == ClosePath {
		return c
	}
	end := c.points[len(c.points)-1]
	next := Command{
		typ:        to,
		converted:  true,
		origType:   c.typ,
		origPoints: c.points,
	}
	// Preserve an existing conversion's origin so unconvert always lands on
	// the pristine command.
	if c.converted {
		next.origType = c.origType
		next.origPoints = c.origPoints
	}
	switch {
	case c.typ == LineTo && to == QuadTo:
		next.points = []Point{start.Mid(end), end}
	case c.typ == LineTo && to == CubicTo:
		next.points = []Point{start.Lerp(end, 1.0/3.0), start.Lerp(end, 2.0/3.0), end}
	case c.typ == QuadTo && to == CubicTo:
		ctrl := c.points[0]
		c1 := start.Lerp(ctrl, 2.0/3.0)
		c2 := end.Lerp(ctrl, 2.0/3.0)
		next.points = []Point{c1, c2, end}
	default:
		return c
	}
	return next
}

// unconvert restores a promoted command to its original form.
func (c Command) unconvert() Command {
	if !c.converted {
		return c
	}
	return Command{typ: c.origType, points: c.origPoints}
}

// split divides the command at t=0.5 into two commands of the same type.
// start is the end point of the previous command. Move and close commands
// cannot be split and are returned unchanged as the sole result.
func (c Command) split(start Point) []Command {
	switch c.typ {
	case LineTo:
		end := c.points[0]
		return []Command{Line(start.Mid(end)), Line(end)}
	case QuadTo:
		// De Casteljau subdivision at t=0.5.
		p0, p1, p2 := start, c.points[0], c.points[1]
		q0 := p0.Mid(p1)
		q1 := p1.Mid(p2)
		m := q0.Mid(q1)
		return []Command{Quad(q0, m), Quad(q1, p2)}
	case CubicTo:
		p0, p1, p2, p3 := start, c.points[0], c.points[1], c.points[2]
		q0 := p0.Mid(p1)
		q1 := p1.Mid(p2)
		q2 := p2.Mid(p3)
		r0 := q0.Mid(q1)
		r1 := q1.Mid(q2)
		m := r0.Mid(r1)
		return []Command{Cubic(q0, r0, m), Cubic(r1, q2, p3)}
	}
	return []Command{c}
}

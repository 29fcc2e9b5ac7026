package geometry

// Builder derives an edited Path from an existing one. All methods return
// the builder for chaining; Build produces the new immutable value. Indices
// out of range are silently ignored so that callers can compose edits
// without re-checking structure they just inspected.
type Builder struct {
	subPaths []SubPath
}

// Builder returns a builder seeded with the path's current structure.
func (p Path) Builder() *Builder {
	sub := make([]SubPath, len(p.subPaths))
	copy(sub, p.subPaths)
	return &Builder{subPaths: sub}
}

// Build assembles the edited path.
func (b *Builder) Build() Path {
	out := make([]SubPath, len(b.subPaths))
	copy(out, b.subPaths)
	return Path{subPaths: out}
}

// UnconvertSubPath reverts every command promotion in subpath i, restoring
// each converted command to its original type and points.
func (b *Builder) UnconvertSubPath(i int) *Builder {
	if i < 0 || i >= len(b.subPaths) {
		return b
	}
	src := b.subPaths[i]
	cmds := make([]Command, src.Len())
	for j, c := range src.commands {
		cmds[j] = c.unconvert()
	}
	b.subPaths[i] = SubPath{commands: cmds, collapsing: src.collapsing}
	return b
}

// DeleteCollapsingSubPaths removes every synthetic placeholder subpath.
func (b *Builder) DeleteCollapsingSubPaths() *Builder {
	kept := b.subPaths[:0:0]
	for _, s := range b.subPaths {
		if !s.collapsing {
			kept = append(kept, s)
		}
	}
	b.subPaths = kept
	return b
}

// AddCollapsingSubPath appends a synthetic placeholder subpath: a move to
// the given point followed by degenerate lines onto the same point, closed
// off to commandCount commands in total. commandCount must be at least 2
// (a lone move is not a drawable subpath).
func (b *Builder) AddCollapsingSubPath(at Point, commandCount int) *Builder {
	if commandCount < 2 {
		commandCount = 2
	}
	cmds := make([]Command, 0, commandCount)
	cmds = append(cmds, Move(at))
	for len(cmds) < commandCount {
		cmds = append(cmds, Line(at))
	}
	b.subPaths = append(b.subPaths, SubPath{commands: cmds, collapsing: true})
	return b
}

// ReverseSubPath reverses the draw direction of subpath i. Command types
// are rebuilt against the reversed point order, so a cubic stays a cubic
// with its control points swapped.
func (b *Builder) ReverseSubPath(i int) *Builder {
	if i < 0 || i >= len(b.subPaths) {
		return b
	}
	src := b.subPaths[i]
	closed := src.Closed()
	drawn := src.commands[1:]
	if closed {
		drawn = drawn[:len(drawn)-1]
	}
	if len(drawn) == 0 {
		return b
	}

	// Walk backwards: the old end point becomes the new start, and each
	// command is re-emitted from its successor's end toward its own start.
	starts := commandStarts(src)
	cmds := make([]Command, 0, src.Len())
	last, _ := drawn[len(drawn)-1].End()
	cmds = append(cmds, Move(last))
	for j := len(drawn) - 1; j >= 0; j-- {
		c := drawn[j]
		start := starts[j+1] // start point of command j within src
		switch c.typ {
		case LineTo:
			cmds = append(cmds, Line(start))
		case QuadTo:
			cmds = append(cmds, Quad(c.points[0], start))
		case CubicTo:
			cmds = append(cmds, Cubic(c.points[1], c.points[0], start))
		}
	}
	if closed {
		cmds = append(cmds, Close())
	}
	b.subPaths[i] = SubPath{commands: cmds, collapsing: src.collapsing}
	return b
}

// ShiftSubPathForward rotates a closed subpath's start point one command
// forward along the draw direction. Open subpaths are left untouched.
func (b *Builder) ShiftSubPathForward(i int) *Builder { return b.shiftSubPath(i, 1) }

// ShiftSubPathBack rotates a closed subpath's start point one command
// backward. Open subpaths are left untouched.
func (b *Builder) ShiftSubPathBack(i int) *Builder { return b.shiftSubPath(i, -1) }

func (b *Builder) shiftSubPath(i, delta int) *Builder {
	if i < 0 || i >= len(b.subPaths) {
		return b
	}
	src := b.subPaths[i]
	if !src.Closed() || src.Len() < 3 {
		return b
	}

	// The subpath is a ring of edges: the drawn commands plus the edge the
	// close command implies. Materialize that edge so rotation cannot lose
	// its vertex.
	start := src.Start()
	ring := make([]Command, 0, src.Len())
	ring = append(ring, src.commands[1:src.Len()-1]...)
	if end, _ := ring[len(ring)-1].End(); end != start {
		ring = append(ring, Line(start))
	}

	n := len(ring)
	offset := ((delta % n) + n) % n
	if offset == 0 {
		return b
	}

	newStart, _ := ring[offset-1].End()
	rotated := make([]Command, 0, n)
	rotated = append(rotated, ring[offset:]...)
	rotated = append(rotated, ring[:offset]...)

	// The final edge closes the ring; when it is a straight line the close
	// command already expresses it.
	if last := rotated[n-1]; last.typ == LineTo {
		if end, _ := last.End(); end == newStart {
			rotated = rotated[:n-1]
		}
	}

	cmds := make([]Command, 0, len(rotated)+2)
	cmds = append(cmds, Move(newStart))
	cmds = append(cmds, rotated...)
	cmds = append(cmds, Close())
	b.subPaths[i] = SubPath{commands: cmds, collapsing: src.collapsing}
	return b
}

// SplitCommandInHalf replaces command j of subpath i with two commands of
// the same type covering the same geometry. Move and close commands cannot
// be split.
func (b *Builder) SplitCommandInHalf(i, j int) *Builder {
	if i < 0 || i >= len(b.subPaths) {
		return b
	}
	src := b.subPaths[i]
	if j <= 0 || j >= src.Len() {
		return b
	}
	c := src.commands[j]
	if c.typ == ClosePath {
		return b
	}
	starts := commandStarts(src)
	halves := c.split(starts[j])
	if len(halves) == 1 {
		return b
	}
	cmds := make([]Command, 0, src.Len()+1)
	cmds = append(cmds, src.commands[:j]...)
	cmds = append(cmds, halves...)
	cmds = append(cmds, src.commands[j+1:]...)
	b.subPaths[i] = SubPath{commands: cmds, collapsing: src.collapsing}
	return b
}

// commandStarts returns, for each command index, the point the command
// starts from. Index 0 (the move) starts from its own point.
func commandStarts(s SubPath) []Point {
	starts := make([]Point, s.Len())
	cur := s.Start()
	starts[0] = cur
	for j := 1; j < s.Len(); j++ {
		starts[j] = cur
		if end, ok := s.commands[j].End(); ok {
			cur = end
		}
	}
	return starts
}

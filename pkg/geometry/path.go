package geometry

import (
	"fmt"
	"strings"
)

// SubPath is a contiguous run of commands beginning with a move. A subpath
// whose commands all collapse onto a single point may be flagged as
// "collapsing": a synthetic placeholder inserted purely to equalize subpath
// counts between two morph endpoints.
type SubPath struct {
	commands   []Command
	collapsing bool
}

// NewSubPath builds a subpath from commands. The first command must be a
// move and no later command may be one.
func NewSubPath(commands ...Command) SubPath {
	if len(commands) == 0 || commands[0].typ != MoveTo {
		panic("geometry: subpath must begin with a move command")
	}
	for _, c := range commands[1:] {
		if c.typ == MoveTo {
			panic("geometry: subpath may contain only one move command")
		}
	}
	owned := make([]Command, len(commands))
	copy(owned, commands)
	return SubPath{commands: owned}
}

// Len reports the number of commands, the move included.
func (s SubPath) Len() int { return len(s.commands) }

// Command returns the i-th command.
func (s SubPath) Command(i int) Command { return s.commands[i] }

// Commands returns a copy of the command sequence.
func (s SubPath) Commands() []Command {
	out := make([]Command, len(s.commands))
	copy(out, s.commands)
	return out
}

// Closed reports whether the subpath ends with a close command.
func (s SubPath) Closed() bool {
	return len(s.commands) > 0 && s.commands[len(s.commands)-1].typ == ClosePath
}

// Collapsing reports whether the subpath is a synthetic placeholder.
func (s SubPath) Collapsing() bool { return s.collapsing }

// Start returns the subpath's starting point.
func (s SubPath) Start() Point {
	p, _ := s.commands[0].End()
	return p
}

// Path is an immutable sequence of subpaths. The zero value is the empty
// path. Structural edits go through Builder.
type Path struct {
	subPaths []SubPath
}

// NewPath assembles a path from subpaths.
func NewPath(subPaths ...SubPath) Path {
	owned := make([]SubPath, len(subPaths))
	copy(owned, subPaths)
	return Path{subPaths: owned}
}

// Len reports the number of subpaths.
func (p Path) Len() int { return len(p.subPaths) }

// Empty reports whether the path has no subpaths.
func (p Path) Empty() bool { return len(p.subPaths) == 0 }

// SubPath returns the i-th subpath.
func (p Path) SubPath(i int) SubPath { return p.subPaths[i] }

// SubPaths returns a copy of the subpath sequence.
func (p Path) SubPaths() []SubPath {
	out := make([]SubPath, len(p.subPaths))
	copy(out, p.subPaths)
	return out
}

// CommandCounts returns the per-subpath command counts, in order.
func (p Path) CommandCounts() []int {
	out := make([]int, len(p.subPaths))
	for i, s := range p.subPaths {
		out[i] = s.Len()
	}
	return out
}

// String renders the path as SVG-like mnemonics, for logs and test output.
func (p Path) String() string {
	var b strings.Builder
	for i, s := range p.subPaths {
		if i > 0 {
			b.WriteByte(' ')
		}
		for j, c := range s.commands {
			if j > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(c.typ.String())
			for _, pt := range c.points {
				fmt.Fprintf(&b, " %g %g", pt.X, pt.Y)
			}
		}
	}
	return b.String()
}

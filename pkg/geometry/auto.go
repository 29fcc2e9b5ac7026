package geometry

import "math"

// AutoConvert reconciles the command types of subpath i between two paths
// that already agree on command count at that index. At each position where
// the types differ, the less expressive command is promoted (line to quad,
// quad to cubic, and so on) so a renderer can interpolate the pair
// point-by-point. Point counts never change. Promotions are marked on the
// command and can be reverted with Builder.UnconvertSubPath.
//
// If the subpath index is invalid on either path, or the command counts
// differ, both paths are returned unchanged.
func AutoConvert(i int, a, b Path) (Path, Path) {
	if i < 0 || i >= a.Len() || i >= b.Len() {
		return a, b
	}
	sa, sb := a.subPaths[i], b.subPaths[i]
	if sa.Len() != sb.Len() {
		return a, b
	}

	startsA := commandStarts(sa)
	startsB := commandStarts(sb)
	cmdsA := sa.Commands()
	cmdsB := sb.Commands()
	changed := false
	for j := 0; j < sa.Len(); j++ {
		ca, cb := cmdsA[j], cmdsB[j]
		if ca.typ == cb.typ {
			continue
		}
		if ca.typ.rank() < cb.typ.rank() {
			cmdsA[j] = ca.promote(startsA[j], cb.typ)
		} else {
			cmdsB[j] = cb.promote(startsB[j], ca.typ)
		}
		changed = true
	}
	if !changed {
		return a, b
	}

	a = replaceSubPath(a, i, SubPath{commands: cmdsA, collapsing: sa.collapsing})
	b = replaceSubPath(b, i, SubPath{commands: cmdsB, collapsing: sb.collapsing})
	return a, b
}

// AutoFix reconciles command counts between two morph endpoints. For every
// subpath index present on both sides with differing command counts, the
// side with fewer commands has its longest command split in half until the
// counts match; each pair is then run through AutoConvert. Subpath counts
// are left alone; that is the compatibilizer's job, not AutoFix's.
func AutoFix(from, to Path) (Path, Path) {
	n := from.Len()
	if to.Len() < n {
		n = to.Len()
	}
	for i := 0; i < n; i++ {
		for from.subPaths[i].Len() < to.subPaths[i].Len() {
			next := splitLongest(from, i)
			if next.subPaths[i].Len() == from.subPaths[i].Len() {
				break // nothing splittable left
			}
			from = next
		}
		for to.subPaths[i].Len() < from.subPaths[i].Len() {
			next := splitLongest(to, i)
			if next.subPaths[i].Len() == to.subPaths[i].Len() {
				break
			}
			to = next
		}
		from, to = AutoConvert(i, from, to)
	}
	return from, to
}

// splitLongest splits the command with the greatest approximate length in
// subpath i, adding exactly one command.
func splitLongest(p Path, i int) Path {
	s := p.subPaths[i]
	starts := commandStarts(s)
	bestIdx := -1
	bestLen := -1.0
	for j := 1; j < s.Len(); j++ {
		c := s.commands[j]
		if c.typ == ClosePath {
			continue
		}
		l := approxLength(starts[j], c)
		if l > bestLen {
			bestLen = l
			bestIdx = j
		}
	}
	if bestIdx < 0 {
		return p
	}
	return p.Builder().SplitCommandInHalf(i, bestIdx).Build()
}

// approxLength measures a command by its control polygon.
func approxLength(start Point, c Command) float64 {
	total := 0.0
	prev := start
	for _, pt := range c.points {
		total += math.Hypot(pt.X-prev.X, pt.Y-prev.Y)
		prev = pt
	}
	return total
}

func replaceSubPath(p Path, i int, s SubPath) Path {
	sub := make([]SubPath, len(p.subPaths))
	copy(sub, p.subPaths)
	sub[i] = s
	return Path{subPaths: sub}
}

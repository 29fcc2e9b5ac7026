package geometry

import (
	"container/heap"
	"math"
)

// PoleOfInaccessibility computes the most-interior point of subpath i: the
// point within the outline that is farthest from every edge. It is the
// anchor used for collapsing subpaths, so that a placeholder collapses into
// the visual middle of the shape it stands in for.
//
// The subpath's curves are flattened to a polygon and refined with a
// quadtree search (the "polylabel" scheme). Degenerate subpaths fall back
// to their starting point.
func (p Path) PoleOfInaccessibility(i int) Point {
	if i < 0 || i >= len(p.subPaths) {
		return Point{}
	}
	s := p.subPaths[i]
	poly := flatten(s)
	if len(poly) < 3 {
		return s.Start()
	}
	return poleOfPolygon(poly, 1e-3)
}

// flatten samples the subpath's commands into a polygon outline.
func flatten(s SubPath) []Point {
	var poly []Point
	cur := s.Start()
	poly = append(poly, cur)
	for j := 1; j < s.Len(); j++ {
		c := s.commands[j]
		switch c.typ {
		case LineTo:
			cur = c.points[0]
			poly = append(poly, cur)
		case QuadTo:
			for _, t := range []float64{0.25, 0.5, 0.75, 1} {
				poly = append(poly, quadAt(cur, c.points[0], c.points[1], t))
			}
			cur = c.points[1]
		case CubicTo:
			for _, t := range []float64{0.25, 0.5, 0.75, 1} {
				poly = append(poly, cubicAt(cur, c.points[0], c.points[1], c.points[2], t))
			}
			cur = c.points[2]
		}
	}
	return poly
}

func quadAt(p0, p1, p2 Point, t float64) Point {
	return p0.Lerp(p1, t).Lerp(p1.Lerp(p2, t), t)
}

func cubicAt(p0, p1, p2, p3 Point, t float64) Point {
	a := p0.Lerp(p1, t)
	b := p1.Lerp(p2, t)
	c := p2.Lerp(p3, t)
	return a.Lerp(b, t).Lerp(b.Lerp(c, t), t)
}

type poleCell struct {
	center Point
	half   float64 // half the cell size
	dist   float64 // signed distance from center to the outline
	max    float64 // upper bound of dist within the cell
}

func newPoleCell(center Point, half float64, poly []Point) poleCell {
	d := signedDistance(center, poly)
	return poleCell{center: center, half: half, dist: d, max: d + half*math.Sqrt2}
}

type poleQueue []poleCell

func (q poleQueue) Len() int           { return len(q) }
func (q poleQueue) Less(i, j int) bool { return q[i].max > q[j].max }
func (q poleQueue) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (q *poleQueue) Push(x any)        { *q = append(*q, x.(poleCell)) }

func (q *poleQueue) Pop() any {
	old := *q
	n := len(old)
	c := old[n-1]
	*q = old[:n-1]
	return c
}

func poleOfPolygon(poly []Point, precision float64) Point {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, pt := range poly {
		minX = math.Min(minX, pt.X)
		minY = math.Min(minY, pt.Y)
		maxX = math.Max(maxX, pt.X)
		maxY = math.Max(maxY, pt.Y)
	}
	width, height := maxX-minX, maxY-minY
	size := math.Min(width, height)
	if size == 0 {
		return Point{X: minX + width/2, Y: minY + height/2}
	}

	half := size / 2
	q := &poleQueue{}
	heap.Init(q)
	for x := minX; x < maxX; x += size {
		for y := minY; y < maxY; y += size {
			heap.Push(q, newPoleCell(Point{X: x + half, Y: y + half}, half, poly))
		}
	}

	// Seed with the centroid and the bbox center, both common best guesses.
	best := newPoleCell(centroid(poly), 0, poly)
	if c := newPoleCell(Point{X: minX + width/2, Y: minY + height/2}, 0, poly); c.dist > best.dist {
		best = c
	}

	for q.Len() > 0 {
		cell := heap.Pop(q).(poleCell)
		if cell.dist > best.dist {
			best = cell
		}
		if cell.max-best.dist <= precision {
			continue
		}
		h := cell.half / 2
		for _, dx := range []float64{-h, h} {
			for _, dy := range []float64{-h, h} {
				heap.Push(q, newPoleCell(Point{X: cell.center.X + dx, Y: cell.center.Y + dy}, h, poly))
			}
		}
	}
	return best.center
}

func centroid(poly []Point) Point {
	var area, cx, cy float64
	for i, j := 0, len(poly)-1; i < len(poly); j, i = i, i+1 {
		a := poly[j]
		b := poly[i]
		f := a.X*b.Y - b.X*a.Y
		area += f
		cx += (a.X + b.X) * f
		cy += (a.Y + b.Y) * f
	}
	if area == 0 {
		return poly[0]
	}
	area *= 3
	return Point{X: cx / area, Y: cy / area}
}

// signedDistance is the distance from pt to the polygon outline, positive
// inside and negative outside.
func signedDistance(pt Point, poly []Point) float64 {
	inside := false
	min := math.Inf(1)
	for i, j := 0, len(poly)-1; i < len(poly); j, i = i, i+1 {
		a := poly[j]
		b := poly[i]
		if (a.Y > pt.Y) != (b.Y > pt.Y) &&
			pt.X < (b.X-a.X)*(pt.Y-a.Y)/(b.Y-a.Y)+a.X {
			inside = !inside
		}
		min = math.Min(min, segmentDistanceSq(pt, a, b))
	}
	d := math.Sqrt(min)
	if !inside {
		return -d
	}
	return d
}

func segmentDistanceSq(pt, a, b Point) float64 {
	x, y := a.X, a.Y
	dx, dy := b.X-a.X, b.Y-a.Y
	if dx != 0 || dy != 0 {
		t := ((pt.X-x)*dx + (pt.Y-y)*dy) / (dx*dx + dy*dy)
		if t > 1 {
			x, y = b.X, b.Y
		} else if t > 0 {
			x += dx * t
			y += dy * t
		}
	}
	dx, dy = pt.X-x, pt.Y-y
	return dx*dx + dy*dy
}

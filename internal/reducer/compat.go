package reducer

import "github.com/oxblood/morph/pkg/geometry"

// makeInterpolatable reconciles the two endpoints of a path morph so a
// renderer can interpolate them pairwise: equal subpath counts, and where
// command counts already match, position-by-position compatible command
// types. Synthetic collapsing subpaths and command promotions from earlier
// runs are derived artifacts; they are stripped and recomputed from
// scratch every time, which makes the pass idempotent.
//
// Command-count mismatches within a subpath pair are left alone. Inserting
// points to resolve them changes the drawing, so that stays a user
// decision.
func makeInterpolatable(from, to geometry.Path) (geometry.Path, geometry.Path) {
	if from.Empty() && to.Empty() {
		return from, to
	}

	from = normalize(from)
	to = normalize(to)

	switch n, m := from.Len(), to.Len(); {
	case n < m:
		from = padWithCollapsing(from, to, n)
	case m < n:
		to = padWithCollapsing(to, from, m)
	}

	for i := 0; i < from.Len(); i++ {
		if from.SubPath(i).Len() == to.SubPath(i).Len() {
			from, to = geometry.AutoConvert(i, from, to)
		}
	}
	return from, to
}

// normalize strips collapsing subpaths and reverts command promotions,
// returning the endpoint to its user-drawn form.
func normalize(p geometry.Path) geometry.Path {
	p = p.Builder().DeleteCollapsingSubPaths().Build()
	b := p.Builder()
	for i := 0; i < p.Len(); i++ {
		b.UnconvertSubPath(i)
	}
	return b.Build()
}

// padWithCollapsing appends one collapsing subpath to smaller for each of
// larger's subpaths from index start on. Each lands at the pole of
// inaccessibility of its counterpart and copies its command count, so the
// pair interpolates as a shape growing out of a single interior point.
func padWithCollapsing(smaller, larger geometry.Path, start int) geometry.Path {
	b := smaller.Builder()
	for i := start; i < larger.Len(); i++ {
		b.AddCollapsingSubPath(larger.PoleOfInaccessibility(i), larger.SubPath(i).Len())
	}
	return b.Build()
}

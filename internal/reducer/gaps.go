package reducer

import (
	"errors"

	"github.com/oxblood/morph/pkg/domain"
)

// ErrNoGapAvailable is returned when no stretch of free timeline wide
// enough for the requested block exists. Callers treat it as a diagnostic,
// not a failure: the add-block action is dropped and the document stands.
var ErrNoGapAvailable = errors.New("no gap available on the timeline")

type gap struct {
	start, end int64
}

func (g gap) width() int64 { return g.end - g.start }

// distance measures how far the gap is from the cursor: zero when the
// cursor falls inside, edge distance otherwise.
func (g gap) distance(cursor int64) int64 {
	d := absInt64(g.end - cursor)
	if e := absInt64(g.start - cursor); e < d {
		d = e
	}
	return d
}

// findGap places a block of exactly the given duration between the blocks
// already occupying the (layer, property) lane, as close to cursor as free
// space allows. The blocks must be ordered by start time. Gaps must be
// strictly wider than the duration to qualify; among qualifying gaps the
// one closest to the cursor wins, ties going to the leftmost.
func findGap(blocks []domain.Block, animationDuration, duration, cursor int64) (start, end int64, err error) {
	var gaps []gap
	prevEnd := int64(0)
	for _, b := range blocks {
		base := b.Base()
		gaps = append(gaps, gap{prevEnd, base.StartTime})
		prevEnd = base.EndTime
	}
	gaps = append(gaps, gap{prevEnd, animationDuration})

	best := gap{}
	found := false
	for _, g := range gaps {
		if g.width() <= duration {
			continue
		}
		if !found || g.distance(cursor) < best.distance(cursor) {
			best = g
			found = true
		}
	}
	if !found {
		return 0, 0, ErrNoGapAvailable
	}

	start = cursor
	if best.start > start {
		start = best.start
	}
	end = start + duration
	if end > best.end {
		// Snap to the gap's right edge, keeping the exact width.
		end = best.end
		start = end - duration
	}
	return start, end, nil
}

func absInt64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

package domain

// DefaultAnimationDuration is the timeline length given to animations
// created by the factories, in timeline units.
const DefaultAnimationDuration = 300

// DefaultBlockDuration is the length requested for new blocks when the
// add-block action does not specify one.
const DefaultBlockDuration = 100

// Animation is a named, duration-bounded container of timed edit blocks.
type Animation struct {
	ID       string
	Name     string
	Duration int64
	Blocks   []Block
}

// NewAnimation creates an empty animation with a fresh id and the default
// duration.
func NewAnimation(name string) *Animation {
	return &Animation{
		ID:       NewID(),
		Name:     name,
		Duration: DefaultAnimationDuration,
	}
}

// Clone returns a copy of the animation with its own block slice. The
// blocks themselves are shared; substitute edited blocks by index or id.
func (a *Animation) Clone() *Animation {
	next := *a
	next.Blocks = make([]Block, len(a.Blocks))
	copy(next.Blocks, a.Blocks)
	return &next
}

// BlockIndex returns the index of the block with the given id, or -1.
func (a *Animation) BlockIndex(blockID string) int {
	for i, b := range a.Blocks {
		if b.Base().ID == blockID {
			return i
		}
	}
	return -1
}

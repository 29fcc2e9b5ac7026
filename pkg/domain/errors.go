package domain

import "errors"

// Lookup failures name the missing id's pool. The reducer wraps these with
// the offending id; callers match with errors.Is.
var (
	ErrAnimationNotFound = errors.New("animation not found")
	ErrBlockNotFound     = errors.New("block not found")
	ErrLayerNotFound     = errors.New("layer not found")
	ErrDuplicateID       = errors.New("duplicate entity id")
	ErrNotAnimatable     = errors.New("property is not animatable on this layer")
)

// ErrSessionNotFound is returned when a session id cannot be found in a
// document store.
var ErrSessionNotFound = errors.New("session not found")

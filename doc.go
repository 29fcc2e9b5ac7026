// Package morph is an immutable editing core for vector-path morph
// animations: a document of layer trees and timed animation blocks,
// advanced one action at a time by a pure reducer.
//
// Every dispatch produces a new document value; subtrees an action did not
// touch are shared by reference with the input, so pointer identity doubles
// as change detection (see domain.Diff). Path morph endpoints are kept
// pairwise interpolatable by the built-in compatibilizer, and new blocks
// are placed on the timeline by a gap-finding heuristic.
//
// The Editor type is the facade most consumers want; the session package
// manages several independent documents behind a pluggable store.
package morph

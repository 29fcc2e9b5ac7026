/*
Package domain contains the entity store for the morph editing core: the
immutable Document value and everything embedded in it.

It defines the fundamental entities of the editor: the layer trees, the
animation timeline, the tagged block union, and the action records the
reducer dispatches on. The package is kept pure and free of I/O or
persistence concerns; its only dependency beyond the standard library is
the geometry value type carried by path blocks.

# Key Entities

  - Document: the root state value, replaced wholesale on every action.
  - Layer: the closed union of layer tree nodes (VectorLayer, GroupLayer,
    PathLayer), each with its animatable property descriptors.
  - Animation / Block: the timeline and its per-property edit blocks
    (Number, Color, and Path variants).
  - Action: the closed union of state transitions understood by the reducer.

# Immutability

Nothing reachable from a Document is mutated after the Document has been
returned by the reducer. Edits clone the owning entity, modify the clone,
and substitute it by id; untouched subtrees are shared by reference, so
pointer identity doubles as a cheap change signal (see Diff).
*/
package domain

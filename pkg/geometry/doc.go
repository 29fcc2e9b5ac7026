/*
Package geometry provides the immutable path value type consumed by the
editing core, together with the structural algorithms the morph tooling
relies on.

A Path is an ordered sequence of SubPaths; a SubPath is an ordered sequence
of draw Commands (move, line, quadratic, cubic, close). Paths are never
mutated in place: every structural edit goes through a Builder, which
produces a fresh Path and leaves the source untouched.

# Key Entities

  - Command: a single draw instruction with its absolute points.
  - SubPath: a contiguous run of commands starting with a move.
  - Path: the top-level immutable value.
  - Builder: the only way to derive an edited Path from an existing one.

# Algorithms

  - PoleOfInaccessibility: the most-interior point of a subpath, used to
    place degenerate placeholder subpaths for morphing.
  - AutoConvert: makes command types compatible position-by-position between
    two paths without changing point counts.
  - AutoFix: equalizes command counts between two morph endpoints by
    splitting commands, then converts types.
*/
package geometry

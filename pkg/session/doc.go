/*
Package session manages several independent editing documents behind a
pluggable store.

It serializes the read-reduce-write cycle per session so concurrent
dispatches against the same document never interleave, while different
sessions proceed in parallel. Locks are reference counted and garbage
collected as soon as no caller holds them.
*/
package session

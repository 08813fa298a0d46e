// Package idmap provides the identifier ↔ element mapping of the geometry
// index.
//
// A Map is two plain Go maps kept consistent by hand on every mutation: one
// from identifier to the element currently indexed for it, and one from the
// element's key back to the identifier. Upsert reports the element it
// displaced so the caller can evict that exact entry from the spatial index.
//
// Maps are not safe for concurrent use. The owning index serializes access.
package idmap

// Package interop converts between BitVector and the bitmap types used
// elsewhere in the Go ecosystem.
//
// Roaring bitmaps are sparse and carry no length, so FromRoaring takes the
// logical length explicitly and ToRoaring only works for vectors whose
// indexes fit in uint32. bits-and-blooms bitsets carry a length and map
// one-to-one.
package interop

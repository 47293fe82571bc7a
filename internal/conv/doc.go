// Package conv provides checked integer conversions for frame headers.
//
// Header fields are fixed-width on disk while lengths are int in memory.
// Every conversion that can lose information returns an error wrapping
// ErrOverflow instead of truncating.
package conv

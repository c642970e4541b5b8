// Package conv provides checked integer conversions for values that come
// from outside the process, such as remote object sizes and candidate
// counts stored in 32-bit bitmaps.
package conv

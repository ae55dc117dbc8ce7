// SPDX-License-Identifier: MPL-2.0

// Package rle reads Golly run-length-encoded pattern files and flattens the
// encoded rows into a single string suitable for embedding in a Kotlin
// string literal.
//
// Comment lines (starting with '#') and the header line (starting with 'x',
// as in "x = 3, y = 3, rule = B3/S23") are dropped. Every '$' row separator
// is escaped as `\$` so the result can be pasted inside a Kotlin string
// template without triggering interpolation.
package rle

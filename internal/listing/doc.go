// SPDX-License-Identifier: MPL-2.0

// Package listing holds the ordered name→pattern mapping and renders it as a
// Kotlin enum class.
//
// The mapping keeps first-seen order: setting a name that already exists
// replaces its content in place instead of appending a second entry.
package listing

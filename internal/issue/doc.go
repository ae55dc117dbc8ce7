// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable errors: messages that say which operation
// failed on which file, with remediation hints for the terminal.
package issue

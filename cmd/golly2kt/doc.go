// SPDX-License-Identifier: MPL-2.0

// Package cmd contains the CLI commands for golly2kt.
//
// The root command is the generator itself: every positional argument is a
// pattern file, and the Kotlin listing goes to stdout. The config subcommand
// tree inspects and creates the optional golly2kt.cue file.
package cmd

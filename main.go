// SPDX-License-Identifier: MPL-2.0

// Command golly2kt converts Golly RLE pattern files into a Kotlin enum.
package main

import cmd "golly2kt/cmd/golly2kt"

func main() {
	cmd.Execute()
}

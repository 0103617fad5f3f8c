// SPDX-License-Identifier: MPL-2.0

package main

import "wslrun-cli/cmd/wslrun"

func main() {
	cmd.Execute()
}

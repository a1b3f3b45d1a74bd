// SPDX-License-Identifier: MPL-2.0

package main

import cmd "ytdlpcmd/cmd/ytdlpcmd"

func main() {
	cmd.Execute()
}

// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/slnmod/slnmod/cmd/slnmod"

func main() {
	cmd.Execute()
}

// Copyright © 2026 The qassert authors

package main

import "github.com/luthersystems/qassert/cmd"

func main() {
	cmd.Execute()
}

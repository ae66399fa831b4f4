package main

import "github.com/tutils/bashrand/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/katalvlaran/forge/internal/cli"

func main() {
	cli.Execute()
}

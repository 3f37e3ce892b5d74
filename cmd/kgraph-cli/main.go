package main

import "kgraph/cmd/kgraph-cli/cmd"

func main() {
	cmd.Execute()
}

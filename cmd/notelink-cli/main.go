package main

import "notelink/cmd/notelink-cli/cmd"

func main() {
	cmd.Execute()
}

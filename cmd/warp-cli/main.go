package main

import "warp/cmd/warp-cli/cmd"

func main() {
	cmd.Execute()
}

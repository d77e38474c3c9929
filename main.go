package main

import "screenops/cmd"

func main() {
	cmd.Execute()
}

package main

import "fincast/cmd"

func main() {
	cmd.Execute()
}

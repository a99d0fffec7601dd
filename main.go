package main

import "trainbot/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/ScottMorse/Music-Tools/cmd"

func main() {
	cmd.Execute()
}

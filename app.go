package main

import "fretdiagram/cmd"

func main() {
	cmd.Execute()
}

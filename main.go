package main

import "fioparser/cmd"

func main() {
	cmd.Execute()
}

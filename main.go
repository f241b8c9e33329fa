package main

import "github.com/dotcommander/listinglint/cmd"

func main() {
	cmd.Execute()
}

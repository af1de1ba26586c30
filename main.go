package main

import "github.com/ananyagupta2305/deepsolv/cmd"

func main() {
	cmd.Execute()
}

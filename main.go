package main

import "lintbridge/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/momeni/carsweb/cmd/carsweb/command"

func main() {
	command.Execute()
}

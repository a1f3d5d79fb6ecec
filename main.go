package main

import "github.com/samsaffron/mdpad/cmd"

func main() {
	cmd.Execute()
}

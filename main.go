package main

import "github.com/mouse-blink/barrelgen/cmd"

func main() {
	cmd.Execute()
}

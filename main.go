package main

import "github.com/mouse-blink/vifmap/cmd"

func main() {
	cmd.Execute()
}

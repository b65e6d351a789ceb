package main

import "github.com/mouse-blink/checkcodedoc/cmd"

func main() {
	cmd.Execute()
}

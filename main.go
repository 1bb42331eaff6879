package main

import "github.com/vecha2468/stockquote/cmd"

func main() {
	cmd.Execute()
}

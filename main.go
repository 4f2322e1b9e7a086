package main

import "github.com/thenoetrevino/kanban/cmd"

func main() {
	cmd.Execute()
}

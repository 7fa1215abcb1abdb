package main

import "github.com/flying-tiger/jflow/cmd"

func main() {
	cmd.Execute()
}

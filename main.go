package main

import (
	"github.com/jjtimmons/pepclust/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}

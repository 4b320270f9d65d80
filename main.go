package main

import (
	"github.com/mlehner/strkit/cmd"
)

func main() {
	cmd.Execute()
}

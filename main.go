package main

import (
	"github.com/TFMV/forcegraph/cmd"
)

func main() {
	cmd.Execute()
}

package main

import (
	"os"

	"github.com/mattn/go-colorable"
)

func main() {
	os.Exit(run(os.Args[1:], colorable.NewColorableStdout(), colorable.NewColorableStderr()))
}

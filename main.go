package main

import (
	"lcc/cmd"

	"github.com/tebeka/atexit"
)

func main() {
	atexit.Exit(cmd.Execute())
}

package main

import (
	"os"

	"github.com/bitranox/lib-list/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}

package main

import (
	"os"

	"github.com/fblissjr/articularity/cmd"
)

func main() {
	if err := cmd.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

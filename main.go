package main

import (
	"os"

	"github.com/Cielo24/git-conflict-detector/pkg/cli"
)

func main() {
	if err := cli.New().Run(os.Args); err != nil {
		os.Exit(1)
	}
}

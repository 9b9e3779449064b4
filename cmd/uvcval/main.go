package main

import (
	"os"

	"github.com/arloliu/uvcval/internal/cli"
)

func main() {
	rc := cli.NewRootCommand(os.Stdin, os.Stdout, os.Stderr)
	if err := rc.Execute(); err != nil {
		os.Exit(1)
	}
}

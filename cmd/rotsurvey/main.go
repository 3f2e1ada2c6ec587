// Package main is the rotsurvey command.
package main

import (
	"fmt"
	"os"

	"github.com/chubrik/rotation3d/cli"
)

func main() {
	app := cli.NewApp(os.Stdout, os.Stderr)
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "rotsurvey: %v\n", err)
		os.Exit(1)
	}
}

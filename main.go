package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/thenoetrevino/projects/cmd"
	"github.com/thenoetrevino/projects/internal/cli"
)

func main() {
	err := cmd.Execute()
	if err == nil {
		return
	}

	// commands report their own failures; anything else is a usage error from cobra
	var cmdErr *cli.CommandError
	if !errors.As(err, &cmdErr) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.ExitUsage)
	}
	os.Exit(cmdErr.Code)
}

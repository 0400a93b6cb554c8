package main

import (
	"os"

	"github.com/rogersnm/taskcli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(cmd.ExitCode(err))
	}
}

package main

import (
	"context"
	"os"

	"defaultslist/cmd/defaultslist/cmd"
)

func main() {
	ctx := context.Background()

	if err := cmd.Execute(ctx); err != nil {
		os.Exit(cmd.ExitCode(err))
	}
}

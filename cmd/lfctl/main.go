package main

import (
	"os"

	"github.com/reclaim/lostfound-app/internal/cli"
)

func main() {
	if err := cli.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

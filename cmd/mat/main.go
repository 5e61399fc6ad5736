package main

import (
	"os"

	"github.com/msto63/mAT/cmd/mat/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

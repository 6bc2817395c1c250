package main

import (
	"os"

	"github.com/3-14mpa/AITO/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"os"

	"mabacktest/cmd/mabacktest/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

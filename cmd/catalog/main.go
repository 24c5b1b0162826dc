package main

import (
	"os"

	"marketplace/cmd/catalog/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}

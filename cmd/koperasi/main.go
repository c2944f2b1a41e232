package main

import (
	"os"

	"github.com/koperasi/finance-engine/cmd/koperasi/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}

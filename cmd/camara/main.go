package main

import (
	"os"

	"github.com/camaradigital/camara-cli/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

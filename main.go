package main

import (
	"os"

	"github.com/cbas1974-projet/GJJ-TRACKER/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

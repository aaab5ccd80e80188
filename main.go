package main

import (
	"os"

	"github.com/magnhaug/rp/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/tesis-cabal-cugno-moreyra/backend/cmd"
)

func main() {
	if err := cmd.Run(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/rhenandrew/Bombeiro-Militar/cmd/planner/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

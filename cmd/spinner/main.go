package main

import (
	"os"

	"lucky_spinner/cmd/spinner/cmd"

	_ "go.uber.org/automaxprocs"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

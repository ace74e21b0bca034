package main

import (
	"os"

	"github.com/npillmayer/geotext/cmd/geotext/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

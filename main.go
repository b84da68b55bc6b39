package main

import (
	"os"

	"github.com/nimbusworks/weatherd/cmd/weatherd"
)

func main() {
	if err := weatherd.Execute(); err != nil {
		os.Exit(1)
	}
}

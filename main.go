package main

import (
	"os"

	"github.com/janadahlmanns/OrganIQ/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

package main

import (
	"os"

	"github.com/felixbrock/myllmmodel/internal/cli"
	_ "go.uber.org/automaxprocs"
)

/*
- Connect the playground to a real provider once API keys are supported
- Serve Tailwind and htmx from /static instead of the CDNs
*/

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

// Command closet is a local wardrobe catalog.
package main

import (
	"os"

	"github.com/kilupskalvis/closet/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

// Command ggbar renders progress bars with the gg 2D graphics library.
package main

import (
	"os"

	"github.com/gogpu/ggbar/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

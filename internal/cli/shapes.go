package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/ggbar"
	"github.com/gogpu/ggbar/vector"
)

var shapesCmd = &cobra.Command{
	Use:   "shapes",
	Short: "List shape names and recording backends",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "shapes:")
		for _, name := range ggbar.ShapeNames() {
			fmt.Fprintf(out, "  %s\n", name)
		}
		fmt.Fprintln(out, "backends:")
		for _, name := range vector.Backends() {
			fmt.Fprintf(out, "  %s\n", name)
		}
		return nil
	},
}

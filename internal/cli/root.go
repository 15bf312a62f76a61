package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gogpu/ggbar"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:     "ggbar",
	Short:   "Render progress bars with gg",
	Long:    `ggbar renders themed progress bars to PNG, BMP or TIFF images, to recording backends, or as a list of drawing operations.`,
	Version: "0.1.0",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			ggbar.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			})))
		}
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log geometry diagnostics to stderr")
	rootCmd.AddCommand(renderCmd, opsCmd, sheetCmd, shapesCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

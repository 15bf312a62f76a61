package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/ggbar"
	"github.com/gogpu/ggbar/internal/drawlog"
)

var opsFlags barFlags

var opsCmd = &cobra.Command{
	Use:   "ops",
	Short: "Print the drawing operations for one bar",
	Long:  `Print the drawing operations Render issues for one bar, one per line, without rasterizing.`,
	RunE:  runOps,
}

func init() {
	opsFlags.register(opsCmd)
}

func runOps(cmd *cobra.Command, args []string) error {
	cfg, err := opsFlags.load(cmd)
	if err != nil {
		return err
	}
	st, err := cfg.Style()
	if err != nil {
		return err
	}
	log := drawlog.New()
	if err := ggbar.Render(log, cfg.Width, cfg.Height, st); err != nil {
		return err
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), log.String())
	return err
}

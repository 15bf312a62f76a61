package cli

import (
	"context"
	"fmt"
	"image"
	"io"
	"math"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"

	"github.com/gogpu/ggbar"
	"github.com/gogpu/ggbar/internal/config"
)

type sheetOptions struct {
	barFlags
	values []float64
	gap    int
	output string
	format string
	jobs   int
}

var sheetOpts sheetOptions

var sheetCmd = &cobra.Command{
	Use:   "sheet",
	Short: "Render one bar per value, stacked vertically",
	Long: `Render the same themed bar once per value and stack the results into a
single image. Bars are rendered concurrently, each onto its own context.`,
	Example: `  ggbar sheet -c theme.yaml --values 0,0.25,0.5,0.75,1 -o sheet.png`,
	RunE:    runSheet,
}

func init() {
	sheetOpts.register(sheetCmd)
	sheetCmd.Flags().Float64SliceVar(&sheetOpts.values, "values", []float64{0, 0.25, 0.5, 0.75, 1}, "values to render")
	sheetCmd.Flags().IntVar(&sheetOpts.gap, "gap", 4, "vertical gap between bars in pixels")
	sheetCmd.Flags().StringVarP(&sheetOpts.output, "output", "o", "sheet.png", "output file, - for stdout")
	sheetCmd.Flags().StringVar(&sheetOpts.format, "format", "", "png, bmp or tiff (default from the output extension)")
	sheetCmd.Flags().IntVarP(&sheetOpts.jobs, "jobs", "j", runtime.NumCPU(), "maximum concurrent renders")
}

func runSheet(cmd *cobra.Command, args []string) error {
	opts := &sheetOpts
	cfg, err := opts.load(cmd)
	if err != nil {
		return err
	}
	format, err := formatFor(opts.format, opts.output)
	if err != nil {
		return err
	}
	sheet, err := renderSheet(cmd.Context(), cfg, opts.values, opts.gap, opts.jobs)
	if err != nil {
		return err
	}
	return writeFile(opts.output, func(w io.Writer) error {
		return encode(w, sheet, format)
	})
}

// renderSheet renders one bar per value and stacks them with gap pixels
// between rows.
func renderSheet(ctx context.Context, cfg *config.Config, values []float64, gap, jobs int) (image.Image, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("no values to render")
	}
	if gap < 0 {
		gap = 0
	}

	rows := make([]image.Image, len(values))
	g, ctx := errgroup.WithContext(ctx)
	if jobs > 0 {
		g.SetLimit(jobs)
	}
	for i, v := range values {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			props := cfg.Bar
			props.Value = ggbar.Ptr(v)
			bar := ggbar.NewBar(ggbar.WithProperties(props), ggbar.WithTheme(cfg.Theme))
			img, err := rasterize(bar, cfg.Width, cfg.Height)
			if err != nil {
				return fmt.Errorf("value %g: %w", v, err)
			}
			rows[i] = img
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	rowH := int(math.Ceil(cfg.Height))
	sheet := image.NewRGBA(image.Rect(0, 0, int(math.Ceil(cfg.Width)), len(rows)*rowH+(len(rows)-1)*gap))
	for i, row := range rows {
		draw.Copy(sheet, image.Pt(0, i*(rowH+gap)), row, row.Bounds(), draw.Src, nil)
	}
	return sheet, nil
}

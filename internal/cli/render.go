package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/gogpu/ggbar"
	"github.com/gogpu/ggbar/internal/config"
	"github.com/gogpu/ggbar/internal/watch"
	"github.com/gogpu/ggbar/vector"
)

type renderOptions struct {
	barFlags
	output  string
	format  string
	backend string
	watch   bool
}

var renderOpts renderOptions

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render one progress bar",
	Long: `Render one progress bar to an image file.

With --backend the bar is recorded and played back to the named recording
backend instead of being rasterized directly. With --watch the image is
rewritten whenever the --config file changes.`,
	Example: `  ggbar render --value 0.4 -o bar.png
  ggbar render -c theme.yaml --backend raster -o bar.png
  ggbar render -c theme.yaml -o bar.tiff --watch`,
	RunE: runRender,
}

func init() {
	renderOpts.register(renderCmd)
	renderCmd.Flags().StringVarP(&renderOpts.output, "output", "o", "bar.png", "output file, - for stdout")
	renderCmd.Flags().StringVar(&renderOpts.format, "format", "", "png, bmp or tiff (default from the output extension)")
	renderCmd.Flags().StringVar(&renderOpts.backend, "backend", "", "recording backend to play back to (see vector backends)")
	renderCmd.Flags().BoolVarP(&renderOpts.watch, "watch", "w", false, "re-render when the config file changes")
}

func runRender(cmd *cobra.Command, args []string) error {
	opts := &renderOpts
	if opts.watch && opts.configPath == "" {
		return errors.New("--watch requires --config")
	}
	cfg, err := opts.load(cmd)
	if err != nil {
		return err
	}

	draw := func(bar *ggbar.Bar, cfg *config.Config) error {
		if err := drawToFile(bar, cfg, opts); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "wrote %s (%gx%g)\n", opts.output, cfg.Width, cfg.Height)
		return nil
	}

	bar := ggbar.NewBar(ggbar.WithProperties(cfg.Bar), ggbar.WithTheme(cfg.Theme))
	if err := draw(bar, cfg); err != nil {
		return err
	}
	if !opts.watch {
		return nil
	}
	return watchAndRender(cmd, cfg, draw)
}

// watchAndRender reloads the config on change. The bar's change hook does
// the redraw, so every reload that parses produces exactly one image.
func watchAndRender(cmd *cobra.Command, cfg *config.Config, draw func(*ggbar.Bar, *config.Config) error) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	current := cfg
	var drawErr error
	bar := ggbar.NewBar(
		ggbar.WithProperties(cfg.Bar),
		ggbar.WithTheme(cfg.Theme),
		ggbar.WithOnChange(func(b *ggbar.Bar) {
			drawErr = draw(b, current)
		}),
	)

	w, err := watch.NewFile(renderOpts.configPath, 0)
	if err != nil {
		return err
	}
	defer func() { _ = w.Close() }()

	log := ggbar.Logger()
	return w.Run(ctx, func(context.Context) error {
		next, err := renderOpts.load(cmd)
		if err != nil {
			// Keep the last good image while the file is being edited.
			log.Warn("ggbar: reload failed", "err", err)
			fmt.Fprintf(cmd.ErrOrStderr(), "reload: %v\n", err)
			return nil
		}
		current = next
		bar.Configure(next.Bar, next.Theme)
		return drawErr
	})
}

func drawToFile(bar *ggbar.Bar, cfg *config.Config, opts *renderOptions) error {
	if opts.backend != "" {
		st, err := bar.Style()
		if err != nil {
			return err
		}
		r, err := vector.Record(cfg.Width, cfg.Height, st)
		if err != nil {
			return err
		}
		return writeFile(opts.output, func(w io.Writer) error {
			return vector.Export(r, opts.backend, w)
		})
	}

	format, err := formatFor(opts.format, opts.output)
	if err != nil {
		return err
	}
	img, err := rasterize(bar, cfg.Width, cfg.Height)
	if err != nil {
		return err
	}
	return writeFile(opts.output, func(w io.Writer) error {
		return encode(w, img, format)
	})
}

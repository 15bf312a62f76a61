package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gogpu/ggbar"
	"github.com/gogpu/ggbar/internal/config"
)

// barFlags are the flags shared by commands that draw a single bar.
type barFlags struct {
	configPath string
	value      float64
	maxValue   float64
	width      float64
	height     float64
}

func (f *barFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.configPath, "config", "c", "", "YAML theme and bar file")
	cmd.Flags().Float64Var(&f.value, "value", 0, "bar value (overrides the file)")
	cmd.Flags().Float64Var(&f.maxValue, "max", 1, "maximum value (overrides the file)")
	cmd.Flags().Float64Var(&f.width, "width", config.DefaultWidth, "canvas width (overrides the file)")
	cmd.Flags().Float64Var(&f.height, "height", config.DefaultHeight, "canvas height (overrides the file)")
}

// load reads the config file, if any, and applies explicitly set flags.
func (f *barFlags) load(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		var err error
		if cfg, err = config.LoadFromPath(f.configPath); err != nil {
			return nil, err
		}
	}
	flags := cmd.Flags()
	if flags.Changed("value") {
		cfg.Bar.Value = ggbar.Ptr(f.value)
	}
	if flags.Changed("max") {
		cfg.Bar.MaxValue = ggbar.Ptr(f.maxValue)
	}
	if flags.Changed("width") {
		cfg.Width = f.width
	}
	if flags.Changed("height") {
		cfg.Height = f.height
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

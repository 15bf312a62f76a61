package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// RawInsets supports either a uniform value:
//
//	margins: 2
//
// or per-side values, missing sides being zero:
//
//	margins:
//	  top: 1
//	  left: 4
type RawInsets struct {
	Top    *float64 `yaml:"top"`
	Bottom *float64 `yaml:"bottom"`
	Left   *float64 `yaml:"left"`
	Right  *float64 `yaml:"right"`
}

func (r *RawInsets) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var v float64
		if err := value.Decode(&v); err != nil {
			return fmt.Errorf("line %d: insets must be a number or a top/bottom/left/right map", value.Line)
		}
		*r = RawInsets{Top: &v, Bottom: &v, Left: &v, Right: &v}
		return nil
	case yaml.MappingNode:
		type plain RawInsets
		var p plain
		if err := value.Decode(&p); err != nil {
			return err
		}
		*r = RawInsets(p)
		return nil
	default:
		return fmt.Errorf("line %d: insets must be a number or a top/bottom/left/right map", value.Line)
	}
}

// RawShape supports either a bare name:
//
//	shape: rounded_bar
//
// or a name with its size parameter:
//
//	shape:
//	  kind: rounded_rect
//	  radius: 4
type RawShape struct {
	Kind   string   `yaml:"kind"`
	Radius *float64 `yaml:"radius"`
}

func (r *RawShape) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		*r = RawShape{Kind: value.Value}
		return nil
	case yaml.MappingNode:
		type plain RawShape
		var p plain
		if err := value.Decode(&p); err != nil {
			return err
		}
		*r = RawShape(p)
		return nil
	default:
		return fmt.Errorf("line %d: shape must be a name or a kind/radius map", value.Line)
	}
}

// RawProperties mirrors ggbar.Properties with YAML-friendly types.
// Colors are hex strings.
type RawProperties struct {
	Value    *float64 `yaml:"value"`
	MaxValue *float64 `yaml:"max_value"`

	BorderWidth *float64 `yaml:"border_width"`
	BorderColor *string  `yaml:"border_color"`

	BarBorderWidth *float64 `yaml:"bar_border_width"`
	BarBorderColor *string  `yaml:"bar_border_color"`

	BackgroundColor *string `yaml:"background_color"`
	ForegroundColor *string `yaml:"color"`
	TicksColor      *string `yaml:"ticks_color"`

	Shape    *RawShape `yaml:"shape"`
	BarShape *RawShape `yaml:"bar_shape"`

	Clip *bool `yaml:"clip"`

	Margins  *RawInsets `yaml:"margins"`
	Paddings *RawInsets `yaml:"paddings"`

	Ticks     *bool    `yaml:"ticks"`
	TicksGap  *float64 `yaml:"ticks_gap"`
	TicksSize *float64 `yaml:"ticks_size"`

	Vertical *bool `yaml:"vertical"`
}

// RawConfig is the on-disk document.
type RawConfig struct {
	Width  *float64      `yaml:"width"`
	Height *float64      `yaml:"height"`
	Theme  RawProperties `yaml:"theme"`
	Bar    RawProperties `yaml:"bar"`
}

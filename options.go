package ggbar

// BarOption configures a Bar during creation.
//
// Example:
//
//	bar := ggbar.NewBar(
//	    ggbar.WithValue(0.3),
//	    ggbar.WithTheme(theme),
//	    ggbar.WithOnChange(func(*ggbar.Bar) { redraw() }),
//	)
type BarOption func(*barOptions)

// barOptions holds optional configuration for Bar creation.
type barOptions struct {
	props    Properties
	theme    Theme
	onChange func(*Bar)
}

func defaultBarOptions() barOptions {
	return barOptions{
		theme: DefaultTheme(),
	}
}

// WithProperties sets the bar's explicit properties.
// Later WithValue or WithMaxValue options override the matching fields.
func WithProperties(p Properties) BarOption {
	return func(o *barOptions) {
		o.props = p
	}
}

// WithValue sets the initial value.
func WithValue(v float64) BarOption {
	return func(o *barOptions) {
		o.props.Value = Ptr(v)
	}
}

// WithMaxValue sets the maximum value.
func WithMaxValue(v float64) BarOption {
	return func(o *barOptions) {
		o.props.MaxValue = Ptr(v)
	}
}

// WithTheme sets the fallback theme.
func WithTheme(th Theme) BarOption {
	return func(o *barOptions) {
		o.theme = th
	}
}

// WithOnChange registers the hook called after every mutation.
// The hook runs on the mutating goroutine without the bar's lock held, so
// it may call back into the bar.
func WithOnChange(fn func(*Bar)) BarOption {
	return func(o *barOptions) {
		o.onChange = fn
	}
}

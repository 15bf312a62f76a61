package ggbar

import "sync"

// Bar owns the explicit properties and theme of one progress bar and
// notifies its owner when they change.
//
// Bar is safe for concurrent use. Draw resolves a Style snapshot under the
// lock and renders without holding it.
type Bar struct {
	mu       sync.RWMutex
	props    Properties
	theme    Theme
	onChange func(*Bar)
}

// NewBar creates a Bar configured by opts.
func NewBar(opts ...BarOption) *Bar {
	o := defaultBarOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Bar{
		props:    o.props,
		theme:    o.theme,
		onChange: o.onChange,
	}
}

// Properties returns a copy of the explicit properties.
func (b *Bar) Properties() Properties {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.props
}

// Theme returns the current theme.
func (b *Bar) Theme() Theme {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.theme
}

// Value returns the explicit value, or 0 if unset.
func (b *Bar) Value() float64 {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return pick(0, b.props.Value)
}

// SetValue sets the value and fires the change hook.
func (b *Bar) SetValue(v float64) {
	b.Update(func(p *Properties) { p.Value = Ptr(v) })
}

// SetMaxValue sets the maximum and fires the change hook.
// A non-positive maximum is accepted here and rejected by Style and Draw.
func (b *Bar) SetMaxValue(v float64) {
	b.Update(func(p *Properties) { p.MaxValue = Ptr(v) })
}

// SetProperties replaces all explicit properties.
func (b *Bar) SetProperties(p Properties) {
	b.Update(func(dst *Properties) { *dst = p })
}

// SetTheme replaces the theme and fires the change hook.
func (b *Bar) SetTheme(th Theme) {
	b.mu.Lock()
	b.theme = th
	b.mu.Unlock()
	b.notify()
}

// Configure replaces both the properties and the theme and fires the change
// hook once.
func (b *Bar) Configure(p Properties, th Theme) {
	b.mu.Lock()
	b.props = p
	b.theme = th
	b.mu.Unlock()
	b.notify()
}

// Update applies fn to the explicit properties and fires the change hook.
func (b *Bar) Update(fn func(*Properties)) {
	b.mu.Lock()
	fn(&b.props)
	b.mu.Unlock()
	b.notify()
}

// Style resolves the current properties against the theme.
func (b *Bar) Style() (Style, error) {
	b.mu.RLock()
	p, th := b.props, b.theme
	b.mu.RUnlock()
	return Resolve(p, th)
}

// Fit reports the size the bar occupies; see Fit.
func (b *Bar) Fit(width, height float64) (float64, float64) {
	return Fit(width, height)
}

// Draw resolves the current style and renders it onto s.
func (b *Bar) Draw(s Surface, width, height float64) error {
	st, err := b.Style()
	if err != nil {
		return err
	}
	return Render(s, width, height, st)
}

func (b *Bar) notify() {
	b.mu.RLock()
	fn := b.onChange
	b.mu.RUnlock()
	if fn != nil {
		fn(b)
	}
}

// Package ggbar renders progress bars onto gg drawing surfaces.
//
// # Overview
//
// A progress bar is a background shape with an optional border, a bar
// shape sized to the value ratio, and optional tick marks cut over the
// filled part. Render computes the nested boxes from a Style and issues
// fill, stroke and clip calls against a Surface.
//
// # Quick Start
//
//	dc := gg.NewContext(200, 24)
//
//	st := ggbar.DefaultStyle()
//	st.Value = 0.42
//	st.BorderWidth = 2
//	st.BorderColor = ggbar.Some(gg.Hex("#222222"))
//
//	if err := ggbar.Render(dc, 200, 24, st); err != nil {
//	    log.Fatal(err)
//	}
//	dc.SavePNG("bar.png")
//
// # Styles and Themes
//
// Style is the resolved, immutable input of Render. Properties holds
// optional attributes; Resolve merges a bar's Properties with a Theme in
// the order explicit > theme > default. Bar wraps both and calls an
// owner-supplied hook whenever they change.
//
// # Surfaces
//
// *gg.Context implements Surface. Package vector adapts a gg recording so
// bars can be played back to PDF, SVG or raster backends.
//
// # Shapes
//
// Background and bar outlines are chosen by ShapeKind. RegisterShape adds
// custom tracers.
package ggbar

// Package ui lays out and paints the toolbar above the cube viewport.
package ui

import (
	"image"

	"spincube/internal/render"
)

type Layout struct {
	W         int
	H         int
	ToolbarH  int
	ViewportY int
	ViewportW int
	ViewportH int
	Scale     float32
}

func ComputeLayout(w, h int, theme Theme, scale float32) Layout {
	if scale <= 0 {
		scale = 1
	}
	dp := func(v int) int { return int(float32(v) * scale) }

	toolbarH := dp(theme.ToolbarHeightDp)
	if toolbarH > h {
		toolbarH = h
	}
	viewportH := h - toolbarH
	if viewportH < 1 {
		viewportH = 1
	}
	if w < 1 {
		w = 1
	}
	return Layout{
		W:         w,
		H:         h,
		ToolbarH:  toolbarH,
		ViewportY: toolbarH,
		ViewportW: w,
		ViewportH: viewportH,
		Scale:     scale,
	}
}

// ButtonSpec describes a toolbar button before layout.
type ButtonSpec struct {
	ID     string
	Label  string
	Active bool
}

type Button struct {
	ButtonSpec
	Rect  image.Rectangle
	Hover bool
}

// LayoutButtons places specs left to right in the toolbar. measure returns
// the pixel width of a label; (mx, my) is the cursor for hover state.
func LayoutButtons(layout Layout, theme Theme, specs []ButtonSpec, measure func(string) int, mx, my int) []Button {
	dp := func(v int) int { return int(float32(v) * layout.Scale) }

	x := dp(theme.PadXDp)
	y := dp(theme.PadYDp)
	h := layout.ToolbarH - 2*y
	if h < 1 {
		h = 1
	}
	cursor := image.Pt(mx, my)

	out := make([]Button, 0, len(specs))
	for _, spec := range specs {
		w := dp(theme.ButtonPadXDp) * 2
		if measure != nil {
			w += measure(spec.Label)
		}
		if w < dp(theme.MinButtonWDp) {
			w = dp(theme.MinButtonWDp)
		}
		r := image.Rect(x, y, x+w, y+h)
		out = append(out, Button{ButtonSpec: spec, Rect: r, Hover: cursor.In(r)})
		x += w + dp(theme.ButtonGapDp)
	}
	return out
}

// HitTest returns the ID of the button under (x, y).
func HitTest(buttons []Button, x, y int) (string, bool) {
	p := image.Pt(x, y)
	for _, b := range buttons {
		if p.In(b.Rect) {
			return b.ID, true
		}
	}
	return "", false
}

// StatusX is where status text may start without overlapping the buttons.
func StatusX(layout Layout, theme Theme, buttons []Button) int {
	x := int(float32(theme.PadXDp) * layout.Scale)
	if n := len(buttons); n > 0 {
		x = buttons[n-1].Rect.Max.X + int(float32(theme.ButtonGapDp)*layout.Scale)
	}
	return x
}

// DrawToolbar paints the toolbar strip and button backgrounds into fb,
// which covers the toolbar area only. Labels are drawn by the caller.
func DrawToolbar(fb *render.FrameBuffer, layout Layout, buttons []Button, theme Theme) {
	fb.Clear(theme.Toolbar)
	fb.FillRect(0, layout.ToolbarH-1, fb.W, 1, theme.ToolbarBorder)

	for _, b := range buttons {
		bg := theme.Button
		if b.Active {
			bg = theme.ButtonActive
		}
		if b.Hover {
			bg = theme.ButtonHover
		}
		r := b.Rect
		fb.FillRect(r.Min.X, r.Min.Y, r.Dx(), r.Dy(), bg)
		fb.StrokeRect(r.Min.X, r.Min.Y, r.Dx(), r.Dy(), 1, theme.ButtonBorder)
	}
}

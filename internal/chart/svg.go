package chart

import (
	"encoding/xml"
	"fmt"
	"math"
	"strings"
)

// SVGCanvas serializes draw calls into an SVG document so the chart can be
// returned over HTTP and rendered by any browser.
type SVGCanvas struct {
	width  float64
	height float64
	body   strings.Builder
}

func NewSVGCanvas(width, height float64) *SVGCanvas {
	return &SVGCanvas{width: width, height: height}
}

func (c *SVGCanvas) Size() (float64, float64) {
	return c.width, c.height
}

func (c *SVGCanvas) FillRect(x, y, w, h float64, color string) {
	fmt.Fprintf(&c.body,
		`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>`+"\n",
		x, y, w, h, escape(color))
}

func (c *SVGCanvas) FillText(text string, x, y float64, style TextStyle) {
	anchor := "start"
	switch style.Align {
	case "center":
		anchor = "middle"
	case "right":
		anchor = "end"
	}

	attrs := fmt.Sprintf(`x="%.1f" y="%.1f" fill="%s" text-anchor="%s"`,
		x, y, escape(style.Color), anchor)
	if style.Font != "" {
		attrs += fmt.Sprintf(` style="font: %s"`, escape(style.Font))
	}
	if style.Rotate != 0 {
		// SVG rotates in degrees, clockwise positive
		degrees := style.Rotate * 180 / math.Pi
		attrs += fmt.Sprintf(` transform="rotate(%.1f %.1f %.1f)"`, degrees, x, y)
	}

	fmt.Fprintf(&c.body, "<text %s>%s</text>\n", attrs, escape(text))
}

func (c *SVGCanvas) Line(x1, y1, x2, y2 float64, color string, width float64) {
	fmt.Fprintf(&c.body,
		`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f" stroke="%s" stroke-width="%.1f"/>`+"\n",
		x1, y1, x2, y2, escape(color), width)
}

// Bytes wraps the recorded drawing in an <svg> envelope.
func (c *SVGCanvas) Bytes() []byte {
	var out strings.Builder
	fmt.Fprintf(&out,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">`+"\n",
		c.width, c.height, c.width, c.height)
	out.WriteString(c.body.String())
	out.WriteString("</svg>\n")
	return []byte(out.String())
}

func escape(s string) string {
	var buf strings.Builder
	xml.EscapeText(&buf, []byte(s))
	return buf.String()
}

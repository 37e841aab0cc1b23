package chart

import (
	"fmt"
	"math"
)

// Canvas is the drawable surface the renderer emits onto. Implementations
// only need rectangles, text and lines; the renderer never reads back.
type Canvas interface {
	// Size reports the fixed logical width and height of the surface.
	Size() (w, h float64)
	FillRect(x, y, w, h float64, color string)
	// FillText draws text with its anchor at (x, y), rotated by
	// style.Rotate radians around the anchor.
	FillText(text string, x, y float64, style TextStyle)
	Line(x1, y1, x2, y2 float64, color string, width float64)
}

// TextStyle mirrors the handful of text attributes the chart uses.
type TextStyle struct {
	Font   string
	Color  string
	Align  string // "left", "center" or "right"
	Rotate float64
}

// Row is one bar: a label and the revenue behind it.
type Row struct {
	Label   string
	Revenue float64
}

// Chart geometry. The left gutter holds the y-axis labels, the bottom
// gutter the rotated bar labels.
const (
	marginLeft   = 100.0
	marginRight  = 100.0
	gutterBottom = 80.0
	gutterTop    = 20.0
	barSpacing   = 20.0
	gridSteps    = 5
)

// palette cycles by bar index.
var palette = []string{"#667eea", "#764ba2", "#f093fb", "#4facfe", "#00f2fe"}

// RenderBarChart draws a revenue bar chart for the given rows, in the given
// order, onto the canvas. Bar heights scale linearly from zero to the
// maximum revenue in the set. An empty row set draws a centered placeholder
// and nothing else. Deterministic: the same input always emits the same
// draw calls.
func RenderBarChart(canvas Canvas, rows []Row, currency string) {
	width, height := canvas.Size()

	if len(rows) == 0 {
		canvas.FillText("No sales data available", width/2, height/2, TextStyle{
			Font:  "20px Arial",
			Color: "#6c757d",
			Align: "center",
		})
		return
	}

	maxRevenue := rows[0].Revenue
	for _, row := range rows[1:] {
		if row.Revenue > maxRevenue {
			maxRevenue = row.Revenue
		}
	}

	barWidth := (width - marginLeft - marginRight) / float64(len(rows))
	chartHeight := height - gutterBottom - gutterTop
	baseline := height - gutterBottom

	// Bars, value labels and rotated name labels
	for i, row := range rows {
		barHeight := 0.0
		if maxRevenue > 0 {
			barHeight = row.Revenue / maxRevenue * chartHeight
		}
		x := marginLeft + float64(i)*(barWidth+barSpacing)
		y := baseline - barHeight

		canvas.FillRect(x, y, barWidth, barHeight, palette[i%len(palette)])

		canvas.FillText(
			fmt.Sprintf("%s%.0f", currency, row.Revenue),
			x+barWidth/2, y-5,
			TextStyle{Font: "12px Arial", Color: "#333", Align: "center"},
		)

		canvas.FillText(row.Label, x+barWidth/2, baseline+20, TextStyle{
			Font:   "bold 12px Arial",
			Color:  "#667eea",
			Align:  "center",
			Rotate: -math.Pi / 4,
		})
	}

	// Axes
	canvas.Line(marginLeft-20, gutterTop, marginLeft-20, baseline, "#333", 2)
	canvas.Line(marginLeft-20, baseline, width-20, baseline, "#333", 2)

	// Gridline labels at (max/5)*i for i in 0..5
	for i := 0; i <= gridSteps; i++ {
		value := maxRevenue / gridSteps * float64(i)
		y := baseline - float64(i)/gridSteps*chartHeight
		canvas.FillText(
			fmt.Sprintf("%s%.0f", currency, value),
			marginLeft-25, y+5,
			TextStyle{Font: "12px Arial", Color: "#333", Align: "right"},
		)
	}

	canvas.FillText("Revenue by Product", width/2, 15, TextStyle{
		Font:  "bold 16px Arial",
		Color: "#667eea",
		Align: "center",
	})
}

package handlers

import (
	"net/http"
	"time"

	"oil-pos/internal/billing"
	"oil-pos/internal/chart"
	"oil-pos/internal/reports"

	"github.com/gin-gonic/gin"
)

// Logical size of the report chart surface.
const (
	chartWidth  = 800.0
	chartHeight = 400.0
)

type ReportHandler struct {
	Billing  *billing.Service
	Currency string
}

// --- GET: /api/reports/monthly?month=YYYY-MM ---
// Defaults to the current month when no month is given.
func (h *ReportHandler) GetMonthlyReport(c *gin.Context) {
	year, month, ok := h.reportMonth(c)
	if !ok {
		return
	}

	ledger, err := h.Billing.Bills("")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bills"})
		return
	}

	c.JSON(http.StatusOK, reports.Monthly(ledger, year, month))
}

// --- GET: /api/reports/monthly/chart?month=YYYY-MM ---
// Returns the revenue-by-product bar chart as SVG.
func (h *ReportHandler) GetMonthlyChart(c *gin.Context) {
	year, month, ok := h.reportMonth(c)
	if !ok {
		return
	}

	ledger, err := h.Billing.Bills("")
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bills"})
		return
	}

	report := reports.Monthly(ledger, year, month)
	rows := make([]chart.Row, 0, len(report.Products))
	for _, p := range report.Products {
		rows = append(rows, chart.Row{Label: p.Name, Revenue: p.Revenue})
	}

	canvas := chart.NewSVGCanvas(chartWidth, chartHeight)
	chart.RenderBarChart(canvas, rows, h.Currency)

	c.Data(http.StatusOK, "image/svg+xml", canvas.Bytes())
}

func (h *ReportHandler) reportMonth(c *gin.Context) (int, time.Month, bool) {
	raw := c.Query("month")
	if raw == "" {
		now := time.Now()
		return now.Year(), now.Month(), true
	}

	parsed, err := time.ParseInLocation("2006-01", raw, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Month must be in YYYY-MM format"})
		return 0, 0, false
	}
	return parsed.Year(), parsed.Month(), true
}

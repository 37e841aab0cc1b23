package reports

import (
	"sort"
	"time"

	"oil-pos/internal/models"
)

// ProductSales is one ranked row of the monthly report.
//
// Rows are grouped by product NAME, not id: two products sold under
// different ids merge here if they end up with the same name. That matches
// how the shop reads its reports and is pinned by a test; switching the key
// to id would silently change historical numbers.
type ProductSales struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Revenue  float64 `json:"revenue"`
}

// Report aggregates one calendar month of the bill ledger.
type Report struct {
	Year        int            `json:"year"`
	Month       time.Month     `json:"month"`
	TotalSales  float64        `json:"totalSales"`
	TotalOrders int            `json:"totalOrders"`
	TotalItems  int            `json:"totalItems"`
	Products    []ProductSales `json:"products"`
}

// Monthly filters the ledger to bills dated inside the given month (local
// calendar time, [first-of-month, first-of-next-month)) and aggregates
// quantity and revenue per product name. Rows come back sorted by descending
// revenue; ties keep first-encountered order. A month with no bills yields
// zero totals and an empty row set, not an error. Pure function of its input.
func Monthly(ledger []models.Bill, year int, month time.Month) Report {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	end := start.AddDate(0, 1, 0)

	report := Report{
		Year:     year,
		Month:    month,
		Products: []ProductSales{},
	}

	byName := make(map[string]*ProductSales)
	var order []string

	for _, bill := range ledger {
		date := bill.Date.In(time.Local)
		if date.Before(start) || !date.Before(end) {
			continue
		}

		report.TotalSales += bill.Total
		report.TotalOrders++

		for _, item := range bill.Items {
			report.TotalItems += item.Quantity

			group, ok := byName[item.Name]
			if !ok {
				group = &ProductSales{Name: item.Name}
				byName[item.Name] = group
				order = append(order, item.Name)
			}
			group.Quantity += item.Quantity
			group.Revenue += item.Price * float64(item.Quantity)
		}
	}

	for _, name := range order {
		report.Products = append(report.Products, *byName[name])
	}
	sort.SliceStable(report.Products, func(i, j int) bool {
		return report.Products[i].Revenue > report.Products[j].Revenue
	})

	return report
}

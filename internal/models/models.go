package models

import (
	"time"
)

// Product - an entry in the catalog
type Product struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Image string  `json:"image,omitempty"` // optional URL
}

// CartItem - one line in the cart.
// Name and Price are snapshots taken when the product was added;
// later catalog edits do not touch them.
type CartItem struct {
	ProductID int     `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// BillItem - a sold line, frozen at payment time
type BillItem struct {
	ProductID int     `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// Bill - an immutable transaction record.
// Totals are stored unrounded; rounding happens at display time only.
type Bill struct {
	ID       string     `json:"id"`
	Date     time.Time  `json:"date"`
	Items    []BillItem `json:"items"`
	Subtotal float64    `json:"subtotal"`
	Tax      float64    `json:"tax"`
	Total    float64    `json:"total"`
}

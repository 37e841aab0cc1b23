package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"oil-pos/internal/billing"
	"oil-pos/internal/cart"
	"oil-pos/internal/catalog"

	"github.com/gin-gonic/gin"
)

type CartHandler struct {
	Cart    *cart.Service
	Billing *billing.Service
}

type AddItemRequest struct {
	ProductID int `json:"productId" binding:"required"`
}

type ChangeQuantityRequest struct {
	Delta int `json:"delta" binding:"required"`
}

// --- GET: Cart contents plus running totals ---
func (h *CartHandler) GetCart(c *gin.Context) {
	items, err := h.Cart.Items()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
		return
	}

	// An empty cart is a normal view, not an error; totals just read zero.
	view, err := h.Billing.PreviewBill(items)
	if err != nil && !errors.Is(err, billing.ErrEmptyCart) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute totals"})
		return
	}

	count := 0
	for _, item := range items {
		count += item.Quantity
	}

	c.JSON(http.StatusOK, gin.H{
		"items":    items,
		"count":    count,
		"subtotal": view.Subtotal,
		"tax":      view.Tax,
		"total":    view.Total,
	})
}

// --- POST: Add one unit of a product ---
func (h *CartHandler) AddItem(c *gin.Context) {
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	line, err := h.Cart.Add(req.ProductID)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add to cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": line.Name + " added to cart!", "item": line})
}

// --- PATCH: Bump a line's quantity up or down ---
// Dropping to zero or below removes the line.
func (h *CartHandler) ChangeQuantity(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	var req ChangeQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	if err := h.Cart.ChangeQuantity(productID, req.Delta); err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not in cart"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Cart updated"})
}

// --- DELETE: Remove one line ---
func (h *CartHandler) RemoveItem(c *gin.Context) {
	productID, err := strconv.Atoi(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	if err := h.Cart.Remove(productID); err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Item not in cart"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update cart"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Item removed"})
}

// --- DELETE: Empty the whole cart ---
func (h *CartHandler) ClearCart(c *gin.Context) {
	if err := h.Cart.Clear(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared"})
}

// --- GET: Printable bill preview, nothing persisted ---
func (h *CartHandler) PreviewBill(c *gin.Context) {
	items, err := h.Cart.Items()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
		return
	}

	view, err := h.Billing.PreviewBill(items)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Your cart is empty!"})
		return
	}

	c.JSON(http.StatusOK, view)
}

package handlers

import (
	"encoding/base64"
	"errors"
	"net/http"

	"oil-pos/internal/billing"
	"oil-pos/internal/payment"

	"github.com/gin-gonic/gin"
)

type BillingHandler struct {
	Billing  *billing.Service
	QR       payment.Renderer
	Currency string
}

// --- POST: Checkout the current cart ---
// The bill is persisted before the QR code is attempted, so a render failure
// never undoes the payment record; the client just gets no image.
func (h *BillingHandler) Checkout(c *gin.Context) {
	bill, err := h.Billing.PayNow()
	if err != nil {
		if errors.Is(err, billing.ErrEmptyCart) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Your cart is empty!"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process payment"})
		return
	}

	response := gin.H{
		"message": "Payment initiated! Please scan the QR code.",
		"bill":    bill,
	}

	payload := payment.Payload(h.Currency, bill.Total, bill.ID, bill.Date)
	png, err := h.QR.Render(payload)
	if err != nil {
		response["qr_error"] = "QR code could not be generated"
	} else {
		response["qr_payload"] = payload
		response["qr_png"] = base64.StdEncoding.EncodeToString(png)
	}

	c.JSON(http.StatusCreated, response)
}

// --- GET: Bill ledger, newest first, optional ?q= search over id and date ---
func (h *BillingHandler) GetBills(c *gin.Context) {
	bills, err := h.Billing.Bills(c.Query("q"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bills"})
		return
	}
	c.JSON(http.StatusOK, bills)
}

// --- GET: One bill ---
func (h *BillingHandler) GetBill(c *gin.Context) {
	bill, err := h.Billing.GetBill(c.Param("id"))
	if err != nil {
		if errors.Is(err, billing.ErrBillNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Bill not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch bill"})
		return
	}
	c.JSON(http.StatusOK, bill)
}

// --- DELETE: Remove one whole bill from the ledger ---
func (h *BillingHandler) DeleteBill(c *gin.Context) {
	if err := h.Billing.DeleteBill(c.Param("id")); err != nil {
		if errors.Is(err, billing.ErrBillNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Bill not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete bill"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Bill deleted successfully"})
}

package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"oil-pos/internal/catalog"

	"github.com/gin-gonic/gin"
)

// ProductRequest defines what the frontend sends for create and update.
// Price is a pointer so an explicit 0 still binds.
type ProductRequest struct {
	Name  string   `json:"name" binding:"required"`
	Price *float64 `json:"price" binding:"required"`
	Image string   `json:"image"`
}

type ProductHandler struct {
	Catalog *catalog.Service
}

// --- GET: List all products ---
func (h *ProductHandler) GetProducts(c *gin.Context) {
	products, err := h.Catalog.List()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}
	c.JSON(http.StatusOK, products)
}

// --- POST: Add a new product ---
func (h *ProductHandler) AddProduct(c *gin.Context) {
	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	product, err := h.Catalog.Create(req.Name, *req.Price, req.Image)
	if err != nil {
		respondCatalogError(c, err)
		return
	}

	c.JSON(http.StatusCreated, product)
}

// --- PUT: Update name, price or image ---
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	product, err := h.Catalog.Update(id, req.Name, *req.Price, req.Image)
	if err != nil {
		respondCatalogError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product updated successfully", "product": product})
}

// --- DELETE: Remove a product ---
// Cart lines and past bills keep their snapshots of the deleted product.
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return
	}

	if err := h.Catalog.Delete(id); err != nil {
		respondCatalogError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

func respondCatalogError(c *gin.Context, err error) {
	var vErr *catalog.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error()})
	case errors.Is(err, catalog.ErrProductNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong"})
	}
}

package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"oil-pos/internal/billing"
	"oil-pos/internal/database"
	"oil-pos/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRenderer struct {
	fail bool
}

func (r fakeRenderer) Render(payload string) ([]byte, error) {
	if r.fail {
		return nil, errors.New("renderer exploded")
	}
	return []byte("png-bytes"), nil
}

func newCheckoutRouter(t *testing.T, failQR bool) (*gin.Engine, *database.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := database.Connect(filepath.Join(t.TempDir(), "pos.db"))
	require.NoError(t, err)

	h := &BillingHandler{
		Billing:  billing.NewService(store, 0.05, "BILL"),
		QR:       fakeRenderer{fail: failQR},
		Currency: "₹",
	}

	r := gin.New()
	r.POST("/api/checkout", h.Checkout)
	r.GET("/api/bills", h.GetBills)
	return r, store
}

func TestCheckoutEmptyCart(t *testing.T) {
	r, store := newCheckoutRouter(t, false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/checkout", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	bills, err := store.Bills()
	require.NoError(t, err)
	assert.Empty(t, bills)
}

func TestCheckoutPersistsBillAndReturnsQR(t *testing.T) {
	r, store := newCheckoutRouter(t, false)
	require.NoError(t, store.SaveCart([]models.CartItem{
		{ProductID: 1, Name: "Groundnut Oil", Price: 150, Quantity: 2},
	}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/checkout", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body, "bill")
	assert.Contains(t, body, "qr_png")
	assert.NotContains(t, body, "qr_error")

	bills, err := store.Bills()
	require.NoError(t, err)
	require.Len(t, bills, 1)

	cart, err := store.Cart()
	require.NoError(t, err)
	assert.Empty(t, cart)
}

// A QR failure must not undo the persisted bill.
func TestCheckoutSurvivesQRFailure(t *testing.T) {
	r, store := newCheckoutRouter(t, true)
	require.NoError(t, store.SaveCart([]models.CartItem{
		{ProductID: 1, Name: "Groundnut Oil", Price: 150, Quantity: 2},
	}))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/checkout", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body, "qr_error")
	assert.NotContains(t, body, "qr_png")

	bills, err := store.Bills()
	require.NoError(t, err)
	assert.Len(t, bills, 1)
}

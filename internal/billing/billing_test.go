package billing

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"oil-pos/internal/config"
	"oil-pos/internal/database"
	"oil-pos/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestBilling(t *testing.T) (*Service, *database.Store) {
	t.Helper()
	store, err := database.Connect(filepath.Join(t.TempDir(), "pos.db"))
	require.NoError(t, err)
	return NewService(store, config.DefaultTaxRate, "BILL"), store
}

func TestPreviewBillTotals(t *testing.T) {
	svc, _ := newTestBilling(t)

	view, err := svc.PreviewBill([]models.CartItem{
		{ProductID: 1, Name: "Groundnut Oil", Price: 150.00, Quantity: 2},
	})
	require.NoError(t, err)

	assert.InDelta(t, 300.00, view.Subtotal, 0.005)
	assert.InDelta(t, 15.00, view.Tax, 0.005)
	assert.InDelta(t, 315.00, view.Total, 0.005)
}

func TestPreviewBillTotalIsSubtotalPlusTax(t *testing.T) {
	svc, _ := newTestBilling(t)

	carts := [][]models.CartItem{
		{{Name: "Groundnut Oil", Price: 150, Quantity: 2}},
		{{Name: "Sesame Oil", Price: 199.99, Quantity: 1}, {Name: "Coconut Oil", Price: 180.50, Quantity: 3}},
		{{Name: "Free Sample", Price: 0, Quantity: 5}},
	}

	for _, items := range carts {
		view, err := svc.PreviewBill(items)
		require.NoError(t, err)
		assert.InDelta(t, view.Subtotal*1.05, view.Total, 0.005)
	}
}

func TestPreviewBillEmptyCart(t *testing.T) {
	svc, _ := newTestBilling(t)
	_, err := svc.PreviewBill(nil)
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestPayNowEmptyCartChangesNothing(t *testing.T) {
	svc, store := newTestBilling(t)

	_, err := svc.PayNow()
	assert.ErrorIs(t, err, ErrEmptyCart)

	bills, err := store.Bills()
	require.NoError(t, err)
	assert.Empty(t, bills)
}

func TestPayNowAppendsBillAndClearsCart(t *testing.T) {
	svc, store := newTestBilling(t)
	require.NoError(t, store.SaveCart([]models.CartItem{
		{ProductID: 1, Name: "Groundnut Oil", Price: 150, Quantity: 2},
		{ProductID: 3, Name: "Coconut Oil", Price: 180, Quantity: 1},
	}))

	bill, err := svc.PayNow()
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(bill.ID, "BILL-"))
	assert.InDelta(t, 480.00, bill.Subtotal, 0.005)
	assert.InDelta(t, 504.00, bill.Total, 0.005)
	require.Len(t, bill.Items, 2)
	assert.Equal(t, "Groundnut Oil", bill.Items[0].Name)
	assert.WithinDuration(t, time.Now(), bill.Date, 5*time.Second)

	bills, err := store.Bills()
	require.NoError(t, err)
	require.Len(t, bills, 1)
	assert.Equal(t, bill.ID, bills[0].ID)

	cart, err := store.Cart()
	require.NoError(t, err)
	assert.Empty(t, cart)
}

func TestPayNowGeneratesDistinctIDs(t *testing.T) {
	svc, store := newTestBilling(t)

	seen := make(map[string]bool)
	for i := 0; i < 5; i++ {
		require.NoError(t, store.SaveCart([]models.CartItem{
			{ProductID: 1, Name: "Groundnut Oil", Price: 150, Quantity: 1},
		}))
		bill, err := svc.PayNow()
		require.NoError(t, err)
		assert.False(t, seen[bill.ID], "bill id %q repeated", bill.ID)
		seen[bill.ID] = true
	}
}

func TestBillsSearchAndOrder(t *testing.T) {
	svc, store := newTestBilling(t)

	older := time.Date(2026, 3, 10, 12, 0, 0, 0, time.Local)
	newer := time.Date(2026, 4, 2, 9, 30, 0, 0, time.Local)
	require.NoError(t, store.SaveBills([]models.Bill{
		{ID: "BILL-100-aaaa", Date: older, Total: 315},
		{ID: "BILL-200-bbbb", Date: newer, Total: 210},
	}))

	t.Run("newest first", func(t *testing.T) {
		bills, err := svc.Bills("")
		require.NoError(t, err)
		require.Len(t, bills, 2)
		assert.Equal(t, "BILL-200-bbbb", bills[0].ID)
	})

	t.Run("search by id", func(t *testing.T) {
		bills, err := svc.Bills("aaaa")
		require.NoError(t, err)
		require.Len(t, bills, 1)
		assert.Equal(t, "BILL-100-aaaa", bills[0].ID)
	})

	t.Run("search by date", func(t *testing.T) {
		bills, err := svc.Bills("2026-04")
		require.NoError(t, err)
		require.Len(t, bills, 1)
		assert.Equal(t, "BILL-200-bbbb", bills[0].ID)
	})
}

func TestDeleteBill(t *testing.T) {
	svc, store := newTestBilling(t)
	require.NoError(t, store.SaveBills([]models.Bill{
		{ID: "BILL-1", Total: 100},
		{ID: "BILL-2", Total: 200},
	}))

	require.NoError(t, svc.DeleteBill("BILL-1"))

	bills, err := store.Bills()
	require.NoError(t, err)
	require.Len(t, bills, 1)
	assert.Equal(t, "BILL-2", bills[0].ID)

	assert.ErrorIs(t, svc.DeleteBill("BILL-1"), ErrBillNotFound)

	_, err = svc.GetBill("BILL-2")
	assert.NoError(t, err)
	_, err = svc.GetBill("BILL-1")
	assert.ErrorIs(t, err, ErrBillNotFound)
}

func TestConfiguredTaxRate(t *testing.T) {
	store, err := database.Connect(filepath.Join(t.TempDir(), "pos.db"))
	require.NoError(t, err)
	svc := NewService(store, 0.18, "BILL")

	view, err := svc.PreviewBill([]models.CartItem{
		{Name: "Sesame Oil", Price: 100, Quantity: 1},
	})
	require.NoError(t, err)
	assert.InDelta(t, 18.00, view.Tax, 0.005)
	assert.InDelta(t, 118.00, view.Total, 0.005)
}

package billing

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"oil-pos/internal/database"
	"oil-pos/internal/models"

	"github.com/google/uuid"
)

// ErrEmptyCart is returned when payment or a bill preview is attempted with
// nothing in the cart. No state changes.
var ErrEmptyCart = errors.New("cart is empty")

// ErrBillNotFound is returned when a bill id is not in the ledger.
var ErrBillNotFound = errors.New("bill not found")

// BillView carries the totals for an on-screen or printable bill preview.
// It is a read-only projection; nothing is persisted.
type BillView struct {
	Items    []models.CartItem `json:"items"`
	Subtotal float64           `json:"subtotal"`
	Tax      float64           `json:"tax"`
	Total    float64           `json:"total"`
}

// Service turns carts into bills and owns the bill ledger.
type Service struct {
	store    *database.Store
	taxRate  float64
	idPrefix string
	now      func() time.Time
}

func NewService(store *database.Store, taxRate float64, idPrefix string) *Service {
	return &Service{
		store:    store,
		taxRate:  taxRate,
		idPrefix: idPrefix,
		now:      time.Now,
	}
}

// TaxRate reports the configured rate, e.g. 0.05 for 5%.
func (s *Service) TaxRate() float64 {
	return s.taxRate
}

// PreviewBill computes subtotal, tax and total for the given lines without
// touching the ledger or the cart.
func (s *Service) PreviewBill(items []models.CartItem) (BillView, error) {
	if len(items) == 0 {
		return BillView{}, ErrEmptyCart
	}

	var subtotal float64
	for _, item := range items {
		subtotal += item.Price * float64(item.Quantity)
	}
	tax := subtotal * s.taxRate

	return BillView{
		Items:    items,
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal + tax,
	}, nil
}

// PayNow converts the current cart into an immutable Bill, appends it to the
// ledger and clears the cart. Ledger append and cart clear go out as one
// combined store write (ledger first), so a paid bill can never be lost and
// a billed cart can never survive to be billed again.
func (s *Service) PayNow() (models.Bill, error) {
	items, err := s.store.Cart()
	if err != nil {
		return models.Bill{}, err
	}

	view, err := s.PreviewBill(items)
	if err != nil {
		return models.Bill{}, err
	}

	billItems := make([]models.BillItem, 0, len(items))
	for _, item := range items {
		billItems = append(billItems, models.BillItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  item.Quantity,
		})
	}

	bill := models.Bill{
		ID:       s.newBillID(),
		Date:     s.now(),
		Items:    billItems,
		Subtotal: view.Subtotal,
		Tax:      view.Tax,
		Total:    view.Total,
	}

	bills, err := s.store.Bills()
	if err != nil {
		return models.Bill{}, err
	}
	bills = append(bills, bill)

	if err := s.store.SaveCheckout(bills, []models.CartItem{}); err != nil {
		return models.Bill{}, err
	}

	return bill, nil
}

// Bills returns the ledger filtered by an optional search term (matched
// against id and date) and sorted newest first. The stored ledger itself
// stays in insertion order.
func (s *Service) Bills(search string) ([]models.Bill, error) {
	bills, err := s.store.Bills()
	if err != nil {
		return nil, err
	}

	if search != "" {
		term := strings.ToLower(search)
		matched := bills[:0:0]
		for _, b := range bills {
			id := strings.ToLower(b.ID)
			date := strings.ToLower(b.Date.Format(time.RFC3339))
			if strings.Contains(id, term) || strings.Contains(date, term) {
				matched = append(matched, b)
			}
		}
		bills = matched
	}

	sort.SliceStable(bills, func(i, j int) bool {
		return bills[i].Date.After(bills[j].Date)
	})
	return bills, nil
}

func (s *Service) GetBill(id string) (models.Bill, error) {
	bills, err := s.store.Bills()
	if err != nil {
		return models.Bill{}, err
	}
	for _, b := range bills {
		if b.ID == id {
			return b, nil
		}
	}
	return models.Bill{}, ErrBillNotFound
}

// DeleteBill removes one whole entry from the ledger. Bills have no partial
// edit; deletion is the only mutation they support.
func (s *Service) DeleteBill(id string) error {
	bills, err := s.store.Bills()
	if err != nil {
		return err
	}

	kept := bills[:0]
	for _, b := range bills {
		if b.ID != id {
			kept = append(kept, b)
		}
	}
	if len(kept) == len(bills) {
		return ErrBillNotFound
	}

	return s.store.SaveBills(kept)
}

// newBillID keeps the readable time-based token but adds a random suffix so
// two checkouts in the same millisecond cannot collide.
func (s *Service) newBillID() string {
	return fmt.Sprintf("%s-%d-%s", s.idPrefix, s.now().UnixMilli(), uuid.NewString()[:8])
}

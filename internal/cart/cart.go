package cart

import (
	"oil-pos/internal/catalog"
	"oil-pos/internal/database"
	"oil-pos/internal/models"
)

// Service manages the cart. Lines carry value snapshots of name and price
// taken at add time; later catalog edits never change what is already in
// the cart.
type Service struct {
	store   *database.Store
	catalog *catalog.Service
}

func NewService(store *database.Store, cat *catalog.Service) *Service {
	return &Service{store: store, catalog: cat}
}

func (s *Service) Items() ([]models.CartItem, error) {
	return s.store.Cart()
}

// Add puts one unit of a product in the cart, snapshotting its current name
// and price. Adding a product that is already in the cart bumps its quantity.
func (s *Service) Add(productID int) (models.CartItem, error) {
	product, err := s.catalog.Get(productID)
	if err != nil {
		return models.CartItem{}, err
	}

	items, err := s.store.Cart()
	if err != nil {
		return models.CartItem{}, err
	}

	for i, item := range items {
		if item.ProductID == productID {
			items[i].Quantity++
			if err := s.store.SaveCart(items); err != nil {
				return models.CartItem{}, err
			}
			return items[i], nil
		}
	}

	line := models.CartItem{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Quantity:  1,
	}
	items = append(items, line)
	if err := s.store.SaveCart(items); err != nil {
		return models.CartItem{}, err
	}
	return line, nil
}

// ChangeQuantity applies a delta to a line's quantity. A quantity of zero or
// below removes the line, it is never kept at zero.
func (s *Service) ChangeQuantity(productID, delta int) error {
	items, err := s.store.Cart()
	if err != nil {
		return err
	}

	for i, item := range items {
		if item.ProductID != productID {
			continue
		}
		items[i].Quantity += delta
		if items[i].Quantity <= 0 {
			items = append(items[:i], items[i+1:]...)
		}
		return s.store.SaveCart(items)
	}

	return catalog.ErrProductNotFound
}

// Remove drops a line regardless of quantity.
func (s *Service) Remove(productID int) error {
	items, err := s.store.Cart()
	if err != nil {
		return err
	}

	kept := items[:0]
	for _, item := range items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(items) {
		return catalog.ErrProductNotFound
	}

	return s.store.SaveCart(kept)
}

func (s *Service) Clear() error {
	return s.store.SaveCart([]models.CartItem{})
}

// Count is the badge number: total units across all lines.
func (s *Service) Count() (int, error) {
	items, err := s.store.Cart()
	if err != nil {
		return 0, err
	}
	total := 0
	for _, item := range items {
		total += item.Quantity
	}
	return total, nil
}

package database

import (
	"encoding/json"

	"oil-pos/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func setBlob(db *gorm.DB, key string, value []byte) error {
	blob := KVBlob{Key: key, Value: value}
	return db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&blob).Error
}

func (s *Store) load(key string, out interface{}) error {
	raw, err := s.Get(key)
	if err != nil {
		return err
	}
	if raw == nil {
		// Absent key reads as an empty collection
		return nil
	}
	return json.Unmarshal(raw, out)
}

func (s *Store) save(key string, in interface{}) error {
	raw, err := json.Marshal(in)
	if err != nil {
		return err
	}
	return s.Set(key, raw)
}

// --- Typed accessors for the three collections ---

func (s *Store) Products() ([]models.Product, error) {
	var products []models.Product
	err := s.load(KeyProducts, &products)
	return products, err
}

func (s *Store) SaveProducts(products []models.Product) error {
	return s.save(KeyProducts, products)
}

func (s *Store) Cart() ([]models.CartItem, error) {
	var cart []models.CartItem
	err := s.load(KeyCart, &cart)
	return cart, err
}

func (s *Store) SaveCart(cart []models.CartItem) error {
	return s.save(KeyCart, cart)
}

func (s *Store) Bills() ([]models.Bill, error) {
	var bills []models.Bill
	err := s.load(KeyBills, &bills)
	return bills, err
}

func (s *Store) SaveBills(bills []models.Bill) error {
	return s.save(KeyBills, bills)
}

// SaveCheckout writes the appended ledger and the emptied cart in one
// transaction. Checkout must never leave an already-billed cart behind, so
// the two keys go out together instead of as two separate writes.
// The ledger row is written first.
func (s *Store) SaveCheckout(bills []models.Bill, cart []models.CartItem) error {
	rawBills, err := json.Marshal(bills)
	if err != nil {
		return err
	}
	rawCart, err := json.Marshal(cart)
	if err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := setBlob(tx, KeyBills, rawBills); err != nil {
			return err
		}
		return setBlob(tx, KeyCart, rawCart)
	})
}

// SeedDefaults installs the starter catalog on first run, mirroring the shop's
// stock. It does nothing once any product exists.
func (s *Store) SeedDefaults() error {
	products, err := s.Products()
	if err != nil {
		return err
	}
	if len(products) > 0 {
		return nil
	}

	defaults := []models.Product{
		{ID: 1, Name: "Groundnut Oil", Price: 150.00, Image: "https://images.unsplash.com/photo-1474979266404-7eaacbcd87c5?w=400"},
		{ID: 2, Name: "Sesame Oil", Price: 200.00, Image: "https://images.unsplash.com/photo-1606914469633-bd39206ea739?w=400"},
		{ID: 3, Name: "Coconut Oil", Price: 180.00, Image: "https://images.unsplash.com/photo-1604719312566-8912e9227c6a?w=400"},
	}
	return s.SaveProducts(defaults)
}

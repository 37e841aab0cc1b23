package catalog

import (
	"errors"
	"fmt"
	"strings"

	"oil-pos/internal/database"
	"oil-pos/internal/models"
)

// ErrProductNotFound is returned when an edit or delete references an id
// that is not in the catalog.
var ErrProductNotFound = errors.New("product not found")

// ValidationError blocks a create/update entirely; no partial write happens.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Service manages the product catalog.
type Service struct {
	store *database.Store
}

func NewService(store *database.Store) *Service {
	return &Service{store: store}
}

func (s *Service) List() ([]models.Product, error) {
	return s.store.Products()
}

func (s *Service) Get(id int) (models.Product, error) {
	products, err := s.store.Products()
	if err != nil {
		return models.Product{}, err
	}
	for _, p := range products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

// Create validates the input, assigns the next id (max existing + 1, or 1 for
// an empty catalog) and saves.
func (s *Service) Create(name string, price float64, image string) (models.Product, error) {
	if err := validate(name, price); err != nil {
		return models.Product{}, err
	}

	products, err := s.store.Products()
	if err != nil {
		return models.Product{}, err
	}

	product := models.Product{
		ID:    nextID(products),
		Name:  strings.TrimSpace(name),
		Price: price,
		Image: strings.TrimSpace(image),
	}

	products = append(products, product)
	if err := s.store.SaveProducts(products); err != nil {
		return models.Product{}, err
	}
	return product, nil
}

// Update replaces name and price for an existing product. A blank image keeps
// the one already stored. Existing cart lines and bills are snapshots and are
// never touched here.
func (s *Service) Update(id int, name string, price float64, image string) (models.Product, error) {
	if err := validate(name, price); err != nil {
		return models.Product{}, err
	}

	products, err := s.store.Products()
	if err != nil {
		return models.Product{}, err
	}

	for i, p := range products {
		if p.ID != id {
			continue
		}
		products[i].Name = strings.TrimSpace(name)
		products[i].Price = price
		if img := strings.TrimSpace(image); img != "" {
			products[i].Image = img
		}
		if err := s.store.SaveProducts(products); err != nil {
			return models.Product{}, err
		}
		return products[i], nil
	}

	return models.Product{}, ErrProductNotFound
}

// Delete removes a product from the catalog. Cart lines and past bills that
// reference the id keep their snapshots; stale references are tolerated.
func (s *Service) Delete(id int) error {
	products, err := s.store.Products()
	if err != nil {
		return err
	}

	kept := products[:0]
	for _, p := range products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(products) {
		return ErrProductNotFound
	}

	return s.store.SaveProducts(kept)
}

func validate(name string, price float64) error {
	if strings.TrimSpace(name) == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if price < 0 {
		return &ValidationError{Field: "price", Reason: "must not be negative"}
	}
	return nil
}

func nextID(products []models.Product) int {
	max := 0
	for _, p := range products {
		if p.ID > max {
			max = p.ID
		}
	}
	return max + 1
}

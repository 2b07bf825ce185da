package services

import (
	"fmt"

	"royal-palace-backend/models"
)

// MenuService holds the food catalog. It is loaded once at startup and
// never mutated afterwards, so lookups need no locking.
type MenuService struct {
	items  []models.MenuItem
	prices map[string]float64
}

func NewMenuService(items []models.MenuItem) (*MenuService, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("menu catalog is empty")
	}
	prices := make(map[string]float64, len(items))
	for _, it := range items {
		if it.Name == "" {
			return nil, fmt.Errorf("menu item with empty name")
		}
		if it.UnitPrice < 0 {
			return nil, fmt.Errorf("menu item %q has negative price", it.Name)
		}
		if _, dup := prices[it.Name]; dup {
			return nil, fmt.Errorf("duplicate menu item %q", it.Name)
		}
		prices[it.Name] = it.UnitPrice
	}
	return &MenuService{items: items, prices: prices}, nil
}

// PriceOf looks an item up by exact, case-sensitive name.
func (s *MenuService) PriceOf(name string) (float64, error) {
	price, ok := s.prices[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownItem, name)
	}
	return price, nil
}

// Has reports whether name is an orderable item.
func (s *MenuService) Has(name string) bool {
	_, ok := s.prices[name]
	return ok
}

// List returns the catalog in definition order for display.
func (s *MenuService) List() []models.MenuItem {
	out := make([]models.MenuItem, len(s.items))
	copy(out, s.items)
	return out
}

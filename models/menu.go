package models

// MenuItem is one orderable item. The catalog is immutable once loaded.
type MenuItem struct {
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
}

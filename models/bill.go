package models

// BillLine is one ordered item with its accumulated quantity and amount.
type BillLine struct {
	Item      string  `json:"item"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	Amount    float64 `json:"amount"`
}

// Bill is derived from a room's state at billing time and never mutated
// afterwards. RoomCost, FoodCost and Total are rounded to two decimals
// exactly once, at construction; the persisted and displayed values are
// always the same numbers. Lines are sorted by item name.
type Bill struct {
	Reference  string     `json:"reference,omitempty"`
	RoomNumber int        `json:"roomNumber"`
	Occupant   Occupant   `json:"occupant"`
	Lines      []BillLine `json:"lines"`
	RoomCost   float64    `json:"roomCost"`
	FoodCost   float64    `json:"foodCost"`
	Total      float64    `json:"total"`
}

package models

import "sync"

// Occupant is the customer record attached to an occupied room. All fields
// are free-form; no format validation is applied.
type Occupant struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	IDProof string `json:"idProof"`
}

// Room is the unit of the booking state machine. A room is either vacant
// (nil Occupant, empty Orders) or occupied. Number and BaseRate are fixed
// for the process lifetime; the inventory never grows or shrinks.
type Room struct {
	mu sync.Mutex

	Number   int
	BaseRate float64
	Occupied bool
	Occupant *Occupant
	// Orders maps item name to accumulated quantity for the current stay.
	// Iteration order is never relied on; views sort by item name.
	Orders map[string]int
}

func NewRoom(number int, baseRate float64) *Room {
	return &Room{Number: number, BaseRate: baseRate, Orders: map[string]int{}}
}

// Lock/Unlock give book, order and checkout operations exclusive access to
// this room. Operations on different rooms are fully independent.
func (r *Room) Lock()   { r.mu.Lock() }
func (r *Room) Unlock() { r.mu.Unlock() }

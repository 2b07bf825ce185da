package services

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"royal-palace-backend/models"
	"royal-palace-backend/utils"
)

// RoomService drives the per-room lifecycle: VACANT -> Book -> OCCUPIED ->
// Checkout -> VACANT, with food orders accumulating in between. Every
// operation holds the room's lock for its full duration so it appears
// atomic to concurrent callers of the same room; different rooms never
// contend.
type RoomService struct {
	Menu   *MenuService
	Ledger Ledger
	Log    *zap.Logger
}

func NewRoomService(menu *MenuService, ledger Ledger, log *zap.Logger) *RoomService {
	if log == nil {
		log = zap.NewNop()
	}
	return &RoomService{Menu: menu, Ledger: ledger, Log: log}
}

// RoomInfo is the public listing view of a room.
type RoomInfo struct {
	RoomNumber int     `json:"roomNumber"`
	BaseRate   float64 `json:"baseRate"`
	Occupied   bool    `json:"occupied"`
}

// OrderCount is one accumulated order line.
type OrderCount struct {
	Item     string `json:"item"`
	Quantity int    `json:"quantity"`
}

// RoomSummary is the detailed admin view of a room. Orders are sorted by
// item name.
type RoomSummary struct {
	RoomNumber int              `json:"roomNumber"`
	BaseRate   float64          `json:"baseRate"`
	Occupied   bool             `json:"occupied"`
	Occupant   *models.Occupant `json:"occupant,omitempty"`
	Orders     []OrderCount     `json:"orders"`
}

// Book places occupant into the room. The registration is persisted before
// the room transitions, so a ledger failure leaves the room vacant and the
// booking retryable.
func (s *RoomService) Book(room *models.Room, occupant models.Occupant) error {
	room.Lock()
	defer room.Unlock()

	if room.Occupied {
		return fmt.Errorf("%w: room %d", ErrAlreadyOccupied, room.Number)
	}
	if err := s.Ledger.RegisterCustomer(room.Number, occupant); err != nil {
		return err
	}

	occ := occupant
	room.Occupant = &occ
	room.Occupied = true
	s.Log.Info("room booked",
		zap.Int("room", room.Number),
		zap.String("customer", occupant.Name),
	)
	return nil
}

// AddFoodOrder adds quantity units of item to the room's current stay.
// Repeated orders of the same item accumulate rather than overwrite.
func (s *RoomService) AddFoodOrder(room *models.Room, item string, quantity int) error {
	room.Lock()
	defer room.Unlock()

	if !room.Occupied {
		return fmt.Errorf("%w: room %d", ErrNotOccupied, room.Number)
	}
	if quantity <= 0 {
		return fmt.Errorf("%w: %d x %s", ErrNonPositiveQuantity, quantity, item)
	}
	if !s.Menu.Has(item) {
		return fmt.Errorf("%w: %s", ErrUnknownItem, item)
	}

	room.Orders[item] += quantity
	s.Log.Info("food ordered",
		zap.Int("room", room.Number),
		zap.String("item", item),
		zap.Int("quantity", quantity),
	)
	return nil
}

// ComputeBill derives the bill for the room's current stay. It has no side
// effects and is idempotent; the bill reference is assigned only at
// checkout.
func (s *RoomService) ComputeBill(room *models.Room) (models.Bill, error) {
	room.Lock()
	defer room.Unlock()
	return s.computeBillLocked(room)
}

func (s *RoomService) computeBillLocked(room *models.Room) (models.Bill, error) {
	if !room.Occupied {
		return models.Bill{}, fmt.Errorf("%w: room %d", ErrNotOccupied, room.Number)
	}

	items := make([]string, 0, len(room.Orders))
	for item := range room.Orders {
		items = append(items, item)
	}
	sort.Strings(items)

	// Accumulate in full precision; only the three headline numbers are
	// rounded, and only once.
	foodCost := 0.0
	lines := make([]models.BillLine, 0, len(items))
	for _, item := range items {
		qty := room.Orders[item]
		unit, err := s.Menu.PriceOf(item)
		if err != nil {
			return models.Bill{}, err
		}
		amount := unit * float64(qty)
		foodCost += amount
		lines = append(lines, models.BillLine{
			Item:      item,
			Quantity:  qty,
			UnitPrice: unit,
			Amount:    utils.RoundCurrency(amount),
		})
	}

	return models.Bill{
		RoomNumber: room.Number,
		Occupant:   *room.Occupant,
		Lines:      lines,
		RoomCost:   utils.RoundCurrency(room.BaseRate),
		FoodCost:   utils.RoundCurrency(foodCost),
		Total:      utils.RoundCurrency(room.BaseRate + foodCost),
	}, nil
}

// Checkout bills the current stay, persists the bill and a history line,
// then resets the room to vacant. The reset happens only after every
// persistence call succeeded; on a ledger failure the room stays occupied
// and billable again, so no active stay is ever silently lost.
func (s *RoomService) Checkout(room *models.Room) (models.Bill, error) {
	room.Lock()
	defer room.Unlock()

	bill, err := s.computeBillLocked(room)
	if err != nil {
		return models.Bill{}, err
	}
	bill.Reference = uuid.NewString()

	if err := s.Ledger.SaveBill(bill); err != nil {
		return models.Bill{}, err
	}
	if err := s.Ledger.AppendCheckoutHistory(bill.RoomNumber, bill.Occupant.Name, bill.Total); err != nil {
		return models.Bill{}, err
	}

	room.Occupant = nil
	room.Occupied = false
	room.Orders = map[string]int{}
	s.Log.Info("room checked out",
		zap.Int("room", room.Number),
		zap.String("reference", bill.Reference),
		zap.Float64("total", bill.Total),
	)
	return bill, nil
}

// Display returns the room's listing view. No side effects.
func (s *RoomService) Display(room *models.Room) RoomInfo {
	room.Lock()
	defer room.Unlock()
	return RoomInfo{RoomNumber: room.Number, BaseRate: room.BaseRate, Occupied: room.Occupied}
}

// Summary returns the detailed view with order counts sorted by item name.
// No side effects.
func (s *RoomService) Summary(room *models.Room) RoomSummary {
	room.Lock()
	defer room.Unlock()

	sum := RoomSummary{
		RoomNumber: room.Number,
		BaseRate:   room.BaseRate,
		Occupied:   room.Occupied,
		Orders:     []OrderCount{},
	}
	if room.Occupant != nil {
		occ := *room.Occupant
		sum.Occupant = &occ
	}

	items := make([]string, 0, len(room.Orders))
	for item := range room.Orders {
		items = append(items, item)
	}
	sort.Strings(items)
	for _, item := range items {
		sum.Orders = append(sum.Orders, OrderCount{Item: item, Quantity: room.Orders[item]})
	}
	return sum
}

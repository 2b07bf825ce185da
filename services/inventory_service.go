package services

import (
	"fmt"

	"royal-palace-backend/models"
)

// InventoryService owns the fixed set of rooms, keyed by room number.
// Rooms are created once at startup and never added or destroyed; only the
// rooms themselves mutate their occupancy state.
type InventoryService struct {
	rooms    []*models.Room
	byNumber map[int]*models.Room
}

func NewInventoryService(rooms []*models.Room) (*InventoryService, error) {
	if len(rooms) == 0 {
		return nil, fmt.Errorf("no rooms configured")
	}
	byNumber := make(map[int]*models.Room, len(rooms))
	for _, room := range rooms {
		if room.Number <= 0 {
			return nil, fmt.Errorf("invalid room number %d", room.Number)
		}
		if _, dup := byNumber[room.Number]; dup {
			return nil, fmt.Errorf("duplicate room number %d", room.Number)
		}
		byNumber[room.Number] = room
	}
	return &InventoryService{rooms: rooms, byNumber: byNumber}, nil
}

// FindRoom resolves a room by its number.
func (s *InventoryService) FindRoom(number int) (*models.Room, error) {
	room, ok := s.byNumber[number]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrRoomNotFound, number)
	}
	return room, nil
}

// AllRooms returns every room in creation order.
func (s *InventoryService) AllRooms() []*models.Room {
	out := make([]*models.Room, len(s.rooms))
	copy(out, s.rooms)
	return out
}

package services_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"royal-palace-backend/models"
	"royal-palace-backend/services"
)

func testRooms() []*models.Room {
	return []*models.Room{
		models.NewRoom(101, 1000),
		models.NewRoom(102, 1200),
		models.NewRoom(103, 1400),
	}
}

func TestInventory_FindRoom(t *testing.T) {
	inv, err := services.NewInventoryService(testRooms())
	require.NoError(t, err)

	room, err := inv.FindRoom(102)
	require.NoError(t, err)
	require.Equal(t, 102, room.Number)
	require.Equal(t, 1200.00, room.BaseRate)

	_, err = inv.FindRoom(999)
	require.ErrorIs(t, err, services.ErrRoomNotFound)
}

func TestInventory_AllRoomsKeepsCreationOrder(t *testing.T) {
	inv, err := services.NewInventoryService(testRooms())
	require.NoError(t, err)

	rooms := inv.AllRooms()
	require.Len(t, rooms, 3)
	require.Equal(t, 101, rooms[0].Number)
	require.Equal(t, 102, rooms[1].Number)
	require.Equal(t, 103, rooms[2].Number)
}

func TestInventory_RejectsDuplicateAndInvalidNumbers(t *testing.T) {
	_, err := services.NewInventoryService([]*models.Room{
		models.NewRoom(101, 1000),
		models.NewRoom(101, 1200),
	})
	require.Error(t, err)

	_, err = services.NewInventoryService([]*models.Room{models.NewRoom(0, 1000)})
	require.Error(t, err)

	_, err = services.NewInventoryService(nil)
	require.Error(t, err)
}

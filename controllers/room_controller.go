package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"royal-palace-backend/services"
	"royal-palace-backend/utils"
)

// RoomController exposes the public room listing.
type RoomController struct {
	Inventory *services.InventoryService
	Rooms     *services.RoomService
}

func NewRoomController(inv *services.InventoryService, rooms *services.RoomService) *RoomController {
	return &RoomController{Inventory: inv, Rooms: rooms}
}

func parseRoomNumber(c *gin.Context) (int, bool) {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil || number <= 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid room number")
		return 0, false
	}
	return number, true
}

// respondCoreError maps the booking core's error taxonomy onto HTTP codes.
func respondCoreError(c *gin.Context, err error) {
	var perr *services.PersistenceError
	switch {
	case errors.Is(err, services.ErrRoomNotFound):
		utils.JSONError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrAlreadyOccupied), errors.Is(err, services.ErrNotOccupied):
		utils.JSONError(c, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrUnknownItem), errors.Is(err, services.ErrNonPositiveQuantity):
		utils.JSONError(c, http.StatusBadRequest, err.Error())
	case errors.As(err, &perr):
		utils.JSONError(c, http.StatusBadGateway, err.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
	}
}

// GetRooms (GET /api/rooms) lists every room in creation order.
func (ctrl *RoomController) GetRooms(c *gin.Context) {
	rooms := ctrl.Inventory.AllRooms()
	out := make([]services.RoomInfo, 0, len(rooms))
	for _, room := range rooms {
		out = append(out, ctrl.Rooms.Display(room))
	}
	utils.JSONSuccess(c, http.StatusOK, out)
}

// GetRoom (GET /api/rooms/:number) shows one room's listing view.
func (ctrl *RoomController) GetRoom(c *gin.Context) {
	number, ok := parseRoomNumber(c)
	if !ok {
		return
	}
	room, err := ctrl.Inventory.FindRoom(number)
	if err != nil {
		respondCoreError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, ctrl.Rooms.Display(room))
}

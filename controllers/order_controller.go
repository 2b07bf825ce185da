package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"royal-palace-backend/services"
	"royal-palace-backend/utils"
)

// OrderFoodPayload is one order line: an item from the menu and a positive
// quantity.
type OrderFoodPayload struct {
	Item     string `json:"item" binding:"required"`
	Quantity int    `json:"quantity" binding:"required"`
}

// OrderController exposes the menu and room-service food ordering.
type OrderController struct {
	Inventory *services.InventoryService
	Rooms     *services.RoomService
	Menu      *services.MenuService
}

func NewOrderController(inv *services.InventoryService, rooms *services.RoomService, menu *services.MenuService) *OrderController {
	return &OrderController{Inventory: inv, Rooms: rooms, Menu: menu}
}

// GetMenu (GET /api/menu) lists the catalog in definition order.
func (ctrl *OrderController) GetMenu(c *gin.Context) {
	utils.JSONSuccess(c, http.StatusOK, ctrl.Menu.List())
}

// OrderFood (POST /api/rooms/:number/orders) adds an order line to an
// occupied room's stay.
func (ctrl *OrderController) OrderFood(c *gin.Context) {
	number, ok := parseRoomNumber(c)
	if !ok {
		return
	}

	var payload OrderFoodPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}

	room, err := ctrl.Inventory.FindRoom(number)
	if err != nil {
		respondCoreError(c, err)
		return
	}
	if err := ctrl.Rooms.AddFoodOrder(room, payload.Item, payload.Quantity); err != nil {
		respondCoreError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, ctrl.Rooms.Summary(room))
}

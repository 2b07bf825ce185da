package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"royal-palace-backend/models"
	"royal-palace-backend/services"
	"royal-palace-backend/utils"
)

// BookRoomPayload carries the occupant details for a booking. Only the
// name is required; the remaining fields are free-form.
type BookRoomPayload struct {
	Name    string `json:"name" binding:"required"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	IDProof string `json:"idProof"`
}

// BookingController drives the room lifecycle over HTTP: book, bill
// preview and checkout.
type BookingController struct {
	Inventory *services.InventoryService
	Rooms     *services.RoomService
}

func NewBookingController(inv *services.InventoryService, rooms *services.RoomService) *BookingController {
	return &BookingController{Inventory: inv, Rooms: rooms}
}

// BookRoom (POST /api/rooms/:number/book) checks a customer into a vacant
// room.
func (ctrl *BookingController) BookRoom(c *gin.Context) {
	number, ok := parseRoomNumber(c)
	if !ok {
		return
	}

	var payload BookRoomPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}

	room, err := ctrl.Inventory.FindRoom(number)
	if err != nil {
		respondCoreError(c, err)
		return
	}

	occupant := models.Occupant{
		Name:    payload.Name,
		Phone:   payload.Phone,
		Email:   payload.Email,
		IDProof: payload.IDProof,
	}
	if err := ctrl.Rooms.Book(room, occupant); err != nil {
		respondCoreError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, ctrl.Rooms.Display(room))
}

// GetBill (GET /api/rooms/:number/bill) previews the bill for the current
// stay without checking out.
func (ctrl *BookingController) GetBill(c *gin.Context) {
	number, ok := parseRoomNumber(c)
	if !ok {
		return
	}
	room, err := ctrl.Inventory.FindRoom(number)
	if err != nil {
		respondCoreError(c, err)
		return
	}
	bill, err := ctrl.Rooms.ComputeBill(room)
	if err != nil {
		respondCoreError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bill)
}

// Checkout (POST /api/rooms/:number/checkout) bills the stay, persists the
// records and frees the room.
func (ctrl *BookingController) Checkout(c *gin.Context) {
	number, ok := parseRoomNumber(c)
	if !ok {
		return
	}
	room, err := ctrl.Inventory.FindRoom(number)
	if err != nil {
		respondCoreError(c, err)
		return
	}
	bill, err := ctrl.Rooms.Checkout(room)
	if err != nil {
		respondCoreError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bill)
}

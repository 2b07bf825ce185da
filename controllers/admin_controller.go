package controllers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"royal-palace-backend/services"
	"royal-palace-backend/utils"
)

type loginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AdminController handles admin login and the read-only reporting views
// over the inventory. It never mutates room state.
type AdminController struct {
	Admin     *services.AdminService
	Inventory *services.InventoryService
	Rooms     *services.RoomService
}

func NewAdminController(admin *services.AdminService, inv *services.InventoryService, rooms *services.RoomService) *AdminController {
	return &AdminController{Admin: admin, Inventory: inv, Rooms: rooms}
}

// Login (POST /api/auth/login) validates the configured credential and
// returns a session token.
func (ctrl *AdminController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	token, err := ctrl.Admin.Login(strings.TrimSpace(payload.Username), payload.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			utils.JSONError(c, http.StatusUnauthorized, "invalid credentials")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to create session")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"token": token})
}

// Logout (POST /api/auth/logout) revokes the presented session token.
func (ctrl *AdminController) Logout(c *gin.Context) {
	h := c.GetHeader("Authorization")
	parts := strings.SplitN(h, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		ctrl.Admin.Logout(strings.TrimSpace(parts[1]))
	}
	utils.JSONMessage(c, http.StatusOK, "logged out")
}

// GetAvailability (GET /api/admin/rooms) lists every room's occupancy.
func (ctrl *AdminController) GetAvailability(c *gin.Context) {
	rooms := ctrl.Inventory.AllRooms()
	out := make([]services.RoomInfo, 0, len(rooms))
	for _, room := range rooms {
		out = append(out, ctrl.Rooms.Display(room))
	}
	utils.JSONSuccess(c, http.StatusOK, out)
}

// GetRoomDetail (GET /api/admin/rooms/:number) shows the full summary of
// one room: occupant, rate, occupancy and order counts by item name.
func (ctrl *AdminController) GetRoomDetail(c *gin.Context) {
	number, ok := parseRoomNumber(c)
	if !ok {
		return
	}
	room, err := ctrl.Inventory.FindRoom(number)
	if err != nil {
		respondCoreError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, ctrl.Rooms.Summary(room))
}

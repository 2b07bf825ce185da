package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"royal-palace-backend/models"
	"royal-palace-backend/utils"
)

// HotelProfile is the static hotel identity exposed by the settings
// endpoint.
type HotelProfile struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// AppConfig carries everything injected from the environment: the fixed
// room inventory, the food catalog, the ledger driver and the admin
// credential.
type AppConfig struct {
	Port         string
	LedgerDriver string // "mysql" or "file"
	LedgerDir    string // file driver only

	Rooms []*models.Room
	Menu  []models.MenuItem

	AdminUsername     string
	AdminPassword     string
	AdminPasswordHash string

	Hotel HotelProfile
}

// Rooms 101..105 at 1000, 1200, ... like the original front desk ran.
const defaultRoomsSpec = "101:1000,102:1200,103:1400,104:1600,105:1800"

func defaultMenu() []models.MenuItem {
	return []models.MenuItem{
		{Name: "Burger", UnitPrice: 5.00},
		{Name: "Pizza", UnitPrice: 8.00},
		{Name: "Water", UnitPrice: 2.00},
		{Name: "Fries", UnitPrice: 3.50},
		{Name: "Coke", UnitPrice: 2.50},
		{Name: "Ice Cream", UnitPrice: 4.00},
	}
}

// Load builds the AppConfig from environment variables, applying defaults
// where nothing is configured.
func Load() (*AppConfig, error) {
	rooms, err := parseRoomsSpec(utils.EnvOrDefault("ROOMS", defaultRoomsSpec))
	if err != nil {
		return nil, fmt.Errorf("invalid ROOMS: %w", err)
	}

	menu := defaultMenu()
	if path := strings.TrimSpace(os.Getenv("MENU_FILE")); path != "" {
		menu, err = loadMenuFile(path)
		if err != nil {
			return nil, fmt.Errorf("invalid MENU_FILE: %w", err)
		}
	}

	driver := strings.ToLower(utils.EnvOrDefault("LEDGER_DRIVER", "mysql"))
	if driver != "mysql" && driver != "file" {
		return nil, fmt.Errorf("invalid LEDGER_DRIVER %q (want mysql or file)", driver)
	}

	return &AppConfig{
		Port:              utils.EnvOrDefault("PORT", "8080"),
		LedgerDriver:      driver,
		LedgerDir:         utils.EnvOrDefault("LEDGER_DIR", "ledger"),
		Rooms:             rooms,
		Menu:              menu,
		AdminUsername:     utils.EnvOrDefault("ADMIN_USERNAME", "admin"),
		AdminPassword:     utils.EnvOrDefault("ADMIN_PASSWORD", "1234"),
		AdminPasswordHash: strings.TrimSpace(os.Getenv("ADMIN_PASSWORD_HASH")),
		Hotel: HotelProfile{
			Name:    utils.EnvOrDefault("HOTEL_NAME", "Royal Palace"),
			Address: os.Getenv("HOTEL_ADDRESS"),
			Phone:   os.Getenv("HOTEL_PHONE"),
			Email:   os.Getenv("HOTEL_EMAIL"),
		},
	}, nil
}

// parseRoomsSpec parses "101:1000,102:1200" into the fixed inventory.
func parseRoomsSpec(spec string) ([]*models.Room, error) {
	parts := strings.Split(spec, ",")
	rooms := make([]*models.Room, 0, len(parts))
	seen := map[int]struct{}{}
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		fields := strings.SplitN(part, ":", 2)
		if len(fields) != 2 {
			return nil, fmt.Errorf("room entry %q must be number:rate", part)
		}
		number, err := strconv.Atoi(strings.TrimSpace(fields[0]))
		if err != nil || number <= 0 {
			return nil, fmt.Errorf("room entry %q has an invalid number", part)
		}
		rate, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
		if err != nil || rate < 0 {
			return nil, fmt.Errorf("room entry %q has an invalid rate", part)
		}
		if _, dup := seen[number]; dup {
			return nil, fmt.Errorf("duplicate room number %d", number)
		}
		seen[number] = struct{}{}
		rooms = append(rooms, models.NewRoom(number, rate))
	}
	if len(rooms) == 0 {
		return nil, fmt.Errorf("no rooms configured")
	}
	return rooms, nil
}

func loadMenuFile(path string) ([]models.MenuItem, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var items []models.MenuItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("menu file %s has no items", path)
	}
	return items, nil
}

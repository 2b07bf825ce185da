package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "ROOMS", "MENU_FILE", "LEDGER_DRIVER", "LEDGER_DIR",
		"ADMIN_USERNAME", "ADMIN_PASSWORD", "ADMIN_PASSWORD_HASH",
		"HOTEL_NAME", "HOTEL_ADDRESS", "HOTEL_PHONE", "HOTEL_EMAIL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, "mysql", cfg.LedgerDriver)
	require.Equal(t, "admin", cfg.AdminUsername)
	require.Equal(t, "1234", cfg.AdminPassword)
	require.Equal(t, "Royal Palace", cfg.Hotel.Name)

	require.Len(t, cfg.Rooms, 5)
	require.Equal(t, 101, cfg.Rooms[0].Number)
	require.Equal(t, 1000.00, cfg.Rooms[0].BaseRate)
	require.Equal(t, 105, cfg.Rooms[4].Number)
	require.Equal(t, 1800.00, cfg.Rooms[4].BaseRate)

	require.Len(t, cfg.Menu, 6)
	require.Equal(t, "Burger", cfg.Menu[0].Name)
	require.Equal(t, 5.00, cfg.Menu[0].UnitPrice)
	require.Equal(t, "Ice Cream", cfg.Menu[5].Name)
}

func TestLoad_CustomRoomsSpec(t *testing.T) {
	clearEnv(t)
	t.Setenv("ROOMS", "201:500.50, 202:750")

	cfg, err := Load()
	require.NoError(t, err)
	require.Len(t, cfg.Rooms, 2)
	require.Equal(t, 201, cfg.Rooms[0].Number)
	require.Equal(t, 500.50, cfg.Rooms[0].BaseRate)
	require.Equal(t, 202, cfg.Rooms[1].Number)
}

func TestLoad_RejectsInvalidRoomsSpec(t *testing.T) {
	for _, spec := range []string{"nope", "101", "101:abc", "-5:100", "101:1000,101:1200", "101:-3"} {
		clearEnv(t)
		t.Setenv("ROOMS", spec)
		_, err := Load()
		require.Error(t, err, "spec=%q", spec)
	}
}

func TestLoad_MenuFromFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "menu.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"name": "Tea", "unitPrice": 1.25},
		{"name": "Scone", "unitPrice": 3.75}
	]`), 0o644))
	t.Setenv("MENU_FILE", path)

	cfg, err := Load()
	require.NoError(t, err)
	require.Len(t, cfg.Menu, 2)
	require.Equal(t, "Tea", cfg.Menu[0].Name)
	require.Equal(t, 1.25, cfg.Menu[0].UnitPrice)
}

func TestLoad_RejectsBadMenuFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "menu.json")
	require.NoError(t, os.WriteFile(path, []byte(`not json`), 0o644))
	t.Setenv("MENU_FILE", path)

	_, err := Load()
	require.Error(t, err)
}

func TestLoad_RejectsUnknownLedgerDriver(t *testing.T) {
	clearEnv(t)
	t.Setenv("LEDGER_DRIVER", "postgres")

	_, err := Load()
	require.Error(t, err)
}

package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Append-only ledger rows. The core only ever inserts these; nothing reads
// them back into room state.

type CustomerRecord struct {
	gorm.Model

	RoomNumber int    `gorm:"index;column:room_number" json:"roomNumber"`
	Name       string `gorm:"size:255" json:"name"`
	Phone      string `gorm:"size:50" json:"phone"`
	Email      string `gorm:"size:150" json:"email"`
	IDProof    string `gorm:"size:255;column:id_proof" json:"idProof"`
}

type BillRecord struct {
	gorm.Model

	Reference     string         `gorm:"uniqueIndex;size:64" json:"reference"`
	RoomNumber    int            `gorm:"index;column:room_number" json:"roomNumber"`
	CustomerName  string         `gorm:"size:255;column:customer_name" json:"customerName"`
	RoomCost      float64        `gorm:"column:room_cost" json:"roomCost"`
	FoodCost      float64        `gorm:"column:food_cost" json:"foodCost"`
	Total         float64        `json:"total"`
	PaymentStatus string         `gorm:"size:32;default:Paid" json:"paymentStatus"`
	Lines         datatypes.JSON `gorm:"column:lines" json:"lines"`
}

type CheckoutRecord struct {
	gorm.Model

	RoomNumber   int     `gorm:"index;column:room_number" json:"roomNumber"`
	CustomerName string  `gorm:"size:255;column:customer_name" json:"customerName"`
	Total        float64 `json:"total"`
}

package services_test

import (
	"errors"

	"royal-palace-backend/models"
	"royal-palace-backend/services"
)

// recordingLedger captures every ledger call in memory.
type recordingLedger struct {
	customers []models.CustomerRecord
	bills     []models.Bill
	history   []models.CheckoutRecord
}

func newRecordingLedger() *recordingLedger {
	return &recordingLedger{}
}

func (l *recordingLedger) RegisterCustomer(roomNumber int, occupant models.Occupant) error {
	l.customers = append(l.customers, models.CustomerRecord{
		RoomNumber: roomNumber,
		Name:       occupant.Name,
		Phone:      occupant.Phone,
		Email:      occupant.Email,
		IDProof:    occupant.IDProof,
	})
	return nil
}

func (l *recordingLedger) SaveBill(bill models.Bill) error {
	l.bills = append(l.bills, bill)
	return nil
}

func (l *recordingLedger) AppendCheckoutHistory(roomNumber int, occupantName string, total float64) error {
	l.history = append(l.history, models.CheckoutRecord{
		RoomNumber:   roomNumber,
		CustomerName: occupantName,
		Total:        total,
	})
	return nil
}

func (l *recordingLedger) calls() int {
	return len(l.customers) + len(l.bills) + len(l.history)
}

// failingLedger wraps a recordingLedger and fails the named call.
type failingLedger struct {
	*recordingLedger
	failOn string // "register_customer", "save_bill" or "append_checkout_history"
}

var errDiskFull = errors.New("disk full")

func (l *failingLedger) fail(op, target string) error {
	return &services.PersistenceError{Op: op, Target: target, Err: errDiskFull}
}

func (l *failingLedger) RegisterCustomer(roomNumber int, occupant models.Occupant) error {
	if l.failOn == "register_customer" {
		return l.fail("register_customer", "room")
	}
	return l.recordingLedger.RegisterCustomer(roomNumber, occupant)
}

func (l *failingLedger) SaveBill(bill models.Bill) error {
	if l.failOn == "save_bill" {
		return l.fail("save_bill", bill.Reference)
	}
	return l.recordingLedger.SaveBill(bill)
}

func (l *failingLedger) AppendCheckoutHistory(roomNumber int, occupantName string, total float64) error {
	if l.failOn == "append_checkout_history" {
		return l.fail("append_checkout_history", "room")
	}
	return l.recordingLedger.AppendCheckoutHistory(roomNumber, occupantName, total)
}

package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	mysqldrv "github.com/go-sql-driver/mysql"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"royal-palace-backend/models"
	"royal-palace-backend/utils"
)

// Ledger is the durable record sink consumed by the booking core. Every
// call either records the event durably or fails with *PersistenceError;
// the core never retries internally and never reads ledger state back.
type Ledger interface {
	RegisterCustomer(roomNumber int, occupant models.Occupant) error
	SaveBill(bill models.Bill) error
	AppendCheckoutHistory(roomNumber int, occupantName string, total float64) error
}

// ---------------------------
// GormLedger (MySQL)
// ---------------------------

// GormLedger appends to the customer_records, bill_records and
// checkout_records tables.
type GormLedger struct {
	DB *gorm.DB
}

func NewGormLedger(db *gorm.DB) *GormLedger {
	return &GormLedger{DB: db}
}

func (l *GormLedger) RegisterCustomer(roomNumber int, occupant models.Occupant) error {
	rec := models.CustomerRecord{
		RoomNumber: roomNumber,
		Name:       occupant.Name,
		Phone:      occupant.Phone,
		Email:      occupant.Email,
		IDProof:    occupant.IDProof,
	}
	if err := l.DB.Create(&rec).Error; err != nil {
		return &PersistenceError{Op: "register_customer", Target: strconv.Itoa(roomNumber), Err: err}
	}
	return nil
}

func (l *GormLedger) SaveBill(bill models.Bill) error {
	lines, err := json.Marshal(bill.Lines)
	if err != nil {
		return &PersistenceError{Op: "save_bill", Target: bill.Reference, Err: err}
	}
	rec := models.BillRecord{
		Reference:     bill.Reference,
		RoomNumber:    bill.RoomNumber,
		CustomerName:  bill.Occupant.Name,
		RoomCost:      bill.RoomCost,
		FoodCost:      bill.FoodCost,
		Total:         bill.Total,
		PaymentStatus: "Paid",
		Lines:         datatypes.JSON(lines),
	}
	if err := l.DB.Create(&rec).Error; err != nil {
		if isDuplicateEntry(err) {
			// A retried checkout can race an earlier insert of the same
			// reference that was durable after all; that counts as recorded.
			return nil
		}
		return &PersistenceError{Op: "save_bill", Target: bill.Reference, Err: err}
	}
	return nil
}

func (l *GormLedger) AppendCheckoutHistory(roomNumber int, occupantName string, total float64) error {
	rec := models.CheckoutRecord{
		RoomNumber:   roomNumber,
		CustomerName: occupantName,
		Total:        total,
	}
	if err := l.DB.Create(&rec).Error; err != nil {
		return &PersistenceError{Op: "append_checkout_history", Target: strconv.Itoa(roomNumber), Err: err}
	}
	return nil
}

func isDuplicateEntry(err error) bool {
	var merr *mysqldrv.MySQLError
	if errors.As(err, &merr) {
		return merr.Number == 1062
	}
	return false
}

// ---------------------------
// FileLedger (append-only text files)
// ---------------------------

// FileLedger reproduces the classic front-desk artifacts under Dir: an
// append-only customers.txt, one bill_room_<n>.txt per checkout and an
// append-only checkout_history.txt.
type FileLedger struct {
	Dir string
}

func NewFileLedger(dir string) (*FileLedger, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &FileLedger{Dir: dir}, nil
}

func (l *FileLedger) appendLine(file, line, op, target string) error {
	f, err := os.OpenFile(filepath.Join(l.Dir, file), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return &PersistenceError{Op: op, Target: target, Err: err}
	}
	defer f.Close()
	if _, err := f.WriteString(line); err != nil {
		return &PersistenceError{Op: op, Target: target, Err: err}
	}
	return nil
}

func (l *FileLedger) RegisterCustomer(roomNumber int, occupant models.Occupant) error {
	line := fmt.Sprintf("Room: %d\t%s\t%s\t%s\t%s\n",
		roomNumber, occupant.Name, occupant.Phone, occupant.Email, occupant.IDProof)
	return l.appendLine("customers.txt", line, "register_customer", strconv.Itoa(roomNumber))
}

func (l *FileLedger) SaveBill(bill models.Bill) error {
	var b strings.Builder
	b.WriteString("------ BILL ------\n")
	fmt.Fprintf(&b, "Reference   : %s\n", bill.Reference)
	fmt.Fprintf(&b, "Room Number : %d\n", bill.RoomNumber)
	fmt.Fprintf(&b, "Customer    : %s\n", bill.Occupant.Name)
	for _, line := range bill.Lines {
		fmt.Fprintf(&b, "  %d x %s = %s\n", line.Quantity, line.Item, utils.FormatAmount(line.Amount))
	}
	fmt.Fprintf(&b, "Room Cost   : %s\n", utils.FormatAmount(bill.RoomCost))
	fmt.Fprintf(&b, "Food Cost   : %s\n", utils.FormatAmount(bill.FoodCost))
	b.WriteString("------------------\n")
	fmt.Fprintf(&b, "Total Amount: %s\n", utils.FormatAmount(bill.Total))
	b.WriteString("------------------\n")
	b.WriteString("Payment Status: Paid\n")

	name := fmt.Sprintf("bill_room_%d.txt", bill.RoomNumber)
	if err := os.WriteFile(filepath.Join(l.Dir, name), []byte(b.String()), 0o644); err != nil {
		return &PersistenceError{Op: "save_bill", Target: bill.Reference, Err: err}
	}
	return nil
}

func (l *FileLedger) AppendCheckoutHistory(roomNumber int, occupantName string, total float64) error {
	line := fmt.Sprintf("Room %d | Customer: %s | Total: %s\n",
		roomNumber, occupantName, utils.FormatAmount(total))
	return l.appendLine("checkout_history.txt", line, "append_checkout_history", strconv.Itoa(roomNumber))
}

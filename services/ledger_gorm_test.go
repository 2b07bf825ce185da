package services_test

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	mysqldrv "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/require"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"royal-palace-backend/models"
	"royal-palace-backend/services"
)

func newMockGorm(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(gormmysql.New(gormmysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	return gdb, mock
}

func TestGormLedger_RegisterCustomerInserts(t *testing.T) {
	gdb, mock := newMockGorm(t)
	ledger := services.NewGormLedger(gdb)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `customer_records`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	require.NoError(t, ledger.RegisterCustomer(101, occupantA))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormLedger_SaveBillInserts(t *testing.T) {
	gdb, mock := newMockGorm(t)
	ledger := services.NewGormLedger(gdb)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `bill_records`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	bill := models.Bill{
		Reference:  "ref-123",
		RoomNumber: 101,
		Occupant:   occupantA,
		RoomCost:   1000.00,
		FoodCost:   12.50,
		Total:      1012.50,
	}
	require.NoError(t, ledger.SaveBill(bill))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormLedger_SaveBillTreatsDuplicateReferenceAsRecorded(t *testing.T) {
	gdb, mock := newMockGorm(t)
	ledger := services.NewGormLedger(gdb)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `bill_records`").
		WillReturnError(&mysqldrv.MySQLError{Number: 1062, Message: "Duplicate entry"})
	mock.ExpectRollback()

	require.NoError(t, ledger.SaveBill(models.Bill{Reference: "ref-123", RoomNumber: 101}))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormLedger_FailuresWrapAsPersistenceError(t *testing.T) {
	gdb, mock := newMockGorm(t)
	ledger := services.NewGormLedger(gdb)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `checkout_records`").
		WillReturnError(&mysqldrv.MySQLError{Number: 1146, Message: "Table doesn't exist"})
	mock.ExpectRollback()

	err := ledger.AppendCheckoutHistory(101, "Alice Smith", 1012.50)
	var perr *services.PersistenceError
	require.ErrorAs(t, err, &perr)
	require.Equal(t, "append_checkout_history", perr.Op)
	require.Equal(t, "101", perr.Target)
	require.NoError(t, mock.ExpectationsWereMet())
}

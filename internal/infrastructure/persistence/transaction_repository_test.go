package persistence

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/salestrack/backend/internal/domain/sales"
	"github.com/salestrack/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// newMockTransactionRepository creates a GormTransactionRepository with a mocked SQL connection
func newMockTransactionRepository(t *testing.T) (*GormTransactionRepository, sqlmock.Sqlmock, *sql.DB) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		Conn:       mockDB,
		DriverName: "postgres",
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{
		SkipDefaultTransaction: true,
	})
	require.NoError(t, err)

	return NewGormTransactionRepository(gormDB), mock, mockDB
}

func transactionRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "seller_id", "amount", "payment_type", "transaction_date"})
}

func TestGormTransactionRepository_FindByID(t *testing.T) {
	t.Run("finds existing transaction", func(t *testing.T) {
		repo, mock, mockDB := newMockTransactionRepository(t)
		defer mockDB.Close()

		txID := uuid.New()
		sellerID := uuid.New()
		date := time.Date(2026, 2, 1, 14, 30, 0, 0, time.UTC)

		rows := transactionRows().
			AddRow(txID, sellerID, decimal.RequireFromString("99.50"), "CARD", date)

		mock.ExpectQuery(`SELECT \* FROM "transactions" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(txID, 1).
			WillReturnRows(rows)

		tx, err := repo.FindByID(context.Background(), txID)

		assert.NoError(t, err)
		assert.NotNil(t, tx)
		assert.Equal(t, txID, tx.ID)
		assert.Equal(t, sellerID, tx.SellerID)
		assert.Equal(t, sales.PaymentTypeCard, tx.PaymentType)
		assert.True(t, tx.Amount.Equal(decimal.RequireFromString("99.50")))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns ErrNotFound for non-existent transaction", func(t *testing.T) {
		repo, mock, mockDB := newMockTransactionRepository(t)
		defer mockDB.Close()

		txID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "transactions" WHERE id = \$1 ORDER BY .* LIMIT .*`).
			WithArgs(txID, 1).
			WillReturnError(gorm.ErrRecordNotFound)

		tx, err := repo.FindByID(context.Background(), txID)

		assert.Error(t, err)
		assert.Nil(t, tx)
		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormTransactionRepository_FindBySeller(t *testing.T) {
	repo, mock, mockDB := newMockTransactionRepository(t)
	defer mockDB.Close()

	sellerID := uuid.New()
	rows := transactionRows().
		AddRow(uuid.New(), sellerID, decimal.RequireFromString("10.00"), "CASH", time.Now()).
		AddRow(uuid.New(), sellerID, decimal.RequireFromString("20.00"), "TRANSFER", time.Now())

	mock.ExpectQuery(`SELECT \* FROM "transactions" WHERE seller_id = \$1 ORDER BY transaction_date ASC`).
		WithArgs(sellerID).
		WillReturnRows(rows)

	transactions, err := repo.FindBySeller(context.Background(), sellerID)

	assert.NoError(t, err)
	assert.Len(t, transactions, 2)
	assert.Equal(t, sellerID, transactions[0].SellerID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormTransactionRepository_FindByDateRange(t *testing.T) {
	t.Run("queries half-open interval", func(t *testing.T) {
		repo, mock, mockDB := newMockTransactionRepository(t)
		defer mockDB.Close()

		start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)

		rows := transactionRows().
			AddRow(uuid.New(), uuid.New(), decimal.RequireFromString("50.00"), "CASH", start)

		mock.ExpectQuery(`SELECT \* FROM "transactions" WHERE transaction_date >= \$1 AND transaction_date < \$2 ORDER BY transaction_date ASC`).
			WithArgs(start, end).
			WillReturnRows(rows)

		transactions, err := repo.FindByDateRange(context.Background(), start, end)

		assert.NoError(t, err)
		assert.Len(t, transactions, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("empty result for inverted range", func(t *testing.T) {
		repo, mock, mockDB := newMockTransactionRepository(t)
		defer mockDB.Close()

		start := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

		mock.ExpectQuery(`SELECT \* FROM "transactions" WHERE transaction_date >= \$1 AND transaction_date < \$2 ORDER BY transaction_date ASC`).
			WithArgs(start, end).
			WillReturnRows(transactionRows())

		transactions, err := repo.FindByDateRange(context.Background(), start, end)

		assert.NoError(t, err)
		assert.Empty(t, transactions)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormTransactionRepository_Save(t *testing.T) {
	repo, mock, mockDB := newMockTransactionRepository(t)
	defer mockDB.Close()

	tx, err := sales.NewTransaction(uuid.New(), decimal.RequireFromString("42.00"), sales.PaymentTypeCash)
	require.NoError(t, err)

	mock.ExpectExec(`INSERT INTO "transactions" .*ON CONFLICT .* DO UPDATE SET.*`).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err = repo.Save(context.Background(), tx)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGormTransactionRepository_Delete(t *testing.T) {
	t.Run("deletes existing transaction", func(t *testing.T) {
		repo, mock, mockDB := newMockTransactionRepository(t)
		defer mockDB.Close()

		txID := uuid.New()

		mock.ExpectExec(`DELETE FROM "transactions" WHERE id = \$1`).
			WithArgs(txID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.Delete(context.Background(), txID)

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("returns ErrNotFound when nothing deleted", func(t *testing.T) {
		repo, mock, mockDB := newMockTransactionRepository(t)
		defer mockDB.Close()

		txID := uuid.New()

		mock.ExpectExec(`DELETE FROM "transactions" WHERE id = \$1`).
			WithArgs(txID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(context.Background(), txID)

		assert.Equal(t, shared.ErrNotFound, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormTransactionRepository_Count(t *testing.T) {
	repo, mock, mockDB := newMockTransactionRepository(t)
	defer mockDB.Close()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "transactions"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	total, err := repo.Count(context.Background(), shared.DefaultFilter())

	assert.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

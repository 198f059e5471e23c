// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-budget-tracker/internal/logger"
	"github.com/MKhiriev/go-budget-tracker/models"
	"github.com/jackc/pgerrcode"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTransactionID = "0190f1e2-8c7d-7e6f-9a0b-1c2d3e4f5a6b"

func newTestTransactionRepo(t *testing.T) (*transactionRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	return &transactionRepository{db: db, logger: logger.Nop()}, mock
}

func transactionRows() *sqlmock.Rows {
	return sqlmock.NewRows(transactionColumns)
}

func addTransactionRow(rows *sqlmock.Rows, id, amount, category, subcategory string) *sqlmock.Rows {
	date := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	return rows.AddRow(id, testUserID, amount, category, subcategory, "", date, date, date)
}

func TestTransactionCreate(t *testing.T) {
	repo, mock := newTestTransactionRepo(t)

	tx := models.Transaction{
		ID:          testTransactionID,
		UserID:      testUserID,
		Amount:      decimal.RequireFromString("12.50"),
		Category:    models.CategoryExpense,
		Subcategory: "food",
		Date:        time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
	}

	mock.ExpectQuery("INSERT INTO transactions").
		WithArgs(testTransactionID, testUserID, sqlmock.AnyArg(), "expense", "food", "", sqlmock.AnyArg()).
		WillReturnRows(addTransactionRow(transactionRows(), testTransactionID, "12.50", "expense", "food"))

	created, err := repo.Create(context.Background(), tx)
	require.NoError(t, err)

	assert.Equal(t, testTransactionID, created.ID)
	assert.Equal(t, models.CategoryExpense, created.Category)
	assert.True(t, decimal.RequireFromString("12.5").Equal(created.Amount))
}

func TestTransactionCreate_DBError(t *testing.T) {
	repo, mock := newTestTransactionRepo(t)

	mock.ExpectQuery("INSERT INTO transactions").WillReturnError(pgError(pgerrcode.CheckViolation))

	_, err := repo.Create(context.Background(), models.Transaction{ID: testTransactionID, UserID: testUserID})
	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.ErrorIs(t, err, ErrValueOutOfRange)
}

func TestTransactionFindByID(t *testing.T) {
	repo, mock := newTestTransactionRepo(t)

	mock.ExpectQuery("SELECT .* FROM transactions WHERE id = \\$1").
		WithArgs(testTransactionID).
		WillReturnRows(addTransactionRow(transactionRows(), testTransactionID, "20", "income", "salary"))

	found, err := repo.FindByID(context.Background(), testTransactionID)
	require.NoError(t, err)
	assert.Equal(t, models.CategoryIncome, found.Category)
	assert.Equal(t, testUserID, found.UserID)
}

func TestTransactionFindByID_NotFound(t *testing.T) {
	repo, mock := newTestTransactionRepo(t)

	mock.ExpectQuery("FROM transactions").
		WithArgs(testTransactionID).
		WillReturnRows(transactionRows())

	_, err := repo.FindByID(context.Background(), testTransactionID)
	assert.ErrorIs(t, err, ErrTransactionNotFound)
}

func TestTransactionFind(t *testing.T) {
	repo, mock := newTestTransactionRepo(t)

	rows := transactionRows()
	addTransactionRow(rows, "t2", "5", "expense", "food")
	addTransactionRow(rows, "t1", "7", "expense", "food")

	mock.ExpectQuery("FROM transactions WHERE user_id = \\$1 AND subcategory = \\$2 ORDER BY date DESC").
		WithArgs(testUserID, "food").
		WillReturnRows(rows)

	list, err := repo.Find(context.Background(), models.TransactionFilter{UserID: testUserID, Subcategory: "food"})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "t2", list[0].ID)
}

func TestTransactionFind_EmptyIsNotNil(t *testing.T) {
	repo, mock := newTestTransactionRepo(t)

	mock.ExpectQuery("FROM transactions").WithArgs(testUserID).WillReturnRows(transactionRows())

	list, err := repo.Find(context.Background(), models.TransactionFilter{UserID: testUserID})
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestTransactionFind_RowError(t *testing.T) {
	repo, mock := newTestTransactionRepo(t)

	rows := addTransactionRow(transactionRows(), "t1", "5", "expense", "food").
		RowError(0, errors.New("broken row"))
	mock.ExpectQuery("FROM transactions").WillReturnRows(rows)

	_, err := repo.Find(context.Background(), models.TransactionFilter{UserID: testUserID})
	assert.ErrorIs(t, err, ErrScanningRows)
}

func TestTransactionUpdate(t *testing.T) {
	repo, mock := newTestTransactionRepo(t)

	subcategory := "groceries"
	mock.ExpectQuery("UPDATE transactions SET subcategory = \\$1, updated_at = now\\(\\) WHERE id = \\$2 AND user_id = \\$3").
		WithArgs(subcategory, testTransactionID, testUserID).
		WillReturnRows(addTransactionRow(transactionRows(), testTransactionID, "5", "expense", subcategory))

	updated, err := repo.Update(context.Background(), models.TransactionUpdate{
		ID:          testTransactionID,
		UserID:      testUserID,
		Subcategory: &subcategory,
	})
	require.NoError(t, err)
	assert.Equal(t, subcategory, updated.Subcategory)
}

func TestTransactionUpdate_NotFound(t *testing.T) {
	repo, mock := newTestTransactionRepo(t)

	description := "x"
	mock.ExpectQuery("UPDATE transactions").WillReturnRows(transactionRows())

	_, err := repo.Update(context.Background(), models.TransactionUpdate{
		ID: testTransactionID, UserID: testUserID, Description: &description,
	})
	assert.ErrorIs(t, err, ErrTransactionNotFound)
}

func TestTransactionUpdate_Empty(t *testing.T) {
	repo, _ := newTestTransactionRepo(t)

	_, err := repo.Update(context.Background(), models.TransactionUpdate{ID: testTransactionID, UserID: testUserID})
	assert.ErrorIs(t, err, ErrBuildingSQLQuery)
}

func TestTransactionDelete(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		wantErr  error
	}{
		{name: "deleted", affected: 1},
		{name: "not found or not owned", affected: 0, wantErr: ErrTransactionNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestTransactionRepo(t)

			mock.ExpectExec("DELETE FROM transactions WHERE id = \\$1 AND user_id = \\$2").
				WithArgs(testTransactionID, testUserID).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			err := repo.Delete(context.Background(), testTransactionID, testUserID)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTransactionSumBySubcategory(t *testing.T) {
	repo, mock := newTestTransactionRepo(t)

	rows := sqlmock.NewRows([]string{"category", "subcategory", "total", "count"}).
		AddRow("expense", "food", "100.00", 3).
		AddRow("income", "salary", "2000.00", 1)

	mock.ExpectQuery("GROUP BY category, subcategory").WithArgs(testUserID).WillReturnRows(rows)

	totals, err := repo.SumBySubcategory(context.Background(), testUserID)
	require.NoError(t, err)
	require.Len(t, totals, 2)

	assert.Equal(t, models.CategoryExpense, totals[0].Category)
	assert.Equal(t, "food", totals[0].Subcategory)
	assert.True(t, decimal.NewFromInt(100).Equal(totals[0].Total))
	assert.Equal(t, 3, totals[0].Count)
}

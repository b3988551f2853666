package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var rentalColumnNames = []string{
	"rental_id", "rental_date", "inventory_id", "customer_id", "return_date", "staff_id",
}

func newRentalRepo(t *testing.T) (*RentalRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewRentalRepo(db), mock
}

func TestRentalOpenRereadsJoinedRow(t *testing.T) {
	repo, mock := newRentalRepo(t)

	mock.ExpectExec("INSERT INTO rental").
		WithArgs(int64(100), int64(7), int64(1)).
		WillReturnResult(sqlmock.NewResult(16050, 1))
	cols := append(append([]string{}, rentalColumnNames...), "film_id", "title", "customer_name")
	mock.ExpectQuery("FROM rental r").WithArgs(int64(16050)).
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(16050, "2026-09-01 10:30:00", 100, 7, nil, 1, 42, "AFRICAN EGG", "MARY SMITH"))

	out, err := repo.Open(context.Background(), 100, 7, 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(16050), out.RentalID)
	assert.Nil(t, out.ReturnDate)
	assert.Equal(t, "AFRICAN EGG", out.FilmTitle)
	assert.Equal(t, "MARY SMITH", out.CustomerName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRentalReturnAlreadyReturned(t *testing.T) {
	repo, mock := newRentalRepo(t)

	// UPDATE touches nothing because return_date is already set.
	mock.ExpectExec("UPDATE rental SET return_date").WithArgs(int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("FROM rental r").WithArgs(int64(9)).
		WillReturnRows(sqlmock.NewRows(rentalColumnNames).
			AddRow(9, "2005-05-25 00:00:40", 11, 2, "2005-05-28 10:01:14", 1))

	_, err := repo.Return(context.Background(), 9)
	assert.ErrorIs(t, err, ErrRentalAlreadyReturned)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRentalReturnUnknown(t *testing.T) {
	repo, mock := newRentalRepo(t)

	mock.ExpectExec("UPDATE rental SET return_date").WithArgs(int64(9999)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery("FROM rental r").WithArgs(int64(9999)).
		WillReturnRows(sqlmock.NewRows(rentalColumnNames))

	_, err := repo.Return(context.Background(), 9999)
	assert.ErrorIs(t, err, ErrRentalNotFound)
}

func TestRentalReturnSetsDate(t *testing.T) {
	repo, mock := newRentalRepo(t)

	mock.ExpectExec("UPDATE rental SET return_date").WithArgs(int64(12)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("FROM rental r").WithArgs(int64(12)).
		WillReturnRows(sqlmock.NewRows(rentalColumnNames).
			AddRow(12, "2026-08-30 18:30:00", 55, 3, "2026-09-01 09:15:00", 2))

	out, err := repo.Return(context.Background(), 12)
	require.NoError(t, err)
	require.NotNil(t, out.ReturnDate)
	assert.Equal(t, "2026-09-01 09:15:00", *out.ReturnDate)
}

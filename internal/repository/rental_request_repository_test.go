package repository

import (
	"context"
	"regexp"
	"testing"

	"medequip-rental-backend/internal/domain/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// A helper function to create a mock database connection.
func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(postgres.New(postgres.Config{
		Conn: db,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock
}

func TestRentalRequestRepository_UpdateStatusFrom(t *testing.T) {
	gormDB, mock := newTestDB(t)
	repo := NewRentalRequestRepository(gormDB)
	id := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "rental_requests" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	affected, err := repo.UpdateStatusFrom(context.Background(), id, entity.RequestStatusPending, entity.RequestStatusApproved)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRentalRequestRepository_UpdateStatusFrom_LostRace(t *testing.T) {
	gormDB, mock := newTestDB(t)
	repo := NewRentalRequestRepository(gormDB)
	id := uuid.New()

	// Another admin settled the request first: the guarded WHERE clause
	// matches nothing.
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE "rental_requests" SET`)).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	affected, err := repo.UpdateStatusFrom(context.Background(), id, entity.RequestStatusPending, entity.RequestStatusRejected)
	require.NoError(t, err)
	assert.Equal(t, int64(0), affected)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRentalRequestRepository_FindByID_NotFound(t *testing.T) {
	gormDB, mock := newTestDB(t)
	repo := NewRentalRequestRepository(gormDB)
	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "rental_requests"`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	request, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Nil(t, request)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRentalRequestRepository_FindByID(t *testing.T) {
	gormDB, mock := newTestDB(t)
	repo := NewRentalRequestRepository(gormDB)
	id := uuid.New()

	rows := sqlmock.NewRows([]string{"id", "admin_status", "duration"}).
		AddRow(id.String(), "pending", "2-week")
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "rental_requests"`)).
		WillReturnRows(rows)

	request, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	require.NotNil(t, request)
	assert.Equal(t, id, request.ID)
	assert.Equal(t, entity.RequestStatusPending, request.AdminStatus)
	assert.Equal(t, "2-week", request.Duration)

	assert.NoError(t, mock.ExpectationsWereMet())
}

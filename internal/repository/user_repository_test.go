package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return db, mock
}

func userColumns() []string {
	return []string{"id", "email", "username", "password_hash", "salt", "email_verified", "is_active", "is_superuser", "created_at"}
}

func TestGormUserRepository_FindByEmail(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	rows := sqlmock.NewRows(userColumns()).
		AddRow(1, "alice@example.com", "alice", "hash", "salt", true, true, false, time.Now())

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WithArgs("alice@example.com", 1).
		WillReturnRows(rows)

	user, err := repo.FindByEmail("alice@example.com")
	require.NoError(t, err)
	require.Equal(t, uint64(1), user.ID)
	require.Equal(t, "alice", user.Username)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormUserRepository_FindByEmail_NotFound(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE email = \$1`).
		WithArgs("ghost@example.com", 1).
		WillReturnRows(sqlmock.NewRows(userColumns()))

	_, err := repo.FindByEmail("ghost@example.com")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormUserRepository_FindByUsername(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	rows := sqlmock.NewRows(userColumns()).
		AddRow(7, "bob@example.com", "bob", "hash", "salt", true, true, false, time.Now())

	mock.ExpectQuery(`SELECT \* FROM "users" WHERE username = \$1`).
		WithArgs("bob", 1).
		WillReturnRows(rows)

	user, err := repo.FindByUsername("bob")
	require.NoError(t, err)
	require.Equal(t, uint64(7), user.ID)
	require.Equal(t, "bob@example.com", user.Email)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGormUserRepository_Update(t *testing.T) {
	db, mock := setupMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "users" SET "username"=\$1 WHERE id = \$2`).
		WithArgs("alice2", uint64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.Update(1, map[string]interface{}{"username": "alice2"})
	require.NoError(t, err)

	require.NoError(t, mock.ExpectationsWereMet())
}

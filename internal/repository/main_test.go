package repository

import (
	"errors"
	"testing"

	"trailpost/internal/database"
	"trailpost/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// newTestDB opens an isolated in-memory database with the schema migrated.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.ConnectTest()
	require.NoError(t, err)

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	return db
}

func createTestUser(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	user := &models.User{
		Email:    email,
		Password: "not-a-real-hash",
		Name:     "Test User",
		IsActive: true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

// assertNotFound verifies that err is the masked not-found error, which is
// what cross-owner access must look like.
func assertNotFound(t *testing.T, err error) {
	t.Helper()

	require.Error(t, err)
	var appErr *models.AppError
	require.True(t, errors.As(err, &appErr))
	require.Equal(t, "NOT_FOUND", appErr.Code)
}

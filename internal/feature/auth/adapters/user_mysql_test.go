package adapters

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"feedback_backend/internal/feature/auth/domain/entity"
	"feedback_backend/internal/feature/auth/usecase"
	feedbackentity "feedback_backend/internal/feature/feedback/domain/entity"
)

// setupTestDB prepares an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to initialize test database")

	err = db.AutoMigrate(&entity.User{}, &feedbackentity.Feedback{})
	require.NoError(t, err, "failed to migrate tables")

	return db
}

func newTestUser(username, email string) *entity.User {
	return &entity.User{
		Username:  username,
		Email:     email,
		Password:  "hashed_password",
		FirstName: "Test",
		LastName:  "User",
	}
}

func TestNewUserMySQL(t *testing.T) {
	db := setupTestDB(t)

	repo := NewUserMySQL(db)

	assert.NotNil(t, repo, "repository is nil")
	assert.NotNil(t, repo.db, "database connection is nil")
}

func TestUserMySQL_Create(t *testing.T) {
	t.Run("successful user creation", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		user := newTestUser("whiskey", "whiskey@example.com")

		err := repo.Create(context.Background(), user)

		assert.NoError(t, err, "failed to create user")
		assert.NotZero(t, user.ID, "ID is not set")
		assert.False(t, user.CreatedAt.IsZero(), "CreatedAt is not set")
	})

	t.Run("duplicate username error", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		require.NoError(t, repo.Create(context.Background(), newTestUser("dup", "first@example.com")))

		err := repo.Create(context.Background(), newTestUser("dup", "second@example.com"))

		assert.Error(t, err, "should return duplicate error")
	})

	t.Run("duplicate email error", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		require.NoError(t, repo.Create(context.Background(), newTestUser("first", "dup@example.com")))

		err := repo.Create(context.Background(), newTestUser("second", "dup@example.com"))

		assert.Error(t, err, "should return duplicate error")
	})
}

func TestUserMySQL_FindByUsername(t *testing.T) {
	t.Run("find user by username successfully", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		expected := newTestUser("whiskey", "whiskey@example.com")
		require.NoError(t, repo.Create(context.Background(), expected))

		found, err := repo.FindByUsername(context.Background(), "whiskey")

		assert.NoError(t, err, "failed to find user")
		require.NotNil(t, found, "user is nil")
		assert.Equal(t, expected.ID, found.ID, "ID does not match")
		assert.Equal(t, expected.Email, found.Email, "email does not match")
	})

	t.Run("username not found error", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		found, err := repo.FindByUsername(context.Background(), "ghost")

		assert.Nil(t, found, "user should be nil")
		assert.ErrorIs(t, err, usecase.ErrUserNotFound, "should return ErrUserNotFound")
	})

	t.Run("find correct user when multiple users exist", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		users := []*entity.User{
			newTestUser("user1", "user1@example.com"),
			newTestUser("user2", "user2@example.com"),
			newTestUser("user3", "user3@example.com"),
		}
		for _, u := range users {
			require.NoError(t, repo.Create(context.Background(), u))
		}

		found, err := repo.FindByUsername(context.Background(), "user2")

		assert.NoError(t, err, "failed to find user")
		require.NotNil(t, found, "user is nil")
		assert.Equal(t, users[1].ID, found.ID, "ID does not match")
	})
}

func TestUserMySQL_FindByEmail(t *testing.T) {
	t.Run("find user by email successfully", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		expected := newTestUser("whiskey", "whiskey@example.com")
		require.NoError(t, repo.Create(context.Background(), expected))

		found, err := repo.FindByEmail(context.Background(), "whiskey@example.com")

		assert.NoError(t, err, "failed to find user")
		require.NotNil(t, found, "user is nil")
		assert.Equal(t, expected.ID, found.ID, "ID does not match")
	})

	t.Run("email not found error", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		found, err := repo.FindByEmail(context.Background(), "nobody@example.com")

		assert.Nil(t, found, "user should be nil")
		assert.ErrorIs(t, err, usecase.ErrUserNotFound, "should return ErrUserNotFound")
	})
}

func TestUserMySQL_FindByID(t *testing.T) {
	t.Run("find user by ID successfully", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		expected := newTestUser("whiskey", "whiskey@example.com")
		require.NoError(t, repo.Create(context.Background(), expected))

		found, err := repo.FindByID(context.Background(), expected.ID)

		assert.NoError(t, err, "failed to find user")
		require.NotNil(t, found, "user is nil")
		assert.Equal(t, "whiskey", found.Username, "username does not match")
	})

	t.Run("ID not found error", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		found, err := repo.FindByID(context.Background(), 9999)

		assert.Nil(t, found, "user should be nil")
		assert.ErrorIs(t, err, usecase.ErrUserNotFound, "should return ErrUserNotFound")
	})
}

func TestUserMySQL_Delete(t *testing.T) {
	t.Run("deletes the user and all owned feedback", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		owner := newTestUser("owner", "owner@example.com")
		other := newTestUser("other", "other@example.com")
		require.NoError(t, repo.Create(context.Background(), owner))
		require.NoError(t, repo.Create(context.Background(), other))

		rows := []feedbackentity.Feedback{
			{UserID: owner.ID, Title: "one", Content: "first note"},
			{UserID: owner.ID, Title: "two", Content: "second note"},
			{UserID: other.ID, Title: "keep", Content: "someone else's note"},
		}
		for i := range rows {
			require.NoError(t, db.Create(&rows[i]).Error)
		}

		err := repo.Delete(context.Background(), owner.ID)
		assert.NoError(t, err, "failed to delete user")

		// The user row is gone
		_, err = repo.FindByID(context.Background(), owner.ID)
		assert.ErrorIs(t, err, usecase.ErrUserNotFound)

		// Zero feedback rows reference the deleted user
		var ownerRows int64
		require.NoError(t, db.Model(&feedbackentity.Feedback{}).
			Where("user_id = ?", owner.ID).Count(&ownerRows).Error)
		assert.Zero(t, ownerRows, "owned feedback must be deleted with the account")

		// Other users' feedback is untouched
		var otherRows int64
		require.NoError(t, db.Model(&feedbackentity.Feedback{}).
			Where("user_id = ?", other.ID).Count(&otherRows).Error)
		assert.EqualValues(t, 1, otherRows, "unrelated feedback must survive")
	})

	t.Run("unknown user error", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewUserMySQL(db)

		err := repo.Delete(context.Background(), 9999)

		assert.ErrorIs(t, err, usecase.ErrUserNotFound, "should return ErrUserNotFound")
	})
}

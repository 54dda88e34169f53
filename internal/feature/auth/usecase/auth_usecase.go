package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"feedback_backend/internal/feature/auth/domain/entity"
)

const (
	// minPasswordLength defines the minimum password length.
	minPasswordLength = 8
)

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase),
// not the provider (adapters).
type UserRepository interface {
	// Create persists a new user. It returns ErrUserAlreadyExists when the
	// username or email is already taken.
	Create(ctx context.Context, user *entity.User) error

	// FindByUsername retrieves a user by username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByEmail retrieves a user by email address.
	FindByEmail(ctx context.Context, email string) (*entity.User, error)

	// FindByID retrieves a user by ID.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// Delete removes a user together with all feedback the user owns,
	// inside a single transaction.
	Delete(ctx context.Context, id uint) error
}

// RegisterInput carries the validated registration fields into the usecase.
type RegisterInput struct {
	Username  string
	Password  string
	Email     string
	FirstName string
	LastName  string
}

// authUsecase implements the authentication business logic.
type authUsecase struct {
	users UserRepository
}

// NewAuthUsecase creates a new instance of authUsecase.
func NewAuthUsecase(users UserRepository) *authUsecase {
	return &authUsecase{users: users}
}

// validatePassword checks that the password meets the security requirements.
func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters long", minPasswordLength)
	}
	return nil
}

// Register creates a new user with a bcrypt-hashed password.
// Username and email uniqueness is checked up front so the caller gets a
// clean ErrUserAlreadyExists; the repository maps the storage-level
// duplicate-key error to the same sentinel, which covers the race between
// two concurrent registrations.
func (u *authUsecase) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	if err := validatePassword(in.Password); err != nil {
		return nil, err
	}

	email := strings.ToLower(in.Email)

	if _, err := u.users.FindByUsername(ctx, in.Username); err == nil {
		return nil, ErrUserAlreadyExists
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}
	if _, err := u.users.FindByEmail(ctx, email); err == nil {
		return nil, ErrUserAlreadyExists
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &entity.User{
		Username:  in.Username,
		Email:     email,
		Password:  string(hashed),
		FirstName: in.FirstName,
		LastName:  in.LastName,
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login authenticates a user and returns the account on success.
// To prevent timing attacks a bcrypt comparison runs even when the username
// is unknown, so response time does not leak account existence.
func (u *authUsecase) Login(ctx context.Context, username, password string) (*entity.User, error) {
	user, err := u.users.FindByUsername(ctx, username)

	// Dummy hash keeps bcrypt.CompareHashAndPassword on the unknown-user path.
	passwordHash := "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"
	if err == nil {
		passwordHash = user.Password
	}

	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	if err != nil || compareErr != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// GetByUsername retrieves a user for profile display.
func (u *authUsecase) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	return u.users.FindByUsername(ctx, username)
}

// DeleteAccount removes the named account and everything it owns.
// The caller's session identity is re-verified against the stored record
// before anything is deleted.
func (u *authUsecase) DeleteAccount(ctx context.Context, username string, callerID uint) error {
	user, err := u.users.FindByUsername(ctx, username)
	if err != nil {
		return err
	}
	if user.ID != callerID {
		return ErrNotAccountOwner
	}
	return u.users.Delete(ctx, user.ID)
}

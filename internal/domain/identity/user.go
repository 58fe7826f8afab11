package identity

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/lmsales/backend/internal/domain/shared"
)

// Role determines what a user may see and change.
type Role string

const (
	// RoleAdmin is the head-office administrator: every store, plus
	// provisioning and cross-store reports.
	RoleAdmin Role = "admin"
	// RoleStore is a franchise store account bound to a single store.
	RoleStore Role = "store"
)

const bcryptCost = 10

// User is a login account. Store accounts carry the store they belong to;
// admin accounts have no store.
type User struct {
	shared.BaseEntity
	Username     string
	PasswordHash string
	Role         Role
	StoreID      *uuid.UUID // nil for admins
	LastLoginAt  *time.Time
}

// NewStoreUser creates an account bound to a store.
func NewStoreUser(username, password string, storeID uuid.UUID) (*User, error) {
	if storeID == uuid.Nil {
		return nil, shared.ErrStoreRequired
	}
	user, err := newUser(username, password, RoleStore)
	if err != nil {
		return nil, err
	}
	user.StoreID = &storeID
	return user, nil
}

// NewAdminUser creates a head-office administrator account.
func NewAdminUser(username, password string) (*User, error) {
	return newUser(username, password, RoleAdmin)
}

func newUser(username, password string, role Role) (*User, error) {
	username = strings.ToLower(strings.TrimSpace(username))
	if err := validateUsername(username); err != nil {
		return nil, err
	}
	hash, err := hashPassword(password)
	if err != nil {
		return nil, err
	}
	return &User{
		BaseEntity:   shared.NewBaseEntity(),
		Username:     username,
		PasswordHash: hash,
		Role:         role,
	}, nil
}

// CheckPassword verifies a plaintext password against the stored hash.
func (u *User) CheckPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil
}

// ChangePassword replaces the stored hash with one for the new password.
func (u *User) ChangePassword(password string) error {
	hash, err := hashPassword(password)
	if err != nil {
		return err
	}
	u.PasswordHash = hash
	u.Touch()
	return nil
}

// Rename changes the login name, normalizing to lower case.
func (u *User) Rename(username string) error {
	username = strings.ToLower(strings.TrimSpace(username))
	if err := validateUsername(username); err != nil {
		return err
	}
	u.Username = username
	u.Touch()
	return nil
}

// RecordLogin stamps a successful login.
func (u *User) RecordLogin(at time.Time) {
	u.LastLoginAt = &at
	u.Touch()
}

// IsAdmin reports whether the user is a head-office administrator.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func validateUsername(username string) error {
	if len(username) < 3 || len(username) > 100 {
		return shared.NewDomainError("INVALID_USERNAME", "Username must be 3-100 characters")
	}
	return nil
}

func hashPassword(password string) (string, error) {
	if len(password) < 4 {
		return "", shared.NewDomainError("WEAK_PASSWORD", "Password must be at least 4 characters")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", shared.NewDomainError("PASSWORD_HASH_ERROR", "Failed to hash password")
	}
	return string(hash), nil
}

// UserRepository is the persistence contract for login accounts.
type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
	FindByUsername(ctx context.Context, username string) (*User, error)
	FindByStoreID(ctx context.Context, storeID uuid.UUID) (*User, error)
	Save(ctx context.Context, u *User) error
	DeleteByStoreID(ctx context.Context, storeID uuid.UUID) error
}

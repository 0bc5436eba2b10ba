package user

import (
	"time"

	"github.com/google/uuid"
)

// User entity. Hotel operator accounts only; guests are plain booking fields.
type User struct {
	id           uuid.UUID
	name         string
	email        Email
	passwordHash string
	role         Role
	lastLogin    *time.Time
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(name string, email Email, passwordHash string, role Role) *User {
	return &User{
		id:           uuid.New(),
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
	}
}

func ReconstructUser(id uuid.UUID, name string, email Email, passwordHash string, role Role, lastLogin *time.Time, createdAt, updatedAt time.Time) *User {
	return &User{
		id:           id,
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		lastLogin:    lastLogin,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}
}

func (u *User) ID() uuid.UUID         { return u.id }
func (u *User) Name() string          { return u.name }
func (u *User) Email() Email          { return u.email }
func (u *User) PasswordHash() string  { return u.passwordHash }
func (u *User) Role() Role            { return u.role }
func (u *User) LastLogin() *time.Time { return u.lastLogin }
func (u *User) CreatedAt() time.Time  { return u.createdAt }
func (u *User) UpdatedAt() time.Time  { return u.updatedAt }

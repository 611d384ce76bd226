// FILE: internal/entity/user_entity.go
package entity

import (
	"time"

	"github.com/google/uuid"
)

type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

type User struct {
	Id           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	Role         UserRole
	// Preferences is free-form personalization state (favorite categories,
	// dietary flags) kept as a JSON document.
	Preferences    map[string]interface{}
	FailedAttempts int
	LastLogin      *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (u *User) IsAdmin() bool {
	return u.Role == UserRoleAdmin
}

// Package models defines server-side data models persisted in the database.
package models

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// UserRole is the closed set of roles stored in the user_role enum column.
type UserRole string

const (
	RoleAdmin UserRole = "admin"
	RoleUser  UserRole = "user"
)

// Valid reports whether r is one of the known roles.
func (r UserRole) Valid() bool {
	switch r {
	case RoleAdmin, RoleUser:
		return true
	}
	return false
}

func (r UserRole) String() string {
	return string(r)
}

// Scan implements sql.Scanner. Unknown labels are rejected so a User never
// carries a role outside the enumeration.
func (r *UserRole) Scan(src any) error {
	var s string
	switch v := src.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return fmt.Errorf("cannot scan %T into UserRole", src)
	}
	role := UserRole(s)
	if !role.Valid() {
		return fmt.Errorf("unknown user role %q", s)
	}
	*r = role
	return nil
}

// Value implements driver.Valuer.
func (r UserRole) Value() (driver.Value, error) {
	if !r.Valid() {
		return nil, fmt.Errorf("unknown user role %q", string(r))
	}
	return string(r), nil
}

// User is one row of the users table.
//
// VerificationToken and TokenExpiresAt are either both set (a verification is
// pending) or both nil.
type User struct {
	ID                uuid.UUID
	Name              string
	Email             string
	Password          string
	Verified          bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
	VerificationToken *string
	TokenExpiresAt    *time.Time
	Role              UserRole
}

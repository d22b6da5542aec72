package model

import (
	"fmt"
	"time"
)

// Role is the closed set of privilege levels. The storage layer translates
// to and from the text column; an unrecognized persisted value never becomes
// a usable role.
type Role string

const (
	RoleReader Role = "READER"
	RoleWriter Role = "WRITER"
	RoleEditor Role = "EDITOR"
	RoleAdmin  Role = "ADMIN"

	// RoleInvalid marks unparseable input. It holds no privileges and is
	// never accepted as a required role.
	RoleInvalid Role = "INVALID"
)

// ParseRole maps free-form input to a member of the closed role set.
// Unrecognized input yields RoleInvalid together with an error so callers
// can distinguish a data-integrity anomaly from a valid role.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleReader, RoleWriter, RoleEditor, RoleAdmin:
		return Role(s), nil
	}
	return RoleInvalid, fmt.Errorf("unrecognized role %q", s)
}

func (r Role) Valid() bool {
	switch r {
	case RoleReader, RoleWriter, RoleEditor, RoleAdmin:
		return true
	}
	return false
}

func (r Role) String() string { return string(r) }

type User struct {
	ID             int64     `json:"id"`
	Email          string    `json:"email"`
	FullName       string    `json:"fullname"`
	HashedPassword string    `json:"-"` // Not exposed
	Role           Role      `json:"role"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

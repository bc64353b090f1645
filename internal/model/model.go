// Package model defines the persisted record shapes and their builders.
//
// Each entity has a builder holding optional fields. ApplyDefaults fills
// the unset ones in a fixed order, and Build turns a complete builder into
// an immutable entity value. Builders are single-use and not safe for
// concurrent use.
package model

import (
	"database/sql/driver"
	"fmt"

	"github.com/google/uuid"
)

// UserKind is the closed set of user kinds, stored as the PostgreSQL
// enum type user_kind.
type UserKind string

const (
	UserKindNormal UserKind = "Normal"
	UserKindAdmin  UserKind = "Admin"
)

// ParseUserKind accepts exactly the stored text encodings.
func ParseUserKind(s string) (UserKind, error) {
	switch UserKind(s) {
	case UserKindNormal, UserKindAdmin:
		return UserKind(s), nil
	}
	return "", fmt.Errorf("unknown user kind %q (must be one of: Normal, Admin)", s)
}

func (k UserKind) String() string { return string(k) }

func (k UserKind) MarshalText() ([]byte, error) {
	if _, err := ParseUserKind(string(k)); err != nil {
		return nil, err
	}
	return []byte(k), nil
}

func (k *UserKind) UnmarshalText(text []byte) error {
	kind, err := ParseUserKind(string(text))
	if err != nil {
		return err
	}
	*k = kind
	return nil
}

// Value implements driver.Valuer so pgx sends the enum label as text.
func (k UserKind) Value() (driver.Value, error) {
	if _, err := ParseUserKind(string(k)); err != nil {
		return nil, err
	}
	return string(k), nil
}

// User is a row of public.users.
type User struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Kind  UserKind  `json:"kind"`
}

// Company is a row of public.companies.
type Company struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// Content is a key-value record. Key is the Redis key and is never part
// of the stored value.
type Content struct {
	Key   string `json:"key"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Package user exposes the read-only customer data other components need.
package user

import (
	"context"

	"github.com/go-faster/errors"
)

// ErrNotFound is returned when a user does not exist.
var ErrNotFound = errors.New("user not found")

// User is a storefront customer.
type User struct {
	ID    int64
	Email string
	Name  string
}

// Repository looks users up by id.
type Repository interface {
	GetByID(ctx context.Context, id int64) (*User, error)
}

package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// UserStore defines read operations for users.
type UserStore interface {
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	GetAll(ctx context.Context) ([]User, error)
}

// User represents a stored user account.
type User struct {
	ID        uuid.UUID
	Username  string
	Email     string
	CreatedAt time.Time
	IsActive  bool
}

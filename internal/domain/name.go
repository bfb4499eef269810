package domain

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"
)

// FullName is a free-standing display name record
type FullName struct {
	ID        ulid.ULID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

// ValidateFullName returns a validation error for names shorter than five characters
func ValidateFullName(name string) error {
	if IsBlank(name) {
		return NewValidationError("Name is required and cannot be empty.")
	}
	if len(name) < 5 {
		return NewValidationError("Name must be 5 characters")
	}
	return nil
}

type NameRepository interface {
	Create(ctx context.Context, n *FullName) error
	List(ctx context.Context) ([]*FullName, error)
	FindByID(ctx context.Context, id ulid.ULID) (*FullName, error)
	Update(ctx context.Context, id ulid.ULID, name string) error
	Delete(ctx context.Context, id ulid.ULID) error
}

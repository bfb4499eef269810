package domain

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"
)

// Contact is a message left through the public contact form
type Contact struct {
	ID        ulid.ULID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type ContactPatch struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Message *string `json:"message"`
}

func (p ContactPatch) IsEmpty() bool {
	return p.Name == nil && p.Email == nil && p.Message == nil
}

type ContactRepository interface {
	Create(ctx context.Context, c *Contact) error
	List(ctx context.Context) ([]*Contact, error)
	FindByID(ctx context.Context, id ulid.ULID) (*Contact, error)
	Update(ctx context.Context, id ulid.ULID, patch ContactPatch) error
	Delete(ctx context.Context, id ulid.ULID) error
}

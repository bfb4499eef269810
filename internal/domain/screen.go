package domain

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"
)

// Screen is an onboarding/marketing screen shown by the mobile app
type Screen struct {
	ID           ulid.ULID `json:"id"`
	Name         string    `json:"name"`
	Image        string    `json:"image"`
	DetailsImage string    `json:"detailsimage"`
	Description  string    `json:"description"`
	CreatedAt    time.Time `json:"created_at"`
}

type ScreenPatch struct {
	Name         *string
	Image        *string
	DetailsImage *string
	Description  *string
}

func (p ScreenPatch) IsEmpty() bool {
	return p.Name == nil && p.Image == nil && p.DetailsImage == nil && p.Description == nil
}

type ScreenRepository interface {
	Create(ctx context.Context, s *Screen) error
	List(ctx context.Context) ([]*Screen, error)
	FindByID(ctx context.Context, id ulid.ULID) (*Screen, error)
	Update(ctx context.Context, id ulid.ULID, patch ScreenPatch) ([]string, error)
	Delete(ctx context.Context, id ulid.ULID) ([]string, error)
}

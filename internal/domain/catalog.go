package domain

import (
	"context"
	"time"

	"github.com/oklog/ulid/v2"
)

// Category groups grooming services
type Category struct {
	ID           ulid.ULID `json:"id"`
	CategoryName string    `json:"categoryName"`
	CategoryImg  *string   `json:"categoryImg"`
	Description  *string   `json:"description"`
	Price        *float64  `json:"price"`
	ColorCode    *string   `json:"colorcode"`
	CreatedAt    time.Time `json:"createdAt"`
}

type CategoryPatch struct {
	CategoryName *string
	CategoryImg  *string
	Description  *string
	Price        *float64
	ColorCode    *string
}

func (p CategoryPatch) IsEmpty() bool {
	return p.CategoryName == nil && p.CategoryImg == nil && p.Description == nil &&
		p.Price == nil && p.ColorCode == nil
}

type CategoryRepository interface {
	Create(ctx context.Context, c *Category) error
	List(ctx context.Context) ([]*Category, error)
	Update(ctx context.Context, id ulid.ULID, patch CategoryPatch) ([]string, error)
	Delete(ctx context.Context, id ulid.ULID) ([]string, error)
}

// Service is a bookable service inside a category
type Service struct {
	ID            ulid.ULID `json:"id"`
	CategoryID    ulid.ULID `json:"categoryId"`
	ServiceName   string    `json:"serviceName"`
	ColorResource string    `json:"colorResource"`
	ServiceImg    *string   `json:"serviceImg"`
	ServiceIcon   *string   `json:"serviceIcon"`
	Description   string    `json:"description"`
	Price         float64   `json:"price"`
	CreatedAt     time.Time `json:"createdAt"`
}

type ServicePatch struct {
	ServiceName   *string
	ColorResource *string
	ServiceImg    *string
	ServiceIcon   *string
	Description   *string
	Price         *float64
}

func (p ServicePatch) IsEmpty() bool {
	return p.ServiceName == nil && p.ColorResource == nil && p.ServiceImg == nil &&
		p.ServiceIcon == nil && p.Description == nil && p.Price == nil
}

type ServiceRepository interface {
	Create(ctx context.Context, s *Service) error
	ListByCategory(ctx context.Context, categoryID ulid.ULID) ([]*Service, error)
	Update(ctx context.Context, id ulid.ULID, patch ServicePatch) ([]string, error)
	Delete(ctx context.Context, id ulid.ULID) ([]string, error)
}

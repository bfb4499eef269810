package domain

import (
	"context"

	"github.com/oklog/ulid/v2"
)

// PriceService is an entry of the public price list
type PriceService struct {
	ID    ulid.ULID `json:"id"`
	Name  string    `json:"name"`
	Price float64   `json:"price"`
}

type PriceServicePatch struct {
	Name  *string  `json:"name"`
	Price *float64 `json:"price"`
}

func (p PriceServicePatch) IsEmpty() bool { return p.Name == nil && p.Price == nil }

// SubService is an item listed under a price list entry
type SubService struct {
	ID        ulid.ULID `json:"id"`
	ServiceID ulid.ULID `json:"service_id"`
	Name      string    `json:"name"`
	Img       *string   `json:"img"`
	Color     string    `json:"color"`
}

type SubServicePatch struct {
	Name  *string
	Img   *string
	Color *string
}

func (p SubServicePatch) IsEmpty() bool { return p.Name == nil && p.Img == nil && p.Color == nil }

// PriceServiceWithSubs is a price list entry with its sub-services
type PriceServiceWithSubs struct {
	ServiceID   ulid.ULID     `json:"service_id"`
	ServiceName string        `json:"service_name"`
	Price       float64       `json:"price"`
	SubServices []*SubService `json:"sub_services"`
}

type PriceServiceRepository interface {
	Create(ctx context.Context, p *PriceService) error
	List(ctx context.Context) ([]*PriceService, error)
	FindByID(ctx context.Context, id ulid.ULID) (*PriceService, error)
	Update(ctx context.Context, id ulid.ULID, patch PriceServicePatch) error
	Delete(ctx context.Context, id ulid.ULID) error

	// ListWithSubServices returns every entry with its sub-services; an entry
	// without sub-services carries an empty list
	ListWithSubServices(ctx context.Context) ([]*PriceServiceWithSubs, error)
	FindWithSubServices(ctx context.Context, id ulid.ULID) (*PriceServiceWithSubs, error)
}

type SubServiceRepository interface {
	Create(ctx context.Context, s *SubService) error
	List(ctx context.Context) ([]*SubService, error)
	ListByService(ctx context.Context, serviceID ulid.ULID) ([]*SubService, error)
	Update(ctx context.Context, id ulid.ULID, patch SubServicePatch) ([]string, error)
	Delete(ctx context.Context, id ulid.ULID) ([]string, error)
}

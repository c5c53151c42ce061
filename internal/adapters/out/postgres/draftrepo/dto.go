// Package draftrepo persists draft sessions. The contents are kept as one JSON
// document because they are unvalidated until the session is submitted.
package draftrepo

import (
	"time"

	"errand/internal/core/domain/model/draft"
	"errand/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// SessionDTO is the draft_sessions table.
type SessionDTO struct {
	ID         uuid.UUID                      `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID                      `gorm:"type:uuid;index;not null"`
	Payload    datatypes.JSONType[PayloadDTO] `gorm:"type:jsonb;not null"`
	CreatedAt  time.Time                      `gorm:"not null;autoCreateTime:false"`
	UpdatedAt  time.Time                      `gorm:"not null;autoUpdateTime:false"`
}

func (SessionDTO) TableName() string {
	return "draft_sessions"
}

// PayloadDTO is the JSON document stored in the payload column.
type PayloadDTO struct {
	OrderType string    `json:"order_type,omitempty"`
	Status    string    `json:"status,omitempty"`
	Currency  string    `json:"currency,omitempty"`
	Totals    TotalsDTO `json:"totals"`
	Pickup    *PointDTO `json:"pickup,omitempty"`
	Dropoff   *PointDTO `json:"dropoff,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	Items     []ItemDTO `json:"items"`
}

type TotalsDTO struct {
	Subtotal    decimal.Decimal `json:"subtotal"`
	DeliveryFee decimal.Decimal `json:"delivery_fee"`
	ServiceFee  decimal.Decimal `json:"service_fee"`
	Total       decimal.Decimal `json:"total"`
}

type PointDTO struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address,omitempty"`
}

type ItemDTO struct {
	CatalogRef  string          `json:"catalog_ref,omitempty"`
	Description string          `json:"description,omitempty"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

func fromDomain(s *draft.Session) SessionDTO {
	c := s.Contents()

	items := make([]ItemDTO, 0, len(c.Items))
	for _, item := range c.Items {
		items = append(items, ItemDTO{
			CatalogRef:  item.CatalogRef,
			Description: item.Description,
			Quantity:    item.Quantity,
			Price:       item.Price,
		})
	}

	return SessionDTO{
		ID:         s.ID().Bytes(),
		CustomerID: s.CustomerID().Bytes(),
		Payload: datatypes.NewJSONType(PayloadDTO{
			OrderType: c.OrderType,
			Status:    c.Status,
			Currency:  c.Currency,
			Totals: TotalsDTO{
				Subtotal:    c.Totals.Subtotal,
				DeliveryFee: c.Totals.DeliveryFee,
				ServiceFee:  c.Totals.ServiceFee,
				Total:       c.Totals.Total,
			},
			Pickup:  pointFromDomain(c.Pickup),
			Dropoff: pointFromDomain(c.Dropoff),
			Notes:   c.Notes,
			Items:   items,
		}),
		CreatedAt: s.CreatedAt(),
		UpdatedAt: s.UpdatedAt(),
	}
}

func toDomain(dto SessionDTO) (*draft.Session, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	p := dto.Payload.Data()

	var items []draft.Item
	for _, item := range p.Items {
		items = append(items, draft.Item{
			CatalogRef:  item.CatalogRef,
			Description: item.Description,
			Quantity:    item.Quantity,
			Price:       item.Price,
		})
	}

	contents := draft.Contents{
		OrderType: p.OrderType,
		Status:    p.Status,
		Currency:  p.Currency,
		Totals: draft.Totals{
			Subtotal:    p.Totals.Subtotal,
			DeliveryFee: p.Totals.DeliveryFee,
			ServiceFee:  p.Totals.ServiceFee,
			Total:       p.Totals.Total,
		},
		Pickup:  pointToDomain(p.Pickup),
		Dropoff: pointToDomain(p.Dropoff),
		Notes:   p.Notes,
		Items:   items,
	}

	return draft.RestoreSession(id, customerID, contents, dto.CreatedAt, dto.UpdatedAt)
}

func pointFromDomain(p *draft.Point) *PointDTO {
	if p == nil {
		return nil
	}
	return &PointDTO{Lat: p.Lat, Lng: p.Lng, Address: p.Address}
}

func pointToDomain(p *PointDTO) *draft.Point {
	if p == nil {
		return nil
	}
	return &draft.Point{Lat: p.Lat, Lng: p.Lng, Address: p.Address}
}

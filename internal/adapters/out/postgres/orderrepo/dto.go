// Package orderrepo persists the order aggregate: the order row, its line items and
// its stages. Items and stages live in their own tables keyed by order id and are
// always written and loaded together with the order.
package orderrepo

import (
	"time"

	"errand/internal/core/domain/model/kernel"
	"errand/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the orders table. Status columns are indexed together with updated_at
// for the pickup window queries.
type OrderDTO struct {
	ID           uuid.UUID    `gorm:"type:uuid;primaryKey"`
	CustomerID   uuid.UUID    `gorm:"type:uuid;index;not null"`
	Type         string       `gorm:"type:varchar(32);not null"`
	Status       int          `gorm:"not null;index:idx_orders_status_updated_at,priority:1"`
	EscrowStatus int          `gorm:"not null"`
	Totals       TotalsDTO    `gorm:"embedded"`
	Currency     string       `gorm:"type:char(3);not null"`
	Pickup       *LocationDTO `gorm:"embedded;embeddedPrefix:pickup_"`
	Dropoff      LocationDTO  `gorm:"embedded;embeddedPrefix:dropoff_"`
	Notes        string       `gorm:"type:text"`
	CreatedAt    time.Time    `gorm:"not null;autoCreateTime:false"`
	UpdatedAt    time.Time    `gorm:"not null;autoUpdateTime:false;index:idx_orders_status_updated_at,priority:2"`
	Items        []ItemDTO    `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	Stages       []StageDTO   `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// TotalsDTO keeps every amount in its own numeric column.
type TotalsDTO struct {
	Subtotal    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	DeliveryFee decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	ServiceFee  decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Total       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

// LocationDTO is an embedded point. Pickup columns are NULL when no pickup was given.
type LocationDTO struct {
	Lat     *float64 `gorm:"type:double precision"`
	Lng     *float64 `gorm:"type:double precision"`
	Address string   `gorm:"type:text"`
}

// ItemDTO is the order_items table.
type ItemDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID       `gorm:"type:uuid;index;not null"`
	CatalogRef  string          `gorm:"type:varchar(128)"`
	Description string          `gorm:"type:text"`
	Quantity    int             `gorm:"not null"`
	UnitPrice   decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

func (ItemDTO) TableName() string {
	return "order_items"
}

// StageDTO is the order_stages table. The sequence number is unique per order.
type StageDTO struct {
	ID         uuid.UUID    `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID    `gorm:"type:uuid;not null;uniqueIndex:idx_order_stages_sequence,priority:1"`
	Type       string       `gorm:"type:varchar(16);not null"`
	SequenceNo int          `gorm:"not null;uniqueIndex:idx_order_stages_sequence,priority:2"`
	Status     int          `gorm:"not null"`
	Location   *LocationDTO `gorm:"embedded;embeddedPrefix:location_"`
}

func (StageDTO) TableName() string {
	return "order_stages"
}

func fromDomain(o *order.Order) OrderDTO {
	orderID := o.ID().Bytes()

	items := make([]ItemDTO, 0, len(o.Items()))
	for _, item := range o.Items() {
		spec := item.Spec()
		items = append(items, ItemDTO{
			ID:          item.ID().Bytes(),
			OrderID:     orderID,
			CatalogRef:  spec.CatalogRef(),
			Description: spec.Description(),
			Quantity:    spec.Quantity(),
			UnitPrice:   spec.UnitPrice(),
		})
	}

	stages := make([]StageDTO, 0, len(o.Stages()))
	for _, stage := range o.Stages() {
		stages = append(stages, stageFromDomain(stage))
	}

	totals := o.Totals()

	return OrderDTO{
		ID:           orderID,
		CustomerID:   o.CustomerID().Bytes(),
		Type:         o.Type().String(),
		Status:       int(o.Status()),
		EscrowStatus: int(o.EscrowStatus()),
		Totals: TotalsDTO{
			Subtotal:    totals.Subtotal(),
			DeliveryFee: totals.DeliveryFee(),
			ServiceFee:  totals.ServiceFee(),
			Total:       totals.Total(),
		},
		Currency:  o.Currency(),
		Pickup:    locationFromDomain(o.Pickup()),
		Dropoff:   dropoffFromDomain(o.Dropoff()),
		Notes:     o.Notes(),
		CreatedAt: o.CreatedAt(),
		UpdatedAt: o.UpdatedAt(),
		Items:     items,
		Stages:    stages,
	}
}

func stageFromDomain(s *order.Stage) StageDTO {
	return StageDTO{
		ID:         s.ID().Bytes(),
		OrderID:    s.OrderID().Bytes(),
		Type:       string(s.Type()),
		SequenceNo: s.SequenceNo(),
		Status:     int(s.Status()),
		Location:   locationFromDomain(s.Location()),
	}
}

func dropoffFromDomain(loc kernel.Location) LocationDTO {
	return *locationFromDomain(&loc)
}

func locationFromDomain(loc *kernel.Location) *LocationDTO {
	if loc == nil {
		return nil
	}
	lat, lng := loc.Lat(), loc.Lng()
	return &LocationDTO{Lat: &lat, Lng: &lng, Address: loc.Address()}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	totals, err := order.NewTotals(dto.Totals.Subtotal, dto.Totals.DeliveryFee, dto.Totals.ServiceFee, dto.Totals.Total)
	if err != nil {
		return nil, err
	}

	pickup, err := locationToDomain(dto.Pickup)
	if err != nil {
		return nil, err
	}

	dropoff, err := locationToDomain(&dto.Dropoff)
	if err != nil {
		return nil, err
	}
	if dropoff == nil {
		return nil, kernel.ErrLocationIsNotConstructed
	}

	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := itemToDomain(id, itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	stages := make([]*order.Stage, 0, len(dto.Stages))
	for _, stageDTO := range dto.Stages {
		stage, stageErr := stageToDomain(id, stageDTO)
		if stageErr != nil {
			return nil, stageErr
		}
		stages = append(stages, stage)
	}

	return order.RestoreOrder(order.Snapshot{
		ID:           id,
		CustomerID:   customerID,
		Type:         order.Type(dto.Type),
		Status:       order.Status(dto.Status),
		EscrowStatus: order.EscrowStatus(dto.EscrowStatus),
		Totals:       totals,
		Currency:     dto.Currency,
		Pickup:       pickup,
		Dropoff:      *dropoff,
		Notes:        dto.Notes,
		Items:        items,
		Stages:       stages,
		CreatedAt:    dto.CreatedAt,
		UpdatedAt:    dto.UpdatedAt,
	})
}

func itemToDomain(orderID kernel.UUID, dto ItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	spec, err := order.NewItemSpec(dto.CatalogRef, dto.Description, dto.Quantity, dto.UnitPrice)
	if err != nil {
		return nil, err
	}

	return order.NewItem(id, orderID, spec)
}

func stageToDomain(orderID kernel.UUID, dto StageDTO) (*order.Stage, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	loc, err := locationToDomain(dto.Location)
	if err != nil {
		return nil, err
	}

	return order.RestoreStage(id, orderID, order.StageSpec{
		Type:       order.StageType(dto.Type),
		SequenceNo: dto.SequenceNo,
		Location:   loc,
	}, order.StageStatus(dto.Status))
}

// locationToDomain returns nil for a point whose coordinates are NULL.
func locationToDomain(dto *LocationDTO) (*kernel.Location, error) {
	if dto == nil || dto.Lat == nil || dto.Lng == nil {
		return nil, nil //nolint:nilnil // absent optional location
	}

	loc, err := kernel.NewLocation(*dto.Lat, *dto.Lng, dto.Address)
	if err != nil {
		return nil, err
	}
	return &loc, nil
}

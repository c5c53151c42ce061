package http

import (
	"errors"
	"time"

	"errand/internal/core/application/usecases/queries"
	"errand/internal/core/domain/model/draft"
	"errand/internal/core/domain/model/escrow"
	"errand/internal/core/domain/model/kernel"
	"errand/internal/core/domain/model/order"
	"errand/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Error is the body of every non-2xx response.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// OrderRequest is the order draft accepted by order creation and draft sessions.
// Coordinates are flat; a location is either fully given or absent.
type OrderRequest struct {
	OrderType      string        `json:"order_type"      example:"PURCHASE_DELIVER"`
	Status         string        `json:"status"          example:"payment_pending"`
	Totals         TotalsBody    `json:"totals"`
	Currency       string        `json:"currency"        example:"SAR"`
	PickupLat      *float64      `json:"pickup_lat"`
	PickupLng      *float64      `json:"pickup_lng"`
	PickupAddress  string        `json:"pickup_address"`
	DropoffLat     *float64      `json:"dropoff_lat"`
	DropoffLng     *float64      `json:"dropoff_lng"`
	DropoffAddress string        `json:"dropoff_address"`
	Notes          string        `json:"notes"`
	Items          []ItemRequest `json:"items"`
}

type ItemRequest struct {
	CatalogRef          string          `json:"catalog_ref"`
	FreeTextDescription string          `json:"free_text_description"`
	Quantity            int             `json:"quantity"`
	Price               decimal.Decimal `json:"price" swaggertype:"string"`
}

type TotalsBody struct {
	Subtotal    decimal.Decimal `json:"subtotal"     swaggertype:"string"`
	DeliveryFee decimal.Decimal `json:"delivery_fee" swaggertype:"string"`
	ServiceFee  decimal.Decimal `json:"service_fee"  swaggertype:"string"`
	Total       decimal.Decimal `json:"total"        swaggertype:"string"`
}

// Contents converts the request into unvalidated draft contents. A location given
// with only one of its coordinates is rejected.
func (r OrderRequest) Contents() (draft.Contents, error) {
	pickup, pickupErr := requestPoint("pickup", r.PickupLat, r.PickupLng, r.PickupAddress)
	dropoff, dropoffErr := requestPoint("dropoff", r.DropoffLat, r.DropoffLng, r.DropoffAddress)
	if err := errors.Join(pickupErr, dropoffErr); err != nil {
		return draft.Contents{}, err
	}

	items := make([]draft.Item, 0, len(r.Items))
	for _, item := range r.Items {
		items = append(items, draft.Item{
			CatalogRef:  item.CatalogRef,
			Description: item.FreeTextDescription,
			Quantity:    item.Quantity,
			Price:       item.Price,
		})
	}

	return draft.Contents{
		OrderType: r.OrderType,
		Status:    r.Status,
		Currency:  r.Currency,
		Totals: draft.Totals{
			Subtotal:    r.Totals.Subtotal,
			DeliveryFee: r.Totals.DeliveryFee,
			ServiceFee:  r.Totals.ServiceFee,
			Total:       r.Totals.Total,
		},
		Pickup:  pickup,
		Dropoff: dropoff,
		Notes:   r.Notes,
		Items:   items,
	}, nil
}

func requestPoint(name string, lat, lng *float64, address string) (*draft.Point, error) {
	switch {
	case lat == nil && lng == nil:
		return nil, nil
	case lat == nil:
		return nil, errs.NewValueIsRequiredError(name + "_lat")
	case lng == nil:
		return nil, errs.NewValueIsRequiredError(name + "_lng")
	}
	return &draft.Point{Lat: *lat, Lng: *lng, Address: address}, nil
}

// SettleEscrowRequest releases or refunds part of the held amount.
type SettleEscrowRequest struct {
	Type     string          `json:"type"     example:"release" enums:"release,refund"`
	Amount   decimal.Decimal `json:"amount"   swaggertype:"string"`
	Currency string          `json:"currency" example:"SAR"`
}

type CancelOrderRequest struct {
	Reason string `json:"reason"`
}

type Point struct {
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	Address string  `json:"address,omitempty"`
}

type ItemResponse struct {
	ID          string          `json:"id"`
	CatalogRef  string          `json:"catalog_ref,omitempty"`
	Description string          `json:"free_text_description,omitempty"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price" swaggertype:"string"`
}

type StageResponse struct {
	ID         string `json:"id"`
	Type       string `json:"stage_type"`
	SequenceNo int    `json:"sequence_no"`
	Status     string `json:"status"`
	Location   *Point `json:"location,omitempty"`
}

type EscrowTransactionResponse struct {
	ID          string          `json:"id"`
	Type        string          `json:"type"`
	Amount      decimal.Decimal `json:"amount" swaggertype:"string"`
	Currency    string          `json:"currency"`
	Status      string          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	CompletedAt *time.Time      `json:"completed_at,omitempty"`
}

type OrderResponse struct {
	ID                 string                      `json:"id"`
	CustomerID         string                      `json:"customer_id"`
	OrderType          string                      `json:"order_type"`
	Status             string                      `json:"status"`
	EscrowStatus       string                      `json:"escrow_status"`
	Totals             TotalsBody                  `json:"totals"`
	Currency           string                      `json:"currency"`
	Pickup             *Point                      `json:"pickup,omitempty"`
	Dropoff            Point                       `json:"dropoff"`
	Notes              string                      `json:"notes,omitempty"`
	Items              []ItemResponse              `json:"items"`
	Stages             []StageResponse             `json:"stages"`
	EscrowTransactions []EscrowTransactionResponse `json:"escrow_transactions,omitempty"`
	CreatedAt          time.Time                   `json:"created_at"`
	UpdatedAt          time.Time                   `json:"updated_at"`
}

type OrderSummaryResponse struct {
	ID           string          `json:"id"`
	OrderType    string          `json:"order_type"`
	Status       string          `json:"status"`
	EscrowStatus string          `json:"escrow_status"`
	Total        decimal.Decimal `json:"total" swaggertype:"string"`
	Currency     string          `json:"currency"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

type DraftSessionResponse struct {
	ID         string       `json:"id"`
	CustomerID string       `json:"customer_id"`
	Draft      OrderRequest `json:"draft"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

type SweepResponse struct {
	Closed   int  `json:"closed"`
	Reminded int  `json:"reminded"`
	Skipped  bool `json:"skipped"`
}

func newOrderResponse(o *order.Order) OrderResponse {
	totals := o.Totals()

	items := make([]ItemResponse, 0, len(o.Items()))
	for _, item := range o.Items() {
		spec := item.Spec()
		items = append(items, ItemResponse{
			ID:          item.ID().String(),
			CatalogRef:  spec.CatalogRef(),
			Description: spec.Description(),
			Quantity:    spec.Quantity(),
			Price:       spec.UnitPrice(),
		})
	}

	stages := make([]StageResponse, 0, len(o.Stages()))
	for _, stage := range o.Stages() {
		stages = append(stages, StageResponse{
			ID:         stage.ID().String(),
			Type:       string(stage.Type()),
			SequenceNo: stage.SequenceNo(),
			Status:     stage.Status().String(),
			Location:   domainPoint(stage.Location()),
		})
	}

	dropoff := o.Dropoff()

	return OrderResponse{
		ID:           o.ID().String(),
		CustomerID:   o.CustomerID().String(),
		OrderType:    o.Type().String(),
		Status:       o.Status().String(),
		EscrowStatus: o.EscrowStatus().String(),
		Totals: TotalsBody{
			Subtotal:    totals.Subtotal(),
			DeliveryFee: totals.DeliveryFee(),
			ServiceFee:  totals.ServiceFee(),
			Total:       totals.Total(),
		},
		Currency:  o.Currency(),
		Pickup:    domainPoint(o.Pickup()),
		Dropoff:   *domainPoint(&dropoff),
		Notes:     o.Notes(),
		Items:     items,
		Stages:    stages,
		CreatedAt: o.CreatedAt(),
		UpdatedAt: o.UpdatedAt(),
	}
}

func newOrderViewResponse(v queries.OrderView) OrderResponse {
	items := make([]ItemResponse, 0, len(v.Items))
	for _, item := range v.Items {
		items = append(items, ItemResponse{
			ID:          item.ID.String(),
			CatalogRef:  item.CatalogRef,
			Description: item.Description,
			Quantity:    item.Quantity,
			Price:       item.UnitPrice,
		})
	}

	stages := make([]StageResponse, 0, len(v.Stages))
	for _, stage := range v.Stages {
		stages = append(stages, StageResponse{
			ID:         stage.ID.String(),
			Type:       stage.Type,
			SequenceNo: stage.SequenceNo,
			Status:     stage.Status,
			Location:   viewPoint(stage.Location),
		})
	}

	entries := make([]EscrowTransactionResponse, 0, len(v.Escrow))
	for _, entry := range v.Escrow {
		entries = append(entries, EscrowTransactionResponse{
			ID:          entry.ID.String(),
			Type:        entry.Type,
			Amount:      entry.Amount,
			Currency:    entry.Currency,
			Status:      entry.Status,
			CreatedAt:   entry.CreatedAt,
			CompletedAt: entry.CompletedAt,
		})
	}

	return OrderResponse{
		ID:           v.ID.String(),
		CustomerID:   v.CustomerID.String(),
		OrderType:    v.Type,
		Status:       v.Status,
		EscrowStatus: v.EscrowStatus,
		Totals: TotalsBody{
			Subtotal:    v.Subtotal,
			DeliveryFee: v.DeliveryFee,
			ServiceFee:  v.ServiceFee,
			Total:       v.Total,
		},
		Currency:           v.Currency,
		Pickup:             viewPoint(v.Pickup),
		Dropoff:            *viewPoint(&v.Dropoff),
		Notes:              v.Notes,
		Items:              items,
		Stages:             stages,
		EscrowTransactions: entries,
		CreatedAt:          v.CreatedAt,
		UpdatedAt:          v.UpdatedAt,
	}
}

func newOrderSummaryResponses(summaries []queries.OrderSummary) []OrderSummaryResponse {
	response := make([]OrderSummaryResponse, 0, len(summaries))
	for _, s := range summaries {
		response = append(response, OrderSummaryResponse{
			ID:           s.ID.String(),
			OrderType:    s.Type,
			Status:       s.Status,
			EscrowStatus: s.EscrowStatus,
			Total:        s.Total,
			Currency:     s.Currency,
			CreatedAt:    s.CreatedAt,
			UpdatedAt:    s.UpdatedAt,
		})
	}
	return response
}

func newEscrowTransactionResponse(t *escrow.Transaction) EscrowTransactionResponse {
	return EscrowTransactionResponse{
		ID:          t.ID().String(),
		Type:        string(t.Type()),
		Amount:      t.Amount().Amount(),
		Currency:    t.Amount().Currency(),
		Status:      string(t.Status()),
		CreatedAt:   t.CreatedAt(),
		CompletedAt: t.CompletedAt(),
	}
}

func newDraftSessionResponse(s *draft.Session) DraftSessionResponse {
	c := s.Contents()

	items := make([]ItemRequest, 0, len(c.Items))
	for _, item := range c.Items {
		items = append(items, ItemRequest{
			CatalogRef:          item.CatalogRef,
			FreeTextDescription: item.Description,
			Quantity:            item.Quantity,
			Price:               item.Price,
		})
	}

	body := OrderRequest{
		OrderType: c.OrderType,
		Status:    c.Status,
		Totals: TotalsBody{
			Subtotal:    c.Totals.Subtotal,
			DeliveryFee: c.Totals.DeliveryFee,
			ServiceFee:  c.Totals.ServiceFee,
			Total:       c.Totals.Total,
		},
		Currency: c.Currency,
		Notes:    c.Notes,
		Items:    items,
	}
	if c.Pickup != nil {
		body.PickupLat, body.PickupLng, body.PickupAddress = &c.Pickup.Lat, &c.Pickup.Lng, c.Pickup.Address
	}
	if c.Dropoff != nil {
		body.DropoffLat, body.DropoffLng, body.DropoffAddress = &c.Dropoff.Lat, &c.Dropoff.Lng, c.Dropoff.Address
	}

	return DraftSessionResponse{
		ID:         s.ID().String(),
		CustomerID: s.CustomerID().String(),
		Draft:      body,
		CreatedAt:  s.CreatedAt(),
		UpdatedAt:  s.UpdatedAt(),
	}
}

func domainPoint(loc *kernel.Location) *Point {
	if loc == nil {
		return nil
	}
	return &Point{Lat: loc.Lat(), Lng: loc.Lng(), Address: loc.Address()}
}

func viewPoint(p *queries.PointView) *Point {
	if p == nil {
		return nil
	}
	return &Point{Lat: p.Lat, Lng: p.Lng, Address: p.Address}
}

package queries

import (
	"context"
	"database/sql"

	"errand/internal/core/domain/model/kernel"
	"errand/internal/core/domain/model/order"
	"errand/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads an order and everything it owns with plain SQL.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns errs.ObjectNotFoundError when the order does not exist.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	db := h.db.WithContext(ctx)
	id := query.OrderID().Bytes()

	view, err := h.readOrder(db, id)
	if err != nil {
		return OrderView{}, err
	}

	if view.Items, err = h.readItems(db, id); err != nil {
		return OrderView{}, err
	}

	if view.Stages, err = h.readStages(db, id); err != nil {
		return OrderView{}, err
	}

	if view.Escrow, err = h.readEscrow(db, id); err != nil {
		return OrderView{}, err
	}

	return view, nil
}

func (h GetOrderQueryHandler) readOrder(db *gorm.DB, id uuid.UUID) (OrderView, error) {
	rows, err := db.Raw(`
		SELECT
			id,
			customer_id,
			type,
			status,
			escrow_status,
			subtotal,
			delivery_fee,
			service_fee,
			total,
			currency,
			pickup_lat,
			pickup_lng,
			pickup_address,
			dropoff_lat,
			dropoff_lng,
			dropoff_address,
			notes,
			created_at,
			updated_at
		FROM orders
		WHERE id = ?
	`, id).Rows()
	if err != nil {
		return OrderView{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return OrderView{}, err
		}
		return OrderView{}, errs.NewObjectNotFoundError("order", id.String())
	}

	var (
		view                   OrderView
		orderID, customerID    uuid.UUID
		status, escrowStatus   int
		pickupLat, pickupLng   sql.NullFloat64
		pickupAddress          sql.NullString
		dropoffLat, dropoffLng float64
		dropoffAddress         sql.NullString
		notes                  sql.NullString
	)

	err = rows.Scan(
		&orderID,
		&customerID,
		&view.Type,
		&status,
		&escrowStatus,
		&view.Subtotal,
		&view.DeliveryFee,
		&view.ServiceFee,
		&view.Total,
		&view.Currency,
		&pickupLat,
		&pickupLng,
		&pickupAddress,
		&dropoffLat,
		&dropoffLng,
		&dropoffAddress,
		&notes,
		&view.CreatedAt,
		&view.UpdatedAt,
	)
	if err != nil {
		return OrderView{}, err
	}

	if view.ID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
		return OrderView{}, err
	}
	if view.CustomerID, err = kernel.UUIDFromBytes(customerID[:]); err != nil {
		return OrderView{}, err
	}

	view.Status = order.Status(status).String()
	view.EscrowStatus = order.EscrowStatus(escrowStatus).String()
	view.Pickup = optionalPoint(pickupLat, pickupLng, pickupAddress)
	view.Dropoff = PointView{Lat: dropoffLat, Lng: dropoffLng, Address: dropoffAddress.String}
	view.Notes = notes.String

	return view, rows.Err()
}

func (h GetOrderQueryHandler) readItems(db *gorm.DB, orderID uuid.UUID) ([]ItemView, error) {
	rows, err := db.Raw(`
		SELECT id, catalog_ref, description, quantity, unit_price
		FROM order_items
		WHERE order_id = ?
		ORDER BY id
	`, orderID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]ItemView, 0)
	for rows.Next() {
		var (
			item                    ItemView
			id                      uuid.UUID
			catalogRef, description sql.NullString
		)

		if err = rows.Scan(&id, &catalogRef, &description, &item.Quantity, &item.UnitPrice); err != nil {
			return nil, err
		}

		if item.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		item.CatalogRef = catalogRef.String
		item.Description = description.String
		items = append(items, item)
	}

	return items, rows.Err()
}

func (h GetOrderQueryHandler) readStages(db *gorm.DB, orderID uuid.UUID) ([]StageView, error) {
	rows, err := db.Raw(`
		SELECT id, type, sequence_no, status, location_lat, location_lng, location_address
		FROM order_stages
		WHERE order_id = ?
		ORDER BY sequence_no
	`, orderID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	stages := make([]StageView, 0)
	for rows.Next() {
		var (
			stage    StageView
			id       uuid.UUID
			status   int
			lat, lng sql.NullFloat64
			address  sql.NullString
		)

		if err = rows.Scan(&id, &stage.Type, &stage.SequenceNo, &status, &lat, &lng, &address); err != nil {
			return nil, err
		}

		if stage.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		stage.Status = order.StageStatus(status).String()
		stage.Location = optionalPoint(lat, lng, address)
		stages = append(stages, stage)
	}

	return stages, rows.Err()
}

func (h GetOrderQueryHandler) readEscrow(db *gorm.DB, orderID uuid.UUID) ([]EscrowEntryView, error) {
	rows, err := db.Raw(`
		SELECT id, type, amount, currency, status, created_at, completed_at
		FROM escrow_transactions
		WHERE order_id = ?
		ORDER BY created_at, id
	`, orderID).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]EscrowEntryView, 0)
	for rows.Next() {
		var (
			entry       EscrowEntryView
			id          uuid.UUID
			amount      decimal.Decimal
			completedAt sql.NullTime
		)

		if err = rows.Scan(&id, &entry.Type, &amount, &entry.Currency, &entry.Status, &entry.CreatedAt, &completedAt); err != nil {
			return nil, err
		}

		if entry.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		entry.Amount = amount
		if completedAt.Valid {
			t := completedAt.Time
			entry.CompletedAt = &t
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

func optionalPoint(lat, lng sql.NullFloat64, address sql.NullString) *PointView {
	if !lat.Valid || !lng.Valid {
		return nil
	}
	return &PointView{Lat: lat.Float64, Lng: lng.Float64, Address: address.String}
}

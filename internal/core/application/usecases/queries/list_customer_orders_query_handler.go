package queries

import (
	"context"

	"errand/internal/core/domain/model/kernel"
	"errand/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListCustomerOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListCustomerOrdersQueryHandler(db *gorm.DB) ListCustomerOrdersQueryHandler {
	return ListCustomerOrdersQueryHandler{db: db}
}

func (h ListCustomerOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListCustomerOrdersQuery,
) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	stmt := h.db.WithContext(ctx).
		Table("orders").
		Select("id, type, status, escrow_status, total, currency, created_at, updated_at").
		Where("customer_id = ?", query.CustomerID().Bytes())
	if query.Status() != order.Unknown {
		stmt = stmt.Where("status = ?", int(query.Status()))
	}

	rows, err := stmt.Order("updated_at DESC, id").Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderSummary, 0)
	for rows.Next() {
		var (
			summary              OrderSummary
			id                   uuid.UUID
			status, escrowStatus int
		)

		err = rows.Scan(
			&id,
			&summary.Type,
			&status,
			&escrowStatus,
			&summary.Total,
			&summary.Currency,
			&summary.CreatedAt,
			&summary.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		summary.ID = orderID
		summary.Status = order.Status(status).String()
		summary.EscrowStatus = order.EscrowStatus(escrowStatus).String()
		orders = append(orders, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

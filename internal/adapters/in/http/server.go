// Package http exposes the order lifecycle over a JSON REST API.
//
// The customer is identified by the X-Customer-ID header; authentication happens
// in front of this service.
package http

import (
	"context"
	"net/http"

	"errand/internal/core/application/usecases/commands"
	"errand/internal/core/application/usecases/queries"
	"errand/internal/core/domain/model/draft"
	"errand/internal/core/domain/model/escrow"
	"errand/internal/core/domain/model/kernel"
	"errand/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

const CustomerHeader = "X-Customer-ID"

type (
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
	}
	SubmitOrderHandler interface {
		Handle(ctx context.Context, cmd commands.SubmitOrderCommand) (*order.Order, error)
	}
	ConfirmPaymentHandler interface {
		Handle(ctx context.Context, cmd commands.ConfirmPaymentCommand) (*order.Order, error)
	}
	AdvanceOrderHandler interface {
		Handle(ctx context.Context, cmd commands.AdvanceOrderCommand) (*order.Order, error)
	}
	CancelOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CancelOrderCommand) (*order.Order, error)
	}
	SettleEscrowHandler interface {
		Handle(ctx context.Context, cmd commands.SettleEscrowCommand) (*escrow.Transaction, error)
	}
	SweepHandler interface {
		Handle(ctx context.Context, cmd commands.SweepPickupRemindersCommand) (commands.SweepResult, error)
	}
	OpenDraftHandler interface {
		Handle(ctx context.Context, cmd commands.OpenDraftSessionCommand) (*draft.Session, error)
	}
	SaveDraftHandler interface {
		Handle(ctx context.Context, cmd commands.SaveDraftSessionCommand) (*draft.Session, error)
	}
	DiscardDraftHandler interface {
		Handle(ctx context.Context, cmd commands.DraftSessionCommand) error
	}
	SubmitDraftHandler interface {
		Handle(ctx context.Context, cmd commands.DraftSessionCommand) (*order.Order, error)
	}
	GetOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.OrderView, error)
	}
	ListCustomerOrdersHandler interface {
		Handle(ctx context.Context, query queries.ListCustomerOrdersQuery) ([]queries.OrderSummary, error)
	}
	GetDraftHandler interface {
		Handle(ctx context.Context, query queries.GetDraftSessionQuery) (*draft.Session, error)
	}
)

// Handlers groups the use cases served by the API.
type Handlers struct {
	CreateOrder        CreateOrderHandler
	SubmitOrder        SubmitOrderHandler
	ConfirmPayment     ConfirmPaymentHandler
	AdvanceOrder       AdvanceOrderHandler
	CancelOrder        CancelOrderHandler
	SettleEscrow       SettleEscrowHandler
	Sweep              SweepHandler
	OpenDraft          OpenDraftHandler
	SaveDraft          SaveDraftHandler
	DiscardDraft       DiscardDraftHandler
	SubmitDraft        SubmitDraftHandler
	GetOrder           GetOrderHandler
	ListCustomerOrders ListCustomerOrdersHandler
	GetDraft           GetDraftHandler
}

type Server struct {
	h Handlers
}

func NewServer(h Handlers) *Server {
	return &Server{h: h}
}

// RegisterRoutes mounts the API, the health check and the swagger UI.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api/v1")

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.ListOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.POST("/orders/:id/submit", s.SubmitOrder)
	api.POST("/orders/:id/confirm-payment", s.ConfirmPayment)
	api.POST("/orders/:id/advance", s.AdvanceOrder)
	api.POST("/orders/:id/cancel", s.CancelOrder)
	api.POST("/orders/:id/escrow", s.SettleEscrow)

	api.POST("/sweeps", s.Sweep)

	api.POST("/drafts", s.OpenDraft)
	api.GET("/drafts/:id", s.GetDraft)
	api.PUT("/drafts/:id", s.SaveDraft)
	api.DELETE("/drafts/:id", s.DiscardDraft)
	api.POST("/drafts/:id/submit", s.SubmitDraft)
}

// Health godoc
//
//	@Summary	Liveness check
//	@Tags		system
//	@Produce	plain
//	@Success	200	{string}	string	"Healthy"
//	@Router		/health [get]
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

func customerID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Request().Header.Get(CustomerHeader))
}

func pathID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("id"))
}

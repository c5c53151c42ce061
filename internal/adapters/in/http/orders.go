package http

import (
	"net/http"

	"errand/internal/core/application/usecases/commands"
	"errand/internal/core/application/usecases/queries"
	"errand/internal/core/domain/model/escrow"
	"errand/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// CreateOrder godoc
//
//	@Summary		Create an order
//	@Description	Validates the draft, plans the stages and reserves the total in escrow unless the order is a draft.
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			X-Customer-ID	header		string			true	"customer id"
//	@Param			order			body		OrderRequest	true	"order draft"
//	@Success		201				{object}	OrderResponse
//	@Failure		400				{object}	Error
//	@Failure		500				{object}	Error
//	@Router			/api/v1/orders [post]
func (s *Server) CreateOrder(ctx echo.Context) error {
	customer, err := customerID(ctx)
	if err != nil {
		return writeError(ctx, errCustomerID)
	}

	var body OrderRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	contents, err := body.Contents()
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommandFromDraft(customer, contents)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.h.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, newOrderResponse(created))
}

// ListOrders godoc
//
//	@Summary	List the customer's orders, most recently updated first
//	@Tags		orders
//	@Produce	json
//	@Param		X-Customer-ID	header	string	true	"customer id"
//	@Param		status			query	string	false	"filter by status"
//	@Success	200				{array}	OrderSummaryResponse
//	@Failure	400				{object}	Error
//	@Router		/api/v1/orders [get]
func (s *Server) ListOrders(ctx echo.Context) error {
	customer, err := customerID(ctx)
	if err != nil {
		return writeError(ctx, errCustomerID)
	}

	query, err := queries.NewListCustomerOrdersQuery(customer, ctx.QueryParam("status"))
	if err != nil {
		return writeError(ctx, err)
	}

	summaries, err := s.h.ListCustomerOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newOrderSummaryResponses(summaries))
}

// GetOrder godoc
//
//	@Summary	Get an order with its items, stages and escrow ledger
//	@Tags		orders
//	@Produce	json
//	@Param		id	path		string	true	"order id"
//	@Success	200	{object}	OrderResponse
//	@Failure	404	{object}	Error
//	@Router		/api/v1/orders/{id} [get]
func (s *Server) GetOrder(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return writeError(ctx, errOrderID)
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return writeError(ctx, err)
	}

	view, err := s.h.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newOrderViewResponse(view))
}

// SubmitOrder godoc
//
//	@Summary	Move a draft order to payment and reserve its total
//	@Tags		orders
//	@Produce	json
//	@Param		id	path		string	true	"order id"
//	@Success	200	{object}	OrderResponse
//	@Failure	400	{object}	Error
//	@Failure	404	{object}	Error
//	@Router		/api/v1/orders/{id}/submit [post]
func (s *Server) SubmitOrder(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return writeError(ctx, errOrderID)
	}

	cmd, err := commands.NewSubmitOrderCommand(id)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.h.SubmitOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newOrderResponse(updated))
}

// ConfirmPayment godoc
//
//	@Summary	Mark the order as paid
//	@Tags		orders
//	@Produce	json
//	@Param		id	path		string	true	"order id"
//	@Success	200	{object}	OrderResponse
//	@Failure	400	{object}	Error
//	@Failure	404	{object}	Error
//	@Router		/api/v1/orders/{id}/confirm-payment [post]
func (s *Server) ConfirmPayment(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return writeError(ctx, errOrderID)
	}

	cmd, err := commands.NewConfirmPaymentCommand(id)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.h.ConfirmPayment.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newOrderResponse(updated))
}

// AdvanceOrder godoc
//
//	@Summary	Start fulfilment or complete the running stage
//	@Tags		orders
//	@Produce	json
//	@Param		id	path		string	true	"order id"
//	@Success	200	{object}	OrderResponse
//	@Failure	400	{object}	Error
//	@Failure	404	{object}	Error
//	@Router		/api/v1/orders/{id}/advance [post]
func (s *Server) AdvanceOrder(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return writeError(ctx, errOrderID)
	}

	cmd, err := commands.NewAdvanceOrderCommand(id)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.h.AdvanceOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newOrderResponse(updated))
}

// CancelOrder godoc
//
//	@Summary	Cancel an order and refund the held balance
//	@Tags		orders
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string				true	"order id"
//	@Param		cancel	body		CancelOrderRequest	false	"reason"
//	@Success	200		{object}	OrderResponse
//	@Failure	400		{object}	Error
//	@Failure	404		{object}	Error
//	@Router		/api/v1/orders/{id}/cancel [post]
func (s *Server) CancelOrder(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return writeError(ctx, errOrderID)
	}

	var body CancelOrderRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewCancelOrderCommand(id, body.Reason)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.h.CancelOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newOrderResponse(updated))
}

// SettleEscrow godoc
//
//	@Summary	Release or refund part of the held amount
//	@Tags		escrow
//	@Accept		json
//	@Produce	json
//	@Param		id			path		string				true	"order id"
//	@Param		settlement	body		SettleEscrowRequest	true	"settlement"
//	@Success	201			{object}	EscrowTransactionResponse
//	@Failure	400			{object}	Error
//	@Failure	404			{object}	Error
//	@Failure	409			{object}	Error
//	@Router		/api/v1/orders/{id}/escrow [post]
func (s *Server) SettleEscrow(ctx echo.Context) error {
	id, err := pathID(ctx)
	if err != nil {
		return writeError(ctx, errOrderID)
	}

	var body SettleEscrowRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	amount, err := kernel.NewMoney(body.Amount, body.Currency)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewSettleEscrowCommand(id, escrow.Type(body.Type), amount)
	if err != nil {
		return writeError(ctx, err)
	}

	entry, err := s.h.SettleEscrow.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, newEscrowTransactionResponse(entry))
}

package http

import (
	"net/http"

	"errand/internal/core/application/usecases/commands"
	"errand/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

// OpenDraft godoc
//
//	@Summary	Open an empty draft session
//	@Tags		drafts
//	@Produce	json
//	@Param		X-Customer-ID	header		string	true	"customer id"
//	@Success	201				{object}	DraftSessionResponse
//	@Failure	400				{object}	Error
//	@Router		/api/v1/drafts [post]
func (s *Server) OpenDraft(ctx echo.Context) error {
	customer, err := customerID(ctx)
	if err != nil {
		return writeError(ctx, errCustomerID)
	}

	cmd, err := commands.NewOpenDraftSessionCommand(customer)
	if err != nil {
		return writeError(ctx, err)
	}

	session, err := s.h.OpenDraft.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, newDraftSessionResponse(session))
}

// GetDraft godoc
//
//	@Summary	Read a draft session
//	@Tags		drafts
//	@Produce	json
//	@Param		X-Customer-ID	header		string	true	"customer id"
//	@Param		id				path		string	true	"session id"
//	@Success	200				{object}	DraftSessionResponse
//	@Failure	404				{object}	Error
//	@Router		/api/v1/drafts/{id} [get]
func (s *Server) GetDraft(ctx echo.Context) error {
	customer, err := customerID(ctx)
	if err != nil {
		return writeError(ctx, errCustomerID)
	}
	id, err := pathID(ctx)
	if err != nil {
		return writeError(ctx, errSessionID)
	}

	query, err := queries.NewGetDraftSessionQuery(id, customer)
	if err != nil {
		return writeError(ctx, err)
	}

	session, err := s.h.GetDraft.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newDraftSessionResponse(session))
}

// SaveDraft godoc
//
//	@Summary	Replace the contents of a draft session
//	@Tags		drafts
//	@Accept		json
//	@Produce	json
//	@Param		X-Customer-ID	header		string			true	"customer id"
//	@Param		id				path		string			true	"session id"
//	@Param		draft			body		OrderRequest	true	"draft contents"
//	@Success	200				{object}	DraftSessionResponse
//	@Failure	404				{object}	Error
//	@Router		/api/v1/drafts/{id} [put]
func (s *Server) SaveDraft(ctx echo.Context) error {
	customer, err := customerID(ctx)
	if err != nil {
		return writeError(ctx, errCustomerID)
	}
	id, err := pathID(ctx)
	if err != nil {
		return writeError(ctx, errSessionID)
	}

	var body OrderRequest
	if err = ctx.Bind(&body); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	contents, err := body.Contents()
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewSaveDraftSessionCommand(id, customer, contents)
	if err != nil {
		return writeError(ctx, err)
	}

	session, err := s.h.SaveDraft.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, newDraftSessionResponse(session))
}

// DiscardDraft godoc
//
//	@Summary	Discard a draft session
//	@Tags		drafts
//	@Param		X-Customer-ID	header	string	true	"customer id"
//	@Param		id				path	string	true	"session id"
//	@Success	204
//	@Failure	404	{object}	Error
//	@Router		/api/v1/drafts/{id} [delete]
func (s *Server) DiscardDraft(ctx echo.Context) error {
	cmd, err := s.draftCommand(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	if err = s.h.DiscardDraft.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// SubmitDraft godoc
//
//	@Summary		Turn a draft session into an order
//	@Description	The session is cleared only when the order is created.
//	@Tags			drafts
//	@Produce		json
//	@Param			X-Customer-ID	header		string	true	"customer id"
//	@Param			id				path		string	true	"session id"
//	@Success		201				{object}	OrderResponse
//	@Failure		400				{object}	Error
//	@Failure		404				{object}	Error
//	@Failure		500				{object}	Error
//	@Router			/api/v1/drafts/{id}/submit [post]
func (s *Server) SubmitDraft(ctx echo.Context) error {
	cmd, err := s.draftCommand(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.h.SubmitDraft.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, newOrderResponse(created))
}

func (s *Server) draftCommand(ctx echo.Context) (commands.DraftSessionCommand, error) {
	customer, err := customerID(ctx)
	if err != nil {
		return commands.DraftSessionCommand{}, errCustomerID
	}
	id, err := pathID(ctx)
	if err != nil {
		return commands.DraftSessionCommand{}, errSessionID
	}
	return commands.NewDraftSessionCommand(id, customer)
}

package http

import (
	"net/http"
	"time"

	"errand/internal/core/application/usecases/commands"

	"github.com/labstack/echo/v4"
)

// Sweep godoc
//
//	@Summary		Run the pickup reminder sweep now
//	@Description	Closes completed orders whose pickup window elapsed and reminds the rest. Skipped when another sweep holds the lock.
//	@Tags			sweeps
//	@Produce		json
//	@Success		200	{object}	SweepResponse
//	@Failure		500	{object}	Error
//	@Router			/api/v1/sweeps [post]
func (s *Server) Sweep(ctx echo.Context) error {
	cmd, err := commands.NewSweepPickupRemindersCommand(time.Now().UTC())
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.h.Sweep.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, SweepResponse{
		Closed:   result.Closed,
		Reminded: result.Reminded,
		Skipped:  result.Skipped,
	})
}

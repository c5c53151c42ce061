package services

import (
	"errand/internal/core/domain/model/kernel"
	"errand/internal/core/domain/model/order"
	"errand/internal/pkg/errs"
)

// StageSequencer derives the ordered fulfilment stages of an order from its type.
//
// Stage plans:
//   - PURCHASE_DELIVER, CHAIN: purchase@1 at the pickup point, dropoff@2
//   - DIRECT_DROPOFF:          dropoff@1
//   - ONSITE_SERVICE:          onsite@1 at the service location
//
// Every stage starts pending. ComputeStages is pure: it has no side effects and the
// caller must not persist anything when it fails.
type StageSequencer struct{}

func NewStageSequencer() StageSequencer {
	return StageSequencer{}
}

// ComputeStages returns the stage plan, order.ErrInvalidOrderType, or a required
// value error when a type with an acquisition step has no pickup point.
func (StageSequencer) ComputeStages(
	orderType order.Type,
	pickup *kernel.Location,
	dropoff kernel.Location,
) ([]order.StageSpec, error) {
	if err := orderType.Validate(); err != nil {
		return nil, err
	}

	if orderType.IsOnsite() {
		return []order.StageSpec{{Type: order.StageOnsite, SequenceNo: 1, Location: &dropoff}}, nil
	}

	stages := make([]order.StageSpec, 0, 2)
	if orderType.RequiresAcquisition() {
		if pickup == nil {
			return nil, errs.NewValueIsRequiredError("pickup")
		}
		stages = append(stages, order.StageSpec{Type: order.StagePurchase, SequenceNo: 1, Location: pickup})
	}

	stages = append(stages, order.StageSpec{
		Type:       order.StageDropoff,
		SequenceNo: len(stages) + 1,
		Location:   &dropoff,
	})

	return stages, nil
}

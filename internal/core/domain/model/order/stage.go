package order

import (
	"errors"
	"fmt"

	"errand/internal/core/domain/model/kernel"
	"errand/internal/pkg/errs"
)

var ErrStageIsNotConstructed = errors.New("Stage must be created via NewStage constructor")

// StageType is one kind of fulfilment work.
type StageType string

const (
	StagePurchase StageType = "purchase"
	StagePickup   StageType = "pickup"
	StageDropoff  StageType = "dropoff"
	StageHandover StageType = "handover"
	StageOnsite   StageType = "onsite"
)

func (t StageType) Validate() error {
	switch t {
	case StagePurchase, StagePickup, StageDropoff, StageHandover, StageOnsite:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("stage type", fmt.Errorf("%q is not a valid stage type", string(t)))
	}
}

// StageStatus tracks a single stage.
type StageStatus int

const (
	StageUnknown StageStatus = iota
	StagePending
	StageInProgress
	StageCompleted
	StageCanceled
)

func getStageStatusStrings() map[StageStatus]string {
	return map[StageStatus]string{
		StageUnknown:    "unknown",
		StagePending:    "pending",
		StageInProgress: "in_progress",
		StageCompleted:  "completed",
		StageCanceled:   "canceled",
	}
}

func (s StageStatus) Validate() error {
	if s <= StageUnknown || s > StageCanceled {
		return errs.NewValueIsInvalidErrorWithCause("stage status is invalid", fmt.Errorf("%d is not a valid stage status", s))
	}
	return nil
}

func (s StageStatus) String() string {
	if str, ok := getStageStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// StageSpec is a stage that has been planned but not persisted yet.
type StageSpec struct {
	Type       StageType
	SequenceNo int
	Location   *kernel.Location
}

// Stage is one ordered unit of fulfilment work owned by an Order.
type Stage struct {
	id         kernel.UUID
	orderID    kernel.UUID
	stageType  StageType
	sequenceNo int
	status     StageStatus
	location   *kernel.Location

	isConstructed bool
}

// NewStage builds a pending stage.
func NewStage(id, orderID kernel.UUID, spec StageSpec) (*Stage, error) {
	return RestoreStage(id, orderID, spec, StagePending)
}

// RestoreStage rebuilds a stage from storage.
func RestoreStage(id, orderID kernel.UUID, spec StageSpec, status StageStatus) (*Stage, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		spec.Type.Validate(),
		status.Validate(),
		validateSequenceNo(spec.SequenceNo),
		validateOptionalLocation(spec.Location),
	); err != nil {
		return nil, err
	}

	return &Stage{
		id:            id,
		orderID:       orderID,
		stageType:     spec.Type,
		sequenceNo:    spec.SequenceNo,
		status:        status,
		location:      spec.Location,
		isConstructed: true,
	}, nil
}

func (s *Stage) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrStageIsNotConstructed
	}
	return nil
}

func (s *Stage) ID() kernel.UUID            { return s.id }
func (s *Stage) OrderID() kernel.UUID       { return s.orderID }
func (s *Stage) Type() StageType            { return s.stageType }
func (s *Stage) SequenceNo() int            { return s.sequenceNo }
func (s *Stage) Status() StageStatus        { return s.status }
func (s *Stage) Location() *kernel.Location { return s.location }

func (s *Stage) start() error {
	if s.status != StagePending {
		return errs.NewValueIsInvalidErrorWithCause(
			"stage status is invalid",
			fmt.Errorf("stage %d is %s, expected pending", s.sequenceNo, s.status),
		)
	}
	s.status = StageInProgress
	return nil
}

func (s *Stage) complete() error {
	if s.status != StageInProgress {
		return errs.NewValueIsInvalidErrorWithCause(
			"stage status is invalid",
			fmt.Errorf("stage %d is %s, expected in_progress", s.sequenceNo, s.status),
		)
	}
	s.status = StageCompleted
	return nil
}

func (s *Stage) cancel() {
	if s.status == StagePending || s.status == StageInProgress {
		s.status = StageCanceled
	}
}

func validateSequenceNo(n int) error {
	if n < 1 {
		return errs.NewValueIsInvalidErrorWithCause("sequence_no", fmt.Errorf("%d is less than 1", n))
	}
	return nil
}

func validateOptionalLocation(loc *kernel.Location) error {
	if loc == nil {
		return nil
	}
	return loc.Validate()
}

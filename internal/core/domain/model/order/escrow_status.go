package order

import (
	"fmt"

	"errand/internal/pkg/errs"
)

// EscrowStatus mirrors the escrow ledger on the order row so that listings do not
// have to aggregate transactions.
type EscrowStatus int

const (
	EscrowUnknown EscrowStatus = iota
	EscrowNone
	EscrowHeld
	EscrowReleased
	EscrowRefunded
)

func getEscrowStatusStrings() map[EscrowStatus]string {
	return map[EscrowStatus]string{
		EscrowUnknown:  "unknown",
		EscrowNone:     "none",
		EscrowHeld:     "held",
		EscrowReleased: "released",
		EscrowRefunded: "refunded",
	}
}

func (s EscrowStatus) Validate() error {
	if s <= EscrowUnknown || s > EscrowRefunded {
		return errs.NewValueIsInvalidErrorWithCause("escrow status is invalid", fmt.Errorf("%d is not a valid escrow status", s))
	}
	return nil
}

func (s EscrowStatus) String() string {
	if str, ok := getEscrowStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

package truck

import (
	"fmt"

	"haulage/internal/pkg/errs"
)

// Status represents the availability state of a truck.
//
// State transitions:
//
//	Idle ──> InTransit ──> Idle
//
// A truck is claimed (Idle -> InTransit) when a dispatch is created for it
// and released (InTransit -> Idle) when that dispatch reaches a terminal
// state. The claim is a compare-and-set: two concurrent claims on the same
// idle truck must yield exactly one winner, which the persistence layer
// enforces with a conditional update on this status.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Idle indicates the truck is parked and available for allocation.
	Idle

	// InTransit indicates the truck is claimed by a non-terminal dispatch.
	InTransit
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Idle:      "idle",
		InTransit: "in_transit",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Idle:      "idle",
		InTransit: "in_transit",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are Idle and InTransit; Unknown (0) is invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid truck status", s))
	}
	return nil
}

// String returns the wire-level name of the status ("idle", "in_transit").
// Implements the fmt.Stringer interface and is safe to call on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// Claim transitions the status to InTransit.
//
// Valid transitions:
//   - Idle -> InTransit
//
// Returns (0, error) wrapping errs.ErrInvalidTransition if the truck is not
// idle; the caller lost the allocation race or referenced a busy truck.
func (s Status) Claim() (Status, error) {
	if s != Idle {
		return 0, fmt.Errorf("%w: truck is not idle, status is %s", errs.ErrInvalidTransition, s)
	}

	return InTransit, nil
}

// Release transitions the status back to Idle.
//
// Valid transitions:
//   - InTransit -> Idle
//
// Returns (0, error) wrapping errs.ErrInvalidTransition if the truck is not
// in transit.
func (s Status) Release() (Status, error) {
	if s != InTransit {
		return 0, fmt.Errorf("%w: truck is not in transit, status is %s", errs.ErrInvalidTransition, s)
	}

	return Idle, nil
}

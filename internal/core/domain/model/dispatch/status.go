package dispatch

import (
	"fmt"

	"haulage/internal/pkg/errs"
)

// Status represents the workflow state of a dispatch.
// It implements a state machine with a strict forward order and two terminal
// absorbing states, ensuring dispatches follow the physical fulfillment
// sequence of a bulk-material delivery.
//
// State transitions:
//
//	Assigned ──> InTransit ──> WeighIn ──> Unload ──> WeighOut ──> Completed
//	     │            │            │           │           │
//	     └────────────┴────────────┴───────────┴───────────┴──> Cancelled
//
// Once observed, the status sequence is monotonic: no backward transition is
// ever accepted, and the terminal states accept no transition at all.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Assigned is the initial status: a truck is bound to the order but the
	// journey has not started. The order itself remains pending.
	Assigned

	// InTransit indicates the truck is on its way to the weighbridge.
	InTransit

	// WeighIn indicates the loaded truck has been weighed (gross weight
	// recorded).
	WeighIn

	// Unload indicates the material has been unloaded at the destination.
	Unload

	// WeighOut indicates the empty truck has been weighed (tare weight
	// recorded, net weight derived).
	WeighOut

	// Completed indicates the dispatch finished successfully and all side
	// effects (order completion, truck release, stock deduction) fired.
	// This is a final state with no further transitions allowed.
	Completed

	// Cancelled indicates the dispatch was aborted from a non-terminal
	// state. This is a final state with no further transitions allowed.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Assigned:  "assigned",
		InTransit: "in_transit",
		WeighIn:   "weigh_in",
		Unload:    "unload",
		WeighOut:  "weigh_out",
		Completed: "completed",
		Cancelled: "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Assigned:  "assigned",
		InTransit: "in_transit",
		WeighIn:   "weigh_in",
		Unload:    "unload",
		WeighOut:  "weigh_out",
		Completed: "completed",
		Cancelled: "cancelled",
	}
}

// StatusFromString parses the wire-level status name used by the legacy
// direct-status-set operation. Returns an error for unrecognized names.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return 0, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid dispatch status", s))
}

// Validate checks if the Status value is valid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid dispatch status", s))
	}
	return nil
}

// String returns the wire-level name of the status.
// Implements the fmt.Stringer interface and is safe to call on any value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether no further transitions are permitted.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// StartJourney transitions the status to InTransit.
//
// Valid transitions:
//   - Assigned -> InTransit
func (s Status) StartJourney() (Status, error) {
	if s != Assigned {
		return 0, fmt.Errorf("%w: %s is not a valid status to start the journey", errs.ErrInvalidTransition, s)
	}
	return InTransit, nil
}

// WeighIn transitions the status to WeighIn.
//
// Valid transitions:
//   - InTransit -> WeighIn
func (s Status) WeighIn() (Status, error) {
	if s != InTransit {
		return 0, fmt.Errorf("%w: %s is not a valid status to weigh in", errs.ErrInvalidTransition, s)
	}
	return WeighIn, nil
}

// Unload transitions the status to Unload.
//
// Valid transitions:
//   - WeighIn -> Unload
func (s Status) Unload() (Status, error) {
	if s != WeighIn {
		return 0, fmt.Errorf("%w: %s is not a valid status to unload", errs.ErrInvalidTransition, s)
	}
	return Unload, nil
}

// WeighOut transitions the status to WeighOut.
//
// Valid transitions:
//   - Unload -> WeighOut
func (s Status) WeighOut() (Status, error) {
	if s != Unload {
		return 0, fmt.Errorf("%w: %s is not a valid status to weigh out", errs.ErrInvalidTransition, s)
	}
	return WeighOut, nil
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - WeighOut -> Completed
func (s Status) Complete() (Status, error) {
	if s != WeighOut {
		return 0, fmt.Errorf("%w: %s is not a valid status to complete", errs.ErrInvalidTransition, s)
	}
	return Completed, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions: any non-terminal status -> Cancelled.
func (s Status) Cancel() (Status, error) {
	if s.Validate() != nil || s.IsTerminal() {
		return 0, fmt.Errorf("%w: %s is not a valid status to cancel", errs.ErrInvalidTransition, s)
	}
	return Cancelled, nil
}

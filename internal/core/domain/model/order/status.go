package order

import (
	"fmt"

	"haulage/internal/pkg/errs"
)

// Status represents the lifecycle state of a bulk-material order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Pending ──> InProgress ──> Completed
//	   │            │
//	   └────────────┴──> Cancelled
//
// An order stays Pending while unallocated and while its dispatch is merely
// assigned; it becomes InProgress only when the dispatch's journey starts,
// and Completed when the dispatch completes. Status is a value object that
// validates state transitions and provides string representations for
// persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first created.
	// Orders in this status are waiting for a truck, or waiting for their
	// assigned dispatch to start its journey.
	Pending

	// InProgress indicates the order's dispatch has started its journey.
	InProgress

	// Completed indicates the order has been fulfilled by a completed
	// dispatch. This is a final state with no further transitions allowed.
	Completed

	// Cancelled indicates the order was withdrawn before fulfillment.
	// This is a final state with no further transitions allowed.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		InProgress: "in_progress",
		Completed:  "completed",
		Cancelled:  "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "pending",
		InProgress: "in_progress",
		Completed:  "completed",
		Cancelled:  "cancelled",
	}
}

// Validate checks if the Status value is valid.
// Valid statuses are Pending, InProgress, Completed and Cancelled.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%d is not a valid order status", s))
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

// Start transitions the status to InProgress.
//
// Valid transitions:
//   - Pending -> InProgress (the dispatch's journey started)
//
// Returns (0, error) wrapping errs.ErrInvalidTransition otherwise. The
// transition fires at most once per order because InProgress never returns
// to Pending.
func (s Status) Start() (Status, error) {
	if s != Pending {
		return 0, fmt.Errorf("%w: %s is not a valid status to start", errs.ErrInvalidTransition, s)
	}

	return InProgress, nil
}

// Complete transitions the status to Completed.
//
// Valid transitions:
//   - InProgress -> Completed (the dispatch completed its job)
func (s Status) Complete() (Status, error) {
	if s != InProgress {
		return 0, fmt.Errorf("%w: %s is not a valid status to complete", errs.ErrInvalidTransition, s)
	}

	return Completed, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Pending -> Cancelled
//   - InProgress -> Cancelled
func (s Status) Cancel() (Status, error) {
	if s.Validate() != nil || s.IsTerminal() {
		return 0, fmt.Errorf("%w: %s is not a valid status to cancel", errs.ErrInvalidTransition, s)
	}

	return Cancelled, nil
}

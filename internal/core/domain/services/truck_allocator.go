package services

import (
	"errors"
	"fmt"

	"haulage/internal/core/domain/model/order"
	"haulage/internal/core/domain/model/truck"
	"haulage/internal/pkg/errs"
)

// ErrNoTruckAvailable is returned when no idle truck can carry the order.
// This occurs when either no trucks are provided or none of the provided
// trucks is idle with sufficient capacity. It represents a steady state of
// the system, not a failure: the order simply waits for the next sweep.
var ErrNoTruckAvailable = errors.New("no truck available")

// TruckAllocator is a domain service responsible for selecting the optimal
// truck for a pending order using a best-fit policy.
//
// Business rules:
//   - Only pending orders are allocated
//   - Only idle trucks with capacity >= order quantity are candidates
//   - The smallest sufficient capacity wins, keeping large trucks free for
//     large orders
//   - Capacity ties break deterministically by truck ID
type TruckAllocator struct{}

// NewTruckAllocator creates a new TruckAllocator instance.
func NewTruckAllocator() TruckAllocator {
	return TruckAllocator{}
}

// Allocate selects the best-fit truck for the order and claims it.
//
// Parameters:
//   - o: The order to be allocated (must be valid and pending)
//   - trucks: Slice of trucks to consider
//
// Returns:
//   - *truck.Truck: The claimed truck, flipped to in-transit in memory
//   - error: ErrNoTruckAvailable if no idle truck can carry the order, or
//     validation errors
//
// Selection algorithm:
//   - Skips non-idle trucks and trucks with insufficient capacity
//   - Picks the candidate with the smallest capacity
//   - Breaks capacity ties by lexicographic truck ID for determinism
func (a TruckAllocator) Allocate(o *order.Order, trucks []*truck.Truck) (*truck.Truck, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if o.Status() != order.Pending {
		return nil, errs.NewInvalidTransitionErrorWithCause("allocate_order", o.ID().String(), o.Status().String(),
			fmt.Errorf("%w: only pending orders are allocated", errs.ErrInvalidTransition))
	}

	bestTruck, err := a.findBestTruck(o, trucks)
	if err != nil {
		return nil, err
	}

	if err = bestTruck.Claim(); err != nil {
		return nil, err
	}

	return bestTruck, nil
}

// findBestTruck scans the candidates for the best-fit truck.
func (a TruckAllocator) findBestTruck(o *order.Order, trucks []*truck.Truck) (*truck.Truck, error) {
	var bestTruck *truck.Truck

	for _, t := range trucks {
		if err := t.Validate(); err != nil {
			return nil, err
		}

		if !t.IsIdle() || !t.CanHaul(o.Quantity()) {
			continue
		}

		if bestTruck == nil || a.isBetterFit(t, bestTruck) {
			bestTruck = t
		}
	}

	if bestTruck == nil {
		return nil, ErrNoTruckAvailable
	}

	return bestTruck, nil
}

// isBetterFit reports whether candidate beats current under the best-fit
// policy: strictly smaller capacity wins, equal capacity falls back to the
// lexicographically smaller ID.
func (a TruckAllocator) isBetterFit(candidate, current *truck.Truck) bool {
	if candidate.Capacity().Less(current.Capacity()) {
		return true
	}
	if current.Capacity().Less(candidate.Capacity()) {
		return false
	}
	return candidate.ID().String() < current.ID().String()
}

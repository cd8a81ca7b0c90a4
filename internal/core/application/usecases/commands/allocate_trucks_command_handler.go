package commands

import (
	"context"
	"errors"

	"haulage/internal/core/domain/model/dispatch"
	"haulage/internal/core/domain/model/kernel"
	"haulage/internal/core/domain/services"
	"haulage/internal/pkg/errs"
)

// AllocateTrucksCommandHandler orchestrates the truck allocation sweep.
// Walks pending orders oldest first and matches each with the best-fit idle
// truck, creating a dispatch per successful match. Orders that cannot be
// served stay pending for the next sweep.
//
// Example:
//
//	handler := NewAllocateTrucksCommandHandler(uowFactory)
//	allocated, err := handler.Handle(ctx, NewAllocateTrucksCommand())
//	if err != nil {
//	    log.Printf("Allocation sweep failed: %v", err)
//	    return
//	}
//	log.Printf("Allocated %d dispatches", allocated)
type AllocateTrucksCommandHandler struct {
	uowFactory UoWFactory
}

// NewAllocateTrucksCommandHandler creates a handler for allocation sweeps.
// Requires a UoWFactory for coordinating transactional updates across repositories.
func NewAllocateTrucksCommandHandler(uowFactory UoWFactory) AllocateTrucksCommandHandler {
	return AllocateTrucksCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the allocation sweep command and returns the number of
// dispatches created.
//
// The sweep loads all pending orders and the idle fleet once, then allocates
// in order-age order so older orders get first pick. Trucks claimed earlier
// in the sweep are already in-transit in memory and skipped by the allocator.
// Each claim is re-validated by the conditional update in the truck
// repository; losing that race skips the order instead of failing the sweep.
// Orders no idle truck can carry are skipped silently - that is the steady
// state of a busy fleet, not an error.
func (h AllocateTrucksCommandHandler) Handle(ctx context.Context, command AllocateTrucksCommand) (int, error) {
	if err := command.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	truckRepo := uow.TruckRepository()
	dispatchRepo := uow.DispatchRepository()

	pendingOrders, err := orderRepo.GetAllPending(ctx)
	if err != nil {
		return 0, err
	}
	if len(pendingOrders) == 0 {
		return 0, nil
	}

	idleTrucks, err := truckRepo.GetAllIdle(ctx)
	if err != nil {
		return 0, err
	}

	allocator := services.NewTruckAllocator()
	allocated := 0

	for _, pendingOrder := range pendingOrders {
		claimedTruck, allocErr := allocator.Allocate(pendingOrder, idleTrucks)
		if errors.Is(allocErr, services.ErrNoTruckAvailable) {
			continue
		}
		if allocErr != nil {
			return 0, allocErr
		}

		if claimErr := truckRepo.Claim(ctx, claimedTruck); claimErr != nil {
			if errors.Is(claimErr, errs.ErrConflict) {
				continue
			}
			return 0, claimErr
		}

		newDispatch, dispatchErr := dispatch.NewDispatch(kernel.NewUUID(), claimedTruck.ID(), pendingOrder.ID())
		if dispatchErr != nil {
			return 0, dispatchErr
		}

		if addErr := dispatchRepo.Add(ctx, newDispatch); addErr != nil {
			return 0, addErr
		}

		allocated++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return allocated, nil
}

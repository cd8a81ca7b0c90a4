package truck

import (
	"errors"

	"haulage/internal/core/domain/model/kernel"
	"haulage/internal/pkg/errs"
	"haulage/internal/pkg/guard"
)

// Domain errors for truck operations.
var (
	// ErrPlateIsRequired is returned when attempting to create a truck without a plate number.
	ErrPlateIsRequired = errs.NewValueIsRequiredError("plate")
	// ErrDriverNameIsRequired is returned when attempting to create a truck without a driver name.
	ErrDriverNameIsRequired = errs.NewValueIsRequiredError("driver name")
	// ErrTruckIsNotConstructed is returned when using an improperly initialized Truck.
	ErrTruckIsNotConstructed = errors.New("Truck must be created via NewTruck constructor")
)

// Truck represents a haulage truck in the fleet.
// It is an aggregate root that manages truck identity, carrying capacity and
// availability. A truck alternates between Idle and InTransit for the
// lifetime of the dispatches it serves.
//
// Business rules:
//   - Truck must have a valid UUID, non-empty plate, non-empty driver name
//     and positive capacity
//   - At most one non-terminal dispatch references a truck at any time; the
//     Idle/InTransit flip is the claim that enforces it
//   - A truck is never deleted while referenced by a non-terminal dispatch
type Truck struct {
	// id uniquely identifies the truck
	id kernel.UUID
	// plate is the registration plate of the truck
	plate string
	// capacity is the maximum load the truck can carry
	capacity kernel.Weight
	// driverName is the human-readable name of the assigned driver
	driverName string
	// status is the current availability of the truck
	status Status
	// guard ensures the truck was properly constructed
	guard guard.ConstructorGuard
}

// NewTruck creates a new Truck with the specified parameters.
// This is the only way to create a valid Truck instance; new trucks start
// Idle and immediately become candidates for allocation.
//
// Parameters:
//   - id: Unique identifier for the truck (must be valid UUID)
//   - plate: Registration plate (must be non-empty)
//   - capacity: Maximum load (must be a valid Weight)
//   - driverName: Driver's name (must be non-empty)
//
// Returns:
//   - *Truck: A fully initialized idle truck
//   - error: Aggregated validation errors if any parameter is invalid
func NewTruck(id kernel.UUID, plate string, capacity kernel.Weight, driverName string) (*Truck, error) {
	t := &Truck{
		status: Idle,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setID(id),
		t.setPlate(plate),
		t.setCapacity(capacity),
		t.setDriverName(driverName),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// RestoreTruck reconstructs a Truck aggregate from persistent storage,
// preserving its availability status at the time of persistence.
func RestoreTruck(
	id kernel.UUID,
	plate string,
	capacity kernel.Weight,
	driverName string,
	status Status,
) (*Truck, error) {
	t := &Truck{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		t.setID(id),
		t.setPlate(plate),
		t.setCapacity(capacity),
		t.setDriverName(driverName),
		t.setStatus(status),
	); err != nil {
		return nil, err
	}

	return t, nil
}

// Validate checks if the Truck was properly constructed using a constructor.
// The zero value of Truck is invalid and will fail this validation.
func (t *Truck) Validate() error {
	if t == nil {
		return ErrTruckIsNotConstructed
	}
	return t.guard.Validate(ErrTruckIsNotConstructed)
}

// IsEqual compares two trucks by their unique identifiers.
func (t *Truck) IsEqual(other *Truck) bool {
	return other != nil && t.id.IsEqual(other.id)
}

// ID returns the truck's unique identifier.
func (t *Truck) ID() kernel.UUID {
	return t.id
}

// Plate returns the truck's registration plate.
func (t *Truck) Plate() string {
	return t.plate
}

// Capacity returns the maximum load the truck can carry.
func (t *Truck) Capacity() kernel.Weight {
	return t.capacity
}

// DriverName returns the name of the assigned driver.
func (t *Truck) DriverName() string {
	return t.driverName
}

// Status returns the current availability of the truck.
func (t *Truck) Status() Status {
	return t.status
}

// IsIdle reports whether the truck is available for allocation.
func (t *Truck) IsIdle() bool {
	return t.status == Idle
}

// CanHaul reports whether the truck's capacity accommodates the given load.
func (t *Truck) CanHaul(load kernel.Weight) bool {
	return t.capacity.CanCarry(load)
}

// Claim reserves the truck for a new dispatch (Idle -> InTransit).
//
// Returns an error wrapping errs.ErrInvalidTransition if the truck is not
// idle. The in-memory transition is re-validated by the persistence layer's
// conditional update, so a lost race surfaces as a conflict there.
func (t *Truck) Claim() error {
	newStatus, err := t.status.Claim()
	if err != nil {
		return errs.NewInvalidTransitionErrorWithCause("claim_truck", t.id.String(), t.status.String(), err)
	}

	t.status = newStatus
	return nil
}

// Release returns the truck to the idle pool (InTransit -> Idle).
// Called when the truck's dispatch completes or is cancelled; the released
// truck becomes a candidate for the next allocation sweep.
func (t *Truck) Release() error {
	newStatus, err := t.status.Release()
	if err != nil {
		return errs.NewInvalidTransitionErrorWithCause("release_truck", t.id.String(), t.status.String(), err)
	}

	t.status = newStatus
	return nil
}

func (t *Truck) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	t.id = id
	return nil
}

func (t *Truck) setPlate(plate string) error {
	if plate == "" {
		return ErrPlateIsRequired
	}
	t.plate = plate
	return nil
}

func (t *Truck) setCapacity(capacity kernel.Weight) error {
	if err := capacity.Validate(); err != nil {
		return err
	}
	t.capacity = capacity
	return nil
}

func (t *Truck) setDriverName(driverName string) error {
	if driverName == "" {
		return ErrDriverNameIsRequired
	}
	t.driverName = driverName
	return nil
}

func (t *Truck) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	t.status = status
	return nil
}

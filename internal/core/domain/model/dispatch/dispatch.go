package dispatch

import (
	"errors"
	"fmt"
	"time"

	"haulage/internal/core/domain/model/kernel"
	"haulage/internal/pkg/errs"
)

var (
	// ErrDispatchIsNotConstructed is returned when using an improperly initialized Dispatch.
	ErrDispatchIsNotConstructed = errors.New("Dispatch must be created via NewDispatch constructor")
	// ErrWeightsAreNotRecorded is returned when deriving the net weight before both weighings happened.
	ErrWeightsAreNotRecorded = errors.New("gross and tare weights are not recorded yet")
)

// Dispatch represents a single truck-to-order fulfillment job.
// It is the central aggregate of the system: created when a truck is
// allocated to an order, it walks the order through the physical weighing
// and unloading sequence and, on completion, triggers the order, truck and
// stock side effects.
//
// Business rules:
//   - Status only moves forward along the fixed sequence; Cancelled is
//     reachable from any non-terminal status
//   - The gross weight is recorded at weigh-in, the tare weight at
//     weigh-out, and tare must be strictly less than gross
//   - Each transition stamps its own timestamp exactly once
//   - An operator may be (re)assigned at any time before a terminal status
type Dispatch struct {
	// id uniquely identifies the dispatch
	id kernel.UUID
	// truckID references the truck claimed for this dispatch
	truckID kernel.UUID
	// orderID references the order being fulfilled
	orderID kernel.UUID
	// operatorID references the operator working the dispatch, if assigned
	operatorID *kernel.UUID
	// status is the current workflow state
	status Status
	// grossWeight is the loaded-truck weight recorded at weigh-in
	grossWeight *kernel.Weight
	// tareWeight is the empty-truck weight recorded at weigh-out
	tareWeight *kernel.Weight

	// per-transition timestamps, each set exactly once
	startedAt    *time.Time
	weighedInAt  *time.Time
	unloadedAt   *time.Time
	weighedOutAt *time.Time
	completedAt  *time.Time

	// attachments are proof photos captured during the workflow
	attachments []*Attachment
	// guard ensures the dispatch was properly constructed
	guard kernel.ConstructorGuard
}

// NewDispatch creates a new Dispatch binding a truck to an order.
// New dispatches start in the Assigned status with no weights, no operator
// and no attachments.
func NewDispatch(id, truckID, orderID kernel.UUID) (*Dispatch, error) {
	d := &Dispatch{
		status: Assigned,
		guard:  kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setTruckID(truckID),
		d.setOrderID(orderID),
	); err != nil {
		return nil, err
	}

	return d, nil
}

// RestoreDispatch reconstructs a Dispatch aggregate from persistent storage,
// preserving its full workflow state at the time of persistence.
func RestoreDispatch(
	id, truckID, orderID kernel.UUID,
	operatorID *kernel.UUID,
	status Status,
	grossWeight, tareWeight *kernel.Weight,
	startedAt, weighedInAt, unloadedAt, weighedOutAt, completedAt *time.Time,
	attachments []*Attachment,
) (*Dispatch, error) {
	d := &Dispatch{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		d.setID(id),
		d.setTruckID(truckID),
		d.setOrderID(orderID),
		d.setOperatorID(operatorID),
		d.setStatus(status),
		d.setGrossWeight(grossWeight),
		d.setTareWeight(tareWeight),
		d.setAttachments(attachments),
	); err != nil {
		return nil, err
	}

	d.startedAt = startedAt
	d.weighedInAt = weighedInAt
	d.unloadedAt = unloadedAt
	d.weighedOutAt = weighedOutAt
	d.completedAt = completedAt

	return d, nil
}

// Validate checks if the Dispatch was properly constructed using a constructor.
// The zero value of Dispatch is invalid and will fail this validation.
func (d *Dispatch) Validate() error {
	if d == nil {
		return ErrDispatchIsNotConstructed
	}
	return d.guard.Validate(ErrDispatchIsNotConstructed)
}

// IsEqual compares two dispatches by their unique identifiers.
func (d *Dispatch) IsEqual(other *Dispatch) bool {
	return other != nil && d.id.IsEqual(other.id)
}

// ID returns the dispatch's unique identifier.
func (d *Dispatch) ID() kernel.UUID {
	return d.id
}

// TruckID returns the identifier of the claimed truck.
func (d *Dispatch) TruckID() kernel.UUID {
	return d.truckID
}

// OrderID returns the identifier of the order being fulfilled.
func (d *Dispatch) OrderID() kernel.UUID {
	return d.orderID
}

// OperatorID returns the assigned operator's identifier, or nil if none.
func (d *Dispatch) OperatorID() *kernel.UUID {
	return d.operatorID
}

// Status returns the current workflow state.
func (d *Dispatch) Status() Status {
	return d.status
}

// GrossWeight returns the loaded-truck weight, or nil before weigh-in.
func (d *Dispatch) GrossWeight() *kernel.Weight {
	return d.grossWeight
}

// TareWeight returns the empty-truck weight, or nil before weigh-out.
func (d *Dispatch) TareWeight() *kernel.Weight {
	return d.tareWeight
}

// StartedAt returns when the journey started, or nil.
func (d *Dispatch) StartedAt() *time.Time {
	return d.startedAt
}

// WeighedInAt returns when the gross weight was recorded, or nil.
func (d *Dispatch) WeighedInAt() *time.Time {
	return d.weighedInAt
}

// UnloadedAt returns when the material was unloaded, or nil.
func (d *Dispatch) UnloadedAt() *time.Time {
	return d.unloadedAt
}

// WeighedOutAt returns when the tare weight was recorded, or nil.
func (d *Dispatch) WeighedOutAt() *time.Time {
	return d.weighedOutAt
}

// CompletedAt returns when the dispatch completed, or nil.
func (d *Dispatch) CompletedAt() *time.Time {
	return d.completedAt
}

// Attachments returns the proof photos captured during the workflow.
func (d *Dispatch) Attachments() []*Attachment {
	return d.attachments
}

// IsTerminal reports whether the dispatch reached a final status.
func (d *Dispatch) IsTerminal() bool {
	return d.status.IsTerminal()
}

// NetWeight derives the delivered material weight (gross minus tare).
// Both weighings must have happened; the tare < gross invariant enforced at
// weigh-out guarantees the result is a valid positive weight.
func (d *Dispatch) NetWeight() (kernel.Weight, error) {
	if d.grossWeight == nil || d.tareWeight == nil {
		return kernel.Weight{}, ErrWeightsAreNotRecorded
	}
	return d.grossWeight.Sub(*d.tareWeight)
}

// StartJourney moves the dispatch from Assigned to InTransit and stamps the
// start time. The order's lifecycle begins at this point, not at allocation.
func (d *Dispatch) StartJourney(now time.Time) error {
	newStatus, err := d.status.StartJourney()
	if err != nil {
		return errs.NewInvalidTransitionErrorWithCause("start_journey", d.id.String(), d.status.String(), err)
	}

	d.status = newStatus
	d.startedAt = &now
	return nil
}

// WeighIn records the loaded-truck weight and moves the dispatch from
// InTransit to WeighIn.
func (d *Dispatch) WeighIn(gross kernel.Weight, now time.Time) error {
	if err := gross.Validate(); err != nil {
		return err
	}

	newStatus, err := d.status.WeighIn()
	if err != nil {
		return errs.NewInvalidTransitionErrorWithCause("weigh_in", d.id.String(), d.status.String(), err)
	}

	d.status = newStatus
	d.grossWeight = &gross
	d.weighedInAt = &now
	return nil
}

// Unload moves the dispatch from WeighIn to Unload and stamps the unload
// time. No weight is recorded at this step.
func (d *Dispatch) Unload(now time.Time) error {
	newStatus, err := d.status.Unload()
	if err != nil {
		return errs.NewInvalidTransitionErrorWithCause("unload", d.id.String(), d.status.String(), err)
	}

	d.status = newStatus
	d.unloadedAt = &now
	return nil
}

// WeighOut records the empty-truck weight and moves the dispatch from Unload
// to WeighOut. The tare must be strictly less than the recorded gross weight
// so the derived net weight is positive.
func (d *Dispatch) WeighOut(tare kernel.Weight, now time.Time) error {
	if err := tare.Validate(); err != nil {
		return err
	}
	if d.grossWeight == nil {
		return ErrWeightsAreNotRecorded
	}
	if !tare.Less(*d.grossWeight) {
		return errs.NewValueIsInvalidErrorWithCause("tare weight",
			fmt.Errorf("tare %s must be less than gross %s", tare, *d.grossWeight))
	}

	newStatus, err := d.status.WeighOut()
	if err != nil {
		return errs.NewInvalidTransitionErrorWithCause("weigh_out", d.id.String(), d.status.String(), err)
	}

	d.status = newStatus
	d.tareWeight = &tare
	d.weighedOutAt = &now
	return nil
}

// Complete moves the dispatch from WeighOut to Completed and stamps the
// completion time. The caller is responsible for the atomic side effects
// (order completion, truck release, stock deduction) in the same unit of
// work.
func (d *Dispatch) Complete(now time.Time) error {
	newStatus, err := d.status.Complete()
	if err != nil {
		return errs.NewInvalidTransitionErrorWithCause("complete_job", d.id.String(), d.status.String(), err)
	}

	d.status = newStatus
	d.completedAt = &now
	return nil
}

// Cancel aborts the dispatch from any non-terminal status. Recorded weights
// and timestamps are kept for audit; no stock movement ever results from a
// cancelled dispatch.
func (d *Dispatch) Cancel() error {
	newStatus, err := d.status.Cancel()
	if err != nil {
		return errs.NewInvalidTransitionErrorWithCause("cancel_dispatch", d.id.String(), d.status.String(), err)
	}

	d.status = newStatus
	return nil
}

// AssignOperator binds an operator to the dispatch. Reassignment is allowed;
// the latest assignment wins. Terminal dispatches reject assignment.
func (d *Dispatch) AssignOperator(operatorID kernel.UUID) error {
	if err := operatorID.Validate(); err != nil {
		return err
	}
	if d.status.IsTerminal() {
		return errs.NewInvalidTransitionErrorWithCause("assign_operator", d.id.String(), d.status.String(),
			fmt.Errorf("%w: dispatch is already %s", errs.ErrInvalidTransition, d.status))
	}

	d.operatorID = &operatorID
	return nil
}

// AttachProof records a proof photo for the current workflow stage.
// Terminal dispatches reject new attachments.
func (d *Dispatch) AttachProof(id kernel.UUID, reference, uploadedBy string, now time.Time) (*Attachment, error) {
	if d.status.IsTerminal() {
		return nil, errs.NewInvalidTransitionErrorWithCause("attach_proof", d.id.String(), d.status.String(),
			fmt.Errorf("%w: dispatch is already %s", errs.ErrInvalidTransition, d.status))
	}

	attachment, err := NewAttachment(id, d.status, reference, uploadedBy, now)
	if err != nil {
		return nil, err
	}

	d.attachments = append(d.attachments, attachment)
	return attachment, nil
}

func (d *Dispatch) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	d.id = id
	return nil
}

func (d *Dispatch) setTruckID(truckID kernel.UUID) error {
	if err := truckID.Validate(); err != nil {
		return err
	}
	d.truckID = truckID
	return nil
}

func (d *Dispatch) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	d.orderID = orderID
	return nil
}

func (d *Dispatch) setOperatorID(operatorID *kernel.UUID) error {
	if operatorID == nil {
		return nil
	}
	if err := operatorID.Validate(); err != nil {
		return err
	}
	d.operatorID = operatorID
	return nil
}

func (d *Dispatch) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	d.status = status
	return nil
}

func (d *Dispatch) setGrossWeight(grossWeight *kernel.Weight) error {
	if grossWeight == nil {
		return nil
	}
	if err := grossWeight.Validate(); err != nil {
		return err
	}
	d.grossWeight = grossWeight
	return nil
}

func (d *Dispatch) setTareWeight(tareWeight *kernel.Weight) error {
	if tareWeight == nil {
		return nil
	}
	if err := tareWeight.Validate(); err != nil {
		return err
	}
	d.tareWeight = tareWeight
	return nil
}

func (d *Dispatch) setAttachments(attachments []*Attachment) error {
	for _, attachment := range attachments {
		if err := attachment.Validate(); err != nil {
			return err
		}
	}
	d.attachments = attachments
	return nil
}

package kernel

import (
	"errors"
	"fmt"
	"math"

	"haulage/internal/pkg/errs"
	"haulage/internal/pkg/guard"
)

// ErrWeightIsNotConstructed is returned when attempting to use an improperly initialized Weight.
// Weights must be created using the NewWeight constructor to ensure validity.
var ErrWeightIsNotConstructed = errs.NewValueIsRequiredError(
	"weight must be created via NewWeight constructor")

// ErrNetWeightIsNotPositive is returned by Sub when the subtrahend is greater
// than or equal to the receiver, which would produce a zero or negative mass.
var ErrNetWeightIsNotPositive = errors.New("net weight must be positive")

// Weight represents a positive mass in tonnes.
// Weight is an immutable value object used for truck capacity, order quantity
// and the gross/tare weighings of a dispatch. The zero value is invalid and
// fails validation - use the constructor to create instances.
//
// Example:
//
//	gross, err := kernel.NewWeight(40)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Printf("Gross: %s", gross) // Output: 40.000 t
type Weight struct { //nolint:recvcheck //using for validation
	value float64
	guard guard.ConstructorGuard
}

// NewWeight creates a new Weight with the specified value in tonnes.
// The value must be a finite number greater than zero.
//
// Returns:
//   - Weight: A valid weight instance
//   - error: Validation error if the value is not positive or not finite
func NewWeight(value float64) (Weight, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return Weight{}, errs.NewValueIsInvalidErrorWithCause("weight",
			fmt.Errorf("%v is not a finite number", value))
	}
	if value <= 0 {
		return Weight{}, errs.NewValueIsInvalidErrorWithCause("weight",
			fmt.Errorf("%v is not greater than 0", value))
	}

	return Weight{
		value: value,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Weight instance was properly constructed through NewWeight.
// Returns ErrWeightIsNotConstructed for zero-value instances.
func (w Weight) Validate() error {
	return w.guard.Validate(ErrWeightIsNotConstructed)
}

// Value returns the mass in tonnes.
func (w Weight) Value() float64 {
	return w.value
}

// IsEqual compares two weights for value equality.
func (w Weight) IsEqual(other Weight) bool {
	return w.value == other.value
}

// Less reports whether w is strictly lighter than other.
func (w Weight) Less(other Weight) bool {
	return w.value < other.value
}

// CanCarry reports whether a capacity of w accommodates the given load.
// Used by truck selection: a truck carries an order when its capacity
// is greater than or equal to the order quantity.
func (w Weight) CanCarry(load Weight) bool {
	return w.value >= load.value
}

// Sub derives the difference w - other as a new Weight.
// This is the net-weight rule of the weighbridge: the result must be strictly
// positive, so subtracting a tare greater than or equal to the gross fails
// with ErrNetWeightIsNotPositive.
//
// Example:
//
//	gross, _ := kernel.NewWeight(40)
//	tare, _ := kernel.NewWeight(15)
//	net, err := gross.Sub(tare) // net = 25 t
func (w Weight) Sub(other Weight) (Weight, error) {
	if err := w.Validate(); err != nil {
		return Weight{}, err
	}
	if err := other.Validate(); err != nil {
		return Weight{}, err
	}
	if other.value >= w.value {
		return Weight{}, errs.NewValueIsInvalidErrorWithCause("weight",
			fmt.Errorf("%w: %v - %v", ErrNetWeightIsNotPositive, w.value, other.value))
	}

	return NewWeight(w.value - other.value)
}

// String returns the human-readable representation of the weight in tonnes.
// Implements the fmt.Stringer interface.
func (w Weight) String() string {
	return fmt.Sprintf("%.3f t", w.value)
}

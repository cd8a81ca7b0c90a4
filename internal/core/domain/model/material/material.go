package material

import (
	"errors"
	"fmt"

	"haulage/internal/core/domain/model/kernel"
	"haulage/internal/pkg/errs"
	"haulage/internal/pkg/guard"
)

// LowStockThreshold is the quantity below which a material is flagged as low
// on stock. The flag is derived on read, never stored.
const LowStockThreshold = 10.0

// Domain errors for material operations.
var (
	// ErrNameIsRequired is returned when attempting to create a material without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrUnitIsRequired is returned when attempting to create a material without a measurement unit.
	ErrUnitIsRequired = errs.NewValueIsRequiredError("unit")
	// ErrMaterialIsNotConstructed is returned when using an improperly initialized Material.
	ErrMaterialIsNotConstructed = errors.New("Material must be created via NewMaterial constructor")
)

// Material represents a stocked bulk material in the system.
// It is an aggregate root holding the current stock quantity, which is only
// mutated by the stock-ledger side effect of dispatch completion and by
// explicit restocking.
//
// Business rules:
//   - Stock quantity is never negative
//   - Deduction clamps at zero: a physical unload cannot be reversed, so an
//     underflow is recorded as a discrepancy rather than rejected
//   - The low-stock flag is derived from the quantity, not stored
type Material struct {
	// id uniquely identifies the material
	id kernel.UUID
	// name is the human-readable material name, matched by orders' material type
	name string
	// stockQuantity is the currently available mass, in units of unit
	stockQuantity float64
	// unit names the measurement unit (e.g. "tons")
	unit string
	// guard ensures the material was properly constructed
	guard guard.ConstructorGuard
}

// NewMaterial creates a new Material with the specified parameters.
// Stock quantity must be non-negative; zero is a valid (empty) stock level.
func NewMaterial(id kernel.UUID, name string, stockQuantity float64, unit string) (*Material, error) {
	m := &Material{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		m.setID(id),
		m.setName(name),
		m.setStockQuantity(stockQuantity),
		m.setUnit(unit),
	); err != nil {
		return nil, err
	}

	return m, nil
}

// RestoreMaterial reconstructs a Material aggregate from persistent storage.
func RestoreMaterial(id kernel.UUID, name string, stockQuantity float64, unit string) (*Material, error) {
	return NewMaterial(id, name, stockQuantity, unit)
}

// Validate checks if the Material was properly constructed using a constructor.
func (m *Material) Validate() error {
	if m == nil {
		return ErrMaterialIsNotConstructed
	}
	return m.guard.Validate(ErrMaterialIsNotConstructed)
}

// IsEqual compares two materials by their unique identifiers.
func (m *Material) IsEqual(other *Material) bool {
	return other != nil && m.id.IsEqual(other.id)
}

// ID returns the material's unique identifier.
func (m *Material) ID() kernel.UUID {
	return m.id
}

// Name returns the material's name.
func (m *Material) Name() string {
	return m.name
}

// StockQuantity returns the currently available mass.
func (m *Material) StockQuantity() float64 {
	return m.stockQuantity
}

// Unit returns the measurement unit of the stock quantity.
func (m *Material) Unit() string {
	return m.unit
}

// IsLowStock reports whether the stock quantity is below LowStockThreshold.
func (m *Material) IsLowStock() bool {
	return m.stockQuantity < LowStockThreshold
}

// Deduct removes the given net weight from stock, clamping at zero.
//
// The returned flag reports whether clamping occurred, i.e. the net weight
// exceeded the recorded stock. That situation is a recorded inconsistency,
// not an error: the material was physically already removed, so the ledger
// floors at zero and the discrepancy is surfaced to the caller as a warning.
func (m *Material) Deduct(net kernel.Weight) (clamped bool, err error) {
	if err := m.Validate(); err != nil {
		return false, err
	}
	if err := net.Validate(); err != nil {
		return false, err
	}

	remaining := m.stockQuantity - net.Value()
	if remaining < 0 {
		m.stockQuantity = 0
		return true, nil
	}

	m.stockQuantity = remaining
	return false, nil
}

// Restock sets the stock quantity to a new non-negative level.
func (m *Material) Restock(quantity float64) error {
	return m.setStockQuantity(quantity)
}

func (m *Material) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *Material) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	m.name = name
	return nil
}

func (m *Material) setStockQuantity(quantity float64) error {
	if quantity < 0 {
		return errs.NewValueIsInvalidErrorWithCause("stock quantity",
			fmt.Errorf("%v is negative", quantity))
	}
	m.stockQuantity = quantity
	return nil
}

func (m *Material) setUnit(unit string) error {
	if unit == "" {
		return ErrUnitIsRequired
	}
	m.unit = unit
	return nil
}

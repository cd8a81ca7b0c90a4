package material_test

import (
	"testing"

	"haulage/internal/core/domain/model/kernel"
	"haulage/internal/core/domain/model/material"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMaterial(t *testing.T) {
	t.Run("creates_valid_material", func(t *testing.T) {
		id := kernel.NewUUID()

		m, err := material.NewMaterial(id, "Sand", 120, "tons")

		require.NoError(t, err)
		require.NoError(t, m.Validate())
		assert.True(t, m.ID().IsEqual(id))
		assert.Equal(t, "Sand", m.Name())
		assert.InDelta(t, 120.0, m.StockQuantity(), 0.0001)
		assert.Equal(t, "tons", m.Unit())
	})

	t.Run("zero_stock_is_valid", func(t *testing.T) {
		m, err := material.NewMaterial(kernel.NewUUID(), "Gravel", 0, "tons")

		require.NoError(t, err)
		assert.InDelta(t, 0.0, m.StockQuantity(), 0.0001)
	})

	t.Run("negative_stock_is_invalid", func(t *testing.T) {
		_, err := material.NewMaterial(kernel.NewUUID(), "Gravel", -1, "tons")

		require.Error(t, err)
	})

	t.Run("requires_name_and_unit", func(t *testing.T) {
		_, err := material.NewMaterial(kernel.NewUUID(), "", 10, "tons")
		require.Error(t, err)

		_, err = material.NewMaterial(kernel.NewUUID(), "Sand", 10, "")
		require.Error(t, err)
	})
}

func TestMaterial_Deduct(t *testing.T) {
	t.Run("deducts_net_weight", func(t *testing.T) {
		m, _ := material.NewMaterial(kernel.NewUUID(), "Sand", 100, "tons")
		net, _ := kernel.NewWeight(25)

		clamped, err := m.Deduct(net)

		require.NoError(t, err)
		assert.False(t, clamped)
		assert.InDelta(t, 75.0, m.StockQuantity(), 0.0001)
	})

	t.Run("clamps_at_zero_on_underflow", func(t *testing.T) {
		m, _ := material.NewMaterial(kernel.NewUUID(), "Sand", 10, "tons")
		net, _ := kernel.NewWeight(25)

		clamped, err := m.Deduct(net)

		require.NoError(t, err)
		assert.True(t, clamped)
		assert.InDelta(t, 0.0, m.StockQuantity(), 0.0001)
	})

	t.Run("exact_deduction_is_not_clamped", func(t *testing.T) {
		m, _ := material.NewMaterial(kernel.NewUUID(), "Sand", 25, "tons")
		net, _ := kernel.NewWeight(25)

		clamped, err := m.Deduct(net)

		require.NoError(t, err)
		assert.False(t, clamped)
		assert.InDelta(t, 0.0, m.StockQuantity(), 0.0001)
	})

	t.Run("unconstructed_weight_fails", func(t *testing.T) {
		m, _ := material.NewMaterial(kernel.NewUUID(), "Sand", 25, "tons")
		var net kernel.Weight

		_, err := m.Deduct(net)

		require.Error(t, err)
		assert.InDelta(t, 25.0, m.StockQuantity(), 0.0001)
	})
}

func TestMaterial_IsLowStock(t *testing.T) {
	m, _ := material.NewMaterial(kernel.NewUUID(), "Sand", 9.9, "tons")
	assert.True(t, m.IsLowStock())

	m, _ = material.NewMaterial(kernel.NewUUID(), "Sand", 10, "tons")
	assert.False(t, m.IsLowStock())
}

func TestMaterial_Restock(t *testing.T) {
	m, _ := material.NewMaterial(kernel.NewUUID(), "Sand", 5, "tons")

	require.NoError(t, m.Restock(50))
	assert.InDelta(t, 50.0, m.StockQuantity(), 0.0001)

	require.Error(t, m.Restock(-1))
	assert.InDelta(t, 50.0, m.StockQuantity(), 0.0001)
}

func TestMaterial_Validate(t *testing.T) {
	var m material.Material
	require.ErrorIs(t, m.Validate(), material.ErrMaterialIsNotConstructed)

	var nilMaterial *material.Material
	require.ErrorIs(t, nilMaterial.Validate(), material.ErrMaterialIsNotConstructed)
}

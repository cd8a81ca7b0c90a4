package commands_test

import (
	"log/slog"
	"testing"
	"time"

	"haulage/internal/core/domain/model/dispatch"
	"haulage/internal/core/domain/model/kernel"
	"haulage/internal/core/domain/model/material"
	"haulage/internal/core/domain/model/order"
	"haulage/internal/core/domain/model/truck"

	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func makeWeight(t *testing.T, tonnes float64) kernel.Weight {
	t.Helper()
	w, err := kernel.NewWeight(tonnes)
	require.NoError(t, err)
	return w
}

func makeTruck(t *testing.T, capacity float64) *truck.Truck {
	t.Helper()
	tr, err := truck.NewTruck(kernel.NewUUID(), "KA-01-1234", makeWeight(t, capacity), "R. Kumar")
	require.NoError(t, err)
	return tr
}

func makePendingOrder(t *testing.T, quantity float64) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), "Sand", makeWeight(t, quantity))
	require.NoError(t, err)
	return o
}

// makeDispatchAt builds a dispatch advanced to the given status, with
// plausible weights recorded along the way.
func makeDispatchAt(t *testing.T, status dispatch.Status) *dispatch.Dispatch {
	t.Helper()

	d, err := dispatch.NewDispatch(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)
	now := time.Now().UTC()

	if status == dispatch.Assigned {
		return d
	}
	require.NoError(t, d.StartJourney(now))
	if status == dispatch.InTransit {
		return d
	}
	require.NoError(t, d.WeighIn(makeWeight(t, 32), now))
	if status == dispatch.WeighIn {
		return d
	}
	require.NoError(t, d.Unload(now))
	if status == dispatch.Unload {
		return d
	}
	require.NoError(t, d.WeighOut(makeWeight(t, 12), now))
	if status == dispatch.WeighOut {
		return d
	}
	require.NoError(t, d.Complete(now))
	require.Equal(t, status, d.Status())
	return d
}

func makeMaterial(t *testing.T, name string, stock float64) *material.Material {
	t.Helper()
	m, err := material.NewMaterial(kernel.NewUUID(), name, stock, "tons")
	require.NoError(t, err)
	return m
}

package dispatch_test

import (
	"testing"
	"time"

	"haulage/internal/core/domain/model/dispatch"
	"haulage/internal/core/domain/model/kernel"
	"haulage/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustWeight(t *testing.T, tonnes float64) kernel.Weight {
	t.Helper()
	w, err := kernel.NewWeight(tonnes)
	require.NoError(t, err)
	return w
}

func newAssignedDispatch(t *testing.T) *dispatch.Dispatch {
	t.Helper()
	d, err := dispatch.NewDispatch(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID())
	require.NoError(t, err)
	return d
}

// walkTo advances a fresh dispatch up to (and including) the given status.
func walkTo(t *testing.T, target dispatch.Status) *dispatch.Dispatch {
	t.Helper()
	d := newAssignedDispatch(t)
	now := time.Now().UTC()

	steps := []func() error{
		func() error { return d.StartJourney(now) },
		func() error { return d.WeighIn(mustWeight(t, 32), now) },
		func() error { return d.Unload(now) },
		func() error { return d.WeighOut(mustWeight(t, 12), now) },
		func() error { return d.Complete(now) },
	}
	targets := []dispatch.Status{
		dispatch.InTransit, dispatch.WeighIn, dispatch.Unload, dispatch.WeighOut, dispatch.Completed,
	}

	for i, step := range steps {
		if target == dispatch.Assigned {
			break
		}
		require.NoError(t, step())
		if targets[i] == target {
			break
		}
	}

	require.Equal(t, target, d.Status())
	return d
}

func TestNewDispatch(t *testing.T) {
	t.Run("creates_assigned_dispatch", func(t *testing.T) {
		id, truckID, orderID := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()

		d, err := dispatch.NewDispatch(id, truckID, orderID)

		require.NoError(t, err)
		require.NoError(t, d.Validate())
		assert.True(t, d.ID().IsEqual(id))
		assert.True(t, d.TruckID().IsEqual(truckID))
		assert.True(t, d.OrderID().IsEqual(orderID))
		assert.Equal(t, dispatch.Assigned, d.Status())
		assert.Nil(t, d.OperatorID())
		assert.Nil(t, d.GrossWeight())
		assert.Nil(t, d.TareWeight())
		assert.Nil(t, d.StartedAt())
		assert.Nil(t, d.CompletedAt())
		assert.Empty(t, d.Attachments())
	})

	t.Run("requires_valid_ids", func(t *testing.T) {
		_, err := dispatch.NewDispatch(kernel.UUID{}, kernel.NewUUID(), kernel.NewUUID())
		require.Error(t, err)

		_, err = dispatch.NewDispatch(kernel.NewUUID(), kernel.UUID{}, kernel.NewUUID())
		require.Error(t, err)

		_, err = dispatch.NewDispatch(kernel.NewUUID(), kernel.NewUUID(), kernel.UUID{})
		require.Error(t, err)
	})
}

func TestDispatch_HappyPath(t *testing.T) {
	d := newAssignedDispatch(t)
	now := time.Now().UTC()

	require.NoError(t, d.StartJourney(now))
	assert.Equal(t, dispatch.InTransit, d.Status())
	require.NotNil(t, d.StartedAt())

	gross := mustWeight(t, 32.5)
	require.NoError(t, d.WeighIn(gross, now))
	assert.Equal(t, dispatch.WeighIn, d.Status())
	require.NotNil(t, d.GrossWeight())
	assert.True(t, d.GrossWeight().IsEqual(gross))
	require.NotNil(t, d.WeighedInAt())

	require.NoError(t, d.Unload(now))
	assert.Equal(t, dispatch.Unload, d.Status())
	require.NotNil(t, d.UnloadedAt())

	tare := mustWeight(t, 12.5)
	require.NoError(t, d.WeighOut(tare, now))
	assert.Equal(t, dispatch.WeighOut, d.Status())
	require.NotNil(t, d.TareWeight())
	require.NotNil(t, d.WeighedOutAt())

	net, err := d.NetWeight()
	require.NoError(t, err)
	assert.InDelta(t, 20.0, net.Value(), 0.0001)

	require.NoError(t, d.Complete(now))
	assert.Equal(t, dispatch.Completed, d.Status())
	require.NotNil(t, d.CompletedAt())
	assert.True(t, d.IsTerminal())
}

func TestDispatch_OutOfOrderTransitions(t *testing.T) {
	now := time.Now().UTC()

	t.Run("cannot_weigh_in_before_journey", func(t *testing.T) {
		d := newAssignedDispatch(t)

		err := d.WeighIn(mustWeight(t, 30), now)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, dispatch.Assigned, d.Status())
	})

	t.Run("cannot_skip_unload", func(t *testing.T) {
		d := walkTo(t, dispatch.WeighIn)

		err := d.WeighOut(mustWeight(t, 10), now)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("cannot_repeat_a_step", func(t *testing.T) {
		d := walkTo(t, dispatch.WeighIn)

		err := d.WeighIn(mustWeight(t, 30), now)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("cannot_complete_before_weigh_out", func(t *testing.T) {
		d := walkTo(t, dispatch.Unload)

		err := d.Complete(now)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestDispatch_WeighOut(t *testing.T) {
	now := time.Now().UTC()

	t.Run("rejects_tare_not_less_than_gross", func(t *testing.T) {
		d := walkTo(t, dispatch.Unload)

		err := d.WeighOut(mustWeight(t, 32), now)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, dispatch.Unload, d.Status())
		assert.Nil(t, d.TareWeight())
	})

	t.Run("rejects_unconstructed_tare", func(t *testing.T) {
		d := walkTo(t, dispatch.Unload)

		err := d.WeighOut(kernel.Weight{}, now)

		require.Error(t, err)
		assert.Equal(t, dispatch.Unload, d.Status())
	})
}

func TestDispatch_Cancel(t *testing.T) {
	t.Run("cancels_mid_workflow_keeping_recorded_data", func(t *testing.T) {
		d := walkTo(t, dispatch.WeighIn)

		require.NoError(t, d.Cancel())

		assert.Equal(t, dispatch.Cancelled, d.Status())
		assert.True(t, d.IsTerminal())
		assert.NotNil(t, d.GrossWeight())
		assert.NotNil(t, d.WeighedInAt())
	})

	t.Run("cannot_cancel_completed_dispatch", func(t *testing.T) {
		d := walkTo(t, dispatch.Completed)

		err := d.Cancel()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("cancel_is_not_idempotent", func(t *testing.T) {
		d := newAssignedDispatch(t)
		require.NoError(t, d.Cancel())

		require.Error(t, d.Cancel())
	})

	t.Run("cancelled_dispatch_rejects_further_transitions", func(t *testing.T) {
		d := newAssignedDispatch(t)
		require.NoError(t, d.Cancel())

		err := d.StartJourney(time.Now().UTC())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestDispatch_AssignOperator(t *testing.T) {
	t.Run("assigns_and_reassigns", func(t *testing.T) {
		d := walkTo(t, dispatch.InTransit)
		first, second := kernel.NewUUID(), kernel.NewUUID()

		require.NoError(t, d.AssignOperator(first))
		require.NotNil(t, d.OperatorID())
		assert.True(t, d.OperatorID().IsEqual(first))

		require.NoError(t, d.AssignOperator(second))
		assert.True(t, d.OperatorID().IsEqual(second))
	})

	t.Run("rejects_assignment_on_terminal_dispatch", func(t *testing.T) {
		d := walkTo(t, dispatch.Completed)

		err := d.AssignOperator(kernel.NewUUID())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	})

	t.Run("rejects_invalid_operator_id", func(t *testing.T) {
		d := newAssignedDispatch(t)

		require.Error(t, d.AssignOperator(kernel.UUID{}))
	})
}

func TestDispatch_AttachProof(t *testing.T) {
	now := time.Now().UTC()

	t.Run("records_attachment_for_current_stage", func(t *testing.T) {
		d := walkTo(t, dispatch.WeighIn)

		attachment, err := d.AttachProof(kernel.NewUUID(), "proofs/ticket-001.jpg", "operator-1", now)

		require.NoError(t, err)
		require.NoError(t, attachment.Validate())
		assert.Equal(t, dispatch.WeighIn, attachment.Stage())
		assert.Equal(t, "proofs/ticket-001.jpg", attachment.Reference())
		assert.Equal(t, "operator-1", attachment.UploadedBy())
		assert.Len(t, d.Attachments(), 1)
	})

	t.Run("requires_reference_and_uploader", func(t *testing.T) {
		d := walkTo(t, dispatch.WeighIn)

		_, err := d.AttachProof(kernel.NewUUID(), "", "operator-1", now)
		require.Error(t, err)

		_, err = d.AttachProof(kernel.NewUUID(), "proofs/ticket-001.jpg", "", now)
		require.Error(t, err)

		assert.Empty(t, d.Attachments())
	})

	t.Run("rejects_attachment_on_terminal_dispatch", func(t *testing.T) {
		d := walkTo(t, dispatch.Completed)

		_, err := d.AttachProof(kernel.NewUUID(), "proofs/ticket-001.jpg", "operator-1", now)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	})
}

func TestDispatch_NetWeight(t *testing.T) {
	t.Run("fails_before_both_weighings", func(t *testing.T) {
		d := walkTo(t, dispatch.WeighIn)

		_, err := d.NetWeight()

		require.ErrorIs(t, err, dispatch.ErrWeightsAreNotRecorded)
	})
}

func TestRestoreDispatch(t *testing.T) {
	t.Run("restores_full_workflow_state", func(t *testing.T) {
		id, truckID, orderID := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()
		operatorID := kernel.NewUUID()
		gross, tare := mustWeight(t, 30), mustWeight(t, 11)
		now := time.Now().UTC()
		attachment, err := dispatch.RestoreAttachment(
			kernel.NewUUID(), dispatch.Unload, "proofs/ticket-002.jpg", "operator-2", now)
		require.NoError(t, err)

		d, err := dispatch.RestoreDispatch(
			id, truckID, orderID, &operatorID,
			dispatch.WeighOut, &gross, &tare,
			&now, &now, &now, &now, nil,
			[]*dispatch.Attachment{attachment},
		)

		require.NoError(t, err)
		require.NoError(t, d.Validate())
		assert.Equal(t, dispatch.WeighOut, d.Status())
		require.NotNil(t, d.OperatorID())
		assert.True(t, d.OperatorID().IsEqual(operatorID))
		assert.Len(t, d.Attachments(), 1)

		net, err := d.NetWeight()
		require.NoError(t, err)
		assert.InDelta(t, 19.0, net.Value(), 0.0001)
	})

	t.Run("rejects_invalid_status", func(t *testing.T) {
		_, err := dispatch.RestoreDispatch(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), nil,
			dispatch.Unknown, nil, nil,
			nil, nil, nil, nil, nil, nil,
		)

		require.Error(t, err)
	})
}

func TestDispatch_Validate(t *testing.T) {
	var d dispatch.Dispatch
	require.ErrorIs(t, d.Validate(), dispatch.ErrDispatchIsNotConstructed)

	var nilDispatch *dispatch.Dispatch
	require.ErrorIs(t, nilDispatch.Validate(), dispatch.ErrDispatchIsNotConstructed)
}

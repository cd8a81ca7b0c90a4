package commands

import (
	"errors"

	"haulage/internal/core/domain/model/kernel"
	"haulage/internal/pkg/guard"
)

var ErrWeighOutCommandIsNotConstructed = errors.New(
	"WeighOutCommand must be created via NewWeighOutCommand constructor",
)

// WeighOutCommand represents a request to record the empty-truck weighing of
// an unloaded dispatch. The tare must end up strictly below the recorded
// gross weight; that rule lives in the aggregate, not here. An optional
// proof photo reference can be attached in the same operation.
type WeighOutCommand struct { //nolint:recvcheck //using for validation
	dispatchID     kernel.UUID
	tareWeight     kernel.Weight
	proofReference string
	uploadedBy     string

	guard guard.ConstructorGuard
}

// NewWeighOutCommand creates a command to record a tare weighing.
// The proof reference and uploader are optional, but a reference without an
// uploader is rejected.
func NewWeighOutCommand(
	dispatchID kernel.UUID,
	tareWeight kernel.Weight,
	proofReference, uploadedBy string,
) (WeighOutCommand, error) {
	command := WeighOutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDispatchID(dispatchID),
		command.setTareWeight(tareWeight),
		command.setProof(proofReference, uploadedBy),
	); err != nil {
		return WeighOutCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrWeighOutCommandIsNotConstructed if validation fails.
func (c WeighOutCommand) Validate() error {
	return c.guard.Validate(ErrWeighOutCommandIsNotConstructed)
}

// DispatchID returns the identifier of the dispatch to weigh.
func (c WeighOutCommand) DispatchID() kernel.UUID {
	return c.dispatchID
}

// TareWeight returns the empty-truck weight.
func (c WeighOutCommand) TareWeight() kernel.Weight {
	return c.tareWeight
}

// ProofReference returns the optional media reference, empty if none.
func (c WeighOutCommand) ProofReference() string {
	return c.proofReference
}

// UploadedBy returns the identity of the proof uploader, empty if none.
func (c WeighOutCommand) UploadedBy() string {
	return c.uploadedBy
}

func (c *WeighOutCommand) setDispatchID(dispatchID kernel.UUID) error {
	if err := dispatchID.Validate(); err != nil {
		return err
	}

	c.dispatchID = dispatchID
	return nil
}

func (c *WeighOutCommand) setTareWeight(tareWeight kernel.Weight) error {
	if err := tareWeight.Validate(); err != nil {
		return err
	}

	c.tareWeight = tareWeight
	return nil
}

func (c *WeighOutCommand) setProof(proofReference, uploadedBy string) error {
	if proofReference != "" && uploadedBy == "" {
		return ErrUploaderIsRequired
	}

	c.proofReference = proofReference
	c.uploadedBy = uploadedBy
	return nil
}

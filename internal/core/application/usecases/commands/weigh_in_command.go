package commands

import (
	"errors"

	"haulage/internal/core/domain/model/kernel"
	"haulage/internal/pkg/guard"
)

var (
	ErrWeighInCommandIsNotConstructed = errors.New(
		"WeighInCommand must be created via NewWeighInCommand constructor",
	)
	// ErrUploaderIsRequired is returned when a proof reference is supplied
	// without naming who uploaded it.
	ErrUploaderIsRequired = errors.New("uploaded by is required when a proof reference is supplied")
)

// WeighInCommand represents a request to record the loaded-truck weighing of
// an in-transit dispatch. An optional proof photo reference can be attached
// in the same operation.
type WeighInCommand struct { //nolint:recvcheck //using for validation
	dispatchID     kernel.UUID
	grossWeight    kernel.Weight
	proofReference string
	uploadedBy     string

	guard guard.ConstructorGuard
}

// NewWeighInCommand creates a command to record a gross weighing.
// The proof reference and uploader are optional, but a reference without an
// uploader is rejected.
func NewWeighInCommand(
	dispatchID kernel.UUID,
	grossWeight kernel.Weight,
	proofReference, uploadedBy string,
) (WeighInCommand, error) {
	command := WeighInCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDispatchID(dispatchID),
		command.setGrossWeight(grossWeight),
		command.setProof(proofReference, uploadedBy),
	); err != nil {
		return WeighInCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrWeighInCommandIsNotConstructed if validation fails.
func (c WeighInCommand) Validate() error {
	return c.guard.Validate(ErrWeighInCommandIsNotConstructed)
}

// DispatchID returns the identifier of the dispatch to weigh.
func (c WeighInCommand) DispatchID() kernel.UUID {
	return c.dispatchID
}

// GrossWeight returns the loaded-truck weight.
func (c WeighInCommand) GrossWeight() kernel.Weight {
	return c.grossWeight
}

// ProofReference returns the optional media reference, empty if none.
func (c WeighInCommand) ProofReference() string {
	return c.proofReference
}

// UploadedBy returns the identity of the proof uploader, empty if none.
func (c WeighInCommand) UploadedBy() string {
	return c.uploadedBy
}

func (c *WeighInCommand) setDispatchID(dispatchID kernel.UUID) error {
	if err := dispatchID.Validate(); err != nil {
		return err
	}

	c.dispatchID = dispatchID
	return nil
}

func (c *WeighInCommand) setGrossWeight(grossWeight kernel.Weight) error {
	if err := grossWeight.Validate(); err != nil {
		return err
	}

	c.grossWeight = grossWeight
	return nil
}

func (c *WeighInCommand) setProof(proofReference, uploadedBy string) error {
	if proofReference != "" && uploadedBy == "" {
		return ErrUploaderIsRequired
	}

	c.proofReference = proofReference
	c.uploadedBy = uploadedBy
	return nil
}

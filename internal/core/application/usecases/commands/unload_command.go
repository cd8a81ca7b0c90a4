package commands

import (
	"errors"

	"haulage/internal/core/domain/model/kernel"
	"haulage/internal/pkg/guard"
)

var ErrUnloadCommandIsNotConstructed = errors.New(
	"UnloadCommand must be created via NewUnloadCommand constructor",
)

// UnloadCommand represents a request to record the unloading of a weighed-in
// dispatch. An optional proof photo reference can be attached in the same
// operation.
type UnloadCommand struct { //nolint:recvcheck //using for validation
	dispatchID     kernel.UUID
	proofReference string
	uploadedBy     string

	guard guard.ConstructorGuard
}

// NewUnloadCommand creates a command to record an unloading.
// The proof reference and uploader are optional, but a reference without an
// uploader is rejected.
func NewUnloadCommand(dispatchID kernel.UUID, proofReference, uploadedBy string) (UnloadCommand, error) {
	command := UnloadCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setDispatchID(dispatchID),
		command.setProof(proofReference, uploadedBy),
	); err != nil {
		return UnloadCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrUnloadCommandIsNotConstructed if validation fails.
func (c UnloadCommand) Validate() error {
	return c.guard.Validate(ErrUnloadCommandIsNotConstructed)
}

// DispatchID returns the identifier of the dispatch to unload.
func (c UnloadCommand) DispatchID() kernel.UUID {
	return c.dispatchID
}

// ProofReference returns the optional media reference, empty if none.
func (c UnloadCommand) ProofReference() string {
	return c.proofReference
}

// UploadedBy returns the identity of the proof uploader, empty if none.
func (c UnloadCommand) UploadedBy() string {
	return c.uploadedBy
}

func (c *UnloadCommand) setDispatchID(dispatchID kernel.UUID) error {
	if err := dispatchID.Validate(); err != nil {
		return err
	}

	c.dispatchID = dispatchID
	return nil
}

func (c *UnloadCommand) setProof(proofReference, uploadedBy string) error {
	if proofReference != "" && uploadedBy == "" {
		return ErrUploaderIsRequired
	}

	c.proofReference = proofReference
	c.uploadedBy = uploadedBy
	return nil
}

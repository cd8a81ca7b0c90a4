package dispatch

import (
	"errors"
	"time"

	"haulage/internal/core/domain/model/kernel"
	"haulage/internal/pkg/errs"
)

var (
	// ErrReferenceIsRequired is returned when attaching a proof without a media reference.
	ErrReferenceIsRequired = errs.NewValueIsRequiredError("reference")
	// ErrUploadedByIsRequired is returned when attaching a proof without an uploader identity.
	ErrUploadedByIsRequired = errs.NewValueIsRequiredError("uploaded by")
	// ErrAttachmentIsNotConstructed is returned when using an improperly initialized Attachment.
	ErrAttachmentIsNotConstructed = errors.New("Attachment must be created via NewAttachment constructor")
)

// Attachment is a child entity of Dispatch recording a proof photo captured
// during one of the weighing or unloading steps. The reference is an opaque
// pointer to externally stored media; the entity records which workflow stage
// the photo belongs to and who uploaded it.
type Attachment struct {
	// id uniquely identifies the attachment within the dispatch
	id kernel.UUID
	// stage is the dispatch status at the time the proof was captured
	stage Status
	// reference is an opaque media reference (object key or URL)
	reference string
	// uploadedBy identifies the operator or driver who captured the proof
	uploadedBy string
	// uploadedAt records when the proof was attached
	uploadedAt time.Time
	// guard ensures the attachment was properly constructed
	guard kernel.ConstructorGuard
}

// NewAttachment creates a proof attachment for the given workflow stage.
func NewAttachment(id kernel.UUID, stage Status, reference, uploadedBy string, uploadedAt time.Time) (*Attachment, error) {
	a := &Attachment{
		guard: kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		a.setID(id),
		a.setStage(stage),
		a.setReference(reference),
		a.setUploadedBy(uploadedBy),
	); err != nil {
		return nil, err
	}

	a.uploadedAt = uploadedAt
	return a, nil
}

// RestoreAttachment reconstructs an Attachment from persistent storage.
func RestoreAttachment(id kernel.UUID, stage Status, reference, uploadedBy string, uploadedAt time.Time) (*Attachment, error) {
	return NewAttachment(id, stage, reference, uploadedBy, uploadedAt)
}

// Validate checks if the Attachment was properly constructed using a constructor.
func (a *Attachment) Validate() error {
	if a == nil {
		return ErrAttachmentIsNotConstructed
	}
	return a.guard.Validate(ErrAttachmentIsNotConstructed)
}

// ID returns the attachment's unique identifier.
func (a *Attachment) ID() kernel.UUID {
	return a.id
}

// Stage returns the dispatch status the proof was captured at.
func (a *Attachment) Stage() Status {
	return a.stage
}

// Reference returns the opaque media reference.
func (a *Attachment) Reference() string {
	return a.reference
}

// UploadedBy returns the identity of the uploader.
func (a *Attachment) UploadedBy() string {
	return a.uploadedBy
}

// UploadedAt returns when the proof was attached.
func (a *Attachment) UploadedAt() time.Time {
	return a.uploadedAt
}

func (a *Attachment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	a.id = id
	return nil
}

func (a *Attachment) setStage(stage Status) error {
	if err := stage.Validate(); err != nil {
		return err
	}
	a.stage = stage
	return nil
}

func (a *Attachment) setReference(reference string) error {
	if reference == "" {
		return ErrReferenceIsRequired
	}
	a.reference = reference
	return nil
}

func (a *Attachment) setUploadedBy(uploadedBy string) error {
	if uploadedBy == "" {
		return ErrUploadedByIsRequired
	}
	a.uploadedBy = uploadedBy
	return nil
}

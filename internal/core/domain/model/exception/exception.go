package exception

import (
	"errors"
	"time"

	"haulage/internal/core/domain/model/kernel"
	"haulage/internal/pkg/errs"
	"haulage/internal/pkg/guard"
)

var (
	// ErrDescriptionIsRequired is returned when attempting to log an exception without a description.
	ErrDescriptionIsRequired = errs.NewValueIsRequiredError("description")
	// ErrLoggedByIsRequired is returned when attempting to log an exception without a reporter identity.
	ErrLoggedByIsRequired = errs.NewValueIsRequiredError("logged by")
	// ErrExceptionIsNotConstructed is returned when using an improperly initialized Exception.
	ErrExceptionIsNotConstructed = errors.New("Exception must be created via NewException constructor")
)

// Exception records an operational incident observed while working a
// dispatch. Exceptions never block the dispatch workflow: a dispatch with
// open exceptions can still advance, complete or be cancelled, and resolving
// an exception has no effect on the dispatch state.
type Exception struct {
	// id uniquely identifies the exception
	id kernel.UUID
	// dispatchID references the dispatch the incident was observed on
	dispatchID kernel.UUID
	// category classifies the incident
	category Category
	// description is the free-text incident report
	description string
	// loggedBy identifies who reported the incident
	loggedBy string
	// loggedAt records when the incident was reported
	loggedAt time.Time
	// resolved reports whether the incident has been dealt with
	resolved bool
	// resolvedAt records when the incident was resolved, if it was
	resolvedAt *time.Time
	// guard ensures the exception was properly constructed
	guard guard.ConstructorGuard
}

// NewException logs a new incident against a dispatch.
// New exceptions start unresolved.
func NewException(
	id, dispatchID kernel.UUID,
	category Category,
	description, loggedBy string,
	loggedAt time.Time,
) (*Exception, error) {
	e := &Exception{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		e.setID(id),
		e.setDispatchID(dispatchID),
		e.setCategory(category),
		e.setDescription(description),
		e.setLoggedBy(loggedBy),
	); err != nil {
		return nil, err
	}

	e.loggedAt = loggedAt
	return e, nil
}

// RestoreException reconstructs an Exception from persistent storage.
func RestoreException(
	id, dispatchID kernel.UUID,
	category Category,
	description, loggedBy string,
	loggedAt time.Time,
	resolved bool,
	resolvedAt *time.Time,
) (*Exception, error) {
	e, err := NewException(id, dispatchID, category, description, loggedBy, loggedAt)
	if err != nil {
		return nil, err
	}

	e.resolved = resolved
	e.resolvedAt = resolvedAt
	return e, nil
}

// Validate checks if the Exception was properly constructed using a constructor.
func (e *Exception) Validate() error {
	if e == nil {
		return ErrExceptionIsNotConstructed
	}
	return e.guard.Validate(ErrExceptionIsNotConstructed)
}

// ID returns the exception's unique identifier.
func (e *Exception) ID() kernel.UUID {
	return e.id
}

// DispatchID returns the identifier of the dispatch the incident belongs to.
func (e *Exception) DispatchID() kernel.UUID {
	return e.dispatchID
}

// Category returns the incident classification.
func (e *Exception) Category() Category {
	return e.category
}

// Description returns the free-text incident report.
func (e *Exception) Description() string {
	return e.description
}

// LoggedBy returns the identity of the reporter.
func (e *Exception) LoggedBy() string {
	return e.loggedBy
}

// LoggedAt returns when the incident was reported.
func (e *Exception) LoggedAt() time.Time {
	return e.loggedAt
}

// IsResolved reports whether the incident has been dealt with.
func (e *Exception) IsResolved() bool {
	return e.resolved
}

// ResolvedAt returns when the incident was resolved, or nil if open.
func (e *Exception) ResolvedAt() *time.Time {
	return e.resolvedAt
}

// Resolve marks the incident as dealt with. Resolving an already resolved
// exception is a no-op: the original resolution time is kept.
func (e *Exception) Resolve(now time.Time) error {
	if err := e.Validate(); err != nil {
		return err
	}
	if e.resolved {
		return nil
	}

	e.resolved = true
	e.resolvedAt = &now
	return nil
}

func (e *Exception) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *Exception) setDispatchID(dispatchID kernel.UUID) error {
	if err := dispatchID.Validate(); err != nil {
		return err
	}
	e.dispatchID = dispatchID
	return nil
}

func (e *Exception) setCategory(category Category) error {
	if err := category.Validate(); err != nil {
		return err
	}
	e.category = category
	return nil
}

func (e *Exception) setDescription(description string) error {
	if description == "" {
		return ErrDescriptionIsRequired
	}
	e.description = description
	return nil
}

func (e *Exception) setLoggedBy(loggedBy string) error {
	if loggedBy == "" {
		return ErrLoggedByIsRequired
	}
	e.loggedBy = loggedBy
	return nil
}

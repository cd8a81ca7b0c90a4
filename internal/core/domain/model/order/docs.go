// Package order provides domain entities and business logic for order management
// in the haulage system. It implements the Order aggregate root with lifecycle
// management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, properties, and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//
// Key business rules:
//   - Orders must have a valid unique identifier, customer, material type and positive quantity
//   - Order status follows a defined workflow: Pending -> InProgress -> Completed
//   - Orders become InProgress only when their dispatch starts its journey, not on assignment
//   - Orders can be cancelled until they are completed
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order

// Package truck provides domain entities and business logic for fleet management
// in the haulage system. It implements the Truck aggregate root with the
// claim/release availability state machine.
//
// The package includes:
//   - Truck: The aggregate root that manages truck identity, capacity and availability
//   - Status: A state machine enforcing the Idle/InTransit claim cycle
//
// Key business rules:
//   - Trucks must have a valid unique identifier, plate, driver name and positive capacity
//   - A truck is claimed by exactly one non-terminal dispatch at a time
//   - Claiming requires Idle status; releasing requires InTransit status
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package truck

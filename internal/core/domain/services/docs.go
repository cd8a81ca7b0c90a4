// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the haulage system. It implements complex
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - TruckAllocator: A domain service for selecting and claiming trucks for
//     pending orders using a best-fit capacity policy
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services

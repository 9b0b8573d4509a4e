// Package services provides domain services that orchestrate business rules
// across multiple domain entities in the order lifecycle system. It
// implements logic that doesn't naturally belong to a single aggregate root.
//
// The package includes:
//   - StatusSynchronizer: A domain service deriving an order's next status
//     from the aggregate state of its purchase orders and install tasks
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design
// principles.
package services

// Package order contains the sales order aggregate and its lifecycle policy.
//
// The package implements:
//   - Status: the persisted status enum with its explicit transition table,
//     the auto-transition table and the cancelability predicate
//   - PauseReason: the structured halt snapshot (reason, remark and the
//     pre-halt status needed by resume)
//   - Order: the aggregate root owning the authoritative status and the
//     monotonic version counter used for optimistic concurrency
//
// Status and its tables are pure lookups and never return errors; the Order
// aggregate is the single place where a rejected lookup becomes a typed
// domain error.
package order

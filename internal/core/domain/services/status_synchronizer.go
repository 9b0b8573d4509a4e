package services

import (
	"orderflow/internal/core/domain/model/installation"
	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/core/domain/model/procurement"
)

// SyncResult is the outcome of a synchronization pass. Status always holds
// the current status the pass started from; NewStatus is nil when no change
// is needed and points at the final derived status otherwise. Hops lists the
// individual table edges leading there, so callers can replay the promotion
// through the aggregate one legal transition at a time (a promotion with no
// direct edge, or an auto-promoted one, spans two hops).
type SyncResult struct {
	Status    order.Status
	NewStatus *order.Status
	Hops      []order.Status
}

// Changed reports whether the pass derived a different status.
func (r SyncResult) Changed() bool {
	return r.NewStatus != nil
}

// StatusSynchronizer is a domain service deriving a sales order's status from
// the aggregate state of its child purchase orders and install tasks.
//
// It is a pure function over in-memory state: callers load the children,
// run Sync and persist whatever change it proposes. Each derived hop is
// re-validated against the explicit transition table, so a drifted child
// state can never push an order across an illegal edge.
//
// Barrier rules:
//   - PENDING_PO: any placed purchase order moves the order to IN_PRODUCTION,
//     replayed through PENDING_PRODUCTION because the table has no direct edge
//   - IN_PRODUCTION: all purchase orders fulfilled (and at least one exists)
//     moves the order to PENDING_DELIVERY
//   - PENDING_DELIVERY: the existence of install tasks moves the order to
//     PENDING_INSTALL
//   - PENDING_INSTALL: all install tasks completed (and at least one exists)
//     moves the order to INSTALLATION_COMPLETED, which auto-promotes to
//     COMPLETED
//
// Orders in any other status are left untouched.
type StatusSynchronizer struct{}

// NewStatusSynchronizer creates a new StatusSynchronizer instance.
func NewStatusSynchronizer() StatusSynchronizer {
	return StatusSynchronizer{}
}

// Sync derives the status the order should hold given its children. The
// order itself is not mutated; the caller applies the result through the
// aggregate so timestamps and version bumps happen in one place.
func (s StatusSynchronizer) Sync(
	current order.Status,
	purchaseOrders []*procurement.PurchaseOrder,
	installTasks []*installation.InstallTask,
) SyncResult {
	hops := s.derive(current, purchaseOrders, installTasks)
	if len(hops) == 0 {
		return SyncResult{Status: current}
	}

	previous := current
	for _, hop := range hops {
		if !previous.CanTransitionTo(hop) {
			return SyncResult{Status: current}
		}
		previous = hop
	}

	derived := hops[len(hops)-1]

	// Follow the auto-transition edge when the derived status has one and
	// the promotion is itself legal.
	if auto, hasAuto := derived.AutoTransition(); hasAuto && derived.CanTransitionTo(auto) {
		derived = auto
		hops = append(hops, auto)
	}

	return SyncResult{Status: current, NewStatus: &derived, Hops: hops}
}

func (s StatusSynchronizer) derive(
	current order.Status,
	purchaseOrders []*procurement.PurchaseOrder,
	installTasks []*installation.InstallTask,
) []order.Status {
	switch current {
	case order.PendingPO:
		if anyPlaced(purchaseOrders) {
			return []order.Status{order.PendingProduction, order.InProduction}
		}
	case order.InProduction:
		if len(purchaseOrders) > 0 && allFulfilled(purchaseOrders) {
			return []order.Status{order.PendingDelivery}
		}
	case order.PendingDelivery:
		if len(installTasks) > 0 {
			return []order.Status{order.PendingInstall}
		}
	case order.PendingInstall:
		if len(installTasks) > 0 && allCompleted(installTasks) {
			return []order.Status{order.InstallationCompleted}
		}
	}
	return nil
}

func anyPlaced(purchaseOrders []*procurement.PurchaseOrder) bool {
	for _, po := range purchaseOrders {
		if po.Status().IsPlaced() {
			return true
		}
	}
	return false
}

func allFulfilled(purchaseOrders []*procurement.PurchaseOrder) bool {
	for _, po := range purchaseOrders {
		if !po.Status().IsFulfilled() {
			return false
		}
	}
	return true
}

func allCompleted(installTasks []*installation.InstallTask) bool {
	for _, task := range installTasks {
		if !task.Status().IsCompleted() {
			return false
		}
	}
	return true
}

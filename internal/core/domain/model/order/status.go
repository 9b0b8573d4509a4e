package order

import (
	"fmt"

	"orderflow/internal/pkg/errs"
)

// Status represents the lifecycle state of a sales order. It is a string
// value object because persisted rows store the literal status names; the set
// below must stay exactly in sync with what the database holds.
//
// The happy path runs:
//
//	DRAFT -> PENDING_MEASURE -> MEASURED -> QUOTED -> SIGNED -> PAID
//	      -> PENDING_PO -> PENDING_PRODUCTION -> IN_PRODUCTION
//	      -> PENDING_DELIVERY -> PENDING_INSTALL -> INSTALLATION_COMPLETED
//	      -> COMPLETED
//
// with cancellation reachable from every non-terminal state and HALTED as a
// parking state for the production span. COMPLETED, CANCELLED and the
// deprecated PAUSED are terminal.
type Status string

const (
	// Draft is the initial status of a freshly converted order.
	Draft Status = "DRAFT"

	// PendingMeasure means an on-site measurement has been scheduled.
	PendingMeasure Status = "PENDING_MEASURE"

	// Measured means measurement data has been captured.
	Measured Status = "MEASURED"

	// Quoted means a priced quote has been produced from the measurement.
	Quoted Status = "QUOTED"

	// Signed means the customer signed off on the quote.
	Signed Status = "SIGNED"

	// Paid means the agreed payment has been received.
	Paid Status = "PAID"

	// PendingPO means the order waits for purchase orders to be raised.
	PendingPO Status = "PENDING_PO"

	// PendingProduction means purchase orders exist but production has not
	// been confirmed yet.
	PendingProduction Status = "PENDING_PRODUCTION"

	// InProduction means at least one purchase order has been placed with a
	// supplier.
	InProduction Status = "IN_PRODUCTION"

	// PendingDelivery means all goods are produced and await delivery.
	PendingDelivery Status = "PENDING_DELIVERY"

	// PendingInstall means goods are on site and installation is outstanding.
	PendingInstall Status = "PENDING_INSTALL"

	// InstallationCompleted means installation finished and awaits customer
	// acceptance.
	InstallationCompleted Status = "INSTALLATION_COMPLETED"

	// PendingConfirmation means the customer was explicitly asked to accept.
	PendingConfirmation Status = "PENDING_CONFIRMATION"

	// InstallationRejected means the customer rejected the installation.
	InstallationRejected Status = "INSTALLATION_REJECTED"

	// Completed is the terminal success state.
	Completed Status = "COMPLETED"

	// Paused is a deprecated terminal state. It is kept only because
	// persisted rows may still hold it; no new order ever enters it.
	Paused Status = "PAUSED"

	// Halted means the order was suspended mid-flight; the pre-halt status is
	// kept in the pause snapshot so the order can be resumed.
	Halted Status = "HALTED"

	// PendingApproval means an approval flow currently owns the order.
	PendingApproval Status = "PENDING_APPROVAL"

	// Cancelled is the terminal failure state.
	Cancelled Status = "CANCELLED"
)

// getTransitions returns the explicit transition table. The table answers
// "is current -> next allowed"; self-transitions are additionally permitted
// for every state so non-status field updates can reuse the same write path.
func getTransitions() map[Status][]Status {
	return map[Status][]Status{
		Draft:                 {PendingMeasure, Cancelled},
		PendingMeasure:        {Measured, Cancelled},
		Measured:              {Quoted, Cancelled},
		Quoted:                {Signed, Cancelled, Draft},
		Signed:                {Paid, Cancelled, Halted},
		Paid:                  {PendingProduction, PendingPO, Cancelled, Halted},
		PendingPO:             {PendingProduction, Cancelled, Halted},
		PendingProduction:     {InProduction, Cancelled, Halted},
		InProduction:          {PendingDelivery, Cancelled, Halted},
		PendingDelivery:       {PendingInstall, Cancelled, Halted},
		PendingInstall:        {InstallationCompleted, Cancelled, Halted},
		InstallationCompleted: {PendingConfirmation, InstallationRejected, Completed, Cancelled},
		PendingConfirmation:   {Completed, InstallationRejected, Cancelled},
		InstallationRejected:  {PendingInstall, Cancelled},
		Halted:                {InProduction, PendingProduction, Cancelled},
		PendingApproval:       {PendingProduction, Cancelled},
		Completed:             {},
		Paused:                {},
		Cancelled:             {},
	}
}

// getAutoTransitions returns the auto-transition table: states the system
// should proactively promote once their condition is satisfied elsewhere.
// It is deliberately kept separate from getTransitions because the two tables
// answer different questions ("is X->Y allowed" vs "should the system do
// X->Y on its own"); every pair listed here must also be a legal explicit
// transition, which the package tests assert.
func getAutoTransitions() map[Status]Status {
	return map[Status]Status{
		InstallationCompleted: Completed,
	}
}

// Validate checks that the status is a member of the persisted enum.
func (s Status) Validate() error {
	if _, ok := getTransitions()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid",
			fmt.Errorf("%q is not a valid order status", string(s)))
	}
	return nil
}

// String implements fmt.Stringer.
func (s Status) String() string {
	return string(s)
}

// CanTransitionTo reports whether moving from s to next is allowed. A
// self-transition is always allowed; everything else is a pure table lookup.
// The method never errors: callers turn a false result into an
// invalid-transition error.
func (s Status) CanTransitionTo(next Status) bool {
	if s == next {
		return true
	}
	for _, allowed := range getTransitions()[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// NextStates returns the reachable next states for s. Terminal and unknown
// states yield an empty slice.
func (s Status) NextStates() []Status {
	entry := getTransitions()[s]
	next := make([]Status, len(entry))
	copy(next, entry)
	return next
}

// CanCancel reports whether a cancellation edge exists from s. Terminal
// states (COMPLETED, CANCELLED and the legacy PAUSED) have no outgoing edges
// and therefore cannot be cancelled.
func (s Status) CanCancel() bool {
	for _, allowed := range getTransitions()[s] {
		if allowed == Cancelled {
			return true
		}
	}
	return false
}

// AutoTransition returns the status s should self-promote to once its
// completion condition holds, if any. Callers must still re-check the pair
// through CanTransitionTo before applying it; the two tables are maintained
// independently.
func (s Status) AutoTransition() (Status, bool) {
	next, ok := getAutoTransitions()[s]
	return next, ok
}

// IsTerminal reports whether s has no outgoing edges.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled || s == Paused
}

// AwaitsChildren reports whether s is a status whose progress is derived from
// child purchase orders or install tasks. Orders in these states are the ones
// the status-refresh sweep re-examines.
func (s Status) AwaitsChildren() bool {
	switch s {
	case PendingPO, InProduction, PendingDelivery, PendingInstall:
		return true
	default:
		return false
	}
}

// StatusesAwaitingChildren lists every status for which AwaitsChildren holds.
// The returned slice is a copy.
func StatusesAwaitingChildren() []Status {
	return []Status{PendingPO, InProduction, PendingDelivery, PendingInstall}
}

package order

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// SettlementType classifies how an order is settled financially. It gates
// which lifecycle edges may be taken before full payment.
type SettlementType string

const (
	// SettlementPrepaid requires payment before production.
	SettlementPrepaid SettlementType = "PREPAID"

	// SettlementCredit allows production and delivery on account.
	SettlementCredit SettlementType = "CREDIT"

	// SettlementCash is settled in cash on delivery.
	SettlementCash SettlementType = "CASH"
)

// Validate checks that the settlement type is a known member.
func (t SettlementType) Validate() error {
	switch t {
	case SettlementPrepaid, SettlementCredit, SettlementCash:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("settlementType is invalid",
			fmt.Errorf("%q is not a valid settlement type", string(t)))
	}
}

// Order is the aggregate root for a sales order's lifecycle. It owns the
// authoritative status field and the monotonic version counter that orders
// all accepted mutations.
//
// Invariants:
//   - status is always a member of the Status enum
//   - version never decreases and grows by exactly 1 per accepted mutation
//   - pausedAt/pauseReason are set if and only if status is HALTED, and the
//     pause reason then carries the pre-halt status for resume
//
// All mutating methods bump the version; persistence writes the bumped
// version conditionally against the version the caller loaded.
type Order struct {
	id       kernel.UUID
	tenantID kernel.UUID

	// orderNo is the human-facing order number.
	orderNo string

	status  Status
	version int64

	totalAmount    float64
	paidAmount     float64
	balanceAmount  float64
	settlementType SettlementType

	pausedAt            *time.Time
	pauseReason         *PauseReason
	pauseCumulativeDays int

	completedAt *time.Time
	closedAt    *time.Time

	isConstructed bool
}

// GenerateOrderNo produces a human-facing order number of the form
// "ORD<yyyymmdd><6 hex chars>". Collisions are left to the storage layer's
// uniqueness constraint.
func GenerateOrderNo(now time.Time) string {
	suffix := make([]byte, 3)
	_, _ = rand.Read(suffix)
	return fmt.Sprintf("ORD%s%s", now.Format("20060102"), strings.ToUpper(hex.EncodeToString(suffix)))
}

// NewOrder creates a new Order in DRAFT status with version 0.
//
// Parameters:
//   - id, tenantID: identities (must be valid UUIDs)
//   - orderNo: human-facing number (must be non-empty)
//   - totalAmount: contract total (must not be negative)
//   - paidAmount: amount already received (must not be negative)
//   - settlementType: settlement policy for payment gating
func NewOrder(
	id kernel.UUID,
	tenantID kernel.UUID,
	orderNo string,
	totalAmount float64,
	paidAmount float64,
	settlementType SettlementType,
) (*Order, error) {
	o := &Order{
		status:        Draft,
		version:       0,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setTenantID(tenantID),
		o.setOrderNo(orderNo),
		o.setAmounts(totalAmount, paidAmount),
		o.setSettlementType(settlementType),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence without replaying its
// history. The stored status and version are trusted after membership
// validation; the halt snapshot is passed through as loaded.
func RestoreOrder(
	id kernel.UUID,
	tenantID kernel.UUID,
	orderNo string,
	status Status,
	version int64,
	totalAmount float64,
	paidAmount float64,
	settlementType SettlementType,
	pausedAt *time.Time,
	pauseReason *PauseReason,
	pauseCumulativeDays int,
	completedAt *time.Time,
	closedAt *time.Time,
) (*Order, error) {
	o := &Order{
		pausedAt:            pausedAt,
		pauseReason:         pauseReason,
		pauseCumulativeDays: pauseCumulativeDays,
		completedAt:         completedAt,
		closedAt:            closedAt,
		isConstructed:       true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setTenantID(tenantID),
		o.setOrderNo(orderNo),
		o.setAmounts(totalAmount, paidAmount),
		o.setSettlementType(settlementType),
		o.setStatus(status),
		o.setVersion(version),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order was constructed through NewOrder/RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// TenantID returns the owning tenant's identifier.
func (o *Order) TenantID() kernel.UUID {
	return o.tenantID
}

// OrderNo returns the human-facing order number.
func (o *Order) OrderNo() string {
	return o.orderNo
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Version returns the optimistic concurrency counter.
func (o *Order) Version() int64 {
	return o.version
}

// TotalAmount returns the contract total.
func (o *Order) TotalAmount() float64 {
	return o.totalAmount
}

// PaidAmount returns the amount received so far.
func (o *Order) PaidAmount() float64 {
	return o.paidAmount
}

// BalanceAmount returns the outstanding balance.
func (o *Order) BalanceAmount() float64 {
	return o.balanceAmount
}

// SettlementType returns the settlement policy.
func (o *Order) SettlementType() SettlementType {
	return o.settlementType
}

// PausedAt returns when the order was halted, nil when it is not halted.
func (o *Order) PausedAt() *time.Time {
	return o.pausedAt
}

// PauseReason returns the halt snapshot, nil when the order is not halted.
func (o *Order) PauseReason() *PauseReason {
	return o.pauseReason
}

// PauseCumulativeDays returns the informational running total of days the
// order has spent halted.
func (o *Order) PauseCumulativeDays() int {
	return o.pauseCumulativeDays
}

// CompletedAt returns when the order reached COMPLETED, if it has.
func (o *Order) CompletedAt() *time.Time {
	return o.completedAt
}

// ClosedAt returns when the order was cancelled, if it was.
func (o *Order) ClosedAt() *time.Time {
	return o.closedAt
}

// IsFullyPaid reports whether no balance is outstanding.
func (o *Order) IsFullyPaid() bool {
	return o.balanceAmount <= 0
}

// TransitionTo moves the order to next if the transition table allows it.
// Reaching COMPLETED stamps completedAt; reaching CANCELLED stamps closedAt.
func (o *Order) TransitionTo(next Status, now time.Time) error {
	if err := next.Validate(); err != nil {
		return err
	}
	if !o.status.CanTransitionTo(next) {
		return errs.NewInvalidStateTransitionError(o.status.String(), next.String())
	}

	o.status = next
	switch next {
	case Completed:
		t := now
		o.completedAt = &t
	case Cancelled:
		t := now
		o.closedAt = &t
	}
	o.bumpVersion()
	return nil
}

// Halt suspends the order, snapshotting the current status into the pause
// reason so Resume can restore it.
func (o *Order) Halt(reason PauseReason, now time.Time) error {
	if !o.status.CanTransitionTo(Halted) {
		return errs.NewInvalidStateTransitionError(o.status.String(), Halted.String())
	}

	reason.PreviousStatus = o.status
	if reason.Code == "" {
		reason.Code = ReasonOther
	}

	o.status = Halted
	t := now
	o.pausedAt = &t
	o.pauseReason = &reason
	o.bumpVersion()
	return nil
}

// Resume restores the pre-halt status from the pause snapshot, clears the
// halt fields and adds the halted span (rounded up to whole days) to the
// cumulative pause total.
//
// The snapshotted status must still be one from which halting is legal; this
// guards against snapshots written under an older transition table.
func (o *Order) Resume(now time.Time) (Status, error) {
	if o.status != Halted {
		return "", errs.NewInvalidOperationError("resume", fmt.Sprintf("order is %s, not %s", o.status, Halted))
	}
	if o.pauseReason == nil || o.pauseReason.PreviousStatus == "" {
		return "", errs.NewInvalidOperationError("resume", "halt snapshot has no previous status")
	}

	previous := o.pauseReason.PreviousStatus
	if err := previous.Validate(); err != nil {
		return "", errs.NewInvalidOperationErrorWithCause("resume", "halt snapshot is unusable", err)
	}
	if !previous.CanTransitionTo(Halted) {
		return "", errs.NewInvalidStateTransitionError(Halted.String(), previous.String())
	}

	if o.pausedAt != nil {
		elapsed := now.Sub(*o.pausedAt)
		if elapsed > 0 {
			o.pauseCumulativeDays += int(math.Ceil(elapsed.Hours() / 24))
		}
	}

	o.status = previous
	o.pausedAt = nil
	o.pauseReason = nil
	o.bumpVersion()
	return previous, nil
}

// Cancel moves the order to CANCELLED and stamps closedAt. It refuses
// terminal states, where no cancellation edge exists.
func (o *Order) Cancel(now time.Time) error {
	if !o.status.CanCancel() {
		return errs.NewInvalidStateTransitionError(o.status.String(), Cancelled.String())
	}

	o.status = Cancelled
	t := now
	o.closedAt = &t
	o.bumpVersion()
	return nil
}

func (o *Order) bumpVersion() {
	o.version++
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setTenantID(tenantID kernel.UUID) error {
	if err := tenantID.Validate(); err != nil {
		return err
	}
	o.tenantID = tenantID
	return nil
}

func (o *Order) setOrderNo(orderNo string) error {
	if orderNo == "" {
		return errs.NewValueIsRequiredError("orderNo")
	}
	o.orderNo = orderNo
	return nil
}

func (o *Order) setAmounts(totalAmount, paidAmount float64) error {
	if totalAmount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("totalAmount is invalid",
			fmt.Errorf("%f is negative", totalAmount))
	}
	if paidAmount < 0 {
		return errs.NewValueIsInvalidErrorWithCause("paidAmount is invalid",
			fmt.Errorf("%f is negative", paidAmount))
	}
	o.totalAmount = totalAmount
	o.paidAmount = paidAmount
	o.balanceAmount = totalAmount - paidAmount
	return nil
}

func (o *Order) setSettlementType(settlementType SettlementType) error {
	if err := settlementType.Validate(); err != nil {
		return err
	}
	o.settlementType = settlementType
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setVersion(version int64) error {
	if version < 0 {
		return errs.NewVersionIsInvalidError("version",
			fmt.Errorf("%d is negative", version))
	}
	o.version = version
	return nil
}

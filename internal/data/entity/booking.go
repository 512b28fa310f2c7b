package entity

import (
	"time"

	"github.com/google/uuid"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusNoShow    BookingStatus = "no_show"
)

// IsTerminal reports whether no further transition is allowed from s.
// Cancelled is terminal too, but cancelling again succeeds idempotently.
func (s BookingStatus) IsTerminal() bool {
	return s == BookingStatusCompleted || s == BookingStatusNoShow || s == BookingStatusCancelled
}

// Booking is a time-bounded rental of one slot. SlotOwnerID is the slot's
// owner denormalized at booking time. TotalPrice is always server-computed.
type Booking struct {
	Base
	SlotID      uuid.UUID     `db:"slot_id"`
	RenterID    uuid.UUID     `db:"renter_id"`
	SlotOwnerID *uuid.UUID    `db:"slot_owner_id"`
	StartTime   time.Time     `db:"start_time"`
	EndTime     time.Time     `db:"end_time"`
	Status      BookingStatus `db:"status"`
	TotalPrice  float64       `db:"total_price"`
}

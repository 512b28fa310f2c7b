package entity

import (
	"github.com/google/uuid"
)

type SlotType string

const (
	SlotTypeCovered   SlotType = "covered"
	SlotTypeUncovered SlotType = "uncovered"
	SlotTypeTandem    SlotType = "tandem"
)

type SlotStatus string

const (
	SlotStatusActive      SlotStatus = "active"
	SlotStatusMaintenance SlotStatus = "maintenance"
	SlotStatusDisabled    SlotStatus = "disabled"
	SlotStatusDeleted     SlotStatus = "deleted"
)

// ParkingSlot is a rentable slot inside one community.
// PricePerHour nil means "request quote": no instant booking.
// OwnerID nil means the slot is shared/unowned.
type ParkingSlot struct {
	Base
	SlotNumber    string     `db:"slot_number"`
	SlotType      SlotType   `db:"slot_type"`
	PricePerHour  *float64   `db:"price_per_hour"`
	Status        SlotStatus `db:"status"`
	OwnerID       *uuid.UUID `db:"owner_id"`
	CommunityCode string     `db:"community_code"`
	Description   *string    `db:"description"`
}

// IsOwnedBy reports whether userID owns the slot
func (s *ParkingSlot) IsOwnedBy(userID uuid.UUID) bool {
	return s.OwnerID != nil && *s.OwnerID == userID
}

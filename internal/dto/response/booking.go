package response

import (
	"time"

	"parkboard/internal/data/entity"
)

type BookingResponse struct {
	ID          string    `json:"id"`
	SlotID      string    `json:"slot_id"`
	SlotNumber  string    `json:"slot_number,omitempty"`
	SlotType    string    `json:"slot_type,omitempty"`
	RenterID    string    `json:"renter_id"`
	SlotOwnerID *string   `json:"slot_owner_id,omitempty"`
	StartTime   time.Time `json:"start_time"`
	EndTime     time.Time `json:"end_time"`
	Status      string    `json:"status"`
	TotalPrice  float64   `json:"total_price"`
	CreatedAt   time.Time `json:"created_at"`
}

// BookingToResponse converts a booking, enriched with its slot when loaded.
func BookingToResponse(booking *entity.Booking, slot *entity.ParkingSlot) BookingResponse {
	resp := BookingResponse{
		ID:         booking.ID.String(),
		SlotID:     booking.SlotID.String(),
		RenterID:   booking.RenterID.String(),
		StartTime:  booking.StartTime,
		EndTime:    booking.EndTime,
		Status:     string(booking.Status),
		TotalPrice: booking.TotalPrice,
		CreatedAt:  booking.CreatedAt,
	}
	if booking.SlotOwnerID != nil {
		ownerID := booking.SlotOwnerID.String()
		resp.SlotOwnerID = &ownerID
	}
	if slot != nil {
		resp.SlotNumber = slot.SlotNumber
		resp.SlotType = string(slot.SlotType)
	}
	return resp
}

package response

import (
	"time"

	"parkboard/internal/data/entity"
)

type SlotResponse struct {
	ID            string    `json:"id"`
	SlotNumber    string    `json:"slot_number"`
	SlotType      string    `json:"slot_type"`
	PricePerHour  *float64  `json:"price_per_hour,omitempty"`
	Status        string    `json:"status"`
	OwnerID       *string   `json:"owner_id,omitempty"`
	CommunityCode string    `json:"community_code"`
	Description   *string   `json:"description,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func SlotToResponse(slot *entity.ParkingSlot) SlotResponse {
	resp := SlotResponse{
		ID:            slot.ID.String(),
		SlotNumber:    slot.SlotNumber,
		SlotType:      string(slot.SlotType),
		PricePerHour:  slot.PricePerHour,
		Status:        string(slot.Status),
		CommunityCode: slot.CommunityCode,
		Description:   slot.Description,
		CreatedAt:     slot.CreatedAt,
	}
	if slot.OwnerID != nil {
		ownerID := slot.OwnerID.String()
		resp.OwnerID = &ownerID
	}
	return resp
}

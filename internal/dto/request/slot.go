package request

type CreateSlotRequest struct {
	SlotNumber   string   `json:"slot_number" validate:"required,min=1,max=20"`
	SlotType     string   `json:"slot_type" validate:"required,oneof=covered uncovered tandem"`
	PricePerHour *float64 `json:"price_per_hour,omitempty" validate:"omitempty,gt=0"`
	Description  *string  `json:"description,omitempty" validate:"omitempty,max=500"`
}

type UpdateSlotRequest struct {
	SlotType     *string  `json:"slot_type,omitempty" validate:"omitempty,oneof=covered uncovered tandem"`
	PricePerHour *float64 `json:"price_per_hour,omitempty" validate:"omitempty,gt=0"`
	Status       *string  `json:"status,omitempty" validate:"omitempty,oneof=active maintenance disabled"`
	Description  *string  `json:"description,omitempty" validate:"omitempty,max=500"`
}

package request

import (
	"time"

	"parkboard/pkg/utils"
)

// CreateBookingRequest carries the only fields a renter may set. There is
// deliberately no total_price field: price is always computed server-side,
// and unknown fields are rejected at decode time.
type CreateBookingRequest struct {
	SlotID    string `json:"slot_id" validate:"required,uuid4"`
	StartTime string `json:"start_time" validate:"required"`
	EndTime   string `json:"end_time" validate:"required"`
}

// Validate runs tag validation plus timestamp parsing and ordering in one
// pass so the caller gets every malformed field, not just the first.
// On success it returns the parsed window.
func (r *CreateBookingRequest) Validate() (start, end time.Time, errs map[string]string) {
	errs = utils.ValidateStruct(r)
	if errs == nil {
		errs = make(map[string]string)
	}

	var startErr, endErr error
	if r.StartTime != "" {
		start, startErr = time.Parse(time.RFC3339, r.StartTime)
		if startErr != nil {
			errs["StartTime"] = "Must be a valid ISO-8601 timestamp"
		}
	}
	if r.EndTime != "" {
		end, endErr = time.Parse(time.RFC3339, r.EndTime)
		if endErr != nil {
			errs["EndTime"] = "Must be a valid ISO-8601 timestamp"
		}
	}

	if startErr == nil && endErr == nil && r.StartTime != "" && r.EndTime != "" {
		if !end.After(start) {
			errs["EndTime"] = "End time must be after start time"
		}
	}

	if len(errs) == 0 {
		errs = nil
	}
	return start, end, errs
}

// UpdateBookingRequest only permits the cancelled status. Renters and
// owners cannot promote a booking to confirmed or completed.
type UpdateBookingRequest struct {
	Status string `json:"status" validate:"required,eq=cancelled"`
}

// UpdateBookingStatusRequest is the admin transition request.
type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=confirmed completed no_show cancelled"`
}

package usecase

import (
	"math"
	"time"
)

// CalculatePrice returns hourlyRate multiplied by the booking duration in
// fractional hours (no rounding up to whole hours), rounded half-up to two
// decimal places. The rate must come from the slot row at acceptance time,
// never from the request.
func CalculatePrice(hourlyRate float64, start, end time.Time) float64 {
	hours := end.Sub(start).Hours()
	return math.Floor(hourlyRate*hours*100+0.5) / 100
}

package reservation

import (
	"math"
	"time"
)

type PriceCalculator interface {
	ComputeCost(slot TimeSlot, pricePerHour Money) Money
}

// HourlyPriceCalculator charges real-valued hours times the lot's hourly rate.
type HourlyPriceCalculator struct{}

func NewHourlyPriceCalculator() *HourlyPriceCalculator {
	return &HourlyPriceCalculator{}
}

func (HourlyPriceCalculator) ComputeCost(slot TimeSlot, pricePerHour Money) Money {
	return ComputeCost(slot.Start(), slot.End(), pricePerHour)
}

// ComputeCost rounds half away from zero to the cent and never goes negative.
func ComputeCost(start, end time.Time, pricePerHour Money) Money {
	hours := end.Sub(start).Hours()
	if hours <= 0 {
		return Money{}
	}
	cents := math.Round(hours * float64(pricePerHour.Cents()))
	return Money{cents: int64(cents)}
}

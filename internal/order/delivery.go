package order

import "time"

// EveningInterval is the slot that carries the weekday evening surcharge.
const EveningInterval = "18:00-22:00"

const (
	deliveryBaseCost     = 200
	weekendSurcharge     = 300
	eveningSurcharge     = 200
	deliveryDateWireForm = "02.01.2006"
)

// DeliveryCost prices a delivery slot. Weekends cost the weekend surcharge;
// the evening surcharge applies on weekdays only, so a Sunday evening slot
// costs 500, not 700. That asymmetry matches the production pricing rules
// and must not be "fixed" without product sign-off.
func DeliveryCost(date time.Time, interval string) int {
	cost := deliveryBaseCost

	switch date.Weekday() {
	case time.Saturday, time.Sunday:
		cost += weekendSurcharge
	default:
		if interval == EveningInterval {
			cost += eveningSurcharge
		}
	}

	return cost
}

// FormatDeliveryDate renders a date in the DD.MM.YYYY form the orders
// endpoint expects.
func FormatDeliveryDate(date time.Time) string {
	return date.Format(deliveryDateWireForm)
}

// ParseDeliveryDate reads a DD.MM.YYYY wire date back.
func ParseDeliveryDate(raw string) (time.Time, error) {
	return time.Parse(deliveryDateWireForm, raw)
}

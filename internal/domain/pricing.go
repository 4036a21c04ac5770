package domain

// PriceList holds the pricing configuration: a base price per event type,
// a default base for unrecognized types, and a multiplier per slot
type PriceList struct {
	Base        map[string]float64
	DefaultBase float64
	Multipliers map[Slot]float64
}

// DefaultPriceList returns the built-in pricing tables
func DefaultPriceList() PriceList {
	base := make(map[string]float64, len(DefaultBasePrices))
	for event, price := range DefaultBasePrices {
		base[event] = price
	}

	multipliers := make(map[Slot]float64, len(DefaultSlotMultipliers))
	for slot, m := range DefaultSlotMultipliers {
		multipliers[slot] = m
	}

	return PriceList{
		Base:        base,
		DefaultBase: DefaultBasePrice,
		Multipliers: multipliers,
	}
}

// Price derives the estimated price for (eventType, slot). Pure, no side
// effects. Returns 0 when either input is absent: no price should display
// until both are chosen. An unrecognized event type falls back to the
// default base, an unrecognized slot to a multiplier of 1.
func (p PriceList) Price(eventType string, slot Slot) float64 {
	if eventType == "" || slot == "" {
		return 0
	}

	base, ok := p.Base[eventType]
	if !ok {
		base = p.DefaultBase
	}

	multiplier, ok := p.Multipliers[slot]
	if !ok {
		multiplier = 1
	}

	return base * multiplier
}

package domain

// Time format constants
const (
	// DateFormat is the canonical dateKey layout (zero-padded YYYY-MM-DD).
	// It must stay stable across save/load cycles so round-tripping
	// through storage never changes key identity.
	DateFormat = "2006-01-02"
)

// Default catalog values, from the reference venue set
var (
	DefaultVenues = []string{"Hall 1", "Hall 2"}

	DefaultEventTypes = []string{
		"Wedding",
		"Ceremony",
		"Birthday",
		"Anniversary",
		"Meeting",
	}
)

// Default pricing values. Prices are an estimate display only; they are
// configuration data, not behavior.
const DefaultBasePrice = 15000.0

var (
	DefaultBasePrices = map[string]float64{
		"Wedding":     50000,
		"Ceremony":    30000,
		"Birthday":    20000,
		"Anniversary": 25000,
		"Meeting":     10000,
	}

	DefaultSlotMultipliers = map[Slot]float64{
		SlotMorning:   1,
		SlotAfternoon: 1,
		SlotEvening:   1.2,
		SlotFullDay:   3,
	}
)

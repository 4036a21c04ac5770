package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPriceList_Price(t *testing.T) {
	priceList := DefaultPriceList()

	tests := []struct {
		name      string
		eventType string
		slot      Slot
		want      float64
	}{
		{"wedding morning", "Wedding", SlotMorning, 50000},
		{"wedding afternoon", "Wedding", SlotAfternoon, 50000},
		{"wedding evening", "Wedding", SlotEvening, 60000},
		{"wedding full day", "Wedding", SlotFullDay, 150000},
		{"meeting evening", "Meeting", SlotEvening, 12000},
		{"unknown event falls back to default base", "Hackathon", SlotMorning, 15000},
		{"unknown slot falls back to multiplier 1", "Wedding", Slot("Night"), 50000},
		{"missing event type", "", SlotMorning, 0},
		{"missing slot", "Wedding", "", 0},
		{"missing both", "", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, priceList.Price(tt.eventType, tt.slot), 1e-9)
		})
	}
}

func TestPriceList_PriceIsDeterministic(t *testing.T) {
	priceList := DefaultPriceList()

	first := priceList.Price("Birthday", SlotEvening)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, priceList.Price("Birthday", SlotEvening))
	}
}

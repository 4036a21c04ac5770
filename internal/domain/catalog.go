package domain

// Catalog is the fixed set of bookable venues and selectable event types.
// Fixed at configuration time, not created or destroyed at runtime.
type Catalog struct {
	Venues     []string
	EventTypes []string
}

// DefaultCatalog returns the built-in venue and event type sets
func DefaultCatalog() Catalog {
	return Catalog{
		Venues:     append([]string(nil), DefaultVenues...),
		EventTypes: append([]string(nil), DefaultEventTypes...),
	}
}

// HasVenue returns true if the venue is part of the catalog
func (c Catalog) HasVenue(venue string) bool {
	for _, v := range c.Venues {
		if v == venue {
			return true
		}
	}
	return false
}

// HasEventType returns true if the event type is part of the catalog
func (c Catalog) HasEventType(eventType string) bool {
	for _, e := range c.EventTypes {
		if e == eventType {
			return true
		}
	}
	return false
}

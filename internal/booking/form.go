package booking

import (
	"fmt"
	"sort"
	"strconv"

	"flightbook/internal/domain"
)

// SetField applies a single form edit. Edits are accepted in every
// lifecycle state and never change it. String fields take a string,
// passengerCount an int and isRoundtrip a bool; anything else, or an
// unknown field, is ignored and reported as false.
//
// Passenger counts outside 1..9 are stored as given; range limits belong
// to the input widget.
func (e *Engine) SetField(field domain.Field, value interface{}) bool {
	e.mu.Lock()
	applied := applyField(&e.criteria, field, value)
	e.mu.Unlock()

	if applied {
		e.publish(domain.FieldChangedEvent{Field: field})
	}
	return applied
}

func applyField(c *domain.SearchCriteria, field domain.Field, value interface{}) bool {
	switch field {
	case domain.FieldDestination:
		v, ok := value.(string)
		if ok {
			c.Destination = v
		}
		return ok
	case domain.FieldDepartureDate:
		v, ok := value.(string)
		if ok {
			c.DepartureDate = v
		}
		return ok
	case domain.FieldReturnDate:
		v, ok := value.(string)
		if ok {
			c.ReturnDate = v
		}
		return ok
	case domain.FieldPassengerCount:
		v, ok := value.(int)
		if ok {
			c.PassengerCount = v
		}
		return ok
	case domain.FieldIsRoundtrip:
		// The return date survives toggling off; Query leaves it out
		v, ok := value.(bool)
		if ok {
			c.IsRoundtrip = v
		}
		return ok
	}
	return false
}

// ParseCriteria applies named text values on top of base. Names go through
// domain.ParseField, so "departure_date", "Departure-Date" and
// "departureDate" are the same field.
func ParseCriteria(base domain.SearchCriteria, values map[string]string) (domain.SearchCriteria, error) {
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	c := base
	for _, name := range names {
		field, ok := domain.ParseField(name)
		if !ok {
			return base, fmt.Errorf("unknown form field %q", name)
		}

		raw := values[name]
		var value interface{} = raw
		switch field {
		case domain.FieldPassengerCount:
			n, err := strconv.Atoi(raw)
			if err != nil {
				return base, fmt.Errorf("form field %s: %w", field, err)
			}
			value = n
		case domain.FieldIsRoundtrip:
			b, err := strconv.ParseBool(raw)
			if err != nil {
				return base, fmt.Errorf("form field %s: %w", field, err)
			}
			value = b
		}
		applyField(&c, field, value)
	}
	return c, nil
}

package domain

import "strings"

// Field names one editable input of the search form
type Field string

// Form fields
const (
	FieldDestination    Field = "destination"
	FieldDepartureDate  Field = "departureDate"
	FieldReturnDate     Field = "returnDate"
	FieldPassengerCount Field = "passengerCount"
	FieldIsRoundtrip    Field = "isRoundtrip"
)

// Fields lists every form field in display order
var Fields = []Field{
	FieldIsRoundtrip,
	FieldDestination,
	FieldDepartureDate,
	FieldReturnDate,
	FieldPassengerCount,
}

func (f Field) String() string { return string(f) }

// Label returns the text shown next to the field's input
func (f Field) Label() string {
	switch f {
	case FieldDestination:
		return "Destination"
	case FieldDepartureDate:
		return "Departure Date"
	case FieldReturnDate:
		return "Return Date"
	case FieldPassengerCount:
		return "Number of Passengers"
	case FieldIsRoundtrip:
		return "Roundtrip flight"
	}
	return string(f)
}

// IsText reports whether the field is edited through a text input
func (f Field) IsText() bool {
	switch f {
	case FieldDestination, FieldDepartureDate, FieldReturnDate, FieldPassengerCount:
		return true
	}
	return false
}

// ParseField resolves a field from its name. Matching ignores case,
// dashes and underscores so "departure_date" and "departureDate" agree.
func ParseField(name string) (Field, bool) {
	norm := strings.ToLower(strings.NewReplacer("_", "", "-", "").Replace(name))
	for _, f := range Fields {
		if strings.ToLower(string(f)) == norm {
			return f, true
		}
	}
	return "", false
}

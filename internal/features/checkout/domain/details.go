package domain

import "errors"

// ShippingLocation selects the shipping-rate bracket for an order.
type ShippingLocation string

const (
	// LocationCalabar is delivery within Calabar.
	LocationCalabar ShippingLocation = "calabar"
	// LocationOutside is delivery outside Calabar / Cross River.
	LocationOutside ShippingLocation = "outside"
	// LocationInternational is delivery abroad.
	LocationInternational ShippingLocation = "international"
)

// IsValid reports whether the location is one of the three brackets.
func (l ShippingLocation) IsValid() bool {
	switch l {
	case LocationCalabar, LocationOutside, LocationInternational:
		return true
	}
	return false
}

var (
	// ErrMissingField is returned when a required checkout field is empty.
	ErrMissingField = errors.New("missing required field")
	// ErrInvalidLocation is returned for an unknown shipping location.
	ErrInvalidLocation = errors.New("invalid shipping location")
)

// UserDetails is the shipping/contact form collected in the details step.
// It is a mutable draft until frozen into an order on success.
type UserDetails struct {
	Name     string           `json:"name"`
	Email    string           `json:"email"`
	Phone    string           `json:"phone"`
	Address  string           `json:"address"`
	Location ShippingLocation `json:"location"`
}

// Validate checks that every text field is non-empty and the location is one
// of the enumerated brackets.
func (d UserDetails) Validate() error {
	if d.Name == "" || d.Email == "" || d.Phone == "" || d.Address == "" {
		return ErrMissingField
	}
	if !d.Location.IsValid() {
		return ErrInvalidLocation
	}
	return nil
}

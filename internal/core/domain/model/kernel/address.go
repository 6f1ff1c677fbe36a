package kernel

import (
	"errors"
	"strings"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrAddressIsNotConstructed = errs.NewValueIsRequiredError("Address must be created via NewAddress")

// Address is the postal delivery address captured at checkout.
// Street, city and country are mandatory; state and zip code are optional
// because not every country uses them.
type Address struct {
	street  string
	city    string
	state   string
	zipCode string
	country string

	guard guard.ConstructorGuard
}

// NewAddress trims every field and validates the mandatory ones.
func NewAddress(street, city, state, zipCode, country string) (Address, error) {
	a := Address{
		street:  strings.TrimSpace(street),
		city:    strings.TrimSpace(city),
		state:   strings.TrimSpace(state),
		zipCode: strings.TrimSpace(zipCode),
		country: strings.TrimSpace(country),
		guard:   guard.NewConstructorGuard(),
	}

	var errList []error
	if a.street == "" {
		errList = append(errList, errs.NewValueIsRequiredError("street"))
	}
	if a.city == "" {
		errList = append(errList, errs.NewValueIsRequiredError("city"))
	}
	if a.country == "" {
		errList = append(errList, errs.NewValueIsRequiredError("country"))
	}
	if err := errors.Join(errList...); err != nil {
		return Address{}, err
	}

	return a, nil
}

func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}

func (a Address) Street() string  { return a.street }
func (a Address) City() string    { return a.city }
func (a Address) State() string   { return a.state }
func (a Address) ZipCode() string { return a.zipCode }
func (a Address) Country() string { return a.country }

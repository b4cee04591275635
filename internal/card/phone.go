package card

import (
	"fmt"

	"github.com/nyaruka/phonenumbers"
)

// PhoneError reports a value that could not be parsed as a phone number
// under the active default region.
type PhoneError struct {
	Raw    string
	Region string
	Err    error
}

func (e *PhoneError) Error() string {
	return fmt.Sprintf("cannot parse %q as a phone number for region %s: %v", e.Raw, e.Region, e.Err)
}
func (e *PhoneError) Unwrap() error { return e.Err }

// Phone carries the two renderings of one number: what the card displays and
// the digits-only target for its tel: link.
type Phone struct {
	Display string
	Dial    string
}

// FormatPhone parses raw against the default region. Numbers whose own region
// is indeterminate or equal to the default format as national (no country
// prefix); foreign numbers format as international with a leading +. The dial
// target is always the bare national significant number.
func FormatPhone(raw, defaultRegion string) (Phone, error) {
	num, err := phonenumbers.Parse(raw, defaultRegion)
	if err != nil {
		return Phone{}, &PhoneError{Raw: raw, Region: defaultRegion, Err: err}
	}

	style := phonenumbers.INTERNATIONAL
	region := phonenumbers.GetRegionCodeForNumber(num)
	if region == "" || region == defaultRegion {
		style = phonenumbers.NATIONAL
	}

	return Phone{
		Display: phonenumbers.Format(num, style),
		Dial:    phonenumbers.GetNationalSignificantNumber(num),
	}, nil
}

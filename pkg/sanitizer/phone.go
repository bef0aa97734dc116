package sanitizer

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

var (
	supportedRegions = []string{
		"US",
		"GB",
	}
)

// PhoneE164 formats phone as E.164. ok is false when no supported region
// recognises it as a valid number.
func PhoneE164(phone string) (e164 string, ok bool) {
	phone = strings.TrimSpace(phone)

	if phone == "" {
		return "", false
	}

	for _, region := range supportedRegions {
		parsedNumber, err := phonenumbers.Parse(phone, region)
		if err == nil && phonenumbers.IsValidNumber(parsedNumber) {
			return phonenumbers.Format(parsedNumber, phonenumbers.E164), true
		}
	}
	return "", false
}

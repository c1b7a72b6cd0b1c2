package utils

import (
	"fmt"
	"strings"

	"github.com/nyaruka/phonenumbers"
)

// PhoneComponents represents the parsed components of a contact phone number
type PhoneComponents struct {
	CountryCode string `json:"country_code"`
	AreaCode    string `json:"area_code"`
	Number      string `json:"number"`
	E164        string `json:"e164"`
}

// ParsePhoneNumber parses a contact phone string into its components.
// Numbers without a country code are assumed to be Brazilian.
func ParsePhoneNumber(phoneString string) (*PhoneComponents, error) {
	cleanPhone := strings.TrimSpace(phoneString)

	if !strings.HasPrefix(cleanPhone, "+") {
		if strings.HasPrefix(cleanPhone, "55") && len(RemoveFormatting(cleanPhone)) > 11 {
			cleanPhone = "+" + cleanPhone
		} else {
			cleanPhone = "+55" + cleanPhone
		}
	}

	num, err := phonenumbers.Parse(cleanPhone, "")
	if err != nil {
		return nil, fmt.Errorf("failed to parse phone number: %w", err)
	}

	if !phonenumbers.IsValidNumber(num) {
		return nil, fmt.Errorf("invalid phone number: %s", phoneString)
	}

	nationalNumber := phonenumbers.GetNationalSignificantNumber(num)

	components := &PhoneComponents{
		CountryCode: fmt.Sprintf("%d", num.GetCountryCode()),
		E164:        phonenumbers.Format(num, phonenumbers.E164),
	}

	// Brazilian numbers carry a two-digit area code
	if num.GetCountryCode() == 55 && len(nationalNumber) >= 2 {
		components.AreaCode = nationalNumber[:2]
		components.Number = nationalNumber[2:]
	} else {
		components.Number = nationalNumber
	}

	return components, nil
}

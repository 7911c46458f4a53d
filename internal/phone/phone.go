package phone

import (
	"fmt"
	"strings"
)

// Country describes the dialing rules for a supported country.
type Country struct {
	Code   string
	Label  string
	Prefix string
	Digits int
}

// Countries lists the supported countries in display order.
var Countries = []Country{
	{Code: "SN", Label: "Sénégal", Prefix: "+221", Digits: 9},
	{Code: "CI", Label: "Côte d'Ivoire", Prefix: "+225", Digits: 10},
}

// Info returns the country config for an ISO code.
func Info(countryCode string) (Country, bool) {
	for _, c := range Countries {
		if c.Code == countryCode {
			return c, true
		}
	}
	return Country{}, false
}

// Clean strips every non-digit character from a phone number.
func Clean(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Validate checks a phone number against the country's fixed digit count.
// An empty number and a wrong-length number produce distinct messages.
func Validate(phone, countryCode string) error {
	country, ok := Info(countryCode)
	if !ok {
		return fmt.Errorf("Code pays invalide")
	}

	digits := Clean(phone)
	if len(digits) == 0 {
		return fmt.Errorf("Le numéro de téléphone est requis")
	}
	if len(digits) != country.Digits {
		return fmt.Errorf("Le numéro doit contenir %d chiffres", country.Digits)
	}
	return nil
}

// FormatWithPrefix prepends the country calling code to the cleaned digits.
func FormatWithPrefix(phone, countryCode string) string {
	country, _ := Info(countryCode)
	return country.Prefix + Clean(phone)
}

// Package countries holds the country selector data and the phone
// split/join rules the profile screens rely on.
package countries

import "strings"

type Country struct {
	Name        string `json:"name"`
	Code        string `json:"code"`        // ISO 3166-1 alpha-2
	CallingCode string `json:"callingCode"` // with leading +
}

var countries = []Country{
	{"Argentina", "AR", "+54"},
	{"Australia", "AU", "+61"},
	{"Austria", "AT", "+43"},
	{"Belgium", "BE", "+32"},
	{"Brazil", "BR", "+55"},
	{"Canada", "CA", "+1"},
	{"Chile", "CL", "+56"},
	{"China", "CN", "+86"},
	{"Colombia", "CO", "+57"},
	{"Denmark", "DK", "+45"},
	{"Egypt", "EG", "+20"},
	{"Finland", "FI", "+358"},
	{"France", "FR", "+33"},
	{"Germany", "DE", "+49"},
	{"Greece", "GR", "+30"},
	{"India", "IN", "+91"},
	{"Indonesia", "ID", "+62"},
	{"Ireland", "IE", "+353"},
	{"Italy", "IT", "+39"},
	{"Japan", "JP", "+81"},
	{"Jordan", "JO", "+962"},
	{"Kenya", "KE", "+254"},
	{"Mexico", "MX", "+52"},
	{"Morocco", "MA", "+212"},
	{"Netherlands", "NL", "+31"},
	{"New Zealand", "NZ", "+64"},
	{"Nigeria", "NG", "+234"},
	{"Norway", "NO", "+47"},
	{"Pakistan", "PK", "+92"},
	{"Philippines", "PH", "+63"},
	{"Poland", "PL", "+48"},
	{"Portugal", "PT", "+351"},
	{"Qatar", "QA", "+974"},
	{"Saudi Arabia", "SA", "+966"},
	{"Singapore", "SG", "+65"},
	{"South Africa", "ZA", "+27"},
	{"South Korea", "KR", "+82"},
	{"Spain", "ES", "+34"},
	{"Sweden", "SE", "+46"},
	{"Switzerland", "CH", "+41"},
	{"Turkey", "TR", "+90"},
	{"United Arab Emirates", "AE", "+971"},
	{"United Kingdom", "GB", "+44"},
	{"United States", "US", "+1"},
	{"Vietnam", "VN", "+84"},
}

// All returns the selector list in display order.
func All() []Country {
	return countries
}

// ByName looks a country up by its display name.
func ByName(name string) (Country, bool) {
	for _, c := range countries {
		if c.Name == name {
			return c, true
		}
	}
	return Country{}, false
}

// CallingCode returns the calling code for a country name, empty when
// the country is unknown.
func CallingCode(name string) string {
	c, ok := ByName(name)
	if !ok {
		return ""
	}
	return c.CallingCode
}

// SplitPhone strips the country's calling code off a stored full phone
// number so the code can be edited as a separate selector. When the
// stored number does not start with that code, the number is returned
// unchanged with an empty code.
func SplitPhone(fullPhone, countryName string) (code, local string) {
	c, ok := ByName(countryName)
	if !ok || fullPhone == "" {
		return "", fullPhone
	}
	if strings.HasPrefix(fullPhone, c.CallingCode) {
		return c.CallingCode, strings.TrimPrefix(fullPhone, c.CallingCode)
	}
	return "", fullPhone
}

// JoinPhone recomposes the stored full phone number.
func JoinPhone(code, local string) string {
	return code + local
}

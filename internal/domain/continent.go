package domain

import (
	"strings"
)

// Continent - региональный пул маршрутов
type Continent string

const (
	ContinentEurope       Continent = "Europe"
	ContinentNorthAmerica Continent = "North America"
	ContinentSouthAmerica Continent = "South America"
	ContinentAsia         Continent = "Asia"
	ContinentMiddleEast   Continent = "Middle East"
	ContinentAfrica       Continent = "Africa"
	ContinentOceania      Continent = "Oceania"
)

// DefaultContinent is returned for unknown or empty country codes.
const DefaultContinent = ContinentEurope

// AllContinents returns continents in display order.
func AllContinents() []Continent {
	return []Continent{
		ContinentEurope,
		ContinentNorthAmerica,
		ContinentSouthAmerica,
		ContinentAsia,
		ContinentMiddleEast,
		ContinentAfrica,
		ContinentOceania,
	}
}

// countryToContinent maps ISO 3166-1 alpha-2 codes to continents.
var countryToContinent = map[string]Continent{
	// Europe
	"AD": ContinentEurope, "AL": ContinentEurope, "AT": ContinentEurope, "BA": ContinentEurope,
	"BE": ContinentEurope, "BG": ContinentEurope, "BY": ContinentEurope, "CH": ContinentEurope,
	"CY": ContinentEurope, "CZ": ContinentEurope, "DE": ContinentEurope, "DK": ContinentEurope,
	"EE": ContinentEurope, "ES": ContinentEurope, "FI": ContinentEurope, "FR": ContinentEurope,
	"GB": ContinentEurope, "GI": ContinentEurope, "GR": ContinentEurope, "HR": ContinentEurope,
	"HU": ContinentEurope, "IE": ContinentEurope, "IS": ContinentEurope, "IT": ContinentEurope,
	"LI": ContinentEurope, "LT": ContinentEurope, "LU": ContinentEurope, "LV": ContinentEurope,
	"MC": ContinentEurope, "MD": ContinentEurope, "ME": ContinentEurope, "MK": ContinentEurope,
	"MT": ContinentEurope, "NL": ContinentEurope, "NO": ContinentEurope, "PL": ContinentEurope,
	"PT": ContinentEurope, "RO": ContinentEurope, "RS": ContinentEurope, "RU": ContinentEurope,
	"SE": ContinentEurope, "SI": ContinentEurope, "SK": ContinentEurope, "SM": ContinentEurope,
	"UA": ContinentEurope, "VA": ContinentEurope, "XK": ContinentEurope, "TR": ContinentEurope,

	// North America, Caribbean included
	"US": ContinentNorthAmerica, "CA": ContinentNorthAmerica, "MX": ContinentNorthAmerica,
	"BS": ContinentNorthAmerica, "BB": ContinentNorthAmerica, "BZ": ContinentNorthAmerica,
	"CR": ContinentNorthAmerica, "CU": ContinentNorthAmerica, "DO": ContinentNorthAmerica,
	"GT": ContinentNorthAmerica, "HN": ContinentNorthAmerica, "HT": ContinentNorthAmerica,
	"JM": ContinentNorthAmerica, "NI": ContinentNorthAmerica, "PA": ContinentNorthAmerica,
	"PR": ContinentNorthAmerica, "SV": ContinentNorthAmerica, "TT": ContinentNorthAmerica,
	"AG": ContinentNorthAmerica, "KY": ContinentNorthAmerica, "VG": ContinentNorthAmerica,
	"BL": ContinentNorthAmerica, "MF": ContinentNorthAmerica, "AW": ContinentNorthAmerica,
	"TC": ContinentNorthAmerica, "LC": ContinentNorthAmerica, "BM": ContinentNorthAmerica,

	// South America
	"AR": ContinentSouthAmerica, "BO": ContinentSouthAmerica, "BR": ContinentSouthAmerica,
	"CL": ContinentSouthAmerica, "CO": ContinentSouthAmerica, "EC": ContinentSouthAmerica,
	"GY": ContinentSouthAmerica, "PE": ContinentSouthAmerica, "PY": ContinentSouthAmerica,
	"SR": ContinentSouthAmerica, "UY": ContinentSouthAmerica, "VE": ContinentSouthAmerica,

	// Asia
	"AF": ContinentAsia, "BD": ContinentAsia, "BN": ContinentAsia, "BT": ContinentAsia,
	"CN": ContinentAsia, "HK": ContinentAsia, "ID": ContinentAsia, "IN": ContinentAsia,
	"JP": ContinentAsia, "KG": ContinentAsia, "KH": ContinentAsia, "KR": ContinentAsia,
	"KZ": ContinentAsia, "LA": ContinentAsia, "LK": ContinentAsia, "MM": ContinentAsia,
	"MN": ContinentAsia, "MO": ContinentAsia, "MV": ContinentAsia, "MY": ContinentAsia,
	"NP": ContinentAsia, "PH": ContinentAsia, "PK": ContinentAsia, "SG": ContinentAsia,
	"TH": ContinentAsia, "TJ": ContinentAsia, "TM": ContinentAsia, "TW": ContinentAsia,
	"UZ": ContinentAsia, "VN": ContinentAsia, "GE": ContinentAsia, "AM": ContinentAsia,
	"AZ": ContinentAsia,

	// Middle East
	"AE": ContinentMiddleEast, "BH": ContinentMiddleEast, "IL": ContinentMiddleEast,
	"IQ": ContinentMiddleEast, "IR": ContinentMiddleEast, "JO": ContinentMiddleEast,
	"KW": ContinentMiddleEast, "LB": ContinentMiddleEast, "OM": ContinentMiddleEast,
	"PS": ContinentMiddleEast, "QA": ContinentMiddleEast, "SA": ContinentMiddleEast,
	"SY": ContinentMiddleEast, "YE": ContinentMiddleEast,

	// Africa
	"AO": ContinentAfrica, "BW": ContinentAfrica, "CD": ContinentAfrica, "CI": ContinentAfrica,
	"CM": ContinentAfrica, "CV": ContinentAfrica, "DZ": ContinentAfrica, "EG": ContinentAfrica,
	"ET": ContinentAfrica, "GA": ContinentAfrica, "GH": ContinentAfrica, "KE": ContinentAfrica,
	"LY": ContinentAfrica, "MA": ContinentAfrica, "MG": ContinentAfrica, "MU": ContinentAfrica,
	"MZ": ContinentAfrica, "NA": ContinentAfrica, "NG": ContinentAfrica, "RW": ContinentAfrica,
	"SC": ContinentAfrica, "SN": ContinentAfrica, "SD": ContinentAfrica, "TN": ContinentAfrica,
	"TZ": ContinentAfrica, "UG": ContinentAfrica, "ZA": ContinentAfrica, "ZM": ContinentAfrica,
	"ZW": ContinentAfrica,

	// Oceania
	"AU": ContinentOceania, "FJ": ContinentOceania, "NC": ContinentOceania, "NZ": ContinentOceania,
	"PF": ContinentOceania, "PG": ContinentOceania, "WS": ContinentOceania, "VU": ContinentOceania,
}

// ContinentOf возвращает континент для ISO-кода страны.
// Функция тотальная: неизвестный код даёт DefaultContinent.
func ContinentOf(countryCode string) Continent {
	code := strings.ToUpper(strings.TrimSpace(countryCode))
	if c, ok := countryToContinent[code]; ok {
		return c
	}
	return DefaultContinent
}

// ParseContinent accepts display names ("North America") and slugs ("north-america", "north_america").
func ParseContinent(s string) (Continent, bool) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer("-", " ", "_", " ").Replace(norm)
	for _, c := range AllContinents() {
		if strings.ToLower(string(c)) == norm {
			return c, true
		}
	}
	return "", false
}

// Slug returns the URL form of the continent.
func (c Continent) Slug() string {
	return strings.ReplaceAll(strings.ToLower(string(c)), " ", "-")
}

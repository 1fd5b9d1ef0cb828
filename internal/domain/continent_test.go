package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContinentOf(t *testing.T) {
	tests := []struct {
		code string
		want Continent
	}{
		{"FR", ContinentEurope},
		{"gb", ContinentEurope},
		{" us ", ContinentNorthAmerica},
		{"BR", ContinentSouthAmerica},
		{"JP", ContinentAsia},
		{"AE", ContinentMiddleEast},
		{"GA", ContinentAfrica},
		{"NZ", ContinentOceania},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, ContinentOf(tt.code))
		})
	}
}

func TestContinentOf_UnknownDefaultsToEurope(t *testing.T) {
	for _, code := range []string{"", "ZZ", "XYZ", "??", "europe"} {
		assert.Equal(t, DefaultContinent, ContinentOf(code), code)
	}
	assert.Equal(t, ContinentEurope, DefaultContinent)
}

func TestParseContinent(t *testing.T) {
	c, ok := ParseContinent("north-america")
	assert.True(t, ok)
	assert.Equal(t, ContinentNorthAmerica, c)

	c, ok = ParseContinent("Middle East")
	assert.True(t, ok)
	assert.Equal(t, ContinentMiddleEast, c)

	_, ok = ParseContinent("Atlantis")
	assert.False(t, ok)

	assert.Equal(t, "south-america", ContinentSouthAmerica.Slug())
}

func TestGeolocation_Continent(t *testing.T) {
	var nilGeo *Geolocation
	assert.Equal(t, DefaultContinent, nilGeo.Continent())
	assert.Equal(t, ContinentAsia, (&Geolocation{CountryCode: "SG"}).Continent())
}

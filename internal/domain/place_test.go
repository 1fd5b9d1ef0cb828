package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestImageTarget_SearchName(t *testing.T) {
	country := "France"
	assert.Equal(t, "Courchevel, France", ImageTarget{Kind: TargetCities, Name: "Courchevel", CountryName: &country}.SearchName())
	assert.Equal(t, "Gabon", ImageTarget{Kind: TargetCountries, Name: "Gabon"}.SearchName())
}

func TestImageTarget_CurrentImage(t *testing.T) {
	url := "https://images.example/gabon.jpg"
	assert.Equal(t, url, ImageTarget{Image: &url}.CurrentImage())
	assert.Empty(t, ImageTarget{}.CurrentImage())
}

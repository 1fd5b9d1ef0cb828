package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jet-charter-service/internal/domain"
	"github.com/jet-charter-service/internal/reference"
)

const testPlaces = `
- {name: London, country_code: GB, iata: LTN, lat: 51.8747, lon: -0.3683}
- {name: Nice, country_code: FR, iata: NCE, lat: 43.6584, lon: 7.2159}
- {name: Geneva, country_code: CH, iata: GVA, lat: 46.2381, lon: 6.1090}
- {name: Paris, country_code: FR, iata: LBG, lat: 48.9694, lon: 2.4414}
- {name: Courchevel, country_code: FR, iata: CVF, lat: 45.3967, lon: 6.6347}
- {name: Gstaad, country_code: CH, lat: 46.4750, lon: 7.2861}
- {name: New York, country_code: US, iata: TEB, lat: 40.8501, lon: -74.0608}
- {name: Miami, country_code: US, iata: OPF, lat: 25.9070, lon: -80.2784}
`

const testTopRoutes = `
- {id: tr-lon-nce, from: London, to: Nice, category: light, base_price: 14500, popular: true}
- {id: tr-par-gva, from: Paris, to: Geneva, category: light, base_price: 7900}
- {id: tr-gva-cvf, from: Geneva, to: Courchevel, category: light, base_price: 5200}
- {id: tr-nyc-mia, from: New York, to: Miami, category: midsize, base_price: 24000, popular: true}
`

const testAircraft = `
- slug: light
  name: Light Jet
  seats: 7
  cruise_speed_knots: 420
  range_nm: 2000
  hourly_rate: 4600
  models: [Phenom 300E, Citation CJ3+]
- slug: midsize
  name: Midsize Jet
  seats: 8
  cruise_speed_knots: 440
  range_nm: 2700
  hourly_rate: 6200
  models: [Citation XLS+]
`

func newTestCatalog(t *testing.T) *reference.Catalog {
	t.Helper()
	c, err := reference.Parse([]byte(testPlaces), []byte(testTopRoutes), []byte(testAircraft))
	require.NoError(t, err)
	return c
}

// routeBetween builds a persisted-style route from catalog places.
func routeBetween(t *testing.T, c *reference.Catalog, id string, kind domain.RouteKind, from, to string, basePrice float64) domain.Route {
	t.Helper()
	f, ok := c.Place(from)
	require.True(t, ok, from)
	d, ok := c.Place(to)
	require.True(t, ok, to)
	return domain.Route{
		ID:               id,
		Kind:             kind,
		From:             f,
		To:               d,
		AircraftCategory: "light",
		BasePrice:        basePrice,
	}
}

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

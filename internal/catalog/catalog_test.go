package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAirports_CodesUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, a := range Airports() {
		assert.Len(t, a.Code, 3, a.Name)
		assert.False(t, seen[a.Code], "duplicate code %s", a.Code)
		seen[a.Code] = true
	}
	assert.Len(t, seen, 52)
}

func TestAirlines_CodesUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, a := range Airlines() {
		assert.Len(t, a.Code, 2, a.Name)
		assert.False(t, seen[a.Code], "duplicate code %s", a.Code)
		seen[a.Code] = true
	}
	assert.Len(t, seen, 15)
}

func TestCities_Distinct(t *testing.T) {
	cities := Cities()
	assert.Len(t, cities, 49)
	assert.Equal(t, "北京", cities[0])
}

func TestAirports_ReturnsCopy(t *testing.T) {
	list := Airports()
	list[0].City = "nowhere"
	assert.Equal(t, "北京", Airports()[0].City)
}

func TestCitySets(t *testing.T) {
	assert.True(t, IsLongDistance("拉萨"))
	assert.False(t, IsLongDistance("北京"))
	assert.True(t, IsHub("广州"))
	assert.False(t, IsHub("深圳"))
	assert.True(t, IsHotRoute("深圳", "西安"))
	assert.False(t, IsHotRoute("深圳", "拉萨"))

	cities := Cities()
	for _, set := range []map[string]struct{}{longDistanceCities, hubCities, hotCities} {
		for city := range set {
			assert.Contains(t, cities, city)
		}
	}
}

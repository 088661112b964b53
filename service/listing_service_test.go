package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"car-shopper/domain"
)

func ids(cars []domain.CarListing) []string {
	out := make([]string, 0, len(cars))
	for _, c := range cars {
		out = append(out, c.ID)
	}
	return out
}

func TestListingSearch(t *testing.T) {
	svc := NewListingService(newTestCatalog(t))

	cases := []struct {
		name   string
		filter domain.ListingFilter
		want   []string
	}{
		{"no filter", domain.ListingFilter{}, []string{"1", "2", "3", "4", "5", "6"}},
		{"make", domain.ListingFilter{Make: "Honda"}, []string{"2"}},
		{"make is exact", domain.ListingFilter{Make: "honda"}, []string{}},
		{"model", domain.ListingFilter{Model: "F-150"}, []string{"3"}},
		{"body type", domain.ListingFilter{BodyType: "SUV"}, []string{"4", "6"}},
		{"year range", domain.ListingFilter{YearMin: 2021, YearMax: 2021}, []string{"2", "5"}},
		{"year min", domain.ListingFilter{YearMin: 2022}, []string{"1", "4", "6"}},
		{"price range inclusive", domain.ListingFilter{PriceMin: 23500, PriceMax: 25999}, []string{"1", "2"}},
		{"mileage max inclusive", domain.ListingFilter{MileageMax: 11450}, []string{"4", "6"}},
		{"combined", domain.ListingFilter{BodyType: "Sedan", PriceMax: 30000}, []string{"1", "2"}},
		{"query on make", domain.ListingFilter{Query: "  bmw "}, []string{"5"}},
		{"query on make and model", domain.ListingFilter{Query: "toyota camry"}, []string{"1"}},
		{"no match", domain.ListingFilter{Make: "Tesla"}, []string{}},
		{"inverted range", domain.ListingFilter{PriceMin: 30000, PriceMax: 20000}, []string{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ids(svc.Search(tc.filter)))
		})
	}
}

func TestListingGet(t *testing.T) {
	svc := NewListingService(newTestCatalog(t))

	car, err := svc.Get("4")
	require.NoError(t, err)
	assert.Equal(t, "Equinox", car.Model)

	_, err = svc.Get("404")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListingFeatured(t *testing.T) {
	svc := NewListingService(newTestCatalog(t))
	assert.Equal(t, []string{"1", "2", "3"}, ids(svc.Featured()))
}

func TestListingSimilar(t *testing.T) {
	svc := NewListingService(newTestCatalog(t))

	similar, err := svc.Similar("1")
	require.NoError(t, err)
	assert.Equal(t, []string{"2", "5"}, ids(similar))

	similar, err = svc.Similar("3")
	require.NoError(t, err)
	assert.Empty(t, similar)

	_, err = svc.Similar("nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

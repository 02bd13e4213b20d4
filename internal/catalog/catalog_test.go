package catalog

import (
	"testing"

	shoperrors "github.com/madurajaya/storefront/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_New_RejectsDuplicateIDs(t *testing.T) {
	_, err := New([]Product{
		{ID: "p1", Title: "A"},
		{ID: "p1", Title: "B"},
	})
	assert.ErrorIs(t, err, shoperrors.ErrDuplicateProductID)
}

func Test_Catalog_FindByID(t *testing.T) {
	cat := Default()

	testCases := []struct {
		name        string
		id          string
		expectError error
	}{
		{name: "Success - product found", id: "p1", expectError: nil},
		{name: "Error - product not found", id: "p99", expectError: shoperrors.ErrProductNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			found, err := cat.FindByID(tc.id)
			if tc.expectError != nil {
				assert.ErrorIs(t, err, tc.expectError)
				assert.Nil(t, found)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.id, found.ID)
		})
	}
}

func Test_Catalog_Search(t *testing.T) {
	cat := Default()

	testCases := []struct {
		name           string
		query          string
		expectedTitles []string
	}{
		{
			name:           "empty query returns the full list",
			query:          "",
			expectedTitles: []string{"Sepatu Sneakers", "Jaket Boys", "Tas Ransel 20L", "TWS MP3", "Iphone 17"},
		},
		{
			name:           "case-insensitive substring match",
			query:          "jaket",
			expectedTitles: []string{"Jaket Boys"},
		},
		{
			name:           "uppercase query matches lowercase title",
			query:          "SEPATU",
			expectedTitles: []string{"Sepatu Sneakers"},
		},
		{
			name:           "no match returns an empty slice",
			query:          "laptop",
			expectedTitles: []string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// when
			found := cat.Search(tc.query)
			// then
			titles := make([]string, 0, len(found))
			for _, p := range found {
				titles = append(titles, p.Title)
			}
			assert.Equal(t, tc.expectedTitles, titles)
		})
	}
}

func Test_Catalog_ListIsACopy(t *testing.T) {
	cat := Default()
	list := cat.List()
	require.NotEmpty(t, list)

	list[0].Title = "mutated"
	assert.Equal(t, "Sepatu Sneakers", cat.List()[0].Title)
}

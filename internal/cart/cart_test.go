package cart

import (
	"testing"

	"github.com/madurajaya/storefront/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	cat, err := catalog.New([]catalog.Product{
		{ID: "p1", Title: "Sepatu Sneakers", Price: 275000, Image: "sepatu.png"},
		{ID: "p2", Title: "Jaket Boys", Price: 210000, Image: "jaket.webp"},
		{ID: "p4", Title: "TWS MP3", Price: 320000, Image: "tws.jpg"},
	})
	require.NoError(t, err)
	return NewStore(cat)
}

func Test_Store_Add(t *testing.T) {
	type add struct {
		productID string
		quantity  int64
	}
	testCases := []struct {
		name          string
		adds          []add
		expectedLines []Line
	}{
		{
			name: "unknown product is a no-op",
			adds: []add{{"nope", 1}},
		},
		{
			name: "new line snapshots the product",
			adds: []add{{"p1", 2}},
			expectedLines: []Line{
				{ProductID: "p1", Title: "Sepatu Sneakers", Price: 275000, Image: "sepatu.png", Quantity: 2},
			},
		},
		{
			name: "repeated adds aggregate into one line",
			adds: []add{{"p1", 1}, {"p1", 2}},
			expectedLines: []Line{
				{ProductID: "p1", Title: "Sepatu Sneakers", Price: 275000, Image: "sepatu.png", Quantity: 3},
			},
		},
		{
			name: "non-positive quantity is treated as 1",
			adds: []add{{"p1", 0}, {"p1", -5}},
			expectedLines: []Line{
				{ProductID: "p1", Title: "Sepatu Sneakers", Price: 275000, Image: "sepatu.png", Quantity: 2},
			},
		},
		{
			name: "insertion order is preserved",
			adds: []add{{"p2", 1}, {"p1", 1}},
			expectedLines: []Line{
				{ProductID: "p2", Title: "Jaket Boys", Price: 210000, Image: "jaket.webp", Quantity: 1},
				{ProductID: "p1", Title: "Sepatu Sneakers", Price: 275000, Image: "sepatu.png", Quantity: 1},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			store := newTestStore(t)
			// when
			for _, a := range tc.adds {
				store.Add(a.productID, a.quantity)
			}
			// then
			if tc.expectedLines == nil {
				assert.Empty(t, store.Lines())
				return
			}
			assert.Equal(t, tc.expectedLines, store.Lines())
		})
	}
}

func Test_Store_Remove(t *testing.T) {
	// given
	store := newTestStore(t)
	store.Add("p1", 1)
	store.Add("p2", 1)

	// when removing an unknown product nothing changes
	store.Remove("nope")
	assert.Len(t, store.Lines(), 2)

	// when removing an existing line it disappears, order preserved
	store.Remove("p1")
	lines := store.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, "p2", lines[0].ProductID)
}

func Test_Store_ChangeQuantity(t *testing.T) {
	testCases := []struct {
		name        string
		productID   string
		newQuantity int64
		expected    int64
	}{
		{name: "sets a valid quantity", productID: "p1", newQuantity: 5, expected: 5},
		{name: "zero clamps to 1", productID: "p1", newQuantity: 0, expected: 1},
		{name: "negative clamps to 1", productID: "p1", newQuantity: -3, expected: 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			store := newTestStore(t)
			store.Add("p1", 2)
			// when
			store.ChangeQuantity(tc.productID, tc.newQuantity)
			// then
			lines := store.Lines()
			require.Len(t, lines, 1)
			assert.Equal(t, tc.expected, lines[0].Quantity)
		})
	}

	t.Run("unknown product is a no-op", func(t *testing.T) {
		store := newTestStore(t)
		store.Add("p1", 2)
		store.ChangeQuantity("nope", 7)
		lines := store.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, int64(2), lines[0].Quantity)
	})

	t.Run("decrementing at 1 stays at 1, never removes", func(t *testing.T) {
		store := newTestStore(t)
		store.Add("p1", 1)
		store.ChangeQuantity("p1", 0)
		lines := store.Lines()
		require.Len(t, lines, 1)
		assert.Equal(t, int64(1), lines[0].Quantity)
	})
}

func Test_Store_Totals(t *testing.T) {
	// given
	store := newTestStore(t)
	store.Add("p1", 1)
	store.Add("p1", 2)

	// then: scenario from the shop floor, one line of three sneakers
	lines := store.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, int64(3), lines[0].Quantity)
	assert.Equal(t, int64(825000), lines[0].Total())
	assert.Equal(t, int64(3), store.TotalItemCount())
	assert.Equal(t, int64(825000), store.Subtotal())

	// and subtotal tracks every mutation path
	store.Add("p2", 1)
	assert.Equal(t, int64(825000+210000), store.Subtotal())
	store.ChangeQuantity("p2", 2)
	assert.Equal(t, int64(825000+420000), store.Subtotal())
	store.Remove("p1")
	assert.Equal(t, int64(420000), store.Subtotal())
}

func Test_Store_Clear(t *testing.T) {
	// given
	store := newTestStore(t)
	store.Add("p1", 3)
	store.Add("p2", 1)

	// when
	store.Clear()

	// then
	assert.Equal(t, int64(0), store.TotalItemCount())
	assert.Empty(t, store.Lines())
}

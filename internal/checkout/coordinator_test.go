package checkout

import (
	"log/slog"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/madurajaya/storefront/internal/cart"
	"github.com/madurajaya/storefront/internal/catalog"
	shoperrors "github.com/madurajaya/storefront/internal/errors"
	"github.com/madurajaya/storefront/internal/nav"
	"github.com/madurajaya/storefront/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testShop() config.ShopConfig {
	return config.ShopConfig{
		Name:           "Madura Jaya",
		WhatsAppNumber: "6281292492845",
		ShippingFee:    15000,
	}
}

func testDeps(t *testing.T) (*cart.Store, *nav.Router, *Coordinator) {
	t.Helper()
	store := cart.NewStore(catalog.Default())
	router := nav.NewRouter(nil)
	coordinator := NewCoordinator(store, router, testShop(), slog.Default())
	return store, router, coordinator
}

// decodeHandoffText extracts the url-decoded text payload from a hand-off URL.
func decodeHandoffText(t *testing.T, handoff string) string {
	t.Helper()
	u, err := url.Parse(handoff)
	require.NoError(t, err)
	return u.Query().Get("text")
}

func Test_Coordinator_Begin(t *testing.T) {
	t.Run("empty cart is rejected and redirected to products", func(t *testing.T) {
		// given
		_, router, coordinator := testDeps(t)
		router.Navigate(nav.SectionCart)
		// when
		err := coordinator.Begin()
		// then
		assert.ErrorIs(t, err, shoperrors.ErrEmptyCart)
		assert.Equal(t, nav.SectionProducts, router.Active())
	})

	t.Run("non-empty cart proceeds to checkout", func(t *testing.T) {
		// given
		store, router, coordinator := testDeps(t)
		store.Add("p1", 1)
		// when
		err := coordinator.Begin()
		// then
		require.NoError(t, err)
		assert.Equal(t, nav.SectionCheckout, router.Active())
	})
}

func Test_Coordinator_Submit_EmptyCart(t *testing.T) {
	// given
	_, router, coordinator := testDeps(t)
	// when
	confirmation, err := coordinator.Submit(Form{Name: "Budi"})
	// then
	assert.ErrorIs(t, err, shoperrors.ErrEmptyCart)
	assert.Nil(t, confirmation)
	assert.Equal(t, StateRejected, coordinator.State())
	assert.Equal(t, nav.SectionProducts, router.Active())
}

func Test_Coordinator_Submit_Confirmed(t *testing.T) {
	// given
	store, router, coordinator := testDeps(t)
	store.Add("p2", 1) // Jaket Boys, 210000
	store.Add("p4", 1) // TWS MP3, 320000
	form := Form{
		Name:          "Budi",
		Phone:         "0812000111",
		Address:       "Jl. Merdeka 1",
		PaymentMethod: "transfer",
	}

	// when
	confirmation, err := coordinator.Submit(form)

	// then
	require.NoError(t, err)
	assert.Equal(t, StateConfirmed, coordinator.State())
	assert.Equal(t, int64(530000), confirmation.Subtotal)
	assert.Equal(t, int64(15000), confirmation.ShippingFee)
	assert.Equal(t, int64(545000), confirmation.GrandTotal)
	assert.True(t, strings.HasPrefix(confirmation.OrderID, "ORD"))
	assert.Equal(t, ConfirmedMessage, confirmation.Message)
	require.Len(t, confirmation.Items, 2)
	assert.Equal(t, Item{Title: "Jaket Boys", Quantity: 1, Total: "Rp 210.000"}, confirmation.Items[0])
	assert.Equal(t, Item{Title: "TWS MP3", Quantity: 1, Total: "Rp 320.000"}, confirmation.Items[1])

	// and the hand-off URL carries the encoded order summary
	assert.True(t, strings.HasPrefix(confirmation.HandoffURL, "https://wa.me/6281292492845?text="))
	text := decodeHandoffText(t, confirmation.HandoffURL)
	assert.Contains(t, text, "Halo Madura Jaya,")
	assert.Contains(t, text, "Order: "+confirmation.OrderID)
	assert.Contains(t, text, "Nama: Budi")
	assert.Contains(t, text, "No: 0812000111")
	assert.Contains(t, text, "Alamat: Jl. Merdeka 1")
	assert.Contains(t, text, "Metode: transfer")
	assert.Contains(t, text, "Jaket Boys x1 — Rp 210.000")
	assert.Contains(t, text, "TWS MP3 x1 — Rp 320.000")
	assert.Contains(t, text, "Total: Rp 545.000")

	// and the cart is cleared, the user is back home
	assert.Equal(t, int64(0), store.TotalItemCount())
	assert.Empty(t, store.Lines())
	assert.Equal(t, nav.SectionHome, router.Active())
}

func Test_Coordinator_OrderIDsAreMonotonic(t *testing.T) {
	// given: a clock frozen within a single millisecond
	store, _, coordinator := testDeps(t)
	frozen := time.UnixMilli(1700000000000)
	coordinator.now = func() time.Time { return frozen }

	// when: two submissions in the same millisecond
	store.Add("p1", 1)
	first, err := coordinator.Submit(Form{Name: "Budi"})
	require.NoError(t, err)
	store.Add("p1", 1)
	second, err := coordinator.Submit(Form{Name: "Budi"})
	require.NoError(t, err)

	// then
	assert.Equal(t, "ORD1700000000000", first.OrderID)
	assert.Equal(t, "ORD1700000000001", second.OrderID)
}

func Test_Coordinator_Inquiry(t *testing.T) {
	testCases := []struct {
		name         string
		message      string
		expectedText string
	}{
		{name: "default inquiry text", message: "", expectedText: "Halo, saya ingin membeli barang ini."},
		{name: "caller-supplied text", message: "Apakah p3 ready?", expectedText: "Apakah p3 ready?"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, coordinator := testDeps(t)
			handoff := coordinator.Inquiry(tc.message)
			assert.True(t, strings.HasPrefix(handoff, "https://wa.me/6281292492845?text="))
			assert.Equal(t, tc.expectedText, decodeHandoffText(t, handoff))
		})
	}
}

package nav

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Router_Navigate(t *testing.T) {
	testCases := []struct {
		name            string
		target          Section
		expectedActive  Section
		expectedRefresh []Section
	}{
		{name: "products", target: SectionProducts, expectedActive: SectionProducts},
		{name: "cart triggers refresh", target: SectionCart, expectedActive: SectionCart, expectedRefresh: []Section{SectionCart}},
		{name: "checkout triggers refresh", target: SectionCheckout, expectedActive: SectionCheckout, expectedRefresh: []Section{SectionCheckout}},
		{name: "unknown section is a no-op", target: Section("admin"), expectedActive: SectionHome},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			var refreshed []Section
			router := NewRouter(func(s Section) {
				refreshed = append(refreshed, s)
			})
			// when
			router.Navigate(tc.target)
			// then
			assert.Equal(t, tc.expectedActive, router.Active())
			assert.Equal(t, tc.expectedRefresh, refreshed)
		})
	}
}

func Test_Router_StartsAtHome(t *testing.T) {
	router := NewRouter(nil)
	assert.Equal(t, SectionHome, router.Active())
}

func Test_Router_ExactlyOneActiveSection(t *testing.T) {
	router := NewRouter(nil)
	router.Navigate(SectionProducts)

	states := router.Sections()
	require.Len(t, states, 4)

	activeCount := 0
	for _, s := range states {
		if s.Active {
			activeCount++
			assert.Equal(t, SectionProducts, s.ID)
		}
	}
	assert.Equal(t, 1, activeCount)
}

func Test_Router_NilRefreshHook(t *testing.T) {
	router := NewRouter(nil)
	assert.NotPanics(t, func() {
		router.Navigate(SectionCart)
	})
	assert.Equal(t, SectionCart, router.Active())
}

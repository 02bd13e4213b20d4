// Package nav tracks which storefront section is currently visible.
package nav

import "sync"

// Section is a named screen in the single-page navigation model.
type Section string

const (
	SectionHome     Section = "home"
	SectionProducts Section = "products"
	SectionCart     Section = "cart"
	SectionCheckout Section = "checkout"
)

// sections is the fixed navigation order.
var sections = []Section{SectionHome, SectionProducts, SectionCart, SectionCheckout}

// Known reports whether s names an existing section.
func Known(s Section) bool {
	for _, known := range sections {
		if known == s {
			return true
		}
	}
	return false
}

// SectionState marks one section as active or inactive.
type SectionState struct {
	ID     Section `json:"id"`
	Active bool    `json:"active"`
}

// Router tracks the active section. Exactly one section is active at any
// time. The refresh hook, if set, is invoked for the cart and checkout
// sections before Navigate returns, so their projections are re-derived
// before they become visible.
type Router struct {
	mu      sync.RWMutex
	active  Section
	refresh func(Section)
}

// NewRouter creates a router starting at the home section.
func NewRouter(refresh func(Section)) *Router {
	return &Router{
		active:  SectionHome,
		refresh: refresh,
	}
}

// Navigate activates the given section. Unknown sections are a no-op, the
// current section stays active.
func (r *Router) Navigate(s Section) {
	if !Known(s) {
		return
	}

	r.mu.Lock()
	r.active = s
	r.mu.Unlock()

	// Cart and checkout show derived state, refresh them before they are shown.
	if (s == SectionCart || s == SectionCheckout) && r.refresh != nil {
		r.refresh(s)
	}
}

// Active returns the currently active section.
func (r *Router) Active() Section {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.active
}

// Sections returns every section in navigation order with exactly one
// marked active.
func (r *Router) Sections() []SectionState {
	active := r.Active()
	states := make([]SectionState, len(sections))
	for i, s := range sections {
		states[i] = SectionState{ID: s, Active: s == active}
	}
	return states
}

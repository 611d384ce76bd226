package store

import (
	"time"

	"project-nexus-be/pkg/aura"
)

// Intent describes what the shopper came to do this visit.
type Intent string

const (
	IntentBrowsing    Intent = "Just Browsing"
	IntentQuickErrand Intent = "Quick Errand"
	IntentWeeklyShop  Intent = "Weekly Shop"
	IntentGiftHunt    Intent = "Gift Hunt"
)

// SustainabilityPref is how strongly eco factors should weigh on
// recommendations for this shopper.
type SustainabilityPref string

const (
	SustainLow    SustainabilityPref = "low"
	SustainMedium SustainabilityPref = "medium"
	SustainHigh   SustainabilityPref = "high"
)

// ShopperSession is the per-login working state of a shopper. It lives in
// the in-memory session store and is rebuilt from defaults on each login.
type ShopperSession struct {
	ID                 string             `json:"id"`
	UserID             string             `json:"user_id"`
	Context            aura.Context       `json:"context"`
	Intent             Intent             `json:"intent"`
	SustainabilityPref SustainabilityPref `json:"sustainability_pref"`
	Cart               []string           `json:"cart"`
	Wishlist           []string           `json:"wishlist"`
	CommunityTrends    []string           `json:"community_trends"`
	Friends            []string           `json:"friends"`
	Family             []string           `json:"family"`
	// HourPinned marks an explicit client override of Context.HourOfDay;
	// until then the hour tracks the wall clock on every Touch.
	HourPinned bool      `json:"hour_pinned"`
	CreatedAt  time.Time `json:"created_at"`
	LastActive time.Time `json:"last_active"`
}

// NewShopperSession builds a session with the defaults a fresh login sees.
// The hour of day starts from the clock, not from a canned default.
func NewShopperSession(id, userID string, now time.Time) *ShopperSession {
	ctx := aura.DefaultContext()
	ctx.HourOfDay = now.Hour()
	return &ShopperSession{
		ID:                 id,
		UserID:             userID,
		Context:            ctx,
		Intent:             IntentBrowsing,
		SustainabilityPref: SustainMedium,
		Cart:               []string{},
		Wishlist:           []string{},
		CommunityTrends:    []string{"Organic snacks", "Reusable water bottles", "Plant-based meals"},
		Friends:            []string{"Alex", "Jordan", "Sam"},
		Family:             []string{"Partner", "Kids"},
		CreatedAt:          now,
		LastActive:         now,
	}
}

// Touch records activity so idle expiry is measured from the last request,
// and re-derives the hour of day so time-sensitive rules see the current
// hour rather than the login hour. A pinned hour stays as the client set it.
func (s *ShopperSession) Touch(now time.Time) {
	s.LastActive = now
	if !s.HourPinned {
		s.Context.HourOfDay = now.Hour()
	}
}

// PinHour fixes the hour of day to an explicit client value, stopping the
// wall-clock refresh in Touch.
func (s *ShopperSession) PinHour(hour int) {
	s.Context.HourOfDay = hour
	s.HourPinned = true
}

// InCart reports whether the named product is already in the cart.
func (s *ShopperSession) InCart(name string) bool {
	for _, item := range s.Cart {
		if item == name {
			return true
		}
	}
	return false
}

// InWishlist reports whether the named product is saved for later.
func (s *ShopperSession) InWishlist(name string) bool {
	for _, item := range s.Wishlist {
		if item == name {
			return true
		}
	}
	return false
}

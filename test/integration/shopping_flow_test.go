package integration

import (
	"encoding/json"
	"testing"

	"project-nexus-be/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShoppingFlow(t *testing.T) {
	app := setupApp(t)

	_, status := postJSON(t, app, "/api/auth/register", "", dto.RegisterRequest{
		Username: "sam",
		Email:    "sam@example.com",
		Password: "secret99",
	})
	require.Equal(t, 200, status)
	auth := login(t, app, "sam", "secret99")
	token := auth.Token

	t.Run("stressed shopper gets Stressed aura", func(t *testing.T) {
		stress := 9
		weather := "Rainy"
		env, status := doJSON(t, app, "PATCH", "/api/context/", token, dto.UpdateContextRequest{
			StressLevel: &stress,
			Weather:     &weather,
		})
		require.Equal(t, 200, status)

		var ctxRes dto.ContextResponse
		require.NoError(t, json.Unmarshal(env.Data, &ctxRes))
		assert.Equal(t, 9, ctxRes.StressLevel)
		assert.Equal(t, "Rainy", ctxRes.Weather)

		env, status = doJSON(t, app, "GET", "/api/insights/aura", token, nil)
		require.Equal(t, 200, status)

		var aura dto.AuraResponse
		require.NoError(t, json.Unmarshal(env.Data, &aura))
		assert.Equal(t, "Stressed", aura.Aura)
		assert.NotEmpty(t, aura.Products)
	})

	t.Run("out of range levels are clamped", func(t *testing.T) {
		stress := 99
		energy := -5
		env, status := doJSON(t, app, "PATCH", "/api/context/", token, dto.UpdateContextRequest{
			StressLevel: &stress,
			EnergyLevel: &energy,
		})
		require.Equal(t, 200, status)

		var ctxRes dto.ContextResponse
		require.NoError(t, json.Unmarshal(env.Data, &ctxRes))
		assert.Equal(t, 10, ctxRes.StressLevel)
		assert.Equal(t, 1, ctxRes.EnergyLevel)
	})

	t.Run("unknown weather rejected", func(t *testing.T) {
		weather := "Hailstorm"
		env, status := doJSON(t, app, "PATCH", "/api/context/", token, dto.UpdateContextRequest{
			Weather: &weather,
		})
		require.Equal(t, 400, status)
		assert.False(t, env.Success)
	})

	t.Run("cart add, report, checkout", func(t *testing.T) {
		env, status := postJSON(t, app, "/api/cart/items", token, dto.CartItemRequest{
			Name: "Bamboo Toothbrush",
		})
		require.Equal(t, 200, status)

		var cart dto.CartResponse
		require.NoError(t, json.Unmarshal(env.Data, &cart))
		require.Len(t, cart.Items, 1)
		assert.Equal(t, "Bamboo Toothbrush", cart.Items[0].Name)
		assert.InDelta(t, 4.99, cart.Total, 0.001)

		// Adding the same product again is a no-op.
		env, status = postJSON(t, app, "/api/cart/items", token, dto.CartItemRequest{
			Name: "Bamboo Toothbrush",
		})
		require.Equal(t, 200, status)
		require.NoError(t, json.Unmarshal(env.Data, &cart))
		assert.Len(t, cart.Items, 1)

		env, status = doJSON(t, app, "GET", "/api/insights/sustainability", token, nil)
		require.Equal(t, 200, status)

		var report dto.SustainabilityResponse
		require.NoError(t, json.Unmarshal(env.Data, &report))
		assert.Equal(t, 100, report.EcoScore)
		assert.Equal(t, "A+", report.EcoGrade)

		env, status = postJSON(t, app, "/api/cart/checkout", token, nil)
		require.Equal(t, 200, status)

		var receipt dto.CheckoutResponse
		require.NoError(t, json.Unmarshal(env.Data, &receipt))
		assert.NotEmpty(t, receipt.PurchaseId)
		assert.InDelta(t, 4.99, receipt.Total, 0.001)

		// Cart is empty after checkout.
		env, status = doJSON(t, app, "GET", "/api/cart/", token, nil)
		require.Equal(t, 200, status)
		require.NoError(t, json.Unmarshal(env.Data, &cart))
		assert.Empty(t, cart.Items)
	})

	t.Run("checkout with empty cart rejected", func(t *testing.T) {
		_, status := postJSON(t, app, "/api/cart/checkout", token, nil)
		assert.Equal(t, 400, status)
	})

	t.Run("unknown product rejected", func(t *testing.T) {
		_, status := postJSON(t, app, "/api/cart/items", token, dto.CartItemRequest{
			Name: "Flux Capacitor",
		})
		assert.Equal(t, 404, status)
	})

	t.Run("wishlist save for later", func(t *testing.T) {
		_, status := postJSON(t, app, "/api/cart/items", token, dto.CartItemRequest{
			Name: "Reusable Water Bottle",
		})
		require.Equal(t, 200, status)

		env, status := postJSON(t, app, "/api/wishlist/items", token, dto.CartItemRequest{
			Name: "Reusable Water Bottle",
		})
		require.Equal(t, 200, status)

		var wishlist dto.WishlistResponse
		require.NoError(t, json.Unmarshal(env.Data, &wishlist))
		assert.Contains(t, wishlist.Items, "Reusable Water Bottle")

		var cart dto.CartResponse
		env, status = doJSON(t, app, "GET", "/api/cart/", token, nil)
		require.Equal(t, 200, status)
		require.NoError(t, json.Unmarshal(env.Data, &cart))
		assert.Empty(t, cart.Items)
	})

	t.Run("dashboard aggregates everything", func(t *testing.T) {
		env, status := doJSON(t, app, "GET", "/api/insights/dashboard", token, nil)
		require.Equal(t, 200, status)

		var dash dto.DashboardResponse
		require.NoError(t, json.Unmarshal(env.Data, &dash))
		assert.NotEmpty(t, dash.Aura.Aura)
		assert.NotEmpty(t, dash.Predictions)
		assert.Equal(t, int64(1), dash.PurchaseCount)
	})
}

package mail

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/costa-tech/APEX-CLOTHING-WEBSITE-sub000/models"
)

func TestSendOrderConfirmationWithoutAPIKey(t *testing.T) {
	c := NewClient("", "shop@example.com")
	err := c.SendOrderConfirmation("buyer@example.com", models.Order{OrderRef: "ref-1"})
	require.Error(t, err)
}

func TestSendOrderConfirmationWithoutRecipient(t *testing.T) {
	c := NewClient("sg-key", "shop@example.com")
	err := c.SendOrderConfirmation("", models.Order{OrderRef: "ref-1"})
	require.Error(t, err)
}

func TestOrderSummaryFormatting(t *testing.T) {
	order := models.Order{
		OrderRef:     "20260828-abc",
		ShippingCost: 30,
		Discount:     5,
		CouponCode:   "WELCOME10",
		TotalAmount:  95,
		Items: []models.OrderItem{
			{Name: "Graphic Tee", Size: "M", Color: "black", UnitPrice: 25, Quantity: 2},
			{Name: "Tote Bag", UnitPrice: 20, Quantity: 1},
		},
	}

	body := orderSummary(order)

	require.Contains(t, body, "20260828-abc")
	require.Contains(t, body, "2x Graphic Tee (M/black): 50.00")
	require.Contains(t, body, "1x Tote Bag")
	require.NotContains(t, body, "Tote Bag (")
	require.Contains(t, body, "Discount: -5.00 (WELCOME10)")
	require.Contains(t, body, "Total: 95.00")
}

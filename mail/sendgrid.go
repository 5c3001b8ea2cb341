package mail

import (
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/costa-tech/APEX-CLOTHING-WEBSITE-sub000/models"
)

// Client sends transactional mail through SendGrid.
type Client struct {
	apiKey string
	from   string
}

func NewClient(apiKey, from string) *Client {
	return &Client{apiKey: apiKey, from: from}
}

// SendOrderConfirmation mails the order summary to the customer. Best-effort:
// checkout has already committed when this runs.
func (c *Client) SendOrderConfirmation(to string, order models.Order) error {
	if c == nil || c.apiKey == "" {
		return fmt.Errorf("sendgrid api key is empty")
	}
	if to == "" {
		return fmt.Errorf("to address is empty")
	}

	subject := fmt.Sprintf("Order %s confirmed", order.OrderRef)
	body := orderSummary(order)

	message := sgmail.NewSingleEmail(
		sgmail.NewEmail("APEX Clothing", c.from),
		subject,
		sgmail.NewEmail("", to),
		body,
		fmt.Sprintf("<pre>%s</pre>", body),
	)

	response, err := sendgrid.NewSendClient(c.apiKey).Send(message)
	if err != nil {
		return fmt.Errorf("sendgrid send error: %w", err)
	}
	if response.StatusCode >= 400 {
		log.Printf("❌ SendGrid error status=%d body=%s", response.StatusCode, response.Body)
		return fmt.Errorf("sendgrid send failed: status=%d", response.StatusCode)
	}

	log.Printf("✅ Order confirmation sent to %s for %s", to, order.OrderRef)
	return nil
}

func orderSummary(order models.Order) string {
	body := fmt.Sprintf("Thank you for your order %s.\n\n", order.OrderRef)
	for _, item := range order.Items {
		variant := item.Size
		if item.Color != "" {
			if variant != "" {
				variant += "/"
			}
			variant += item.Color
		}
		if variant != "" {
			variant = " (" + variant + ")"
		}
		body += fmt.Sprintf("  %dx %s%s: %.2f\n", item.Quantity, item.Name, variant, item.UnitPrice*float64(item.Quantity))
	}
	if order.Discount > 0 {
		body += fmt.Sprintf("\nDiscount: -%.2f (%s)", order.Discount, order.CouponCode)
	}
	body += fmt.Sprintf("\nShipping: %.2f\nTotal: %.2f\n", order.ShippingCost, order.TotalAmount)
	return body
}

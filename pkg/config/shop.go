package config

import (
	"fmt"
	"strings"
)

// ShopConfig holds the storefront identity and order hand-off settings.
type ShopConfig struct {
	Name           string `koanf:"name"`
	WhatsAppNumber string `koanf:"whatsappNumber"`
	ShippingFee    int64  `koanf:"shippingFee"`
}

// String returns a string representation of the shop configuration.
// The WhatsApp number is masked, it is the shop owner's contact.
func (c *ShopConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- Shop ---\n")
	b.WriteString(fmt.Sprintf("  name: %s\n", c.Name))
	b.WriteString(fmt.Sprintf("  whatsappNumber: %s\n", maskNumber(c.WhatsAppNumber)))
	b.WriteString(fmt.Sprintf("  shippingFee: %d\n", c.ShippingFee))
	return b.String()
}

func maskNumber(number string) string {
	if number == "" {
		return "<not configured>"
	}
	if len(number) <= 4 {
		return "****"
	}
	return "****" + number[len(number)-4:]
}

func (c *ShopConfig) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("shop name is not configured")
	}
	if c.WhatsAppNumber == "" {
		return fmt.Errorf("shop WhatsApp number is not configured")
	}
	if c.ShippingFee < 0 {
		return fmt.Errorf("invalid shipping fee: %d", c.ShippingFee)
	}
	return nil
}

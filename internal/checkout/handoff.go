package checkout

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/madurajaya/storefront/internal/cart"
	"github.com/madurajaya/storefront/pkg/money"
)

const defaultInquiryText = "Halo, saya ingin membeli barang ini."

// handoffURL builds the outbound WhatsApp link carrying the encoded text,
// meant to be opened in a new browsing context.
func handoffURL(number, text string) string {
	return "https://wa.me/" + number + "?text=" + url.QueryEscape(text)
}

// orderText renders the human-readable order summary sent to the shop.
func orderText(shopName string, c *Confirmation, lines []cart.Line) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Halo %s,\n\n", shopName)
	b.WriteString("Saya sudah melakukan pesanan:\n")
	fmt.Fprintf(&b, "Order: %s\n", c.OrderID)
	fmt.Fprintf(&b, "Nama: %s\n", c.Name)
	fmt.Fprintf(&b, "No: %s\n", c.Phone)
	fmt.Fprintf(&b, "Alamat: %s\n", c.Address)
	fmt.Fprintf(&b, "Metode: %s\n", c.PaymentMethod)
	b.WriteString("\nRincian:\n")
	for _, l := range lines {
		fmt.Fprintf(&b, "%s x%d — %s\n", l.Title, l.Quantity, rupiahTotal(l))
	}
	fmt.Fprintf(&b, "\nTotal: %s\n", money.Rupiah(c.GrandTotal))
	b.WriteString("\nMohon konfirmasi.")
	return b.String()
}

func rupiahTotal(l cart.Line) string {
	return money.Rupiah(l.Total())
}

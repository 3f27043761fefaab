package finance

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/pedidos/backend/internal/domain/trade"
)

const statementDateLayout = "02/01/2006"

// Statement is a customer-facing account summary ready to send over WhatsApp
type Statement struct {
	Text        string
	WhatsAppURL string // empty when the customer has no phone on file
}

// BuildStatement renders a plain-text estado de cuenta for one customer and,
// when a phone number is available, a wa.me link carrying the text
func BuildStatement(customerName, whatsApp, customerID string, debts []Debt, payments []Payment, orders []trade.Order, balance Balance) Statement {
	var b strings.Builder

	fmt.Fprintf(&b, "Hola %s, este es tu estado de cuenta:\n", customerName)

	b.WriteString("\nCargos:\n")
	hasCharges := false
	for _, d := range debts {
		fmt.Fprintf(&b, "- %s: $%s\n", d.Label, d.Amount.StringFixed(2))
		hasCharges = true
	}
	for _, o := range orders {
		if o.Deleted {
			continue
		}
		if o.IsLegacy() {
			if o.LegacyCustomerID == customerID {
				fmt.Fprintf(&b, "- Pedido %s: $%s\n", o.Folio, o.TotalFinal.StringFixed(2))
				hasCharges = true
			}
			continue
		}
		for _, item := range o.Items {
			if item.CustomerID == customerID && item.Completed {
				fmt.Fprintf(&b, "- Pedido %s, %s %s: $%s\n",
					o.Folio, item.Category, item.SizeLabel, item.FinalPrice.StringFixed(2))
				hasCharges = true
			}
		}
	}
	if !hasCharges {
		b.WriteString("- (sin cargos)\n")
	}

	b.WriteString("\nAbonos:\n")
	if len(payments) == 0 {
		b.WriteString("- (sin abonos)\n")
	}
	for _, p := range payments {
		fmt.Fprintf(&b, "- %s: $%s\n", p.EffectiveDate.Format(statementDateLayout), p.Amount.StringFixed(2))
	}

	fmt.Fprintf(&b, "\nTotal cargos: $%s\n", balance.Owed.StringFixed(2))
	fmt.Fprintf(&b, "Total abonos: $%s\n", balance.Paid.StringFixed(2))
	fmt.Fprintf(&b, "Saldo pendiente: $%s\n", balance.Remaining.StringFixed(2))

	s := Statement{Text: b.String()}
	if whatsApp != "" {
		s.WhatsAppURL = fmt.Sprintf("https://wa.me/%s?text=%s", whatsApp, url.QueryEscape(s.Text))
	}
	return s
}

// Package notifications implements the outgoing customer-facing side of the
// workflow: rendering the acknowledgment letter and handing it to a sender.
package notifications

import (
	"html/template"
	"strings"

	"ordertaking/internal/core/domain/model/order"
)

const letterTemplateText = `<html>
<body>
<h1>Thank you for your order!</h1>
<p>Dear {{.FirstName}} {{.LastName}},</p>
<p>We have received your order <strong>{{.OrderID}}</strong>.</p>
<table>
<tr><th>Product</th><th>Quantity</th><th>Total</th></tr>
{{range .Lines}}<tr><td>{{.ProductCode}}</td><td>{{.Quantity}}</td><td>{{.LinePrice}}</td></tr>
{{end}}</table>
<p>Amount to bill: <strong>{{.AmountToBill}}</strong></p>
</body>
</html>
`

var letterTemplate = template.Must(template.New("acknowledgment").Parse(letterTemplateText))

type letterLine struct {
	ProductCode string
	Quantity    string
	LinePrice   string
}

type letterData struct {
	OrderID      string
	FirstName    string
	LastName     string
	Lines        []letterLine
	AmountToBill string
}

// HTMLLetterRenderer implements ports.LetterRenderer with a fixed HTML
// template.
type HTMLLetterRenderer struct{}

// NewHTMLLetterRenderer creates the template-based letter renderer.
func NewHTMLLetterRenderer() HTMLLetterRenderer {
	return HTMLLetterRenderer{}
}

// Render produces the acknowledgment letter for a priced order. Rendering a
// constructed order cannot fail; the template is parsed at package init.
func (HTMLLetterRenderer) Render(pricedOrder order.PricedOrder) order.HTMLLetter {
	lines := make([]letterLine, 0, len(pricedOrder.Lines()))
	for _, line := range pricedOrder.Lines() {
		lines = append(lines, letterLine{
			ProductCode: line.ProductCode().Value(),
			Quantity:    line.Quantity().String(),
			LinePrice:   line.LinePrice().String(),
		})
	}

	data := letterData{
		OrderID:      pricedOrder.ID().Value(),
		FirstName:    pricedOrder.CustomerInfo().FirstName().Value(),
		LastName:     pricedOrder.CustomerInfo().LastName().Value(),
		Lines:        lines,
		AmountToBill: pricedOrder.AmountToBill().String(),
	}

	// strings.Builder never returns a write error.
	var sb strings.Builder
	if err := letterTemplate.Execute(&sb, data); err != nil {
		return order.HTMLLetter("")
	}

	return order.HTMLLetter(sb.String())
}

// Package whatsapp builds the proposal message sent to clients and the
// wa.me link that prefills it.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"murilov3d/internal/domain/entities"
)

// countryCode is prefixed to the client contact when building the link.
const countryCode = "55"

// BuildText renders the fixed pt-BR proposal template for a saved quote.
// Freight and notes lines are omitted when empty.
func BuildText(q entities.QuoteRecord) string {
	// Anything that is not resin is presented as filament, including quotes
	// saved before the material type was recorded.
	matType := entities.MaterialTypeFilamento
	if q.Production.MaterialType == entities.MaterialTypeResina {
		matType = entities.MaterialTypeResina
	}
	matLine := fmt.Sprintf("%s %s", matType, q.Production.MaterialName)

	var freightLine string
	if q.Costs.Freight > 0 {
		freightLine = "\n• Frete: " + FormatBRL(q.Costs.Freight)
	}
	var notesLine string
	if q.Notes != "" {
		notesLine = "\n\n*Observações:*\n" + q.Notes
	}

	return fmt.Sprintf(`Olá, *%s*!

Segue o orçamento para o seu projeto:

*%s*
━━━━━━━━━━━━━━━━━━━━━━
*Material:* %s
*Quantidade:* %g peça(s)
*Prazo estimado:* %gh de trabalho%s%s

━━━━━━━━━━━━━━━━━━━━━━
*VALOR TOTAL: %s*
━━━━━━━━━━━━━━━━━━━━━━

Este orçamento é válido por 7 dias. Para confirmar o pedido, é necessário 50%% de entrada.

Qualquer dúvida, estou à disposição!
_MuriloV3D — Impressão 3D Profissional_`,
		q.Client.Name,
		q.Project,
		strings.TrimSpace(matLine),
		q.Commercial.Qty,
		q.Time.Total(),
		freightLine,
		notesLine,
		FormatBRL(q.Costs.FinalPrice),
	)
}

// BuildLink returns the wa.me URL that opens a chat with the quote's client
// and the proposal text prefilled. When the contact has no digits the link
// carries only the text.
func BuildLink(q entities.QuoteRecord) string {
	text := url.QueryEscape(BuildText(q))
	digits := onlyDigits(q.Client.Contact)
	if digits == "" {
		return "https://wa.me/?text=" + text
	}
	return "https://wa.me/" + countryCode + digits + "?text=" + text
}

func onlyDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatBRL renders a monetary value as "R$ 1.234,56" (pt-BR grouping).
func FormatBRL(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := fmt.Sprintf("%.2f", v)
	intPart, fracPart, _ := strings.Cut(s, ".")

	var grouped strings.Builder
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(d)
	}

	out := "R$ " + grouped.String() + "," + fracPart
	if neg {
		out = "-" + out
	}
	return out
}

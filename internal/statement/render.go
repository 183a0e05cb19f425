package statement

import (
	"strconv"
	"strings"

	"github.com/noah-isme/backend-rental/internal/rental"
)

// Format selects the statement output representation.
type Format int

const (
	// FormatPlainText is the tab-separated text statement.
	FormatPlainText Format = iota
	// FormatHTML is the markup statement.
	FormatHTML
)

// ParseFormat maps a free-form selector to a Format. Empty or unrecognized
// values fall back to plain text rather than failing; this permissiveness is
// part of the API contract, not an oversight.
func ParseFormat(s string) Format {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "HTML":
		return FormatHTML
	default:
		return FormatPlainText
	}
}

// String returns the canonical selector for the format.
func (f Format) String() string {
	if f == FormatHTML {
		return "HTML"
	}
	return "PLAIN_TEXT"
}

// Render projects the customer's rentals into the requested representation.
// Rendering is a pure single pass over the customer's current rentals; all
// numbers come from the ledger, the renderer only formats them.
func Render(c *rental.Customer, f Format) string {
	if f == FormatHTML {
		return renderHTML(c)
	}
	return renderPlainText(c)
}

func renderPlainText(c *rental.Customer) string {
	var b strings.Builder
	b.WriteString("Rental Record for ")
	b.WriteString(c.Name())
	b.WriteString("\n")

	for _, r := range c.Rentals() {
		b.WriteString("\t")
		b.WriteString(r.Title())
		b.WriteString("\t")
		b.WriteString(formatAmount(r.Price()))
		b.WriteString("\n")
	}

	b.WriteString("Amount owed is ")
	b.WriteString(formatAmount(c.TotalAmount()))
	b.WriteString("\n")
	b.WriteString("You earned ")
	b.WriteString(strconv.Itoa(c.TotalPoints()))
	b.WriteString(" frequent renter points")
	return b.String()
}

func renderHTML(c *rental.Customer) string {
	var b strings.Builder
	b.WriteString("<html>\n")
	b.WriteString("<head><title>Rental Statement</title></head>\n")
	b.WriteString("<body>\n")
	b.WriteString("<h1>Rental Record for ")
	b.WriteString(c.Name())
	b.WriteString("</h1>\n")
	b.WriteString("<table>\n")
	b.WriteString("<tr><th>Title</th><th>Price</th></tr>\n")

	for _, r := range c.Rentals() {
		b.WriteString("<tr><td>")
		b.WriteString(r.Title())
		b.WriteString("</td><td>")
		b.WriteString(formatAmount(r.Price()))
		b.WriteString("</td></tr>\n")
	}

	b.WriteString("</table>\n")
	b.WriteString("<p>Amount owed is <strong>")
	b.WriteString(formatAmount(c.TotalAmount()))
	b.WriteString("</strong></p>\n")
	b.WriteString("<p>You earned <strong>")
	b.WriteString(strconv.Itoa(c.TotalPoints()))
	b.WriteString("</strong> frequent renter points</p>\n")
	b.WriteString("</body>\n")
	b.WriteString("</html>")
	return b.String()
}

// formatAmount renders an amount with at least one decimal place, so an
// integral price still shows a trailing ".0".
func formatAmount(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

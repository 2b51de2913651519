package transformers

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"karttem-admin/pkg/inmobiliaria"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var nonDigits = regexp.MustCompile(`\D`)

var monthsES = [...]string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

var printerES = message.NewPrinter(language.MustParse("es-AR"))

// FormatNumberES formats v with es-AR separators ("1.234.567,5"), at most three decimals.
func FormatNumberES(v float64) string {
	return printerES.Sprint(number.Decimal(v, number.MaxFractionDigits(3)))
}

// FormatPrice shows the USD price when present, else the ARS price, else "-".
func FormatPrice(p *inmobiliaria.Property) string {
	switch {
	case p.PriceUSD > 0:
		return "USD $" + FormatNumberES(float64(p.PriceUSD))
	case p.PriceARS > 0:
		return "$" + FormatNumberES(float64(p.PriceARS))
	default:
		return "-"
	}
}

// FormatDocument formats an 11-digit CUIL/CUIT as XX-XXXXXXXX-X. Other inputs are returned trimmed.
func FormatDocument(docType, number string) string {
	number = strings.TrimSpace(number)
	if strings.EqualFold(docType, "dni") {
		return number
	}
	digits := nonDigits.ReplaceAllString(number, "")
	if len(digits) != 11 {
		return number
	}
	return fmt.Sprintf("%s-%s-%s", digits[:2], digits[2:10], digits[10:])
}

// FormatCoordinate renders a coordinate with six decimals.
func FormatCoordinate(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}

// LongDateES renders t as "15 de octubre de 2026".
func LongDateES(t time.Time) string {
	return fmt.Sprintf("%d de %s de %d", t.Day(), monthsES[t.Month()-1], t.Year())
}

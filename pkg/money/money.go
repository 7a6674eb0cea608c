// Package money formatea importes para la UI y los documentos.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Symbol prefijo de moneda que muestra la tienda.
const Symbol = "Rs."

// Format "Rs. 1,234.50": dos decimales y comas de miles.
func Format(d decimal.Decimal) string {
	return Symbol + " " + Plain(d)
}

// Plain igual que Format pero sin símbolo.
func Plain(d decimal.Decimal) string {
	s := d.StringFixed(2)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}
	n := len(intPart)
	buf := make([]byte, 0, n+n/3)
	for i, c := range []byte(intPart) {
		if i > 0 && (n-i)%3 == 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, c)
	}
	return sign + string(buf) + frac
}

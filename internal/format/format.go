// Package format holds the wire/display conventions shared by the API:
// DD/MM/YYYY dates, tax-id normalization and BRL currency strings.
package format

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"
)

// LayoutData is the only accepted textual date format on the wire.
const LayoutData = "02/01/2006"

// ErrDataInvalida is returned for any date that does not match LayoutData.
var ErrDataInvalida = errors.New("Data inválida. Use o formato DD/MM/YYYY")

// ParseData parses a DD/MM/YYYY string as midnight of that day in loc.
func ParseData(s string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(LayoutData, strings.TrimSpace(s), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrDataInvalida, s)
	}
	return t, nil
}

// FormatarData renders t as DD/MM/YYYY in loc.
func FormatarData(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(LayoutData)
}

// InicioDoDia returns midnight of t's calendar day in loc.
func InicioDoDia(t time.Time, loc *time.Location) time.Time {
	y, m, d := t.In(loc).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// NormalizarDocumento strips every separator from a CPF/CNPJ, keeping only
// letters and digits. "123.456.789-00" and "12345678900" normalize equally.
func NormalizarDocumento(doc string) string {
	var b strings.Builder
	b.Grow(len(doc))
	for _, r := range doc {
		if unicode.IsDigit(r) || unicode.IsLetter(r) {
			b.WriteRune(unicode.ToUpper(r))
		}
	}
	return b.String()
}

// FormatarMoeda renders d as Brazilian currency, e.g. "R$ 1.234,56".
func FormatarMoeda(d decimal.Decimal) string {
	d = d.Round(2)
	inteiro, frac, _ := strings.Cut(d.Abs().StringFixed(2), ".")

	var b strings.Builder
	if d.IsNegative() {
		b.WriteByte('-')
	}
	b.WriteString("R$ ")
	for i, r := range inteiro {
		if i > 0 && (len(inteiro)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}
	b.WriteByte(',')
	b.WriteString(frac)
	return b.String()
}

// EmCentavos reports whether d has no digits past the cent. "2.10" and
// "2.100" qualify, "2.105" does not.
func EmCentavos(d decimal.Decimal) bool {
	return d.Round(2).Equal(d)
}

// Truncar cuts s to at most n runes.
func Truncar(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// CodigoVenda renders a sale id as the zero-padded 6-digit code shown in reports.
func CodigoVenda(id uint) string {
	return fmt.Sprintf("%06d", id)
}

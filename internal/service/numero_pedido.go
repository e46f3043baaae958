package service

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ChavePedido is the per-day order number prefix, e.g. "COMP-20240315".
// The day is taken in loc.
func ChavePedido(prefixo string, t time.Time, loc *time.Location) string {
	return prefixo + "-" + t.In(loc).Format("20060102")
}

// FormatarNumeroPedido appends the zero-padded sequence to chave.
// Sequences past 9999 simply grow wider.
func FormatarNumeroPedido(chave string, seq int) string {
	return fmt.Sprintf("%s-%04d", chave, seq)
}

// ParseSequencia extracts the trailing sequence of an order number.
func ParseSequencia(numero string) (int, error) {
	i := strings.LastIndex(numero, "-")
	if i < 0 || i == len(numero)-1 {
		return 0, fmt.Errorf("número de pedido malformado: %q", numero)
	}
	seq, err := strconv.Atoi(numero[i+1:])
	if err != nil {
		return 0, fmt.Errorf("número de pedido malformado: %q: %w", numero, err)
	}
	return seq, nil
}

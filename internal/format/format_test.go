package format

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizarDocumento(t *testing.T) {
	assert.Equal(t, "12345678900", NormalizarDocumento("123.456.789-00"))
	assert.Equal(t, NormalizarDocumento("12345678900"), NormalizarDocumento("123.456.789-00"))
	assert.Equal(t, "12345678000195", NormalizarDocumento("12.345.678/0001-95"))
	assert.Equal(t, "12ABC34501DE35", NormalizarDocumento(" 12.abc.345/01de-35 "))
	assert.Empty(t, NormalizarDocumento("..-/"))
}

func TestFormatarMoeda(t *testing.T) {
	cases := map[string]string{
		"0":        "R$ 0,00",
		"2.17":     "R$ 2,17",
		"47.83":    "R$ 47,83",
		"100":      "R$ 100,00",
		"1234.56":  "R$ 1.234,56",
		"1000000":  "R$ 1.000.000,00",
		"-15.5":    "-R$ 15,50",
		"999.999":  "R$ 1.000,00",
		"123456.7": "R$ 123.456,70",
	}
	for in, want := range cases {
		assert.Equal(t, want, FormatarMoeda(decimal.RequireFromString(in)), in)
	}
}

func TestEmCentavos(t *testing.T) {
	for _, in := range []string{"0", "2.1", "2.10", "2.100", "47.83", "-3.5"} {
		assert.True(t, EmCentavos(decimal.RequireFromString(in)), in)
	}
	for _, in := range []string{"50.005", "47.825", "0.001", "-1.239"} {
		assert.False(t, EmCentavos(decimal.RequireFromString(in)), in)
	}
}

func TestParseData(t *testing.T) {
	loc := time.FixedZone("BRT", -3*3600)

	d, err := ParseData("15/10/2026", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 10, 15, 0, 0, 0, 0, loc), d)
	assert.Equal(t, "15/10/2026", FormatarData(d, loc))

	for _, bad := range []string{"2026-10-15", "32/01/2026", "15/13/2026", ""} {
		_, err := ParseData(bad, loc)
		assert.ErrorIs(t, err, ErrDataInvalida, bad)
	}
}

func TestInicioDoDia(t *testing.T) {
	loc := time.FixedZone("BRT", -3*3600)
	// 01:30 UTC on the 16th is still the 15th in BRT.
	ts := time.Date(2026, 10, 16, 1, 30, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 10, 15, 0, 0, 0, 0, loc), InicioDoDia(ts, loc))
}

func TestTruncarECodigo(t *testing.T) {
	assert.Equal(t, "abc", Truncar("abc", 50))
	assert.Equal(t, "Cartã", Truncar("Cartão", 5))
	assert.Equal(t, "000042", CodigoVenda(42))
	assert.Equal(t, "1234567", CodigoVenda(1234567))
}
